package services

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/policy"
	"github.com/yukikurage/task-manager/internal/repository"
)

// LabelService handles label business logic. Labels are deleted even when
// tasks carry them; the associations go with the label.
type LabelService struct {
	labelRepo repository.LabelRepository
}

// NewLabelService creates a new LabelService
func NewLabelService(labelRepo repository.LabelRepository) *LabelService {
	return &LabelService{labelRepo: labelRepo}
}

func (s *LabelService) ListLabels(ctx context.Context, actor policy.Actor) ([]models.Label, error) {
	if !policy.Can(actor, policy.View, policy.Labels) {
		return nil, apperrors.ErrForbidden
	}
	labels, err := s.labelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

func (s *LabelService) GetLabel(ctx context.Context, actor policy.Actor, id uint64) (*models.Label, error) {
	label, err := s.labelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find label: %w", notFound(err))
	}
	if !policy.Can(actor, policy.View, label) {
		return nil, apperrors.ErrForbidden
	}
	return label, nil
}

func (s *LabelService) CreateLabel(ctx context.Context, actor policy.Actor, input NameInput) (*models.Label, error) {
	if !policy.Can(actor, policy.Create, policy.Labels) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.validate(ctx, &input, 0); err != nil {
		return nil, err
	}

	label := &models.Label{Name: input.Name}
	if err := s.labelRepo.Create(ctx, label); err != nil {
		return nil, fmt.Errorf("failed to create label: %w", duplicateAsValidation(err, "name"))
	}
	return label, nil
}

func (s *LabelService) UpdateLabel(ctx context.Context, actor policy.Actor, id uint64, input NameInput) (*models.Label, error) {
	label, err := s.labelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find label: %w", notFound(err))
	}
	if !policy.Can(actor, policy.Update, label) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.validate(ctx, &input, label.ID); err != nil {
		return nil, err
	}

	label.Name = input.Name
	if err := s.labelRepo.Update(ctx, label); err != nil {
		return nil, fmt.Errorf("failed to update label: %w", duplicateAsValidation(err, "name"))
	}
	return label, nil
}

func (s *LabelService) DeleteLabel(ctx context.Context, actor policy.Actor, id uint64) error {
	label, err := s.labelRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find label: %w", notFound(err))
	}
	if !policy.Can(actor, policy.Delete, label) {
		return apperrors.ErrForbidden
	}

	if err := s.labelRepo.Delete(ctx, label.ID); err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}
	return nil
}

func (s *LabelService) validate(ctx context.Context, input *NameInput, excludeID uint64) error {
	input.Name = strings.TrimSpace(input.Name)
	verr := validateStruct(input)
	if err := uniqueCheck(verr, "name", func() (bool, error) {
		return s.labelRepo.NameTaken(ctx, input.Name, excludeID)
	}); err != nil {
		return fmt.Errorf("failed to check label name: %w", err)
	}
	return verr.OrNil()
}
