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

// NameInput is the form shared by statuses and labels.
type NameInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// StatusService handles task status business logic
type StatusService struct {
	statusRepo repository.StatusRepository
	integrity  *IntegrityGuard
}

// NewStatusService creates a new StatusService
func NewStatusService(statusRepo repository.StatusRepository, integrity *IntegrityGuard) *StatusService {
	return &StatusService{
		statusRepo: statusRepo,
		integrity:  integrity,
	}
}

func (s *StatusService) ListStatuses(ctx context.Context, actor policy.Actor) ([]models.TaskStatus, error) {
	if !policy.Can(actor, policy.View, policy.Statuses) {
		return nil, apperrors.ErrForbidden
	}
	statuses, err := s.statusRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

func (s *StatusService) GetStatus(ctx context.Context, actor policy.Actor, id uint64) (*models.TaskStatus, error) {
	status, err := s.statusRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find status: %w", notFound(err))
	}
	if !policy.Can(actor, policy.View, status) {
		return nil, apperrors.ErrForbidden
	}
	return status, nil
}

func (s *StatusService) CreateStatus(ctx context.Context, actor policy.Actor, input NameInput) (*models.TaskStatus, error) {
	if !policy.Can(actor, policy.Create, policy.Statuses) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.validate(ctx, &input, 0); err != nil {
		return nil, err
	}

	status := &models.TaskStatus{Name: input.Name}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to create status: %w", duplicateAsValidation(err, "name"))
	}
	return status, nil
}

func (s *StatusService) UpdateStatus(ctx context.Context, actor policy.Actor, id uint64, input NameInput) (*models.TaskStatus, error) {
	status, err := s.statusRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find status: %w", notFound(err))
	}
	if !policy.Can(actor, policy.Update, status) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.validate(ctx, &input, status.ID); err != nil {
		return nil, err
	}

	status.Name = input.Name
	if err := s.statusRepo.Update(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", duplicateAsValidation(err, "name"))
	}
	return status, nil
}

// DeleteStatus removes a status that no task uses
func (s *StatusService) DeleteStatus(ctx context.Context, actor policy.Actor, id uint64) error {
	status, err := s.statusRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find status: %w", notFound(err))
	}
	if !policy.Can(actor, policy.Delete, status) {
		return apperrors.ErrForbidden
	}

	if err := s.integrity.CheckStatusDeletable(ctx, status.ID); err != nil {
		return err
	}

	if err := s.statusRepo.Delete(ctx, status.ID); err != nil {
		return fmt.Errorf("failed to delete status: %w", err)
	}
	return nil
}

func (s *StatusService) validate(ctx context.Context, input *NameInput, excludeID uint64) error {
	input.Name = strings.TrimSpace(input.Name)
	verr := validateStruct(input)
	if err := uniqueCheck(verr, "name", func() (bool, error) {
		return s.statusRepo.NameTaken(ctx, input.Name, excludeID)
	}); err != nil {
		return fmt.Errorf("failed to check status name: %w", err)
	}
	return verr.OrNil()
}
