package services

import (
	"context"
	"fmt"

	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/repository"
)

const (
	ReasonStatusInUse = "status_in_use"
	ReasonUserInUse   = "user_in_use"
)

// IntegrityGuard vetoes deletes that would leave tasks pointing at nothing.
// It runs after authorization and before the repository delete.
type IntegrityGuard struct {
	taskRepo repository.TaskRepository
}

func NewIntegrityGuard(taskRepo repository.TaskRepository) *IntegrityGuard {
	return &IntegrityGuard{taskRepo: taskRepo}
}

// CheckStatusDeletable fails with a conflict while any task has the status.
func (g *IntegrityGuard) CheckStatusDeletable(ctx context.Context, statusID uint64) error {
	count, err := g.taskRepo.CountByStatus(ctx, statusID)
	if err != nil {
		return fmt.Errorf("failed to count tasks by status: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflict(ReasonStatusInUse)
	}
	return nil
}

// CheckUserDeletable fails with a conflict while the user creates or executes any task.
func (g *IntegrityGuard) CheckUserDeletable(ctx context.Context, userID uint64) error {
	count, err := g.taskRepo.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count tasks by user: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflict(ReasonUserInUse)
	}
	return nil
}
