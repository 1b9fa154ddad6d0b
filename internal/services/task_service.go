package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/task-manager/internal/dto"
	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/policy"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/utils"
	"gorm.io/gorm"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo   repository.TaskRepository
	statusRepo repository.StatusRepository
	labelRepo  repository.LabelRepository
	userRepo   repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	statusRepo repository.StatusRepository,
	labelRepo repository.LabelRepository,
	userRepo repository.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		statusRepo: statusRepo,
		labelRepo:  labelRepo,
		userRepo:   userRepo,
	}
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	StatusID   *uint64
	ExecutorID *uint64
	LabelID    *uint64
	OnlyMine   bool
}

// TaskInput is the task form as submitted. Reference fields arrive as text
// and are parsed here so that every problem is reported at once.
type TaskInput struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	StatusID    string   `json:"statusId"`
	ExecutorID  string   `json:"executorId"`
	LabelIDs    []string `json:"labels"`
}

// taskAttrs is a TaskInput that passed validation
type taskAttrs struct {
	name        string
	description string
	statusID    uint64
	executorID  *uint64
	labelIDs    []uint64
}

// ListTasks returns tasks matching the filter, denormalized for display
func (s *TaskService) ListTasks(ctx context.Context, actor policy.Actor, input ListTasksInput) ([]dto.TaskView, error) {
	if !policy.Can(actor, policy.View, policy.Tasks) {
		return nil, apperrors.ErrForbidden
	}

	filter := repository.TaskFilter{
		StatusID:   input.StatusID,
		ExecutorID: input.ExecutorID,
		LabelID:    input.LabelID,
	}
	if input.OnlyMine {
		creatorID := actor.ID
		filter.CreatorID = &creatorID
	}

	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return dto.ToTaskViews(tasks), nil
}

// GetTask returns one task with its labels, denormalized for display
func (s *TaskService) GetTask(ctx context.Context, actor policy.Actor, id uint64) (*dto.TaskView, error) {
	task, err := s.findTask(ctx, id, "Status", "Creator", "Executor")
	if err != nil {
		return nil, err
	}
	if !policy.Can(actor, policy.View, task) {
		return nil, apperrors.ErrForbidden
	}

	labels, err := s.taskRepo.LabelsFor(ctx, task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task labels: %w", err)
	}

	view := dto.ToTaskView(*task)
	view.Labels = dto.ToLabelViews(labels)
	return &view, nil
}

// GetTaskForEdit returns the stored task and the ids of its labels
func (s *TaskService) GetTaskForEdit(ctx context.Context, actor policy.Actor, id uint64) (*models.Task, []uint64, error) {
	task, err := s.findTask(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !policy.Can(actor, policy.Update, task) {
		return nil, nil, apperrors.ErrForbidden
	}

	labels, err := s.taskRepo.LabelsFor(ctx, task.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load task labels: %w", err)
	}
	labelIDs := make([]uint64, len(labels))
	for i, label := range labels {
		labelIDs[i] = label.ID
	}
	return task, labelIDs, nil
}

// CreateTask creates a task owned by the actor
func (s *TaskService) CreateTask(ctx context.Context, actor policy.Actor, input TaskInput) (*models.Task, error) {
	if !policy.Can(actor, policy.Create, policy.Tasks) {
		return nil, apperrors.ErrForbidden
	}

	attrs, err := s.validate(ctx, input, 0)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:        attrs.name,
		Description: attrs.description,
		StatusID:    attrs.statusID,
		CreatorID:   actor.ID,
		ExecutorID:  attrs.executorID,
	}

	if err := s.taskRepo.Create(ctx, task, attrs.labelIDs); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", duplicateAsValidation(err, "name"))
	}

	return task, nil
}

// UpdateTask changes a task's fields and replaces its label set. The creator never changes.
func (s *TaskService) UpdateTask(ctx context.Context, actor policy.Actor, id uint64, input TaskInput) (*models.Task, error) {
	task, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Can(actor, policy.Update, task) {
		return nil, apperrors.ErrForbidden
	}

	attrs, err := s.validate(ctx, input, task.ID)
	if err != nil {
		return nil, err
	}

	task.Name = attrs.name
	task.Description = attrs.description
	task.StatusID = attrs.statusID
	task.ExecutorID = attrs.executorID

	if err := s.taskRepo.Update(ctx, task, attrs.labelIDs); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", duplicateAsValidation(err, "name"))
	}

	return task, nil
}

// DeleteTask deletes a task if the actor is the creator
func (s *TaskService) DeleteTask(ctx context.Context, actor policy.Actor, id uint64) error {
	task, err := s.findTask(ctx, id)
	if err != nil {
		return err
	}

	if !policy.Can(actor, policy.Delete, task) {
		return apperrors.ErrForbidden
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) findTask(ctx context.Context, id uint64, preload ...string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id, preload...)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", notFound(err))
	}
	return task, nil
}

// validate checks every field of input and resolves its references
func (s *TaskService) validate(ctx context.Context, input TaskInput, excludeID uint64) (*taskAttrs, error) {
	input.Name = strings.TrimSpace(input.Name)
	verr := validateStruct(input)
	attrs := &taskAttrs{
		name:        input.Name,
		description: strings.TrimSpace(input.Description),
	}

	if err := uniqueCheck(verr, "name", func() (bool, error) {
		return s.taskRepo.NameTaken(ctx, input.Name, excludeID)
	}); err != nil {
		return nil, fmt.Errorf("failed to check task name: %w", err)
	}

	statusID, err := utils.ParseID(input.StatusID)
	switch {
	case errors.Is(err, utils.ErrIDRequired):
		verr.Add("statusId", apperrors.CodeRequired, 0)
	case err != nil:
		verr.Add("statusId", apperrors.CodeNumeric, 0)
	default:
		if _, err := s.statusRepo.FindByID(ctx, statusID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to find status: %w", err)
			}
			verr.Add("statusId", apperrors.CodeMissing, 0)
		}
		attrs.statusID = statusID
	}

	executorID, err := utils.ParseOptionalID(input.ExecutorID)
	switch {
	case err != nil:
		verr.Add("executorId", apperrors.CodeNumeric, 0)
	case executorID != nil:
		if _, err := s.userRepo.FindByID(ctx, *executorID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to find executor: %w", err)
			}
			verr.Add("executorId", apperrors.CodeMissing, 0)
		}
		attrs.executorID = executorID
	}

	labelIDs, err := utils.ParseIDs(input.LabelIDs)
	if err != nil {
		verr.Add("labels", apperrors.CodeNumeric, 0)
	} else {
		labels, err := s.labelRepo.FindByIDs(ctx, labelIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to find labels: %w", err)
		}
		if len(labels) != len(labelIDs) {
			verr.Add("labels", apperrors.CodeMissing, 0)
		}
		attrs.labelIDs = labelIDs
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return attrs, nil
}
