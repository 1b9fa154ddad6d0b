package repository

import (
	"context"

	"github.com/yukikurage/task-manager/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users ordered by ID
	List(ctx context.Context) ([]models.User, error)

	// Update saves the user's columns
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user
	Delete(ctx context.Context, id uint64) error

	// EmailTaken reports whether another user already has email
	EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error)
}

// StatusRepository defines the interface for task status data access
type StatusRepository interface {
	Create(ctx context.Context, status *models.TaskStatus) error
	FindByID(ctx context.Context, id uint64) (*models.TaskStatus, error)
	List(ctx context.Context) ([]models.TaskStatus, error)
	Update(ctx context.Context, status *models.TaskStatus) error
	Delete(ctx context.Context, id uint64) error
	NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error)
}

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	Create(ctx context.Context, label *models.Label) error
	FindByID(ctx context.Context, id uint64) (*models.Label, error)

	// FindByIDs returns the labels among ids that exist
	FindByIDs(ctx context.Context, ids []uint64) ([]models.Label, error)

	List(ctx context.Context) ([]models.Label, error)
	Update(ctx context.Context, label *models.Label) error

	// Delete removes the label together with its task associations
	Delete(ctx context.Context, id uint64) error

	NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts the task and relates it to labelIDs in one transaction
	Create(ctx context.Context, task *models.Task, labelIDs []uint64) error

	// FindByID finds a task by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks matching filter with status, creator and executor loaded
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	// Update saves the task's fields and replaces its label set in one transaction
	Update(ctx context.Context, task *models.Task, labelIDs []uint64) error

	// Delete removes the task's label associations and then the task, in one transaction
	Delete(ctx context.Context, id uint64) error

	// LabelsFor returns the labels related to a task
	LabelsFor(ctx context.Context, taskID uint64) ([]models.Label, error)

	// CountByStatus counts tasks that have the status
	CountByStatus(ctx context.Context, statusID uint64) (int64, error)

	// CountByUser counts tasks the user created or executes
	CountByUser(ctx context.Context, userID uint64) (int64, error)

	NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error)
}

// TaskFilter holds the optional predicates for listing tasks.
// A nil field imposes no constraint; set fields are combined with AND.
type TaskFilter struct {
	StatusID   *uint64
	ExecutorID *uint64
	LabelID    *uint64
	CreatorID  *uint64
}
