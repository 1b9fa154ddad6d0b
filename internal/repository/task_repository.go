package repository

import (
	"context"

	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts the task and its label associations atomically
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task, labelIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}

		return relateLabels(tx, task.ID, labelIDs)
	})
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db.WithContext(ctx)

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks matching the filter. The label predicate restricts the
// candidate set through the association table before the column predicates apply.
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}

	query := r.db.WithContext(ctx).Model(&models.Task{})

	if filter.LabelID != nil {
		labelSubQuery := r.db.Model(&models.TaskLabel{}).
			Select("tasks_labels.task_id").
			Where("tasks_labels.label_id = ?", *filter.LabelID)
		query = query.Where("tasks.id IN (?)", labelSubQuery)
	}
	if filter.StatusID != nil {
		query = query.Where("tasks.status_id = ?", *filter.StatusID)
	}
	if filter.ExecutorID != nil {
		query = query.Where("tasks.executor_id = ?", *filter.ExecutorID)
	}
	if filter.CreatorID != nil {
		query = query.Where("tasks.creator_id = ?", *filter.CreatorID)
	}

	err := query.
		Preload("Status").
		Preload("Creator").
		Preload("Executor").
		Order("tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update saves the task's own columns and rewrites its label set atomically
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task, labelIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(task).
			Select("Name", "Description", "StatusID", "ExecutorID").
			Updates(task).Error
		if err != nil {
			return err
		}

		if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskLabel{}).Error; err != nil {
			return err
		}

		return relateLabels(tx, task.ID, labelIDs)
	})
}

// Delete removes label associations first, then the task
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskLabel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}

func (r *GormTaskRepository) LabelsFor(ctx context.Context, taskID uint64) ([]models.Label, error) {
	labels := []models.Label{}
	err := r.db.WithContext(ctx).
		Joins("JOIN tasks_labels ON tasks_labels.label_id = labels.id").
		Where("tasks_labels.task_id = ?", taskID).
		Order("labels.id ASC").
		Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *GormTaskRepository) CountByStatus(ctx context.Context, statusID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("status_id = ?", statusID).
		Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("creator_id = ? OR executor_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	return valueTaken[models.Task](ctx, r.db, "name", name, excludeID)
}

func relateLabels(tx *gorm.DB, taskID uint64, labelIDs []uint64) error {
	if len(labelIDs) == 0 {
		return nil
	}

	rows := make([]models.TaskLabel, len(labelIDs))
	for i, labelID := range labelIDs {
		rows[i] = models.TaskLabel{
			TaskID:  taskID,
			LabelID: labelID,
		}
	}

	return tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
