package repository

import (
	"context"

	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
)

// GormStatusRepository is a GORM implementation of StatusRepository
type GormStatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new StatusRepository
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &GormStatusRepository{db: db}
}

func (r *GormStatusRepository) Create(ctx context.Context, status *models.TaskStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *GormStatusRepository) FindByID(ctx context.Context, id uint64) (*models.TaskStatus, error) {
	var status models.TaskStatus
	if err := r.db.WithContext(ctx).First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *GormStatusRepository) List(ctx context.Context) ([]models.TaskStatus, error) {
	var statuses []models.TaskStatus
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *GormStatusRepository) Update(ctx context.Context, status *models.TaskStatus) error {
	return r.db.WithContext(ctx).Model(status).Select("Name").Updates(status).Error
}

func (r *GormStatusRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.TaskStatus{}, id).Error
}

func (r *GormStatusRepository) NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	return valueTaken[models.TaskStatus](ctx, r.db, "name", name, excludeID)
}
