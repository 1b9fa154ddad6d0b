package repository

import (
	"context"

	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
)

// GormLabelRepository is a GORM implementation of LabelRepository
type GormLabelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &GormLabelRepository{db: db}
}

func (r *GormLabelRepository) Create(ctx context.Context, label *models.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *GormLabelRepository) FindByID(ctx context.Context, id uint64) (*models.Label, error) {
	var label models.Label
	if err := r.db.WithContext(ctx).First(&label, id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

func (r *GormLabelRepository) FindByIDs(ctx context.Context, ids []uint64) ([]models.Label, error) {
	labels := []models.Label{}
	if len(ids) == 0 {
		return labels, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *GormLabelRepository) List(ctx context.Context) ([]models.Label, error) {
	var labels []models.Label
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *GormLabelRepository) Update(ctx context.Context, label *models.Label) error {
	return r.db.WithContext(ctx).Model(label).Select("Name").Updates(label).Error
}

// Delete deletes the label and its task associations in a transaction
func (r *GormLabelRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("label_id = ?", id).Delete(&models.TaskLabel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Label{}, id).Error
	})
}

func (r *GormLabelRepository) NameTaken(ctx context.Context, name string, excludeID uint64) (bool, error) {
	return valueTaken[models.Label](ctx, r.db, "name", name, excludeID)
}
