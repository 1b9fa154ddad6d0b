package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// valueTaken reports whether a row of T other than excludeID has column = value.
// excludeID 0 checks every row.
func valueTaken[T any](ctx context.Context, db *gorm.DB, column string, value any, excludeID uint64) (bool, error) {
	var count int64
	query := db.WithContext(ctx).
		Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if excludeID != 0 {
		query = query.Where(clause.Neq{Column: clause.PrimaryColumn, Value: excludeID})
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
