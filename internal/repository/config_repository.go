package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/pkg/apperror"
)

type ConfigRepository interface {
	// Get returns apperror.ErrNotFound when the key has no row. Callers
	// treat that as "use the default", not as a failure.
	Get(ctx context.Context, key string) (*model.ConfigEntry, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) ([]model.ConfigEntry, error)
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) Get(ctx context.Context, key string) (*model.ConfigEntry, error) {
	var entry model.ConfigEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *configRepository) Set(ctx context.Context, key, value string) error {
	entry := model.ConfigEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *configRepository) All(ctx context.Context) ([]model.ConfigEntry, error) {
	var entries []model.ConfigEntry
	err := r.db.WithContext(ctx).Find(&entries).Error
	return entries, err
}
