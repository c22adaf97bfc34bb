package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"supercopa.app/backend/internal/model"
)

type AwardRepository interface {
	List(ctx context.Context) ([]model.Award, error)
	Create(ctx context.Context, award *model.Award) error
	Update(ctx context.Context, award *model.Award) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type awardRepository struct {
	db *gorm.DB
}

func NewAwardRepository(db *gorm.DB) AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) List(ctx context.Context) ([]model.Award, error) {
	var awards []model.Award
	err := r.db.WithContext(ctx).
		Order("sort_order asc").
		Find(&awards).Error
	return awards, err
}

func (r *awardRepository) Create(ctx context.Context, award *model.Award) error {
	award.ID = uuid.Nil
	return r.db.WithContext(ctx).Create(award).Error
}

func (r *awardRepository) Update(ctx context.Context, award *model.Award) error {
	// Callers pass a rebuilt struct, not a loaded row; created_at must keep
	// its stored value.
	return r.db.WithContext(ctx).Omit("created_at").Save(award).Error
}

func (r *awardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Award{}, "id = ?", id).Error
}
