package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"supercopa.app/backend/internal/model"
)

type RankingRepository interface {
	List(ctx context.Context) ([]model.RankingEntry, error)
	Create(ctx context.Context, entry *model.RankingEntry) error
	Update(ctx context.Context, entry *model.RankingEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type rankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

func (r *rankingRepository) List(ctx context.Context) ([]model.RankingEntry, error) {
	var entries []model.RankingEntry
	err := r.db.WithContext(ctx).
		Order("position asc").
		Find(&entries).Error
	return entries, err
}

func (r *rankingRepository) Create(ctx context.Context, entry *model.RankingEntry) error {
	// The store assigns the id. A client-side placeholder id must never
	// reach this point; the caller strips it beforehand.
	entry.ID = uuid.Nil
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *rankingRepository) Update(ctx context.Context, entry *model.RankingEntry) error {
	// Callers pass a rebuilt struct, not a loaded row; created_at must keep
	// its stored value.
	return r.db.WithContext(ctx).Omit("created_at").Save(entry).Error
}

func (r *rankingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RankingEntry{}, "id = ?", id).Error
}
