package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"supercopa.app/backend/internal/model"
)

type RuleRepository interface {
	List(ctx context.Context) ([]model.Rule, error)
	Create(ctx context.Context, rule *model.Rule) error
	Update(ctx context.Context, rule *model.Rule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ruleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) List(ctx context.Context) ([]model.Rule, error) {
	var rules []model.Rule
	err := r.db.WithContext(ctx).
		Order("sort_order asc").
		Find(&rules).Error
	return rules, err
}

func (r *ruleRepository) Create(ctx context.Context, rule *model.Rule) error {
	rule.ID = uuid.Nil
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *ruleRepository) Update(ctx context.Context, rule *model.Rule) error {
	// Callers pass a rebuilt struct, not a loaded row; created_at must keep
	// its stored value.
	return r.db.WithContext(ctx).Omit("created_at").Save(rule).Error
}

func (r *ruleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Rule{}, "id = ?", id).Error
}
