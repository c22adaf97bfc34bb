package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/identity"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/reconcile"
	"supercopa.app/backend/internal/repository"
)

type RulesService interface {
	GetRules(ctx context.Context) ([]model.Rule, error)
	// SaveRules replaces the rule list; order follows list position.
	SaveRules(ctx context.Context, rules []dto.RuleInput) (*reconcile.Result, error)
}

type rulesService struct {
	repo      repository.RuleRepository
	sanitizer *bluemonday.Policy
}

func NewRulesService(repo repository.RuleRepository) RulesService {
	return &rulesService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *rulesService) GetRules(ctx context.Context) ([]model.Rule, error) {
	return s.repo.List(ctx)
}

func (s *rulesService) SaveRules(ctx context.Context, rules []dto.RuleInput) (*reconcile.Result, error) {
	desired := make([]ruleItem, 0, len(rules))
	for i, in := range rules {
		desired = append(desired, ruleItem{
			id: identity.Parse(in.ID),
			rule: model.Rule{
				Title:       strings.TrimSpace(in.Title),
				Description: s.sanitizer.Sanitize(in.Description),
				SortOrder:   i + 1,
			},
		})
	}

	return reconcile.Sync(ctx, ruleStore{repo: s.repo}, desired)
}

type ruleItem struct {
	id   identity.RecordID
	rule model.Rule
}

func (it ruleItem) RecordID() identity.RecordID { return it.id }

type ruleStore struct {
	repo repository.RuleRepository
}

func (st ruleStore) List(ctx context.Context) ([]ruleItem, error) {
	rules, err := st.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ruleItem, 0, len(rules))
	for _, r := range rules {
		items = append(items, ruleItem{id: identity.FromUUID(r.ID), rule: r})
	}
	return items, nil
}

func (st ruleStore) Upsert(ctx context.Context, it ruleItem) error {
	rule := it.rule
	if it.id.IsCommitted() {
		rule.ID = it.id.UUID()
		return st.repo.Update(ctx, &rule)
	}
	return st.repo.Create(ctx, &rule)
}

func (st ruleStore) Delete(ctx context.Context, id uuid.UUID) error {
	return st.repo.Delete(ctx, id)
}
