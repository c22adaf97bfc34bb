package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/identity"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/reconcile"
	"supercopa.app/backend/internal/repository"
)

type AwardsService interface {
	GetAwards(ctx context.Context) ([]model.Award, error)
	// SaveAwards replaces the award list; order follows list position.
	SaveAwards(ctx context.Context, awards []dto.AwardInput) (*reconcile.Result, error)
}

type awardsService struct {
	repo repository.AwardRepository
}

func NewAwardsService(repo repository.AwardRepository) AwardsService {
	return &awardsService{repo: repo}
}

func (s *awardsService) GetAwards(ctx context.Context) ([]model.Award, error) {
	return s.repo.List(ctx)
}

func (s *awardsService) SaveAwards(ctx context.Context, awards []dto.AwardInput) (*reconcile.Result, error) {
	desired := make([]awardItem, 0, len(awards))
	for i, in := range awards {
		desired = append(desired, awardItem{
			id: identity.Parse(in.ID),
			award: model.Award{
				Position:  strings.TrimSpace(in.Position),
				Prize:     strings.TrimSpace(in.Prize),
				Icon:      in.Icon,
				SortOrder: i + 1,
			},
		})
	}

	return reconcile.Sync(ctx, awardStore{repo: s.repo}, desired)
}

type awardItem struct {
	id    identity.RecordID
	award model.Award
}

func (it awardItem) RecordID() identity.RecordID { return it.id }

type awardStore struct {
	repo repository.AwardRepository
}

func (st awardStore) List(ctx context.Context) ([]awardItem, error) {
	awards, err := st.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]awardItem, 0, len(awards))
	for _, a := range awards {
		items = append(items, awardItem{id: identity.FromUUID(a.ID), award: a})
	}
	return items, nil
}

func (st awardStore) Upsert(ctx context.Context, it awardItem) error {
	award := it.award
	if it.id.IsCommitted() {
		award.ID = it.id.UUID()
		return st.repo.Update(ctx, &award)
	}
	return st.repo.Create(ctx, &award)
}

func (st awardStore) Delete(ctx context.Context, id uuid.UUID) error {
	return st.repo.Delete(ctx, id)
}
