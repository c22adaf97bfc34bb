package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/identity"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/reconcile"
	"supercopa.app/backend/internal/repository"
)

type RankingService interface {
	GetRanking(ctx context.Context) ([]model.RankingEntry, error)
	// SaveRanking replaces the leaderboard with the given list. Positions
	// are recomputed from points before anything is written; the client's
	// position values are never trusted.
	SaveRanking(ctx context.Context, entries []dto.RankingEntryInput) (*reconcile.Result, error)
}

type rankingService struct {
	repo   repository.RankingRepository
	search SearchService
}

func NewRankingService(repo repository.RankingRepository, search SearchService) RankingService {
	return &rankingService{repo: repo, search: search}
}

func (s *rankingService) GetRanking(ctx context.Context) ([]model.RankingEntry, error) {
	return s.repo.List(ctx)
}

func (s *rankingService) SaveRanking(ctx context.Context, entries []dto.RankingEntryInput) (*reconcile.Result, error) {
	result, err := reconcile.Sync(ctx, rankingStore{repo: s.repo}, desiredRanking(entries))
	if err != nil {
		return result, err
	}

	s.reindexTeams(ctx)
	return result, nil
}

// desiredRanking sorts by points descending and renumbers positions as a
// dense 1..N sequence.
func desiredRanking(entries []dto.RankingEntryInput) []rankingItem {
	sorted := make([]dto.RankingEntryInput, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	items := make([]rankingItem, 0, len(sorted))
	for i, in := range sorted {
		items = append(items, rankingItem{
			id: identity.Parse(in.ID),
			entry: model.RankingEntry{
				Position: i + 1,
				Team:     strings.TrimSpace(in.Team),
				Points:   in.Points,
				Wins:     in.Wins,
				Kills:    in.Kills,
			},
		})
	}
	return items
}

// Search is best effort; a stale index never fails a save.
func (s *rankingService) reindexTeams(ctx context.Context) {
	if s.search == nil {
		return
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("failed to load ranking for reindex: %v", err)
		return
	}
	if err := s.search.ReindexTeams(ctx, entries); err != nil {
		log.Printf("failed to reindex teams: %v", err)
	}
}

// rankingItem adapts one leaderboard row to the reconciliation engine.
type rankingItem struct {
	id    identity.RecordID
	entry model.RankingEntry
}

func (it rankingItem) RecordID() identity.RecordID { return it.id }

type rankingStore struct {
	repo repository.RankingRepository
}

func (st rankingStore) List(ctx context.Context) ([]rankingItem, error) {
	entries, err := st.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]rankingItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, rankingItem{id: identity.FromUUID(e.ID), entry: e})
	}
	return items, nil
}

func (st rankingStore) Upsert(ctx context.Context, it rankingItem) error {
	entry := it.entry
	if it.id.IsCommitted() {
		entry.ID = it.id.UUID()
		return st.repo.Update(ctx, &entry)
	}
	return st.repo.Create(ctx, &entry)
}

func (st rankingStore) Delete(ctx context.Context, id uuid.UUID) error {
	return st.repo.Delete(ctx, id)
}
