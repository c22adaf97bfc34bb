package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meilisearch/meilisearch-go"

	"supercopa.app/backend/internal/model"
)

const teamsIndexUID = "teams"

// TeamDocument is the search projection of one leaderboard row.
type TeamDocument struct {
	ID       string `json:"id"`
	Team     string `json:"team"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
	Wins     int    `json:"wins"`
	Kills    int    `json:"kills"`
}

type SearchService interface {
	// ReindexTeams rebuilds the teams index from the full leaderboard.
	ReindexTeams(ctx context.Context, entries []model.RankingEntry) error
	SearchTeams(ctx context.Context, query string, limit int) ([]TeamDocument, error)
}

type searchService struct {
	client meilisearch.ServiceManager
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	return &searchService{client: client}
}

func (s *searchService) index() meilisearch.IndexManager {
	return s.client.Index(teamsIndexUID)
}

func (s *searchService) ReindexTeams(ctx context.Context, entries []model.RankingEntry) error {
	docs := make([]TeamDocument, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, TeamDocument{
			ID:       e.ID.String(),
			Team:     e.Team,
			Position: e.Position,
			Points:   e.Points,
			Wins:     e.Wins,
			Kills:    e.Kills,
		})
	}

	idx := s.index()
	if _, err := idx.DeleteAllDocumentsWithContext(ctx); err != nil {
		return fmt.Errorf("search: clear teams index: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}

	primaryKey := "id"
	if _, err := idx.AddDocumentsWithContext(ctx, docs, &primaryKey); err != nil {
		return fmt.Errorf("search: index teams: %w", err)
	}
	return nil
}

func (s *searchService) SearchTeams(ctx context.Context, query string, limit int) ([]TeamDocument, error) {
	if limit <= 0 {
		limit = 20
	}

	res, err := s.index().SearchWithContext(ctx, query, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("search: query teams: %w", err)
	}

	docs := make([]TeamDocument, 0, len(res.Hits))
	for _, hit := range res.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc TeamDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
