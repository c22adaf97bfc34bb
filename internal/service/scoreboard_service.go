package service

import (
	"context"
	"fmt"
	"strings"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/identity"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/vision"
	"supercopa.app/backend/pkg/apperror"
)

type ScoreboardService interface {
	// ImportScoreboards runs the uploaded screenshots through the vision
	// adapter one at a time, merges the extracted rows into the current
	// ranking and saves the result. A failed image is reported in the
	// per-file results without aborting the batch.
	ImportScoreboards(ctx context.Context, images []dto.ScoreboardImage) (*dto.ImportReport, error)
}

type scoreboardService struct {
	analyzer vision.Analyzer
	ranking  RankingService
	config   ConfigService
}

func NewScoreboardService(analyzer vision.Analyzer, ranking RankingService, config ConfigService) ScoreboardService {
	return &scoreboardService{analyzer: analyzer, ranking: ranking, config: config}
}

func (s *scoreboardService) ImportScoreboards(ctx context.Context, images []dto.ScoreboardImage) (*dto.ImportReport, error) {
	if s.analyzer == nil {
		return nil, fmt.Errorf("%w: image analysis is not configured", apperror.ErrUpstream)
	}

	scoring, err := s.config.GetScoringSystem(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.ranking.GetRanking(ctx)
	if err != nil {
		return nil, err
	}
	working := rankingInputs(current)

	report := &dto.ImportReport{}

	// Sequential on purpose: one round trip to the vision API finishes
	// before the next starts.
	for _, img := range images {
		rows, err := s.analyzer.AnalyzeScoreboard(ctx, img.Data, img.MimeType)
		if err != nil {
			report.Files = append(report.Files, dto.FileResult{Name: img.Name, Error: err.Error()})
			continue
		}

		working = applyScoreboardRows(working, rows, scoring)
		report.Files = append(report.Files, dto.FileResult{Name: img.Name, Rows: len(rows)})
		report.Applied += len(rows)
	}

	if report.Applied == 0 {
		return report, nil
	}

	result, err := s.ranking.SaveRanking(ctx, working)
	if result != nil {
		report.Result = result
		report.Created = result.Created
		report.Updated = result.Updated
		report.Deleted = result.Deleted
	}
	if err != nil {
		return report, err
	}

	return report, nil
}

func rankingInputs(entries []model.RankingEntry) []dto.RankingEntryInput {
	inputs := make([]dto.RankingEntryInput, 0, len(entries))
	for _, e := range entries {
		inputs = append(inputs, dto.RankingEntryInput{
			ID:     e.ID.String(),
			Team:   e.Team,
			Points: e.Points,
			Wins:   e.Wins,
			Kills:  e.Kills,
		})
	}
	return inputs
}

// applyScoreboardRows merges extracted rows into the working list. Teams
// match case-insensitively after trimming; unknown teams become new
// entries with a pending id. A first-place row counts one win.
func applyScoreboardRows(entries []dto.RankingEntryInput, rows []vision.ExtractedRow, scoring model.ScoringSystem) []dto.RankingEntryInput {
	for _, row := range rows {
		points := row.Kills * scoring.KillPoints
		if row.Position >= 1 && row.Position <= len(scoring.PositionPoints) {
			points += scoring.PositionPoints[row.Position-1]
		}

		idx := findTeam(entries, row.Team)
		if idx >= 0 {
			entries[idx].Points += points
			entries[idx].Kills += row.Kills
			if row.Position == 1 {
				entries[idx].Wins++
			}
			continue
		}

		wins := 0
		if row.Position == 1 {
			wins = 1
		}
		entries = append(entries, dto.RankingEntryInput{
			ID:     identity.NewPending().String(),
			Team:   strings.TrimSpace(row.Team),
			Points: points,
			Wins:   wins,
			Kills:  row.Kills,
		})
	}
	return entries
}

func findTeam(entries []dto.RankingEntryInput, team string) int {
	needle := normalizeTeam(team)
	for i, e := range entries {
		if normalizeTeam(e.Team) == needle {
			return i
		}
	}
	return -1
}

func normalizeTeam(team string) string {
	return strings.ToLower(strings.TrimSpace(team))
}
