package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/vision"
)

func testScoring() model.ScoringSystem {
	return model.ScoringSystem{
		KillPoints:     1,
		PositionPoints: []int{12, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0},
	}
}

func TestApplyScoreboardRowsUpdatesExistingTeam(t *testing.T) {
	entries := []dto.RankingEntryInput{
		{ID: "a", Team: "LOUD", Points: 20, Wins: 1, Kills: 15},
	}
	rows := []vision.ExtractedRow{
		{Position: 1, Team: "loud ", Kills: 8},
	}

	out := applyScoreboardRows(entries, rows, testScoring())
	require.Len(t, out, 1)

	// 12 position points + 8 kills.
	assert.Equal(t, 40, out[0].Points)
	assert.Equal(t, 23, out[0].Kills)
	assert.Equal(t, 2, out[0].Wins)
}

func TestApplyScoreboardRowsCreatesUnknownTeam(t *testing.T) {
	rows := []vision.ExtractedRow{
		{Position: 3, Team: "  Fluxo ", Kills: 5},
	}

	out := applyScoreboardRows(nil, rows, testScoring())
	require.Len(t, out, 1)

	assert.Equal(t, "Fluxo", out[0].Team)
	assert.Equal(t, 13, out[0].Points)
	assert.Equal(t, 5, out[0].Kills)
	assert.Equal(t, 0, out[0].Wins)
	assert.True(t, strings.HasPrefix(out[0].ID, "tmp-"))
}

func TestApplyScoreboardRowsFirstPlaceCountsWin(t *testing.T) {
	rows := []vision.ExtractedRow{
		{Position: 1, Team: "paiN", Kills: 0},
		{Position: 2, Team: "Corinthians", Kills: 0},
	}

	out := applyScoreboardRows(nil, rows, testScoring())
	require.Len(t, out, 2)

	assert.Equal(t, 1, out[0].Wins)
	assert.Equal(t, 0, out[1].Wins)
}

func TestApplyScoreboardRowsPositionOutOfTable(t *testing.T) {
	rows := []vision.ExtractedRow{
		{Position: 13, Team: "Azarões", Kills: 4},
		{Position: 0, Team: "Fantasmas", Kills: 2},
	}

	out := applyScoreboardRows(nil, rows, testScoring())
	require.Len(t, out, 2)

	// Only kill points when the position has no table entry.
	assert.Equal(t, 4, out[0].Points)
	assert.Equal(t, 2, out[1].Points)
}

func TestApplyScoreboardRowsAccumulatesAcrossMatches(t *testing.T) {
	scoring := testScoring()

	out := applyScoreboardRows(nil, []vision.ExtractedRow{
		{Position: 1, Team: "LOUD", Kills: 10},
	}, scoring)
	out = applyScoreboardRows(out, []vision.ExtractedRow{
		{Position: 2, Team: "LOUD", Kills: 6},
	}, scoring)

	require.Len(t, out, 1)
	assert.Equal(t, 22+15, out[0].Points)
	assert.Equal(t, 16, out[0].Kills)
	assert.Equal(t, 1, out[0].Wins)
}
