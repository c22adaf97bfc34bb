package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercopa.app/backend/internal/dto"
)

func TestDesiredRankingSortsAndRenumbers(t *testing.T) {
	id := uuid.New().String()
	entries := []dto.RankingEntryInput{
		{ID: "tmp-1-0001", Team: "Fluxo", Points: 30},
		{ID: id, Team: "LOUD", Points: 80},
		{ID: "tmp-1-0002", Team: "paiN", Points: 55},
	}

	items := desiredRanking(entries)
	require.Len(t, items, 3)

	assert.Equal(t, "LOUD", items[0].entry.Team)
	assert.Equal(t, "paiN", items[1].entry.Team)
	assert.Equal(t, "Fluxo", items[2].entry.Team)

	for i, item := range items {
		assert.Equal(t, i+1, item.entry.Position)
	}

	assert.True(t, items[0].id.IsCommitted())
	assert.False(t, items[1].id.IsCommitted())
}

func TestDesiredRankingTrimsTeamNames(t *testing.T) {
	items := desiredRanking([]dto.RankingEntryInput{
		{ID: "tmp-1-0001", Team: "  LOUD  ", Points: 10},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "LOUD", items[0].entry.Team)
}

func TestDesiredRankingStableForTies(t *testing.T) {
	items := desiredRanking([]dto.RankingEntryInput{
		{ID: "tmp-1-0001", Team: "A", Points: 50},
		{ID: "tmp-1-0002", Team: "B", Points: 50},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].entry.Team)
	assert.Equal(t, "B", items[1].entry.Team)
}
