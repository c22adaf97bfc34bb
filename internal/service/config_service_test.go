package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/model"
)

func scoringInput() dto.ScoringSystemInput {
	return dto.ScoringSystemInput{KillPoints: 2, PositionPoints: []int{15, 12, 10}}
}

type fakeConfigRepo struct {
	rows     map[string]string
	allCalls int
}

func (f *fakeConfigRepo) Get(ctx context.Context, key string) (*model.ConfigEntry, error) {
	panic("batch reads must go through All")
}

func (f *fakeConfigRepo) Set(ctx context.Context, key, value string) error {
	if f.rows == nil {
		f.rows = map[string]string{}
	}
	f.rows[key] = value
	return nil
}

func (f *fakeConfigRepo) All(ctx context.Context) ([]model.ConfigEntry, error) {
	f.allCalls++
	entries := make([]model.ConfigEntry, 0, len(f.rows))
	for key, value := range f.rows {
		entries = append(entries, model.ConfigEntry{Key: key, Value: value})
	}
	return entries, nil
}

func TestGetRankingConfigDefaults(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewConfigService(repo, nil, "")

	cfg, err := svc.GetRankingConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.DefaultRankingConfig(), cfg)
	assert.Equal(t, 1, repo.allCalls, "assembly must be a single batch read")
}

func TestGetRankingConfigFromStoredRows(t *testing.T) {
	repo := &fakeConfigRepo{rows: map[string]string{
		model.KeyRankingTitle: `"COPA DA COMUNIDADE"`,
		model.KeyShowTitle:    `false`,
		model.KeyBannerImage:  `"https://cdn.example/banner.webp"`,
	}}
	svc := NewConfigService(repo, nil, "")

	cfg, err := svc.GetRankingConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "COPA DA COMUNIDADE", cfg.Title)
	assert.False(t, cfg.ShowTitle)
	// Keys without rows keep their defaults.
	assert.Equal(t, model.DefaultRankingConfig().Subtitle, cfg.Subtitle)
	assert.True(t, cfg.ShowSubtitle)
	require.NotNil(t, cfg.BannerImage)
	assert.Equal(t, "https://cdn.example/banner.webp", *cfg.BannerImage)
}

func TestGetScoringSystemRoundTrip(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewConfigService(repo, nil, "")

	require.NoError(t, svc.UpdateScoringSystem(context.Background(), scoringInput()))

	sys, err := svc.GetScoringSystem(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sys.KillPoints)
	assert.Equal(t, []int{15, 12, 10}, sys.PositionPoints)
}
