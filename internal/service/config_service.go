package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/repository"
	"supercopa.app/backend/pkg/apperror"
	"supercopa.app/backend/pkg/storage"
)

type ConfigService interface {
	// GetRankingConfig assembles the display config from individual config
	// rows; missing keys fall back to the defaults.
	GetRankingConfig(ctx context.Context) (model.RankingConfig, error)
	UpdateRankingConfig(ctx context.Context, in dto.RankingConfigInput) error
	GetScoringSystem(ctx context.Context) (model.ScoringSystem, error)
	UpdateScoringSystem(ctx context.Context, in dto.ScoringSystemInput) error
	// UploadBanner stores the banner image and records its URL.
	UploadBanner(ctx context.Context, r io.Reader, fileName string) (string, error)
}

type configService struct {
	repo    repository.ConfigRepository
	storage storage.ImageStorage
	folder  string
}

func NewConfigService(repo repository.ConfigRepository, imageStorage storage.ImageStorage, folder string) ConfigService {
	return &configService{repo: repo, storage: imageStorage, folder: folder}
}

func (s *configService) GetRankingConfig(ctx context.Context) (model.RankingConfig, error) {
	cfg := model.DefaultRankingConfig()

	values, err := s.values(ctx)
	if err != nil {
		return cfg, err
	}

	if _, err := decodeValue(values, model.KeyRankingTitle, &cfg.Title); err != nil {
		return cfg, err
	}
	if _, err := decodeValue(values, model.KeyRankingSubtitle, &cfg.Subtitle); err != nil {
		return cfg, err
	}
	if _, err := decodeValue(values, model.KeyShowTitle, &cfg.ShowTitle); err != nil {
		return cfg, err
	}
	if _, err := decodeValue(values, model.KeyShowSubtitle, &cfg.ShowSubtitle); err != nil {
		return cfg, err
	}

	var banner string
	ok, err := decodeValue(values, model.KeyBannerImage, &banner)
	if err != nil {
		return cfg, err
	}
	if ok && banner != "" {
		cfg.BannerImage = &banner
	}

	return cfg, nil
}

func (s *configService) UpdateRankingConfig(ctx context.Context, in dto.RankingConfigInput) error {
	if err := s.set(ctx, model.KeyRankingTitle, in.Title); err != nil {
		return err
	}
	if err := s.set(ctx, model.KeyRankingSubtitle, in.Subtitle); err != nil {
		return err
	}
	if err := s.set(ctx, model.KeyShowTitle, in.ShowTitle); err != nil {
		return err
	}
	if err := s.set(ctx, model.KeyShowSubtitle, in.ShowSubtitle); err != nil {
		return err
	}
	return s.set(ctx, model.KeyBannerImage, in.BannerImage)
}

func (s *configService) GetScoringSystem(ctx context.Context) (model.ScoringSystem, error) {
	sys := model.DefaultScoringSystem()

	values, err := s.values(ctx)
	if err != nil {
		return sys, err
	}

	if _, err := decodeValue(values, model.KeyKillPoints, &sys.KillPoints); err != nil {
		return sys, err
	}
	if _, err := decodeValue(values, model.KeyPositionPoints, &sys.PositionPoints); err != nil {
		return sys, err
	}

	return sys, nil
}

func (s *configService) UpdateScoringSystem(ctx context.Context, in dto.ScoringSystemInput) error {
	if err := s.set(ctx, model.KeyKillPoints, in.KillPoints); err != nil {
		return err
	}
	return s.set(ctx, model.KeyPositionPoints, in.PositionPoints)
}

func (s *configService) UploadBanner(ctx context.Context, r io.Reader, fileName string) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("banner storage is not configured")
	}

	url, err := s.storage.UploadImage(ctx, r, s.folder, fileName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrUpstream, err)
	}

	if err := s.set(ctx, model.KeyBannerImage, url); err != nil {
		return "", err
	}
	return url, nil
}

// values loads every config row in one query, keyed for assembly.
func (s *configService) values(ctx context.Context) (map[string]string, error) {
	entries, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		values[entry.Key] = entry.Value
	}
	return values, nil
}

// decodeValue decodes one config value into out. A missing key is an
// expected outcome and reports ok=false without an error.
func decodeValue(values map[string]string, key string, out any) (bool, error) {
	raw, ok := values[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("config: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *configService) set(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("config: encode %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, string(payload))
}
