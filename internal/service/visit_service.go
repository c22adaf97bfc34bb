package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/repository"
	"supercopa.app/backend/pkg/apperror"
)

const (
	visitSessionPrefix = "visit:session:"
	visitPendingKey    = "visit:pending"
	visitSessionTTL    = 12 * time.Hour
)

type VisitService interface {
	// RecordVisit counts a visit once per session id within the dedup
	// window. Returns true when the visit was new.
	RecordVisit(ctx context.Context, sessionID string) (bool, error)
	// TotalVisits is the durable count plus visits not yet flushed.
	TotalVisits(ctx context.Context) (int64, error)
	// Flush moves pending visits from redis into the durable config row.
	Flush(ctx context.Context) error
	// Run flushes on the given interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}

type visitService struct {
	rdb  *redis.Client
	repo repository.ConfigRepository
}

func NewVisitService(rdb *redis.Client, repo repository.ConfigRepository) VisitService {
	return &visitService{rdb: rdb, repo: repo}
}

func (s *visitService) RecordVisit(ctx context.Context, sessionID string) (bool, error) {
	if s.rdb == nil {
		return false, nil
	}

	fresh, err := s.rdb.SetNX(ctx, visitSessionPrefix+sessionID, 1, visitSessionTTL).Result()
	if err != nil {
		return false, fmt.Errorf("visits: dedup session: %w", err)
	}
	if !fresh {
		return false, nil
	}

	if err := s.rdb.Incr(ctx, visitPendingKey).Err(); err != nil {
		return false, fmt.Errorf("visits: count visit: %w", err)
	}
	return true, nil
}

func (s *visitService) TotalVisits(ctx context.Context) (int64, error) {
	total, err := s.durableCount(ctx)
	if err != nil {
		return 0, err
	}

	if s.rdb != nil {
		pending, err := s.rdb.Get(ctx, visitPendingKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("visits: read pending: %w", err)
		}
		total += pending
	}

	return total, nil
}

func (s *visitService) Flush(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	pending, err := s.rdb.GetDel(ctx, visitPendingKey).Int64()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("visits: drain pending: %w", err)
	}
	if pending == 0 {
		return nil
	}

	total, err := s.durableCount(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(total + pending)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, model.KeyVisitCount, string(payload)); err != nil {
		// Put the drained count back so it is not lost.
		if rerr := s.rdb.IncrBy(ctx, visitPendingKey, pending).Err(); rerr != nil {
			log.Printf("failed to restore %d pending visits: %v", pending, rerr)
		}
		return err
	}
	return nil
}

func (s *visitService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Flush(ctx); err != nil {
				log.Printf("failed to flush visit counter: %v", err)
			}
		}
	}
}

func (s *visitService) durableCount(ctx context.Context) (int64, error) {
	entry, err := s.repo.Get(ctx, model.KeyVisitCount)
	if errors.Is(err, apperror.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var count int64
	if err := json.Unmarshal([]byte(entry.Value), &count); err != nil {
		return 0, fmt.Errorf("visits: decode count: %w", err)
	}
	return count, nil
}
