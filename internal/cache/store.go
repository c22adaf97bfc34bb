package cache

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the namespace has no entry for the path.
var ErrMiss = errors.New("cache: miss")

// ErrUnavailable is returned by PutAll when no redis backend is configured.
var ErrUnavailable = errors.New("cache: redis is not configured")

// Store is the namespaced shell-asset cache. One namespace corresponds to
// one shell version; the browser-cache analog of a named cache.
type Store interface {
	Get(ctx context.Context, namespace, path string) ([]byte, error)
	// PutAll writes a full namespace in one shot. The shell manifest is
	// all-or-nothing; partial population is not acceptable.
	PutAll(ctx context.Context, namespace string, entries map[string][]byte) error
	Namespaces(ctx context.Context) ([]string, error)
	Drop(ctx context.Context, namespace string) error
}

const keyPrefix = "shell:"

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore backs the shell cache with one redis hash per namespace.
// A nil client degrades to a permanent miss, so lookups fall through to the
// origin and installs fail cleanly instead of panicking.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Get(ctx context.Context, namespace, path string) ([]byte, error) {
	if s.rdb == nil {
		return nil, ErrMiss
	}

	val, err := s.rdb.HGet(ctx, keyPrefix+namespace, path).Result()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return []byte(val), nil
}

func (s *redisStore) PutAll(ctx context.Context, namespace string, entries map[string][]byte) error {
	if s.rdb == nil {
		return ErrUnavailable
	}

	pipe := s.rdb.TxPipeline()
	for path, body := range entries {
		pipe.HSet(ctx, keyPrefix+namespace, path, body)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisStore) Namespaces(ctx context.Context) ([]string, error) {
	if s.rdb == nil {
		return nil, nil
	}

	keys, err := s.rdb.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	namespaces := make([]string, 0, len(keys))
	for _, key := range keys {
		namespaces = append(namespaces, strings.TrimPrefix(key, keyPrefix))
	}
	return namespaces, nil
}

func (s *redisStore) Drop(ctx context.Context, namespace string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, keyPrefix+namespace).Err()
}
