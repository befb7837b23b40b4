package bindings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/randalmurphal/textparser/pkg/textparser"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKeyPrefix is used when RedisConfig.KeyPrefix is empty.
const DefaultRedisKeyPrefix = "textparser:bindings:"

// RedisConfig contains configuration options for RedisStore.
type RedisConfig struct {
	// Client is the Redis client instance. The store does not close it.
	Client *redis.Client

	// KeyPrefix is the prefix for all Redis keys.
	// Default: "textparser:bindings:"
	KeyPrefix string
}

// RedisStore keeps each binding set in a Redis hash keyed by prefix+set.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string

	mu     sync.RWMutex
	closed bool
}

// NewRedisStore creates a Redis-backed binding store.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{
		client:    cfg.Client,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

func (s *RedisStore) key(set string) string {
	return s.keyPrefix + set
}

func (s *RedisStore) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, set, name, value string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.client.HSet(ctx, s.key(set), name, value).Err(); err != nil {
		return fmt.Errorf("save binding: %w", err)
	}
	return nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, set, name string) (string, error) {
	if err := s.checkOpen(); err != nil {
		return "", err
	}
	v, err := s.client.HGet(ctx, s.key(set), name).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get binding: %w", err)
	}
	return v, nil
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, set string) (textparser.Bindings, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	m, err := s.client.HGetAll(ctx, s.key(set)).Result()
	if err != nil {
		return nil, fmt.Errorf("load bindings: %w", err)
	}
	return textparser.Bindings(m), nil
}

// Sets implements Store.
func (s *RedisStore) Sets(ctx context.Context) ([]string, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	sets := []string{}
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("list sets: %w", err)
		}
		for _, k := range keys {
			sets = append(sets, strings.TrimPrefix(k, s.keyPrefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	// SCAN may return a key more than once
	sort.Strings(sets)
	out := sets[:0]
	for i, set := range sets {
		if i == 0 || set != sets[i-1] {
			out = append(out, set)
		}
	}
	return out, nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, set, name string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.client.HDel(ctx, s.key(set), name).Err(); err != nil {
		return fmt.Errorf("delete binding: %w", err)
	}
	return nil
}

// DeleteSet implements Store.
func (s *RedisStore) DeleteSet(ctx context.Context, set string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key(set)).Err(); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	return nil
}

// Close implements Store. The underlying client stays open.
func (s *RedisStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Compile-time interface checks
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*RedisStore)(nil)
)
