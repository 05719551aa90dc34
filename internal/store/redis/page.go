package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zeframlou/bunni-docs/internal/domain"
)

// Store handles Redis operations for rendered pages
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SavePage stores a rendered page under its fingerprint
func (s *Store) SavePage(ctx context.Context, fingerprint string, page *domain.RenderedPage, ttl time.Duration) error {
	data, err := msgpack.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}

	if err := s.client.Set(ctx, PageKey(fingerprint), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save page: %w", err)
	}

	return nil
}

// GetPage retrieves a rendered page. A miss returns (nil, nil).
func (s *Store) GetPage(ctx context.Context, fingerprint string) (*domain.RenderedPage, error) {
	data, err := s.client.Get(ctx, PageKey(fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	var page domain.RenderedPage
	if err := msgpack.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page: %w", err)
	}

	return &page, nil
}

// FlushPages removes all rendered pages
func (s *Store) FlushPages(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixPage+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete page key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush pages: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Fingerprints lists the fingerprints of all cached pages
func (s *Store) Fingerprints(ctx context.Context) ([]string, error) {
	var out []string
	iter := s.client.Scan(ctx, 0, KeyPrefixPage+"*", 0).Iterator()
	for iter.Next(ctx) {
		fp, err := ExtractFingerprint(iter.Val())
		if err != nil {
			continue
		}
		out = append(out, fp)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return out, nil
}
