package database

import (
	"context"
	"time"
)

const limiterKeyPrefix = "limiter"

// LimiterStorage backs fiber's limiter middleware with valkey so every API
// instance shares the same request counters.
type LimiterStorage struct {
	client  CacheClient
	timeout time.Duration
}

func NewLimiterStorage(client CacheClient) *LimiterStorage {
	return &LimiterStorage{client: client, timeout: 2 * time.Second}
}

func (s *LimiterStorage) Get(key string) ([]byte, error) {
	if len(key) == 0 {
		return nil, nil
	}

	ctx, cancel := s.context()
	defer cancel()

	raw, found, err := s.builder(key).WithContext(ctx).GetBytes()
	if err != nil || !found {
		return nil, err
	}
	return raw, nil
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}

	ctx, cancel := s.context()
	defer cancel()

	return s.builder(key).WithBytes(val).WithTTL(exp).WithContext(ctx).Set()
}

func (s *LimiterStorage) Delete(key string) error {
	if len(key) == 0 {
		return nil
	}

	ctx, cancel := s.context()
	defer cancel()

	return s.builder(key).WithContext(ctx).Delete()
}

// Reset drops every limiter counter. Other keys in the database are left
// alone.
func (s *LimiterStorage) Reset() error {
	_, err := s.reset()
	return err
}

func (s *LimiterStorage) reset() (int, error) {
	ctx, cancel := s.context()
	defer cancel()

	return s.builder("*").WithContext(ctx).DeleteMatching()
}

// Close is a no-op; the client is owned and closed by DB.
func (s *LimiterStorage) Close() error {
	return nil
}

func (s *LimiterStorage) builder(key string) *CacheBuilder {
	return NewCacheBuilder(s.client, key).WithPrefix(limiterKeyPrefix)
}

func (s *LimiterStorage) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}
