package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

var ErrCacheUnavailable = errors.New("cache client is not configured")

const scanBatchSize = 200

// CacheBuilder assembles a single keyed cache operation.
//
//	NewCacheBuilder(client, key).WithPrefix("limiter").WithBytes(v).WithTTL(time.Minute).WithContext(ctx).Set()
type CacheBuilder struct {
	client CacheClient
	key    string
	prefix string
	value  []byte
	ttl    time.Duration
	ctx    context.Context
}

func NewCacheBuilder(client CacheClient, key any) *CacheBuilder {
	return &CacheBuilder{
		client: client,
		key:    fmt.Sprint(key),
		ctx:    context.Background(),
	}
}

func (b *CacheBuilder) WithPrefix(prefix string) *CacheBuilder {
	b.prefix = prefix
	return b
}

func (b *CacheBuilder) WithBytes(value []byte) *CacheBuilder {
	b.value = value
	return b
}

func (b *CacheBuilder) WithTTL(ttl time.Duration) *CacheBuilder {
	b.ttl = ttl
	return b
}

func (b *CacheBuilder) WithContext(ctx context.Context) *CacheBuilder {
	if ctx != nil {
		b.ctx = ctx
	}
	return b
}

func (b *CacheBuilder) Key() string {
	if b.prefix == "" {
		return b.key
	}
	return b.prefix + ":" + b.key
}

func (b *CacheBuilder) Set() error {
	if b.client == nil {
		return ErrCacheUnavailable
	}

	set := b.client.B().Set().Key(b.Key()).Value(valkey.BinaryString(b.value))
	if b.ttl > 0 {
		return b.client.Do(b.ctx, set.PxMilliseconds(b.ttl.Milliseconds()).Build()).Error()
	}
	return b.client.Do(b.ctx, set.Build()).Error()
}

func (b *CacheBuilder) GetBytes() ([]byte, bool, error) {
	if b.client == nil {
		return nil, false, ErrCacheUnavailable
	}

	raw, err := b.client.Do(b.ctx, b.client.B().Get().Key(b.Key()).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (b *CacheBuilder) Delete() error {
	if b.client == nil {
		return ErrCacheUnavailable
	}
	return b.client.Do(b.ctx, b.client.B().Del().Key(b.Key()).Build()).Error()
}

// DeleteMatching removes every key matching Key() used as a glob pattern,
// walking the keyspace with SCAN. It returns how many keys were deleted.
func (b *CacheBuilder) DeleteMatching() (int, error) {
	if b.client == nil {
		return 0, ErrCacheUnavailable
	}

	pattern := b.Key()
	deleted := 0
	var cursor uint64
	for {
		entry, err := b.client.Do(b.ctx, b.client.B().Scan().Cursor(cursor).Match(pattern).Count(scanBatchSize).Build()).AsScanEntry()
		if err != nil {
			return deleted, fmt.Errorf("scan %q: %w", pattern, err)
		}

		if len(entry.Elements) > 0 {
			removed, err := b.client.Do(b.ctx, b.client.B().Del().Key(entry.Elements...).Build()).AsInt64()
			if err != nil {
				return deleted, fmt.Errorf("delete %q: %w", pattern, err)
			}
			deleted += int(removed)
		}

		cursor = entry.Cursor
		if cursor == 0 {
			return deleted, nil
		}
	}
}
