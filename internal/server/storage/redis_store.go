// Package storage persists session snapshots in Redis, one record per
// authenticated user. The engine never sees this package; the server
// calls it at session boundaries only.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Reinaldo-Kn/pifatro/internal/apperrors"
	"github.com/Reinaldo-Kn/pifatro/internal/game/session"
)

const (
	stateKeyPrefix = "pife:state:"
)

// RedisStore stores snapshots in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store on an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveState persists the snapshot for a user, overwriting any previous
// save. SavedAt is stamped here.
func (rs *RedisStore) SaveState(ctx context.Context, userID string, snap session.Snapshot) error {
	snap.SavedAt = time.Now().UTC()

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	key := stateKeyPrefix + userID
	if err := rs.client.Set(ctx, key, data, 0).Err(); err != nil {
		return apperrors.ErrStoreFailed.Wrap(err)
	}
	return nil
}

// LoadState returns the latest snapshot for a user, or (nil, nil) when
// the user has never saved.
func (rs *RedisStore) LoadState(ctx context.Context, userID string) (*session.Snapshot, error) {
	key := stateKeyPrefix + userID
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.ErrStoreFailed.Wrap(err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, apperrors.ErrStoreFailed.Wrap(fmt.Errorf("unmarshal snapshot: %w", err))
	}
	return &snap, nil
}

// DeleteState removes a user's saved snapshot.
func (rs *RedisStore) DeleteState(ctx context.Context, userID string) error {
	key := stateKeyPrefix + userID
	return rs.client.Del(ctx, key).Err()
}
