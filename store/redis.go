package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"conquest/game"
)

// RedisStore keeps one serialized snapshot per game ID.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func snapshotKey(gameID string) string { return "game:" + gameID + ":snapshot" }

// NewRedisStore connects to the Redis instance at url (redis:// form) and
// scopes the store to one game ID.
func NewRedisStore(url, gameID string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisStore{rdb: redis.NewClient(opts), key: snapshotKey(gameID)}, nil
}

func (s *RedisStore) Save(ctx context.Context, snap game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (game.Snapshot, bool, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return game.Snapshot{}, false, nil
	}
	if err != nil {
		return game.Snapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return game.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error { return s.rdb.Close() }
