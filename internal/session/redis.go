package session

import (
	"context"
	"time"

	"expense_splitter/internal/utils" // Redis JSON helpers

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisStore keeps session records in Redis so they survive process
// restarts and can be shared across instances.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps a connected Redis client as a session store
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func redisKey(id string) string {
	return "session:" + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	var s Session
	found, err := utils.GetJSON(ctx, r.rdb, redisKey(id), &s)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session, ttl time.Duration) error {
	return utils.SetJSON(ctx, r.rdb, redisKey(s.ID), s, ttl)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return utils.DeleteKey(ctx, r.rdb, redisKey(id))
}
