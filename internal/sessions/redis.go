package sessions

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session bindings in Redis with a per-key TTL, so expiry
// needs no sweeping of our own.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	err := s.rdb.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(userID), 10), ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (uint, error) {
	val, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(id), nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}
