package refcode

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists referral codes in Redis. Codes never expire; the
// attribution must survive across visits.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{
		rdb: rdb,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCodeNotStored
		}
		return "", fmt.Errorf("s.rdb.Get -> %w", err)
	}

	return value, nil
}

func (s *RedisStore) SetIfAbsent(ctx context.Context, key, value string) error {
	if err := s.rdb.SetNX(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("s.rdb.SetNX -> %w", err)
	}

	return nil
}
