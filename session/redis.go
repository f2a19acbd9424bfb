package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"cleanbook/config"
)

const sessionPrefix = "cleanbookSession:"

// Sessions on shared terminals go stale after a day of inactivity.
const sessionTTL = 24 * time.Hour

// RedisStore backs the session with redis, for kiosk deployments where the
// process restarts must not log the terminal out.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore() *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisSessionDB,
		}),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, sessionPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, sessionPrefix+key, value, sessionTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, sessionPrefix+key).Err()
}
