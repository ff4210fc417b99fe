package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
)

// RedisCache wraps a Redis client with a circuit breaker. While the breaker
// is open every Get reports a miss and every Set fails fast, which keeps a
// broken cache from slowing requests down: callers already treat both as a
// reason to go to the primary datastore.
type RedisCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[string]
	logger  *slog.Logger
}

func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	settings := gobreaker.Settings{
		Name:    "redis",
		Timeout: 30 * time.Second,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMiss)
		},
	}

	return &RedisCache{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
		logger:  logger,
	}
}

func (c *RedisCache) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.breaker.Execute(func() (string, error) {
		value, err := c.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return value, err
	})
	if err != nil && !errors.Is(err, ErrMiss) {
		c.logger.Error("cache get: " + err.Error())
	}

	return value, err
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	_, err := c.breaker.Execute(func() (string, error) {
		return "", c.client.Set(ctx, key, value, 0).Err()
	})
	if err != nil {
		c.logger.Error("cache set: " + err.Error())
	}

	return err
}
