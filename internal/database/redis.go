package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tinadigital/webquest/internal/config"
)

// Redis wraps the Redis client
type Redis struct {
	*redis.Client
}

// NewRedis creates a new Redis connection
func NewRedis(cfg config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Redis{Client: client}, nil
}

// NewRedisFromClient wraps an existing client
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{Client: client}
}

// HealthCheck verifies the Redis connection is healthy
func (r *Redis) HealthCheck(ctx context.Context) error {
	return r.Ping(ctx).Err()
}

// IncrWindow increments key and starts its expiry window on the first hit.
// It returns the new count and the time left in the window.
func (r *Redis) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}

	if count == 1 {
		if err := r.Client.Expire(ctx, key, window).Err(); err != nil {
			return count, 0, err
		}
	}

	ttl, err := r.Client.TTL(ctx, key).Result()
	if err != nil {
		return count, 0, err
	}
	if ttl < 0 {
		ttl = window
	}
	return count, ttl, nil
}
