// internal/session/redis.go
package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-client/internal/config"
)

// RedisStorage persists session keys in Redis under a single namespace.
// It is the storage of choice when several tools share one session.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage connects to Redis and verifies the connection
func NewRedisStorage(cfg *config.Config) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{client: client, prefix: "storefront:session:"}, nil
}

// Get retrieves a value by key
func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session key: %w", err)
	}
	return value, nil
}

// Set stores a value under key
func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session key: %w", err)
	}
	return nil
}

// Delete removes keys from storage
func (s *RedisStorage) Delete(ctx context.Context, keys ...string) error {
	namespaced := make([]string, len(keys))
	for i, key := range keys {
		namespaced[i] = s.prefix + key
	}
	if err := s.client.Del(ctx, namespaced...).Err(); err != nil {
		return fmt.Errorf("failed to delete session keys: %w", err)
	}
	return nil
}

// Close releases the Redis connection
func (s *RedisStorage) Close() error {
	return s.client.Close()
}
