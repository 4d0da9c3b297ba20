package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis at addr and pings it. The client is closed
// again if the ping fails.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	slog.Info("Successfully connected to Redis.", slog.String("addr", addr))
	return client, nil
}

// CloseRedisClient closes the Redis client.
func CloseRedisClient(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		slog.Error("Error closing Redis client", slog.String("error", err.Error()))
		return
	}
	slog.Info("Redis client closed.")
}
