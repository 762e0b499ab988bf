// Package rdx builds the Redis client shared by the session, suggestion,
// follow and notification stores.
package rdx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect returns a client after a successful PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return conn, nil
}
