package autocom

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "autocomplete:chefs"

// Redis keeps the pool in a sorted set scored by insertion position.
// ZRANGEBYLEX only serves prefixes, so substring matching happens client side.
type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, key string) *Redis {
	if key == "" {
		key = DefaultKey
	}
	return &Redis{client: client, key: key}
}

func (r *Redis) Replace(ctx context.Context, terms []string) error {
	members := make([]redis.Z, len(terms))
	for i, t := range terms {
		members[i] = redis.Z{Score: float64(i), Member: t}
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		if len(members) > 0 {
			pipe.ZAdd(ctx, r.key, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("autocom: replace %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	terms, err := r.client.ZRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("autocom: read %s: %w", r.key, err)
	}
	return match(terms, query, limit), nil
}
