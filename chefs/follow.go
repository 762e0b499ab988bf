package chefs

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// FollowStore records which chefs a user follows.
type FollowStore interface {
	// Toggle flips the follow state and returns the new one.
	Toggle(ctx context.Context, userID, chefID string) (bool, error)
	IsFollowing(ctx context.Context, userID, chefID string) (bool, error)
}

type MemoryFollows struct {
	mu      sync.Mutex
	follows map[string]map[string]struct{}
}

func NewMemoryFollows() *MemoryFollows {
	return &MemoryFollows{follows: make(map[string]map[string]struct{})}
}

func (m *MemoryFollows) Toggle(_ context.Context, userID, chefID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.follows[userID]
	if !ok {
		set = make(map[string]struct{})
		m.follows[userID] = set
	}
	if _, ok := set[chefID]; ok {
		delete(set, chefID)
		return false, nil
	}
	set[chefID] = struct{}{}
	return true, nil
}

func (m *MemoryFollows) IsFollowing(_ context.Context, userID, chefID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.follows[userID][chefID]
	return ok, nil
}

// RedisFollows keeps one set per user under following:<userID>.
type RedisFollows struct {
	client *redis.Client
}

func NewRedisFollows(client *redis.Client) *RedisFollows {
	return &RedisFollows{client: client}
}

func followKey(userID string) string { return "following:" + userID }

// toggleScript makes the check-and-flip atomic.
var toggleScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	redis.call("SREM", KEYS[1], ARGV[1])
	return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
return 1
`)

func (r *RedisFollows) Toggle(ctx context.Context, userID, chefID string) (bool, error) {
	n, err := toggleScript.Run(ctx, r.client, []string{followKey(userID)}, chefID).Int()
	if err != nil {
		return false, fmt.Errorf("chefs: toggle follow %s/%s: %w", userID, chefID, err)
	}
	return n == 1, nil
}

func (r *RedisFollows) IsFollowing(ctx context.Context, userID, chefID string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, followKey(userID), chefID).Result()
	if err != nil {
		return false, fmt.Errorf("chefs: read follow %s/%s: %w", userID, chefID, err)
	}
	return ok, nil
}
