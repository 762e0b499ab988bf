package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"chefreel/models"
)

var ErrUnknownSetting = errors.New("profile: unknown notification setting")

type Setting struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

var settingInfo = []Setting{
	{Key: "bookingUpdates", Label: "Booking Updates", Description: "Get notified about booking confirmations and updates"},
	{Key: "newChefs", Label: "New Chefs", Description: "Discover new chefs in your area"},
	{Key: "promotions", Label: "Promotions", Description: "Receive special offers and discounts"},
	{Key: "reminders", Label: "Reminders", Description: "Booking reminders and follow-ups"},
}

func field(ns *models.NotificationSettings, key string) (*bool, error) {
	switch key {
	case "bookingUpdates":
		return &ns.BookingUpdates, nil
	case "newChefs":
		return &ns.NewChefs, nil
	case "promotions":
		return &ns.Promotions, nil
	case "reminders":
		return &ns.Reminders, nil
	}
	return nil, fmt.Errorf("%q: %w", key, ErrUnknownSetting)
}

// Merge applies stored overrides on top of the user's record.
func Merge(base models.NotificationSettings, overrides map[string]bool) models.NotificationSettings {
	for k, v := range overrides {
		if p, err := field(&base, k); err == nil {
			*p = v
		}
	}
	return base
}

// Settings lists every toggle in display order.
func Settings(ns models.NotificationSettings) []Setting {
	out := make([]Setting, len(settingInfo))
	for i, s := range settingInfo {
		p, _ := field(&ns, s.Key)
		s.Enabled = *p
		out[i] = s
	}
	return out
}

// NotificationStore holds per-user toggles that differ from the user record.
type NotificationStore interface {
	Overrides(ctx context.Context, userID string) (map[string]bool, error)
	Set(ctx context.Context, userID, key string, enabled bool) error
}

type MemoryNotifications struct {
	mu   sync.Mutex
	data map[string]map[string]bool
}

func NewMemoryNotifications() *MemoryNotifications {
	return &MemoryNotifications{data: make(map[string]map[string]bool)}
}

func (m *MemoryNotifications) Overrides(_ context.Context, userID string) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]bool, len(m.data[userID]))
	for k, v := range m.data[userID] {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryNotifications) Set(_ context.Context, userID, key string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[userID] == nil {
		m.data[userID] = make(map[string]bool)
	}
	m.data[userID][key] = enabled
	return nil
}

// RedisNotifications stores overrides in the hash notifications:<userID>.
type RedisNotifications struct {
	client *redis.Client
}

func NewRedisNotifications(client *redis.Client) *RedisNotifications {
	return &RedisNotifications{client: client}
}

func notificationsKey(userID string) string { return "notifications:" + userID }

func (r *RedisNotifications) Overrides(ctx context.Context, userID string) (map[string]bool, error) {
	raw, err := r.client.HGetAll(ctx, notificationsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("profile: read notifications %s: %w", userID, err)
	}
	out := make(map[string]bool, len(raw))
	for k, v := range raw {
		b, err := strconv.ParseBool(v)
		if err != nil {
			continue
		}
		out[k] = b
	}
	return out, nil
}

func (r *RedisNotifications) Set(ctx context.Context, userID, key string, enabled bool) error {
	if err := r.client.HSet(ctx, notificationsKey(userID), key, strconv.FormatBool(enabled)).Err(); err != nil {
		return fmt.Errorf("profile: write notifications %s: %w", userID, err)
	}
	return nil
}
