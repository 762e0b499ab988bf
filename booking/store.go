package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultSessionTTL = 30 * time.Minute

var ErrSessionNotFound = errors.New("booking: wizard session not found")

// Session is one in-progress wizard, owned by a user.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Wizard    *Wizard   `json:"wizard"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store keeps wizard sessions between requests. Every Save refreshes the
// session's expiry.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

func encodeSession(s Session) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("booking: encode session %s: %w", s.ID, err)
	}
	return b, nil
}

func decodeSession(id string, b []byte) (Session, error) {
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, fmt.Errorf("booking: decode session %s: %w", id, err)
	}
	if s.Wizard == nil {
		return Session{}, fmt.Errorf("booking: session %s has no wizard", id)
	}
	return s, nil
}

// ---------- Memory ----------

// MemoryStore keeps encoded sessions in process, so callers never share a
// Wizard value.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MemoryStore{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	b, err := encodeSession(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[s.ID] = memoryEntry{data: b, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.Lock()
	e, ok := m.entries[id]
	if ok && !m.now().Before(e.expires) {
		delete(m.entries, id)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return Session{}, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	return decodeSession(id, e.data)
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// ---------- Redis ----------

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string { return "wizard:" + id }

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	b, err := encodeSession(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("booking: save session %s: %w", s.ID, err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	b, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("booking: load session %s: %w", id, err)
	}
	return decodeSession(id, b)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("booking: delete session %s: %w", id, err)
	}
	return nil
}
