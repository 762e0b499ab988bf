package catalog

import (
	"context"
	"fmt"
	"sync"

	"chefreel/models"
)

// Memory is a read-mostly store over a SeedData snapshot.
type Memory struct {
	mu       sync.RWMutex
	chefs    []models.Chef
	chefByID map[string]int
	videos   []models.VideoEntry
	bookings []models.BookingRecord
	users    map[string]models.User
}

func NewMemory(data SeedData) *Memory {
	m := &Memory{
		chefs:    append([]models.Chef(nil), data.Chefs...),
		chefByID: make(map[string]int, len(data.Chefs)),
		videos:   append([]models.VideoEntry(nil), data.Videos...),
		bookings: append([]models.BookingRecord(nil), data.Bookings...),
		users:    make(map[string]models.User, len(data.Users)),
	}
	for i, c := range m.chefs {
		m.chefByID[c.ID] = i
	}
	for _, u := range data.Users {
		m.users[u.ID] = u
	}
	return m
}

// Store exposes the memory store through every repository interface.
func (m *Memory) Store() Store {
	return Store{
		Chefs:    memoryChefs{m},
		Videos:   memoryVideos{m},
		Bookings: memoryBookings{m},
		Users:    memoryUsers{m},
	}
}

type memoryChefs struct{ m *Memory }

func (r memoryChefs) FindByID(_ context.Context, id string) (models.Chef, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	i, ok := r.m.chefByID[id]
	if !ok {
		return models.Chef{}, fmt.Errorf("chef %q: %w", id, ErrNotFound)
	}
	return r.m.chefs[i], nil
}

func (r memoryChefs) List(_ context.Context) ([]models.Chef, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return append([]models.Chef(nil), r.m.chefs...), nil
}

type memoryVideos struct{ m *Memory }

func (r memoryVideos) List(_ context.Context) ([]models.VideoEntry, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return append([]models.VideoEntry(nil), r.m.videos...), nil
}

type memoryBookings struct{ m *Memory }

func (r memoryBookings) ListByUser(_ context.Context, userID string) ([]models.BookingRecord, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := []models.BookingRecord{}
	for _, b := range r.m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type memoryUsers struct{ m *Memory }

func (r memoryUsers) FindByID(_ context.Context, id string) (models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	u, ok := r.m.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	return u, nil
}
