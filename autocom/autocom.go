// Package autocom stores the suggestion pool behind search autocomplete.
// Terms keep their insertion order; Suggest returns case-insensitive
// substring matches in that order.
package autocom

import (
	"context"
	"strings"
	"sync"
)

type Index interface {
	// Replace swaps the whole pool for terms.
	Replace(ctx context.Context, terms []string) error
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}

// Memory is an in-process Index.
type Memory struct {
	mu    sync.RWMutex
	terms []string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Replace(_ context.Context, terms []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terms = append([]string(nil), terms...)
	return nil
}

func (m *Memory) Suggest(_ context.Context, query string, limit int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return match(m.terms, query, limit), nil
}

func match(terms []string, query string, limit int) []string {
	q := strings.ToLower(query)
	out := []string{}
	if q == "" || limit <= 0 {
		return out
	}
	for _, t := range terms {
		if strings.Contains(strings.ToLower(t), q) {
			out = append(out, t)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
