package sched

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock that only moves when Advance is called. Due tasks run
// synchronously on the caller's goroutine, in deadline order.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m   *Manual
	at  time.Time
	seq int
	f   func()
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{m: m, at: m.now.Add(d), seq: m.seq, f: f}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every task that falls due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	for {
		next := m.popDue(target)
		if next == nil {
			break
		}
		m.now = next.at
		m.mu.Unlock()
		next.f()
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
}

// Pending reports how many tasks are still scheduled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *Manual) popDue(target time.Time) *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].at.Equal(m.tasks[j].at) {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].at.Before(m.tasks[j].at)
	})
	first := m.tasks[0]
	if first.at.After(target) {
		return nil
	}
	m.tasks = m.tasks[1:]
	return first
}

func (t *manualTask) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for i, other := range t.m.tasks {
		if other == t {
			t.m.tasks = append(t.m.tasks[:i], t.m.tasks[i+1:]...)
			return true
		}
	}
	return false
}
