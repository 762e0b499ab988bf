// Package sched provides cancellable one-shot timers behind a Clock so that
// screen state machines can be driven by a manual clock in tests.
package sched

import (
	"sync"
	"time"
)

// Handle cancels a scheduled task. Cancel reports whether the task was
// still pending.
type Handle interface {
	Cancel() bool
}

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Handle
}

// Real returns the wall clock.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Handle {
	return timerHandle{t: time.AfterFunc(d, f)}
}

type timerHandle struct{ t *time.Timer }

func (h timerHandle) Cancel() bool { return h.t.Stop() }

// Slot holds at most one pending task. Scheduling into a busy slot cancels
// the previous task first.
type Slot struct {
	mu    sync.Mutex
	clock Clock
	h     Handle
}

func NewSlot(clock Clock) *Slot {
	return &Slot{clock: clock}
}

func (s *Slot) Schedule(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.h != nil {
		s.h.Cancel()
	}
	s.h = s.clock.AfterFunc(d, f)
}

// Stop cancels the pending task, if any.
func (s *Slot) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.h == nil {
		return false
	}
	ok := s.h.Cancel()
	s.h = nil
	return ok
}
