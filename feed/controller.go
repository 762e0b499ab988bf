// Package feed implements the vertical video feed: a single-active-entry
// carousel that grows by appending shuffled copies of its base set, the
// interaction layer of the active card, and the websocket session that
// drives both.
package feed

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"chefreel/models"
	"chefreel/sched"
)

type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

const (
	// SwipeThreshold is the drag distance a gesture must exceed.
	SwipeThreshold        = 50
	DefaultTransitionLock = 500 * time.Millisecond

	prefetchMargin = 2
)

var ErrEmptyFeed = errors.New("feed: no entries to show")

// ShuffleFunc reorders a batch in place before it is appended.
type ShuffleFunc func([]models.VideoEntry)

func randomShuffle(v []models.VideoEntry) {
	rand.Shuffle(len(v), func(i, j int) { v[i], v[j] = v[j], v[i] })
}

// SeededShuffle returns a deterministic ShuffleFunc. The returned function
// must not be shared between controllers.
func SeededShuffle(seed int64) ShuffleFunc {
	r := rand.New(rand.NewSource(seed))
	return func(v []models.VideoEntry) {
		r.Shuffle(len(v), func(i, j int) { v[i], v[j] = v[j], v[i] })
	}
}

type Option func(*Controller)

func WithShuffle(f ShuffleFunc) Option {
	return func(c *Controller) { c.shuffle = f }
}

func WithClock(clock sched.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithTransitionLock(d time.Duration) Option {
	return func(c *Controller) { c.lockFor = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithOnChange registers a hook called after every timer-driven change.
// It runs on the timer's goroutine with no controller lock held.
func WithOnChange(f func()) Option {
	return func(c *Controller) { c.onChange = f }
}

// State is the read model of the whole feed.
type State struct {
	Index         int       `json:"index"`
	Total         int       `json:"total"`
	Direction     Direction `json:"direction"`
	Transitioning bool      `json:"transitioning"`
	CanGoPrevious bool      `json:"canGoPrevious"`
	CanGoNext     bool      `json:"canGoNext"`
	Card          CardState `json:"card"`
}

type Controller struct {
	mu        sync.Mutex
	base      []models.VideoEntry
	entries   []models.VideoEntry
	index     int
	direction Direction

	transitioning bool
	unlock        sched.Handle
	lockFor       time.Duration

	card *Card

	clock    sched.Clock
	shuffle  ShuffleFunc
	onChange func()
	logger   *zap.Logger
	closed   bool
}

func NewController(base []models.VideoEntry, opts ...Option) (*Controller, error) {
	if len(base) == 0 {
		return nil, ErrEmptyFeed
	}
	c := &Controller{
		base:    append([]models.VideoEntry(nil), base...),
		lockFor: DefaultTransitionLock,
		clock:   sched.Real(),
		shuffle: randomShuffle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.entries = append([]models.VideoEntry(nil), c.base...)
	c.card = newCard(c.entries[0], c.clock, c.notify)
	return c, nil
}

// Advance moves to the next entry, appending one shuffled copy of the base
// set first when the index is about to come within prefetchMargin of the end.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.advanceLocked()
}

// Retreat moves to the previous entry. It reports false at the first entry.
func (c *Controller) Retreat() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	return c.retreatLocked()
}

// Swipe handles a completed vertical drag. Positive distances (drag up)
// advance, negative ones retreat. It reports whether the gesture was taken.
func (c *Controller) Swipe(distance float64) bool {
	if math.Abs(distance) <= SwipeThreshold {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.beginTransitionLocked() {
		return false
	}
	if distance > 0 {
		c.advanceLocked()
	} else {
		c.retreatLocked()
	}
	return true
}

// Key handles ArrowDown and ArrowUp under the same guard as Swipe.
func (c *Controller) Key(key string) bool {
	if key != "ArrowDown" && key != "ArrowUp" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.beginTransitionLocked() {
		return false
	}
	if key == "ArrowDown" {
		c.advanceLocked()
	} else {
		c.retreatLocked()
	}
	return true
}

// Card returns the active card.
func (c *Controller) Card() *Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.card
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Index:         c.index,
		Total:         len(c.entries),
		Direction:     c.direction,
		Transitioning: c.transitioning,
		CanGoPrevious: c.index > 0,
		CanGoNext:     true,
		Card:          c.card.Snapshot(),
	}
}

// Close disposes the active card and cancels the transition timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.unlock != nil {
		c.unlock.Cancel()
		c.unlock = nil
	}
	c.card.Dispose()
}

func (c *Controller) advanceLocked() {
	if c.index+1 >= len(c.entries)-prefetchMargin {
		batch := append([]models.VideoEntry(nil), c.base...)
		c.shuffle(batch)
		c.entries = append(c.entries, batch...)
		c.logger.Debug("feed extended",
			zap.Int("index", c.index),
			zap.Int("total", len(c.entries)))
	}
	c.index++
	c.direction = Forward
	c.remountLocked()
}

func (c *Controller) retreatLocked() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	c.direction = Backward
	c.remountLocked()
	return true
}

func (c *Controller) remountLocked() {
	c.card.Dispose()
	c.card = newCard(c.entries[c.index], c.clock, c.notify)
}

// beginTransitionLocked takes the in-flight guard. The guard is released by
// a fixed timer, not by the end of any animation.
func (c *Controller) beginTransitionLocked() bool {
	if c.closed || c.transitioning {
		return false
	}
	c.transitioning = true
	c.unlock = c.clock.AfterFunc(c.lockFor, c.endTransition)
	return true
}

func (c *Controller) endTransition() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.transitioning = false
	c.unlock = nil
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
