package feed

import (
	"sync"
	"time"

	"chefreel/models"
	"chefreel/sched"
	"chefreel/utils"
)

const (
	DoubleTapWindow   = 300 * time.Millisecond
	HeartLifetime     = 800 * time.Millisecond
	ControlsHideDelay = 2 * time.Second
)

type TapKind int

const (
	SingleTap TapKind = iota + 1
	DoubleTap
)

func (k TapKind) String() string {
	switch k {
	case SingleTap:
		return "single"
	case DoubleTap:
		return "double"
	}
	return "none"
}

// Heart is the transient glyph spawned at the position of a double tap.
type Heart struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type TapResult struct {
	Kind  TapKind
	Heart *Heart
}

// CardState is the read model of the active card.
type CardState struct {
	Entry        models.VideoEntry `json:"entry"`
	Liked        bool              `json:"liked"`
	Likes        int               `json:"likes"`
	Bookmarked   bool              `json:"bookmarked"`
	Playing      bool              `json:"playing"`
	Hovering     bool              `json:"hovering"`
	ShowControls bool              `json:"showControls"`
	Hearts       []Heart           `json:"hearts"`
}

// Card holds the interaction state of the single mounted feed entry. A card
// is built fresh every time its entry becomes active, so nothing survives
// an activation cycle.
type Card struct {
	mu       sync.Mutex
	clock    sched.Clock
	entry    models.VideoEntry
	onChange func()

	liked        bool
	likes        int
	bookmarked   bool
	playing      bool
	hovering     bool
	showControls bool

	lastTap time.Time
	armed   bool

	hearts   []Heart
	heartsAt map[string]sched.Handle
	controls *sched.Slot
	// controlsGen identifies the latest hide task; older ones are ignored.
	controlsGen uint64
	disposed    bool
}

func newCard(entry models.VideoEntry, clock sched.Clock, onChange func()) *Card {
	return &Card{
		clock:        clock,
		entry:        entry,
		onChange:     onChange,
		likes:        entry.Likes,
		bookmarked:   entry.IsBookmarked,
		showControls: true,
		heartsAt:     make(map[string]sched.Handle),
		controls:     sched.NewSlot(clock),
	}
}

// Tap handles a tap on the media surface. A second tap inside
// DoubleTapWindow toggles the like and spawns a heart at (x, y); any other
// tap toggles playback.
func (c *Card) Tap(x, y float64) TapResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return TapResult{}
	}

	now := c.clock.Now()
	if c.armed && now.Sub(c.lastTap) < DoubleTapWindow {
		c.armed = false
		c.toggleLikeLocked()
		h := c.spawnHeartLocked(x, y)
		return TapResult{Kind: DoubleTap, Heart: &h}
	}

	c.armed = true
	c.lastTap = now
	c.togglePlayLocked()
	return TapResult{Kind: SingleTap}
}

// ToggleLike flips the like flag and moves the optimistic counter with it.
func (c *Card) ToggleLike() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.toggleLikeLocked()
}

func (c *Card) ToggleBookmark() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.bookmarked = !c.bookmarked
}

func (c *Card) TogglePlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.togglePlayLocked()
}

// SetHover records whether the pointer is over the card. Hovering keeps the
// controls visible; leaving while playing restarts the hide timer.
func (c *Card) SetHover(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || c.hovering == on {
		return
	}
	c.hovering = on
	c.rescheduleControlsLocked()
}

// Dispose cancels every pending timer. Later calls on the card are no-ops.
func (c *Card) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.disposed = true
	c.controls.Stop()
	for id, h := range c.heartsAt {
		h.Cancel()
		delete(c.heartsAt, id)
	}
}

func (c *Card) Snapshot() CardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CardState{
		Entry:        c.entry,
		Liked:        c.liked,
		Likes:        c.likes,
		Bookmarked:   c.bookmarked,
		Playing:      c.playing,
		Hovering:     c.hovering,
		ShowControls: c.showControls,
		Hearts:       append([]Heart{}, c.hearts...),
	}
}

func (c *Card) toggleLikeLocked() {
	if c.liked {
		c.likes--
	} else {
		c.likes++
	}
	c.liked = !c.liked
}

func (c *Card) togglePlayLocked() {
	c.playing = !c.playing
	c.rescheduleControlsLocked()
}

// rescheduleControlsLocked keeps one pending hide task at most.
func (c *Card) rescheduleControlsLocked() {
	c.showControls = true
	c.controlsGen++
	if !c.playing || c.hovering {
		c.controls.Stop()
		return
	}
	gen := c.controlsGen
	c.controls.Schedule(ControlsHideDelay, func() { c.hideControls(gen) })
}

// hideControls may run after a newer task replaced it when the timer had
// already fired and was waiting on the lock.
func (c *Card) hideControls(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.controlsGen || !c.playing || c.hovering {
		c.mu.Unlock()
		return
	}
	c.showControls = false
	c.mu.Unlock()
	c.notify()
}

func (c *Card) spawnHeartLocked(x, y float64) Heart {
	h := Heart{ID: utils.NewID(), X: x, Y: y}
	c.hearts = append(c.hearts, h)
	c.heartsAt[h.ID] = c.clock.AfterFunc(HeartLifetime, func() { c.removeHeart(h.ID) })
	return h
}

func (c *Card) removeHeart(id string) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	delete(c.heartsAt, id)
	for i, h := range c.hearts {
		if h.ID == id {
			c.hearts = append(c.hearts[:i], c.hearts[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Card) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
