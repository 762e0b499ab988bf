package feed

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"chefreel/catalog"
	"chefreel/models"
	"chefreel/sched"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2024, 2, 1, 19, 0, 0, 0, time.UTC)

func baseEntries(t *testing.T) []models.VideoEntry {
	t.Helper()
	videos, err := catalog.NewMemory(catalog.Seed()).Store().Videos.List(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 8)
	return videos
}

func noShuffle([]models.VideoEntry) {}

func newTestController(t *testing.T, opts ...Option) (*Controller, *sched.Manual) {
	t.Helper()
	clock := sched.NewManual(epoch)
	opts = append([]Option{WithClock(clock), WithShuffle(noShuffle)}, opts...)
	c, err := NewController(baseEntries(t), opts...)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, clock
}

func TestNewControllerRejectsEmptyFeed(t *testing.T) {
	_, err := NewController(nil)
	assert.ErrorIs(t, err, ErrEmptyFeed)
}

func TestRetreatAtStartIsNoop(t *testing.T) {
	c, _ := newTestController(t)

	assert.False(t, c.Retreat())
	st := c.Snapshot()
	assert.Equal(t, 0, st.Index)
	assert.False(t, st.CanGoPrevious)
	assert.Equal(t, "1", st.Card.Entry.ID)
}

func TestAdvanceAppendsOneCopyNearTail(t *testing.T) {
	c, _ := newTestController(t)

	for i := 0; i < 5; i++ {
		c.Advance()
	}
	st := c.Snapshot()
	assert.Equal(t, 5, st.Index)
	assert.Equal(t, 8, st.Total)

	// index+1 = 6 >= 8-2
	c.Advance()
	st = c.Snapshot()
	assert.Equal(t, 6, st.Index)
	assert.Equal(t, 16, st.Total)
	assert.Equal(t, Forward, st.Direction)
	assert.Equal(t, "7", st.Card.Entry.ID)

	c.Advance()
	assert.Equal(t, 16, c.Snapshot().Total)
}

func TestAppendedBatchIsPermutationOfBase(t *testing.T) {
	clock := sched.NewManual(epoch)
	c, err := NewController(baseEntries(t), WithClock(clock), WithShuffle(SeededShuffle(7)))
	require.NoError(t, err)
	defer c.Close()

	var ids []string
	for i := 0; i < 15; i++ {
		c.Advance()
		if st := c.Snapshot(); st.Index >= 8 {
			ids = append(ids, st.Card.Entry.ID)
		}
	}
	require.Len(t, ids, 8)
	sort.Strings(ids)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids)
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a := append([]models.VideoEntry(nil), baseEntries(t)...)
	b := append([]models.VideoEntry(nil), baseEntries(t)...)
	SeededShuffle(42)(a)
	SeededShuffle(42)(b)
	assert.Equal(t, a, b)
}

func TestSwipeThresholdAndGuard(t *testing.T) {
	c, clock := newTestController(t)

	assert.False(t, c.Swipe(30))
	assert.False(t, c.Swipe(SwipeThreshold))
	assert.False(t, c.Swipe(-SwipeThreshold))
	assert.Equal(t, 0, c.Snapshot().Index)

	assert.True(t, c.Swipe(80))
	assert.Equal(t, 1, c.Snapshot().Index)
	assert.True(t, c.Snapshot().Transitioning)

	// ignored while the transition window is open
	assert.False(t, c.Swipe(80))
	clock.Advance(DefaultTransitionLock - time.Millisecond)
	assert.False(t, c.Swipe(-80))
	assert.Equal(t, 1, c.Snapshot().Index)

	clock.Advance(time.Millisecond)
	assert.False(t, c.Snapshot().Transitioning)
	assert.True(t, c.Swipe(-80))
	st := c.Snapshot()
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, Backward, st.Direction)
}

func TestSwipeDownAtStartStillTakesGuard(t *testing.T) {
	c, _ := newTestController(t)

	assert.True(t, c.Swipe(-120))
	st := c.Snapshot()
	assert.Equal(t, 0, st.Index)
	assert.True(t, st.Transitioning)
}

func TestKeyInput(t *testing.T) {
	c, clock := newTestController(t, WithTransitionLock(100*time.Millisecond))

	assert.False(t, c.Key("Enter"))
	assert.True(t, c.Key("ArrowDown"))
	assert.False(t, c.Key("ArrowDown"))
	assert.Equal(t, 1, c.Snapshot().Index)

	clock.Advance(100 * time.Millisecond)
	assert.True(t, c.Key("ArrowUp"))
	assert.Equal(t, 0, c.Snapshot().Index)
}

func TestDirectButtonsBypassGuard(t *testing.T) {
	c, _ := newTestController(t)

	require.True(t, c.Swipe(80))
	c.Advance()
	assert.Equal(t, 2, c.Snapshot().Index)
	assert.True(t, c.Retreat())
	assert.Equal(t, 1, c.Snapshot().Index)
}

func TestLeavingEntryResetsCardState(t *testing.T) {
	c, _ := newTestController(t)

	c.Card().ToggleLike()
	c.Card().ToggleBookmark()
	st := c.Snapshot().Card
	assert.True(t, st.Liked)
	assert.Equal(t, 1241, st.Likes)

	c.Advance()
	c.Retreat()
	st = c.Snapshot().Card
	assert.False(t, st.Liked)
	assert.False(t, st.Bookmarked)
	assert.Equal(t, 1240, st.Likes)
	assert.False(t, st.Playing)
	assert.True(t, st.ShowControls)
}

func TestRemountCancelsOldCardTimers(t *testing.T) {
	c, clock := newTestController(t)

	old := c.Card()
	old.TogglePlay()
	assert.Equal(t, 1, clock.Pending())

	c.Advance()
	assert.Equal(t, 0, clock.Pending())

	old.TogglePlay()
	assert.Equal(t, 0, clock.Pending())
	assert.NotSame(t, old, c.Card())
}

func TestCloseCancelsTransitionTimer(t *testing.T) {
	clock := sched.NewManual(epoch)
	c, err := NewController(baseEntries(t), WithClock(clock))
	require.NoError(t, err)

	require.True(t, c.Swipe(80))
	assert.Equal(t, 1, clock.Pending())
	c.Close()
	assert.Equal(t, 0, clock.Pending())
	assert.False(t, c.Swipe(80))
	c.Close()
}

func TestOnChangeFiresOnTimerDrivenChanges(t *testing.T) {
	changes := 0
	c, clock := newTestController(t, WithOnChange(func() { changes++ }))

	require.True(t, c.Swipe(80))
	assert.Equal(t, 0, changes)
	clock.Advance(DefaultTransitionLock)
	assert.Equal(t, 1, changes)

	c.Card().TogglePlay()
	clock.Advance(ControlsHideDelay)
	assert.Equal(t, 2, changes)
	assert.False(t, c.Snapshot().Card.ShowControls)
}

func TestDrag(t *testing.T) {
	var d Drag

	d.Start(400)
	d.Move(300)
	dist, ok := d.End()
	assert.True(t, ok)
	assert.Equal(t, 100.0, dist)

	// no move: end position stays zero
	d.Start(400)
	_, ok = d.End()
	assert.False(t, ok)

	d.Move(200)
	_, ok = d.End()
	assert.False(t, ok)
}
