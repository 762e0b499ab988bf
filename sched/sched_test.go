package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2024, 2, 1, 19, 0, 0, 0, time.UTC)

func TestManualRunsDueTasksInOrder(t *testing.T) {
	clock := NewManual(epoch)
	var got []string
	clock.AfterFunc(300*time.Millisecond, func() { got = append(got, "b") })
	clock.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	clock.AfterFunc(time.Second, func() { got = append(got, "c") })

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, clock.Pending())
	assert.Equal(t, epoch.Add(500*time.Millisecond), clock.Now())

	clock.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestManualTaskSeesItsDeadline(t *testing.T) {
	clock := NewManual(epoch)
	var at time.Time
	clock.AfterFunc(200*time.Millisecond, func() { at = clock.Now() })
	clock.Advance(time.Second)
	assert.Equal(t, epoch.Add(200*time.Millisecond), at)
}

func TestManualCancel(t *testing.T) {
	clock := NewManual(epoch)
	fired := false
	h := clock.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel())
	clock.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManualTaskCanReschedule(t *testing.T) {
	clock := NewManual(epoch)
	n := 0
	var tick func()
	tick = func() {
		n++
		if n < 3 {
			clock.AfterFunc(100*time.Millisecond, tick)
		}
	}
	clock.AfterFunc(100*time.Millisecond, tick)
	clock.Advance(time.Second)
	assert.Equal(t, 3, n)
}

func TestSlotReplacesPendingTask(t *testing.T) {
	clock := NewManual(epoch)
	slot := NewSlot(clock)
	var got []string

	slot.Schedule(time.Second, func() { got = append(got, "first") })
	clock.Advance(500 * time.Millisecond)
	slot.Schedule(time.Second, func() { got = append(got, "second") })
	clock.Advance(700 * time.Millisecond)
	assert.Empty(t, got)

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"second"}, got)
	assert.False(t, slot.Stop())
}

func TestSlotStop(t *testing.T) {
	clock := NewManual(epoch)
	slot := NewSlot(clock)
	fired := false
	slot.Schedule(time.Second, func() { fired = true })
	assert.True(t, slot.Stop())
	clock.Advance(time.Second)
	assert.False(t, fired)
}

func TestRealClockFiresAndCancels(t *testing.T) {
	clock := Real()
	done := make(chan struct{})
	clock.AfterFunc(5*time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	h := clock.AfterFunc(time.Hour, func() {})
	assert.True(t, h.Cancel())
}
