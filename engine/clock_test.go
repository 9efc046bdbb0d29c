package engine

import (
	"testing"
	"time"

	"glyphstorm/parameter"
)

// fakeTime is a manually stepped time source for clock tests.
type fakeTime struct {
	now time.Time
}

func newFakeTime() *fakeTime {
	return &fakeTime{now: time.Unix(1000, 0)}
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

func (f *fakeTime) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// TestClockGameTimeAdvances verifies game time tracks wall time while unpaused
func TestClockGameTimeAdvances(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWithSource(ft.Now)

	ft.Advance(2 * time.Second)
	if got := c.Seconds(); got != 2.0 {
		t.Errorf("Expected 2.0s game time, got %v", got)
	}
}

// TestClockPauseFreezesGameTime verifies game time stops while paused and resumes without a jump
func TestClockPauseFreezesGameTime(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWithSource(ft.Now)

	ft.Advance(1 * time.Second)
	c.Pause()
	ft.Advance(5 * time.Second)

	if got := c.Seconds(); got != 1.0 {
		t.Errorf("Expected game time frozen at 1.0s during pause, got %v", got)
	}

	c.Resume()
	if got := c.Seconds(); got != 1.0 {
		t.Errorf("Expected game time still 1.0s right after resume, got %v", got)
	}

	ft.Advance(500 * time.Millisecond)
	if got := c.Seconds(); got != 1.5 {
		t.Errorf("Expected 1.5s after resume, got %v", got)
	}
}

// TestClockDoublePauseIsNoop verifies redundant pause/resume calls do not corrupt accounting
func TestClockDoublePauseIsNoop(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWithSource(ft.Now)

	c.Pause()
	ft.Advance(time.Second)
	c.Pause() // already paused
	ft.Advance(time.Second)
	c.Resume()
	c.Resume() // already running

	if got := c.TotalPaused(); got != 2*time.Second {
		t.Errorf("Expected 2s total paused, got %v", got)
	}
	if got := c.Seconds(); got != 0.0 {
		t.Errorf("Expected 0s game time after pause-only span, got %v", got)
	}
}

// TestClockTickDelta verifies Tick returns elapsed game seconds between calls
func TestClockTickDelta(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWithSource(ft.Now)

	c.Tick() // establish reference
	ft.Advance(16 * time.Millisecond)
	got := c.Tick()
	if got < 0.0159 || got > 0.0161 {
		t.Errorf("Expected ~0.016 delta, got %v", got)
	}
}

// TestClockTickClampsLargeDelta verifies a stall cannot produce an oversized step
func TestClockTickClampsLargeDelta(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWithSource(ft.Now)

	c.Tick()
	ft.Advance(3 * time.Second)
	if got := c.Tick(); got != parameter.MaxDeltaTime {
		t.Errorf("Expected delta clamped to %v, got %v", parameter.MaxDeltaTime, got)
	}
}

// TestClockTickZeroAcrossPause verifies the first tick after a resume sees no pause-sized spike
func TestClockTickZeroAcrossPause(t *testing.T) {
	ft := newFakeTime()
	c := NewClockWithSource(ft.Now)

	c.Tick()
	c.Pause()
	ft.Advance(10 * time.Second)
	c.Resume()

	if got := c.Tick(); got != 0.0 {
		t.Errorf("Expected zero delta across a pure pause span, got %v", got)
	}
}
