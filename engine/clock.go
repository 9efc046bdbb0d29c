// Package engine owns the simulation driver: the pausable clock, the
// phase machine, world entity storage and the per-frame update pipeline.
package engine

import (
	"sync/atomic"
	"time"

	"glyphstorm/parameter"
)

// Clock provides pausable game time. Wall time keeps flowing while the
// game is paused; game time freezes. All simulation timing (frame deltas,
// run elapsed, spawn schedules) reads game time so a pause of any length
// is invisible to the systems.
//
// Pause and Resume are safe to call from any goroutine.
type Clock struct {
	now func() time.Time // injectable for tests, defaults to time.Now

	epoch       time.Time
	totalPaused atomic.Int64 // accumulated pause time, nanoseconds
	pauseStart  atomic.Int64 // wall nanoseconds at pause entry, valid while paused
	paused      atomic.Bool

	lastTick int64 // game nanoseconds at the previous Tick
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource builds a clock reading time from the given source.
// Tests inject a fake source to step time deterministically.
func NewClockWithSource(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.epoch = now()
	return c
}

// GameTime returns nanoseconds of unpaused time since the clock was created.
func (c *Clock) GameTime() time.Duration {
	wall := c.now()
	paused := time.Duration(c.totalPaused.Load())
	if c.paused.Load() {
		// While paused the current pause span is not yet folded into
		// totalPaused, so game time is frozen at the pause entry point.
		start := time.Unix(0, c.pauseStart.Load())
		return start.Sub(c.epoch) - paused
	}
	return wall.Sub(c.epoch) - paused
}

// Seconds returns game time as float seconds.
func (c *Clock) Seconds() float64 {
	return c.GameTime().Seconds()
}

// Pause freezes game time. Calling Pause while already paused is a no-op.
func (c *Clock) Pause() {
	if c.paused.CompareAndSwap(false, true) {
		c.pauseStart.Store(c.now().UnixNano())
	}
}

// Resume unfreezes game time. The span spent paused is added to the
// accumulated pause total so GameTime continues exactly where it stopped,
// which also means the first Tick after Resume sees a near-zero delta
// rather than a spike covering the pause.
func (c *Clock) Resume() {
	if c.paused.CompareAndSwap(true, false) {
		span := c.now().UnixNano() - c.pauseStart.Load()
		c.totalPaused.Add(span)
	}
}

func (c *Clock) IsPaused() bool {
	return c.paused.Load()
}

// TotalPaused reports the accumulated time spent paused.
func (c *Clock) TotalPaused() time.Duration {
	total := time.Duration(c.totalPaused.Load())
	if c.paused.Load() {
		total += time.Duration(c.now().UnixNano() - c.pauseStart.Load())
	}
	return total
}

// Tick advances the frame reference and returns the elapsed game time
// since the previous Tick, in seconds, clamped to parameter.MaxDeltaTime.
// The clamp bounds the simulation step after a stall (debugger, terminal
// freeze) so entities do not tunnel through each other. While paused the
// delta is zero because game time does not advance.
func (c *Clock) Tick() float64 {
	now := c.GameTime().Nanoseconds()
	dt := time.Duration(now - c.lastTick).Seconds()
	c.lastTick = now
	if dt < 0 {
		return 0
	}
	if dt > parameter.MaxDeltaTime {
		return parameter.MaxDeltaTime
	}
	return dt
}
