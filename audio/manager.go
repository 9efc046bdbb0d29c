package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"glyphstorm/event"
	"glyphstorm/parameter"
	"glyphstorm/status"
)

// SoundManager owns the mixer and synthesizes effects on demand. Sound
// requests arrive through the event queue; the manager never blocks the
// frame loop. Playback beyond the simultaneous cap is dropped and
// counted, never queued
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool

	// live is decremented from the speaker goroutine when a streamer
	// drains, so it must be atomic
	live atomic.Int64

	stPlayed  *atomic.Int64
	stDropped *atomic.Int64
}

// NewSoundManager creates an uninitialized manager. Counters register
// immediately so the debug overlay shows them even before audio starts
func NewSoundManager(reg *status.Registry) *SoundManager {
	return &SoundManager{
		mixer:     &beep.Mixer{},
		rate:      beep.SampleRate(parameter.AudioSampleRate),
		volume:    parameter.DefaultVolume,
		stPlayed:  reg.Ints.Get("audio.played"),
		stDropped: reg.Ints.Get("audio.dropped"),
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.SpeakerBufferLength)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close in beep
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.live.Store(0)
	sm.initialized = false
}

// Process plays every sound request in the drained event batch
func (sm *SoundManager) Process(events []event.GameEvent) {
	for _, ev := range events {
		if ev.Type != event.EventSoundRequest {
			continue
		}
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			sm.Play(p.Sound)
		}
	}
}

// Play synthesizes and mixes one effect
func (sm *SoundManager) Play(id event.SoundID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if sm.live.Load() >= parameter.MaxSimultaneousSounds {
		sm.stDropped.Add(1)
		return
	}

	s := makeEffect(id, sm.rate, sm.volume)
	if s == nil {
		sm.stDropped.Add(1)
		return
	}

	sm.live.Add(1)
	sm.stPlayed.Add(1)
	speaker.Lock()
	sm.mixer.Add(&countedStreamer{s: s, live: &sm.live})
	speaker.Unlock()
}

// ToggleMute flips the mute switch and reports the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted reports the mute switch
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetMuted forces the mute switch
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// SetVolume clamps and stores the effect volume for future sounds
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	sm.volume = vol
}

// countedStreamer releases its cap slot when the wrapped streamer drains
type countedStreamer struct {
	s    beep.Streamer
	live *atomic.Int64
	done bool
}

func (c *countedStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := c.s.Stream(samples)
	if !ok && !c.done {
		c.done = true
		c.live.Add(-1)
	}
	return n, ok
}

func (c *countedStreamer) Err() error {
	return c.s.Err()
}
