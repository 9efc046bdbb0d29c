package event

// EventType represents the type of game event
type EventType int

const (
	// === Audio Events ===

	// EventSoundRequest requests effect playback
	// Trigger: systems and game driver on gameplay outcomes
	// Consumer: audio.SoundManager | Payload: *SoundRequestPayload
	EventSoundRequest EventType = iota

	// === Game Events ===

	// EventPhaseChanged signals a game phase transition
	// Trigger: game driver on any phase switch
	// Consumer: audio (jingles), status overlay | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// EventRunEnded signals the run finished, by death or extraction
	// Trigger: game driver entering the summary phase
	// Consumer: main loop (profile update) | Payload: *RunEndedPayload
	EventRunEnded
)

// GameEvent is the queue element. Payload types are documented per EventType
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// SoundID selects a synthesized effect
type SoundID int

const (
	SoundShoot SoundID = iota
	SoundHit
	SoundKill
	SoundPickup
	SoundLevelUp
	SoundPlayerHurt
	SoundExplosion
	SoundMinePlace
	SoundExtraction
	SoundGameOver
	SoundUIMove
	SoundUISelect
)

// SoundRequestPayload carries the requested effect
type SoundRequestPayload struct {
	Sound SoundID
}

// PhaseChangedPayload carries phase names for consumers that only display
// or key off transitions
type PhaseChangedPayload struct {
	From string
	To   string
}

// RunEndedPayload summarizes a finished run
type RunEndedPayload struct {
	Extracted bool
	Survived  float64
	Kills     int
	Level     int
	Gold      int
}
