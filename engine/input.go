package engine

import "glyphstorm/vmath"

// Action is a discrete, edge-triggered player intent. Held movement keys
// are not actions; they surface through InputSource.MoveVector.
type Action int

const (
	ActionPause Action = iota
	ActionConfirm
	ActionCancel
	ActionUp
	ActionDown
	ActionChoice1
	ActionChoice2
	ActionChoice3
	ActionDebug
	ActionMute
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionPause:
		return "pause"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionChoice1:
		return "choice1"
	case ActionChoice2:
		return "choice2"
	case ActionChoice3:
		return "choice3"
	case ActionDebug:
		return "debug"
	case ActionMute:
		return "mute"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// InputSource is the engine's view of the player. The game polls it once
// per frame; implementations translate device events into a movement
// vector and pending one-shot actions.
type InputSource interface {
	// MoveVector returns the current movement intent, normalized so
	// diagonal movement is not faster. Zero when no direction is held.
	MoveVector() vmath.Vec2

	// Consume reports whether the action fired since the last Consume
	// of that action, clearing it. Each press yields exactly one true.
	Consume(a Action) bool
}
