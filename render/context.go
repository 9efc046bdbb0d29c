package render

import (
	"glyphstorm/engine"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	Snap *engine.Snapshot

	// DeltaTime is wall-clock seconds since the last rendered frame.
	// Effects animate on it even while the simulation clock is paused
	DeltaTime float64

	Cam Camera

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Muted mirrors the audio mute toggle for the HUD indicator
	Muted bool

	// Menu is non-nil when the caller is running a menu screen (the hub
	// between runs). The renderer draws it; it never owns its state
	Menu *MenuView
}

// MenuView is the renderer-facing shape of a caller-owned menu
type MenuView struct {
	Title  string
	Items  []MenuItem
	Cursor int
	Footer string
}

// MenuItem is one selectable row
type MenuItem struct {
	Label    string
	Detail   string
	Disabled bool
}
