package engine

import (
	"glyphstorm/content"
)

// Config carries the per-run simulation options. It is assembled by the
// caller (flags plus the meta profile) and handed to NewGame; nothing in
// the engine reads global state.
type Config struct {
	// Seed drives every random decision in the run. Two runs with the
	// same seed and the same inputs play out identically.
	Seed int64

	// GodMode makes the player ignore all incoming damage. Debug aid.
	GodMode bool

	// NoSpawn disables scheduled enemy arrivals. Debug aid for testing
	// weapons against a hand-placed field.
	NoSpawn bool

	// StartWeapon is granted at run start. Falls back to the first
	// weapon in content.WeaponIDs when the ID is unknown.
	StartWeapon content.WeaponID

	// StartBonus holds the permanent stat bonuses bought in the hub.
	// They are merged into the player's derived stats on every recompute.
	StartBonus content.PassiveStats
}

func DefaultConfig() Config {
	return Config{
		Seed:        1,
		StartWeapon: "bolt",
		StartBonus:  content.BasePassiveStats(),
	}
}
