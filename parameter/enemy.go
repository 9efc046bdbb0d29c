package parameter

// Enemy Population
const (
	// EnemyCap is the hard limit on live enemies. Spawners skip ticks at
	// the cap but keep advancing their timers
	EnemyCap = 220

	// EnemyProjectileCap bounds ranged enemy shots in flight
	EnemyProjectileCap = 120
)

// Enemy Behavior
const (
	// EnemySpeedJitter is the ±fraction applied to base speed at spawn
	EnemySpeedJitter = 0.10

	// EnemyDeathDuration is the death animation window in seconds.
	// Dying enemies stay visible but leave the collision hash
	EnemyDeathDuration = 0.35

	// EnemySeparationPush scales the pairwise overlap correction per frame
	EnemySeparationPush = 0.5

	// EnemyHitFlashDuration is the visual flash window after taking damage
	EnemyHitFlashDuration = 0.12
)
