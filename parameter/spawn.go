package parameter

// Spawn Placement
const (
	// SpawnViewHalfWidth is the horizontal half-extent of the nominal
	// viewport the spawner places enemies around. Fixed rather than read
	// from the live terminal so runs with the same seed spawn identically
	// regardless of window size
	SpawnViewHalfWidth = 56.0

	// SpawnViewHalfHeight is the vertical half-extent of the nominal
	// spawn viewport
	SpawnViewHalfHeight = 24.0

	// SpawnMargin is how far outside the camera viewport enemies appear
	SpawnMargin = 6.0

	// SpawnJitter is the max positional offset along a spawn edge so wave
	// lines do not form visibly straight rows
	SpawnJitter = 2.5
)

// Continuous Spawning
const (
	// ContinuousSpawnInterval is the background trickle period in seconds,
	// independent of wave brackets
	ContinuousSpawnInterval = 2.2
)
