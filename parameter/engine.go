package parameter

import "time"

// Frame Loop
const (
	// TargetFPS is the render/update tick rate of the main loop
	TargetFPS = 60

	// FrameTime is the ticker period derived from TargetFPS
	FrameTime = time.Second / TargetFPS

	// MaxDeltaTime clamps a single simulation step. A stall longer than
	// this (terminal freeze, suspend) advances the world by at most one
	// 30fps step instead of a physics-breaking jump
	MaxDeltaTime = 1.0 / 30.0
)

// Event Queue
const (
	// EventQueueSize is the ring buffer capacity, must be a power of 2
	EventQueueSize = 1024

	// EventBufferMask is used for fast modulo on ring indices
	EventBufferMask = EventQueueSize - 1
)

// World
const (
	// WorldWidth is the playfield width in cells
	WorldWidth = 240.0

	// WorldHeight is the playfield height in cells
	WorldHeight = 140.0

	// SpatialCellSize is the uniform grid cell edge for the enemy hash.
	// Sized near the largest collision diameter so one-ring queries
	// cover direct overlaps
	SpatialCellSize = 6.0
)
