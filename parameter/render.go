package parameter

// Effects Pools
const (
	// ParticleCap bounds live particles, oldest evicted
	ParticleCap = 256

	// FloatingTextCap bounds live damage numbers, oldest evicted
	FloatingTextCap = 96

	// FloatingTextDuration is the damage number lifetime in seconds
	FloatingTextDuration = 0.8

	// FloatingTextRise is how far a damage number drifts up, cells per second
	FloatingTextRise = 4.0

	// ParticleLifetime is the default particle lifetime in seconds
	ParticleLifetime = 0.45
)

// HUD Layout
const (
	// HUDBarWidth is the width of the health and experience bars
	HUDBarWidth = 24

	// HUDHeight is the rows reserved at the top of the screen
	HUDHeight = 2
)
