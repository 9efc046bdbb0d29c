package parameter

// Projectiles
const (
	// ProjectileCap bounds player projectiles in flight, oldest evicted
	ProjectileCap = 600

	// ProjectileRadius is the default collision radius for player shots
	ProjectileRadius = 0.5
)

// Firing
const (
	// DirectionalDeadZone is the minimum player speed for heading-based
	// weapons to use movement direction instead of nearest-enemy aim
	DirectionalDeadZone = 0.1

	// MinFireCooldown floors derived cooldowns so stacked reduction can
	// never reach zero or go negative
	MinFireCooldown = 0.05

	// AuraPulseScale widens the aura visual briefly after each damage tick
	AuraPulseScale = 1.15
)

// Orbit Drones
const (
	// DroneHitCooldown is the per-enemy re-hit window in seconds. Keeps a
	// drone parked on an enemy from draining it every frame
	DroneHitCooldown = 0.5

	// DroneRadius is the drone collision circle radius
	DroneRadius = 0.7
)

// Homing
const (
	// HomingLockRadius is the seek reacquisition radius in cells
	HomingLockRadius = 40.0

	// HomingSnapDistance stops steering adjustments inside this range so
	// the projectile does not orbit a point target forever
	HomingSnapDistance = 0.75
)
