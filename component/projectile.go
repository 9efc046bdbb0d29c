package component

import (
	"glyphstorm/vmath"
)

// Projectile is a player shot. Pierce means surviving extra hits while
// continuing to travel; the hit set prevents counting one enemy twice
// within a single pierce lifetime
type Projectile struct {
	Pos      vmath.Vec2
	StartPos vmath.Vec2
	Vel      vmath.Vec2

	Damage   float64
	Radius   float64
	Piercing int // Extra enemies survived; 0 destroys on first hit
	Range    float64

	DistanceTraveled float64
	HitCount         int
	HitEnemies       map[*Enemy]struct{}

	Alive bool

	// Homing
	Homing   bool
	TurnRate float64 // Radians per second
	Target   *Enemy  // Re-acquired by the weapon system when dead
}

// NewProjectile creates a shot travelling along dir at speed
func NewProjectile(pos, dir vmath.Vec2, speed, damage, radius float64, piercing int, maxRange float64) *Projectile {
	return &Projectile{
		Pos:        pos,
		StartPos:   pos,
		Vel:        dir.Scale(speed),
		Damage:     damage,
		Radius:     radius,
		Piercing:   piercing,
		Range:      maxRange,
		HitEnemies: make(map[*Enemy]struct{}),
		Alive:      true,
	}
}

// Advance moves the projectile and expires it past max range
func (pr *Projectile) Advance(dt float64) {
	step := pr.Vel.Scale(dt)
	pr.Pos = pr.Pos.Add(step)
	pr.DistanceTraveled += step.Magnitude()
	if pr.DistanceTraveled >= pr.Range {
		pr.Alive = false
	}
}

// Steer turns velocity toward target by at most TurnRate*dt, keeping speed
func (pr *Projectile) Steer(target vmath.Vec2, dt float64) {
	to := target.Sub(pr.Pos)
	if to.IsZero() {
		return
	}
	speed := pr.Vel.Magnitude()
	if speed == 0 {
		return
	}
	current := pr.Vel.Angle()
	diff := vmath.AngleDiff(current, to.Angle())
	maxTurn := pr.TurnRate * dt
	turn := vmath.Clamp(diff, -maxTurn, maxTurn)
	pr.Vel = vmath.FromAngle(current + turn).Scale(speed)
}

// HasHit reports whether the enemy is already in the hit set
func (pr *Projectile) HasHit(e *Enemy) bool {
	_, ok := pr.HitEnemies[e]
	return ok
}

// RegisterHit records a successful overlap. The projectile dies once the
// hit count exceeds its piercing allowance
func (pr *Projectile) RegisterHit(e *Enemy) {
	pr.HitEnemies[e] = struct{}{}
	pr.HitCount++
	if pr.HitCount > pr.Piercing {
		pr.Alive = false
	}
}
