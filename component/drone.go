package component

import (
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// OrbitDrone circles the player dealing contact damage. Drones belong to
// the weapon system, which recreates the whole formation whenever count
// or level changes
type OrbitDrone struct {
	Index int     // Position within the formation
	Angle float64 // Current orbit angle, radians

	OrbitRadius float64
	OrbitSpeed  float64 // Radians per second
	Damage      float64
	Radius      float64

	Pos   vmath.Vec2
	Alive bool

	// Per-enemy re-hit gate. A drone parked on an enemy damages it once
	// per cooldown window, not once per frame
	HitCooldowns map[*Enemy]float64
}

// NewOrbitDrone creates formation slot index at the given starting angle
func NewOrbitDrone(index int, angle, orbitRadius, orbitSpeed, damage float64) *OrbitDrone {
	return &OrbitDrone{
		Index:        index,
		Angle:        angle,
		OrbitRadius:  orbitRadius,
		OrbitSpeed:   orbitSpeed,
		Damage:       damage,
		Radius:       parameter.DroneRadius,
		Alive:        true,
		HitCooldowns: make(map[*Enemy]float64),
	}
}

// Update advances the orbit angle and recomputes the world position
// relative to the player
func (d *OrbitDrone) Update(dt float64, playerPos vmath.Vec2) {
	d.Angle += d.OrbitSpeed * dt
	d.Pos = playerPos.Add(vmath.FromAngle(d.Angle).Scale(d.OrbitRadius))

	for e, remaining := range d.HitCooldowns {
		remaining -= dt
		if remaining <= 0 || !e.Alive {
			delete(d.HitCooldowns, e)
			continue
		}
		d.HitCooldowns[e] = remaining
	}
}

// CanHit reports whether the per-enemy cooldown allows damage
func (d *OrbitDrone) CanHit(e *Enemy) bool {
	_, cooling := d.HitCooldowns[e]
	return !cooling
}

// RegisterHit starts the re-hit cooldown for the enemy
func (d *OrbitDrone) RegisterHit(e *Enemy) {
	d.HitCooldowns[e] = parameter.DroneHitCooldown
}
