package component

import (
	"glyphstorm/vmath"
)

// Mine sits where it was deployed and runs placed → arming → armed →
// exploded|expired. It must never detonate before the arm delay passes,
// and expires silently when nothing triggers it within its lifetime
type Mine struct {
	Pos vmath.Vec2

	Damage          float64
	ExplosionRadius float64
	ArmDelay        float64
	Lifetime        float64

	Age      float64
	Armed    bool
	Exploded bool
	Alive    bool
}

// MineHit is one enemy caught in a blast, with distance for falloff VFX
type MineHit struct {
	Enemy    *Enemy
	Distance float64
}

// MineExplosion is the one-shot detonation result
type MineExplosion struct {
	Pos    vmath.Vec2
	Radius float64
	Damage float64
	Hits   []MineHit
}

// NewMine deploys a mine at the given position
func NewMine(pos vmath.Vec2, damage, explosionRadius, armDelay, lifetime float64) *Mine {
	return &Mine{
		Pos:             pos,
		Damage:          damage,
		ExplosionRadius: explosionRadius,
		ArmDelay:        armDelay,
		Lifetime:        lifetime,
		Alive:           true,
	}
}

// Update ages the mine and detonates against the first collidable enemy
// inside the blast radius once armed. Returns the explosion exactly once;
// the caller applies splash damage. Expiry kills the mine with no event
func (m *Mine) Update(dt float64, enemies []*Enemy) *MineExplosion {
	if !m.Alive || m.Exploded {
		return nil
	}

	m.Age += dt

	if !m.Armed {
		if m.Age < m.ArmDelay {
			return nil
		}
		m.Armed = true
	}

	if m.Age >= m.Lifetime {
		m.Alive = false
		return nil
	}

	triggered := false
	for _, e := range enemies {
		if !e.Collidable() {
			continue
		}
		if m.Pos.DistanceSq(e.Pos) < m.ExplosionRadius*m.ExplosionRadius {
			triggered = true
			break
		}
	}
	if !triggered {
		return nil
	}

	explosion := &MineExplosion{
		Pos:    m.Pos,
		Radius: m.ExplosionRadius,
		Damage: m.Damage,
	}
	for _, e := range enemies {
		if !e.Collidable() {
			continue
		}
		dist := m.Pos.Distance(e.Pos)
		if dist < m.ExplosionRadius+e.Radius {
			explosion.Hits = append(explosion.Hits, MineHit{Enemy: e, Distance: dist})
		}
	}

	m.Exploded = true
	m.Alive = false
	return explosion
}
