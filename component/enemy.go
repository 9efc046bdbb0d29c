package component

import (
	"math/rand"

	"glyphstorm/content"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// Enemy is one live hostile. Death is two-phase: TakeDamage reaching zero
// sets Dying and starts the animation window; the world sweep removes it
// once Alive drops. Dying enemies leave the collision hash immediately
type Enemy struct {
	Def *content.EnemyDef

	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64

	Health    float64
	MaxHealth float64
	Speed     float64 // Jittered at spawn
	Damage    float64
	XP        int

	Alive      bool
	Dying      bool
	DeathTimer float64
	FlashTimer float64 // Render hint, counts down after a hit

	// Ranger state
	AttackTimer float64
}

// NewEnemy spawns an enemy of the given definition with ±10% speed jitter
func NewEnemy(def *content.EnemyDef, pos vmath.Vec2, rng *rand.Rand) *Enemy {
	jitter := 1 + (rng.Float64()*2-1)*parameter.EnemySpeedJitter
	return &Enemy{
		Def:         def,
		Pos:         pos,
		Radius:      def.Radius,
		Health:      def.Health,
		MaxHealth:   def.Health,
		Speed:       def.Speed * jitter,
		Damage:      def.Damage,
		XP:          def.XP,
		Alive:       true,
		AttackTimer: def.AttackCooldown,
	}
}

// Update advances movement by class and timers. Rangers return a shot
// when their attack cycle fires; everything else returns nil
func (e *Enemy) Update(dt float64, playerPos vmath.Vec2) *EnemyShot {
	if e.FlashTimer > 0 {
		e.FlashTimer -= dt
	}

	if e.Dying {
		e.DeathTimer -= dt
		if e.DeathTimer <= 0 {
			e.Alive = false
		}
		return nil
	}

	switch e.Def.Class {
	case content.ClassRanger:
		return e.updateRanger(dt, playerPos)
	default:
		e.seek(dt, playerPos)
	}
	return nil
}

// seek walks straight at the player
func (e *Enemy) seek(dt float64, playerPos vmath.Vec2) {
	dir := playerPos.Sub(e.Pos).Normalize()
	e.Vel = dir.Scale(e.Speed)
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// updateRanger holds the preferred distance band and fires on cooldown.
// Inside KeepDistance it backs away, outside AttackRange it closes in,
// between the two it strafes slowly
func (e *Enemy) updateRanger(dt float64, playerPos vmath.Vec2) *EnemyShot {
	toPlayer := playerPos.Sub(e.Pos)
	dist := toPlayer.Magnitude()
	dir := toPlayer.Normalize()

	switch {
	case dist > e.Def.AttackRange:
		e.Vel = dir.Scale(e.Speed)
	case dist < e.Def.KeepDistance:
		e.Vel = dir.Scale(-e.Speed)
	default:
		e.Vel = dir.Perpendicular().Scale(e.Speed * 0.4)
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	e.AttackTimer -= dt
	if e.AttackTimer <= 0 && dist <= e.Def.AttackRange {
		e.AttackTimer = e.Def.AttackCooldown
		return NewEnemyShot(e.Pos, dir, e.Def.ShotSpeed, e.Def.ShotDamage)
	}
	return nil
}

// TakeDamage applies damage and starts the death animation at zero.
// Returns true exactly once, on the hit that kills
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.Dying || !e.Alive {
		return false
	}
	e.Health -= amount
	e.FlashTimer = parameter.EnemyHitFlashDuration
	if e.Health <= 0 {
		e.Health = 0
		e.Dying = true
		e.DeathTimer = parameter.EnemyDeathDuration
		return true
	}
	return false
}

// Collidable reports whether the enemy participates in collision
func (e *Enemy) Collidable() bool {
	return e.Alive && !e.Dying
}

// HealthFraction is the render hint for damage shading
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}

// EnemyShot is a hostile projectile fired by ranger enemies
type EnemyShot struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Damage   float64
	Radius   float64
	Range    float64
	Traveled float64
	Alive    bool
}

// NewEnemyShot creates a shot travelling along dir
func NewEnemyShot(pos, dir vmath.Vec2, speed, damage float64) *EnemyShot {
	return &EnemyShot{
		Pos:    pos,
		Vel:    dir.Scale(speed),
		Damage: damage,
		Radius: 0.4,
		Range:  60,
		Alive:  true,
	}
}

// Update advances the shot and expires it at range
func (s *EnemyShot) Update(dt float64) {
	step := s.Vel.Scale(dt)
	s.Pos = s.Pos.Add(step)
	s.Traveled += step.Magnitude()
	if s.Traveled >= s.Range {
		s.Alive = false
	}
}
