package engine

import (
	"glyphstorm/component"
	"glyphstorm/parameter"
)

// World holds the per-run entity storage. Entities live in flat per-kind
// slices; systems iterate them directly and mark dead entries, and Sweep
// compacts the slices once per frame after all systems ran.
type World struct {
	Player      *component.Player
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	EnemyShots  []*component.EnemyShot
	Pickups     []*component.Pickup
}

func NewWorld(player *component.Player) *World {
	return &World{
		Player:      player,
		Enemies:     make([]*component.Enemy, 0, parameter.EnemyCap),
		Projectiles: make([]*component.Projectile, 0, parameter.ProjectileCap),
		EnemyShots:  make([]*component.EnemyShot, 0, parameter.EnemyProjectileCap),
		Pickups:     make([]*component.Pickup, 0, parameter.PickupCap),
	}
}

// AddEnemy appends an enemy. The spawner enforces parameter.EnemyCap
// before constructing enemies, so no eviction happens here.
func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// AddProjectile appends a player projectile. At the cap the oldest live
// projectile is evicted so newly fired shots always exist.
func (w *World) AddProjectile(p *component.Projectile) {
	if len(w.Projectiles) >= parameter.ProjectileCap {
		w.Projectiles = evictOldest(w.Projectiles)
	}
	w.Projectiles = append(w.Projectiles, p)
}

// AddEnemyShot appends an enemy projectile, evicting the oldest at the cap.
func (w *World) AddEnemyShot(s *component.EnemyShot) {
	if len(w.EnemyShots) >= parameter.EnemyProjectileCap {
		w.EnemyShots = evictOldest(w.EnemyShots)
	}
	w.EnemyShots = append(w.EnemyShots, s)
}

// AddPickup appends a pickup, evicting the oldest at the cap. Evicting
// old drops rather than refusing new ones keeps recent kills rewarding
// when the field is saturated.
func (w *World) AddPickup(p *component.Pickup) {
	if len(w.Pickups) >= parameter.PickupCap {
		w.Pickups = evictOldest(w.Pickups)
	}
	w.Pickups = append(w.Pickups, p)
}

// LiveEnemies counts enemies still occupying a world slot, including
// those in their death animation. The spawn cap is measured against this.
func (w *World) LiveEnemies() int {
	return len(w.Enemies)
}

// Reset empties every entity list for a fresh run, keeping capacity.
func (w *World) Reset() {
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.EnemyShots = w.EnemyShots[:0]
	w.Pickups = w.Pickups[:0]
}

// Sweep compacts all entity slices, dropping entries whose Alive flag
// cleared this frame. Relative order is preserved so eviction stays FIFO.
func (w *World) Sweep() {
	w.Enemies = compact(w.Enemies, func(e *component.Enemy) bool { return e.Alive })
	w.Projectiles = compact(w.Projectiles, func(p *component.Projectile) bool { return p.Alive })
	w.EnemyShots = compact(w.EnemyShots, func(s *component.EnemyShot) bool { return s.Alive })
	w.Pickups = compact(w.Pickups, func(p *component.Pickup) bool { return p.Alive })
}

type alive interface {
	comparable
}

// evictOldest drops the first element, shifting the rest down. Only runs
// when a slice is at its cap, so the copy cost is bounded and rare.
func evictOldest[T alive](s []T) []T {
	copy(s, s[1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// compact filters in place, preserving order and reusing the backing array.
func compact[T alive](s []T, keep func(T) bool) []T {
	dst := s[:0]
	for _, v := range s {
		if keep(v) {
			dst = append(dst, v)
		}
	}
	// Zero the tail so dropped entities can be collected.
	var zero T
	for i := len(dst); i < len(s); i++ {
		s[i] = zero
	}
	return dst
}
