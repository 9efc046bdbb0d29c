package system

import (
	"math"
	"math/rand"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/parameter"
	"glyphstorm/spatial"
	"glyphstorm/vmath"
)

// CollisionResult is everything the collision pass produced in one frame.
// Slices are reused between frames; consume before the next Update.
type CollisionResult struct {
	Kills []KillEvent
	Hits  []HitEvent

	// PlayerHit is set when damage actually landed, not when it was
	// absorbed by the invulnerability window.
	PlayerHit    bool
	PlayerDamage float64
}

func (r *CollisionResult) reset() {
	r.Kills = r.Kills[:0]
	r.Hits = r.Hits[:0]
	r.PlayerHit = false
	r.PlayerDamage = 0
}

// CollisionSystem resolves overlap interactions. It owns the spatial
// hash, rebuilt from live enemies once per frame, and runs the passes in
// a fixed order: projectiles against enemies, drones against enemies,
// enemies and enemy shots against the player, then enemy separation.
type CollisionSystem struct {
	hash *spatial.Hash
	buf  []*component.Enemy
	res  CollisionResult
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{hash: spatial.NewHash(parameter.SpatialCellSize)}
}

// HashStats reports occupied cell and entity counts from the last Build,
// for the status registry.
func (cs *CollisionSystem) HashStats() (cells, entities int) {
	return cs.hash.Stats()
}

// Update runs all passes for one frame. godMode suppresses player damage
// without disturbing the rest of the resolution. The result is valid
// until the next call.
func (cs *CollisionSystem) Update(player *component.Player, projectiles []*component.Projectile, drones []*component.OrbitDrone, shots []*component.EnemyShot, enemies []*component.Enemy, rng *rand.Rand, godMode bool) *CollisionResult {
	cs.res.reset()
	cs.hash.Build(enemies)

	cs.projectilesVsEnemies(projectiles)
	cs.dronesVsEnemies(drones)
	cs.enemiesVsPlayer(player, shots, godMode)
	cs.separateEnemies(enemies, rng)

	return &cs.res
}

// projectilesVsEnemies damages each enemy a shot overlaps at most once
// per shot lifetime, destroying the shot once its pierce budget is spent.
func (cs *CollisionSystem) projectilesVsEnemies(projectiles []*component.Projectile) {
	for _, p := range projectiles {
		if !p.Alive {
			continue
		}
		cs.buf = cs.hash.Nearby(p.Pos, p.Radius+content.MaxEnemyRadius, cs.buf)
		for _, e := range cs.buf {
			if !p.Alive {
				break
			}
			if p.HasHit(e) || !overlap(p.Pos, p.Radius, e.Pos, e.Radius) {
				continue
			}
			cs.res.Hits = append(cs.res.Hits, HitEvent{Pos: e.Pos, Amount: p.Damage})
			if e.TakeDamage(p.Damage) {
				cs.res.Kills = append(cs.res.Kills, KillEvent{Def: e.Def, Pos: e.Pos})
			}
			p.RegisterHit(e)
		}
	}
}

// dronesVsEnemies applies orbit contact damage gated by the per-enemy
// re-hit cooldown each drone carries.
func (cs *CollisionSystem) dronesVsEnemies(drones []*component.OrbitDrone) {
	for _, d := range drones {
		cs.buf = cs.hash.Nearby(d.Pos, d.Radius+content.MaxEnemyRadius, cs.buf)
		for _, e := range cs.buf {
			if !d.CanHit(e) || !overlap(d.Pos, d.Radius, e.Pos, e.Radius) {
				continue
			}
			cs.res.Hits = append(cs.res.Hits, HitEvent{Pos: e.Pos, Amount: d.Damage})
			if e.TakeDamage(d.Damage) {
				cs.res.Kills = append(cs.res.Kills, KillEvent{Def: e.Def, Pos: e.Pos})
			}
			d.RegisterHit(e)
		}
	}
}

// enemiesVsPlayer sums every damage source touching the player this
// frame into one application, so simultaneous contacts consume a single
// invulnerability window instead of stacking.
func (cs *CollisionSystem) enemiesVsPlayer(player *component.Player, shots []*component.EnemyShot, godMode bool) {
	total := 0.0

	cs.buf = cs.hash.Nearby(player.Pos, player.Radius+content.MaxEnemyRadius, cs.buf)
	for _, e := range cs.buf {
		if overlap(player.Pos, player.Radius, e.Pos, e.Radius) {
			total += e.Damage
		}
	}

	for _, s := range shots {
		if !s.Alive {
			continue
		}
		if overlap(player.Pos, player.Radius, s.Pos, s.Radius) {
			total += s.Damage
			s.Alive = false
		}
	}

	if total <= 0 || godMode {
		return
	}
	if player.TakeDamage(total) {
		cs.res.PlayerHit = true
		cs.res.PlayerDamage = total
	}
}

// separateEnemies nudges overlapping enemies apart so crowds spread into
// a front instead of stacking into one cell. Each enemy shifts itself by
// half the correction; the neighbor does its own half when visited.
// Exactly coincident positions get a random push direction.
func (cs *CollisionSystem) separateEnemies(enemies []*component.Enemy, rng *rand.Rand) {
	for _, e := range enemies {
		if !e.Collidable() {
			continue
		}
		cs.buf = cs.hash.Nearby(e.Pos, e.Radius+content.MaxEnemyRadius, cs.buf)
		for _, other := range cs.buf {
			if other == e {
				continue
			}
			gap := e.Radius + other.Radius
			deltaSq := e.Pos.DistanceSq(other.Pos)
			if deltaSq >= gap*gap {
				continue
			}

			dir := e.Pos.Sub(other.Pos).Normalize()
			if dir.IsZero() {
				dir = vmath.FromAngle(rng.Float64() * 2 * math.Pi)
			}
			depth := gap - math.Sqrt(deltaSq)
			shift := math.Min(depth, parameter.EnemySeparationPush) * 0.5
			e.Pos = e.Pos.Add(dir.Scale(shift))
		}
		e.Pos = clampToWorld(e.Pos, e.Radius)
	}
}

func overlap(aPos vmath.Vec2, aRadius float64, bPos vmath.Vec2, bRadius float64) bool {
	reach := aRadius + bRadius
	return aPos.DistanceSq(bPos) < reach*reach
}
