package system

import (
	"math"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// KillEvent reports an enemy crossing into its death animation this
// frame. The driver owns the follow-up: drops, minion bursts, counters.
type KillEvent struct {
	Def *content.EnemyDef
	Pos vmath.Vec2
}

// HitEvent reports damage landing, for floating combat text.
type HitEvent struct {
	Pos    vmath.Vec2
	Amount float64
}

// AuraPulse reports an aura weapon discharging, for the expanding ring VFX.
type AuraPulse struct {
	Pos    vmath.Vec2
	Radius float64
}

// WeaponResult is everything the weapon pass produced in one frame. The
// slices are reused between frames; consume before the next Update.
type WeaponResult struct {
	Projectiles []*component.Projectile
	Kills       []KillEvent
	Hits        []HitEvent
	Pulses      []AuraPulse
	Explosions  []*component.MineExplosion

	Fired       bool // any shot left the barrel, for the fire sound
	MinesPlaced int
}

func (r *WeaponResult) reset() {
	r.Projectiles = r.Projectiles[:0]
	r.Kills = r.Kills[:0]
	r.Hits = r.Hits[:0]
	r.Pulses = r.Pulses[:0]
	r.Explosions = r.Explosions[:0]
	r.Fired = false
	r.MinesPlaced = 0
}

// WeaponSystem runs the player's weapon roster: cooldowns, firing
// dispatch per weapon kind, and the lifecycle of the entities weapons
// own outright, orbit drones and mines.
type WeaponSystem struct {
	// facing is the last non-dead-zone movement direction, the aim for
	// directional weapons and the fallback when auto-aim has no target.
	facing vmath.Vec2

	drones []*component.OrbitDrone
	mines  []*component.Mine

	targetBuf []*component.Enemy
	res       WeaponResult
}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{facing: vmath.V(1, 0)}
}

// Drones exposes the live orbit formation for collision and rendering.
func (ws *WeaponSystem) Drones() []*component.OrbitDrone {
	return ws.drones
}

// Mines exposes the live minefield for rendering.
func (ws *WeaponSystem) Mines() []*component.Mine {
	return ws.mines
}

// Reset drops all weapon-owned entities for a fresh run.
func (ws *WeaponSystem) Reset() {
	ws.facing = vmath.V(1, 0)
	ws.drones = ws.drones[:0]
	ws.mines = ws.mines[:0]
}

// Update advances every owned weapon by one frame. move is the raw input
// direction used to track facing. The result is valid until the next call.
func (ws *WeaponSystem) Update(dt float64, player *component.Player, move vmath.Vec2, enemies []*component.Enemy) *WeaponResult {
	ws.res.reset()

	if move.Magnitude() >= parameter.DirectionalDeadZone {
		ws.facing = move.Normalize()
	}

	orbitActive := false
	for _, w := range player.Weapons {
		stats := w.Effective(player.Stats)

		if w.Def.Kind == content.KindOrbit {
			orbitActive = true
			ws.reconcileDrones(stats)
			continue
		}

		w.Cooldown -= dt
		if w.Cooldown > 0 {
			continue
		}

		if !ws.fire(w.Def.Kind, stats, player, enemies) {
			// No target available. Hold ready so the weapon fires the
			// instant something enters range.
			w.Cooldown = 0
			continue
		}
		w.Cooldown = content.FireCooldown(stats, player.Stats)
	}

	if !orbitActive && len(ws.drones) > 0 {
		ws.drones = ws.drones[:0]
	}
	for _, d := range ws.drones {
		d.Update(dt, player.Pos)
	}

	ws.updateMines(dt, enemies)

	return &ws.res
}

// fire dispatches one shot cycle for a ready weapon. Returns false when
// the weapon held fire for lack of a target.
func (ws *WeaponSystem) fire(kind content.WeaponKind, stats content.WeaponStats, player *component.Player, enemies []*component.Enemy) bool {
	switch kind {
	case content.KindProjectile:
		return ws.fireAimed(stats, player, enemies)
	case content.KindDirectional:
		ws.fireDirectional(stats, player)
		return true
	case content.KindSpread:
		ws.fireSpread(stats, player, enemies)
		return true
	case content.KindHoming:
		ws.fireHoming(stats, player, enemies)
		return true
	case content.KindAura:
		ws.firePulse(stats, player, enemies)
		return true
	case content.KindDeployable:
		ws.placeMine(stats, player)
		return true
	case content.KindOrbit:
		// Handled by reconcileDrones, never reaches the cooldown path.
		return true
	default:
		return true
	}
}

// fireAimed shoots Amount projectiles at the nearest enemies, cycling
// through the target list when there are more shots than targets.
func (ws *WeaponSystem) fireAimed(stats content.WeaponStats, player *component.Player, enemies []*component.Enemy) bool {
	ws.targetBuf = NearestEnemies(player.Pos, stats.Amount, enemies, ws.targetBuf)
	if len(ws.targetBuf) == 0 {
		return false
	}
	for i := 0; i < stats.Amount; i++ {
		target := ws.targetBuf[i%len(ws.targetBuf)]
		dir := target.Pos.Sub(player.Pos).Normalize()
		if dir.IsZero() {
			dir = ws.facing
		}
		ws.spawnShot(player.Pos, dir, stats, false, nil)
	}
	return true
}

// fireDirectional shoots along the facing direction, extra shots offset
// sideways into a blade wall.
func (ws *WeaponSystem) fireDirectional(stats content.WeaponStats, player *component.Player) {
	side := ws.facing.Perpendicular()
	for i := 0; i < stats.Amount; i++ {
		offset := float64(i) - float64(stats.Amount-1)/2
		pos := player.Pos.Add(side.Scale(offset * 1.2))
		ws.spawnShot(pos, ws.facing, stats, false, nil)
	}
}

// fireSpread fans Amount projectiles across SpreadAngle, centered on the
// nearest enemy when one exists and on the facing direction otherwise.
func (ws *WeaponSystem) fireSpread(stats content.WeaponStats, player *component.Player, enemies []*component.Enemy) {
	aim := ws.facing
	if target, ok := NearestEnemy(player.Pos, enemies); ok {
		if dir := target.Pos.Sub(player.Pos).Normalize(); !dir.IsZero() {
			aim = dir
		}
	}

	if stats.Amount <= 1 {
		ws.spawnShot(player.Pos, aim, stats, false, nil)
		return
	}
	arc := stats.SpreadAngle * math.Pi / 180
	step := arc / float64(stats.Amount-1)
	start := -arc / 2
	for i := 0; i < stats.Amount; i++ {
		dir := aim.Rotate(start + step*float64(i))
		ws.spawnShot(player.Pos, dir, stats, false, nil)
	}
}

// fireHoming launches steering projectiles at the nearest enemies inside
// the lock radius. With no lock, shots fly straight along facing.
func (ws *WeaponSystem) fireHoming(stats content.WeaponStats, player *component.Player, enemies []*component.Enemy) {
	ws.targetBuf = NearestEnemies(player.Pos, stats.Amount, enemies, ws.targetBuf)

	locked := ws.targetBuf[:0:0]
	for _, t := range ws.targetBuf {
		if player.Pos.DistanceSq(t.Pos) <= parameter.HomingLockRadius*parameter.HomingLockRadius {
			locked = append(locked, t)
		}
	}

	for i := 0; i < stats.Amount; i++ {
		var target *component.Enemy
		dir := ws.facing
		if len(locked) > 0 {
			target = locked[i%len(locked)]
			if d := target.Pos.Sub(player.Pos).Normalize(); !d.IsZero() {
				dir = d
			}
		}
		ws.spawnShot(player.Pos, dir, stats, true, target)
	}
}

// firePulse damages every collidable enemy inside the aura radius.
func (ws *WeaponSystem) firePulse(stats content.WeaponStats, player *component.Player, enemies []*component.Enemy) {
	ws.res.Pulses = append(ws.res.Pulses, AuraPulse{Pos: player.Pos, Radius: stats.Range})
	for _, e := range enemies {
		if !e.Collidable() {
			continue
		}
		reach := stats.Range + e.Radius
		if player.Pos.DistanceSq(e.Pos) >= reach*reach {
			continue
		}
		ws.res.Hits = append(ws.res.Hits, HitEvent{Pos: e.Pos, Amount: stats.Damage})
		if e.TakeDamage(stats.Damage) {
			ws.res.Kills = append(ws.res.Kills, KillEvent{Def: e.Def, Pos: e.Pos})
		}
	}
}

// placeMine deploys at the player's feet. At MaxActive the oldest mine is
// removed silently to make room.
func (ws *WeaponSystem) placeMine(stats content.WeaponStats, player *component.Player) {
	live := 0
	for _, m := range ws.mines {
		if m.Alive {
			live++
		}
	}
	if live >= stats.MaxActive {
		for _, m := range ws.mines {
			if m.Alive {
				m.Alive = false
				break
			}
		}
	}
	ws.mines = append(ws.mines, component.NewMine(player.Pos, stats.Damage, stats.ExplosionRadius, stats.ArmDelay, stats.Lifetime))
	ws.res.MinesPlaced++
}

// updateMines ages the minefield, applies splash damage from detonations
// and compacts dead mines out of the slice.
func (ws *WeaponSystem) updateMines(dt float64, enemies []*component.Enemy) {
	for _, m := range ws.mines {
		explosion := m.Update(dt, enemies)
		if explosion == nil {
			continue
		}
		ws.res.Explosions = append(ws.res.Explosions, explosion)
		for _, hit := range explosion.Hits {
			ws.res.Hits = append(ws.res.Hits, HitEvent{Pos: hit.Enemy.Pos, Amount: explosion.Damage})
			if hit.Enemy.TakeDamage(explosion.Damage) {
				ws.res.Kills = append(ws.res.Kills, KillEvent{Def: hit.Enemy.Def, Pos: hit.Enemy.Pos})
			}
		}
	}

	dst := ws.mines[:0]
	for _, m := range ws.mines {
		if m.Alive {
			dst = append(dst, m)
		}
	}
	for i := len(dst); i < len(ws.mines); i++ {
		ws.mines[i] = nil
	}
	ws.mines = dst
}

// reconcileDrones keeps the orbit formation matching the weapon's
// current stats. A count change rebuilds the ring at even spacing from
// the existing base angle so the formation does not visually teleport.
func (ws *WeaponSystem) reconcileDrones(stats content.WeaponStats) {
	if len(ws.drones) != stats.Amount {
		base := 0.0
		if len(ws.drones) > 0 {
			base = ws.drones[0].Angle
		}
		ws.drones = ws.drones[:0]
		for i := 0; i < stats.Amount; i++ {
			angle := base + 2*math.Pi*float64(i)/float64(stats.Amount)
			ws.drones = append(ws.drones, component.NewOrbitDrone(i, angle, stats.OrbitRadius, stats.OrbitSpeed, stats.Damage))
		}
		return
	}
	// Same count: refresh stats in place so level-ups and passive
	// changes apply without resetting angles or hit cooldowns.
	for _, d := range ws.drones {
		d.OrbitRadius = stats.OrbitRadius
		d.OrbitSpeed = stats.OrbitSpeed
		d.Damage = stats.Damage
	}
}

// spawnShot builds one projectile and records it in the frame result.
func (ws *WeaponSystem) spawnShot(pos, dir vmath.Vec2, stats content.WeaponStats, homing bool, target *component.Enemy) {
	p := component.NewProjectile(pos, dir, stats.Speed, stats.Damage, stats.Size, stats.Pierce, stats.Range)
	if homing {
		p.Homing = true
		p.TurnRate = stats.TurnRate
		p.Target = target
	}
	ws.res.Projectiles = append(ws.res.Projectiles, p)
	ws.res.Fired = true
}

// AdvanceProjectiles moves live shots, steering homing ones toward their
// target while it remains collidable. A lost target is cleared and the
// shot continues straight.
func AdvanceProjectiles(dt float64, projectiles []*component.Projectile) {
	for _, p := range projectiles {
		if !p.Alive {
			continue
		}
		if p.Homing && p.Target != nil {
			if !p.Target.Collidable() {
				p.Target = nil
			} else {
				p.Steer(p.Target.Pos, dt)
			}
		}
		p.Advance(dt)
	}
}
