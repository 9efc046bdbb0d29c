package engine

import (
	"math/rand"
	"sync/atomic"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/event"
	"glyphstorm/parameter"
	"glyphstorm/status"
	"glyphstorm/system"
	"glyphstorm/vmath"
)

// FrameResult collects the gameplay outcomes of one Step for the
// presentation layer: floating text, particles, screen shake. Slices are
// reused between frames; consume before the next Step.
type FrameResult struct {
	Hits       []system.HitEvent
	Kills      []system.KillEvent
	Pulses     []system.AuraPulse
	Explosions []*component.MineExplosion
	Collected  []system.CollectEvent

	PlayerHit bool
	LeveledUp bool
}

func (r *FrameResult) reset() {
	r.Hits = r.Hits[:0]
	r.Kills = r.Kills[:0]
	r.Pulses = r.Pulses[:0]
	r.Explosions = r.Explosions[:0]
	r.Collected = r.Collected[:0]
	r.PlayerHit = false
	r.LeveledUp = false
}

// Game is the simulation driver. It owns the world, the clock, the
// systems and the phase machine, and advances everything by exactly one
// frame per Step call. Step runs on a single goroutine; the event queue
// and the status registry are the only concurrency-safe surfaces.
type Game struct {
	cfg    Config
	clock  *Clock
	rng    *rand.Rand
	events *event.Queue
	reg    *status.Registry

	phase Phase
	frame int64

	world   *World
	spawner *system.SpawnSystem
	weapons *system.WeaponSystem
	collide *system.CollisionSystem
	pickups *system.ExperienceSystem

	runStart      float64
	elapsed       float64
	kills         int
	gold          int
	pendingLevels int
	choices       []content.UpgradeChoice
	choiceCursor  int
	report        *RunReport

	extractUnlocked bool
	extractPos      vmath.Vec2
	extractChannel  float64

	res       FrameResult
	minionBuf []*component.Enemy

	stFrame        *atomic.Int64
	stEnemies      *atomic.Int64
	stProjectiles  *atomic.Int64
	stPickups      *atomic.Int64
	stCells        *atomic.Int64
	stKills        *atomic.Int64
	stPhaseRejects *atomic.Int64
	stElapsed      *status.AtomicFloat
}

func NewGame(cfg Config) *Game {
	return NewGameWithClock(cfg, NewClock())
}

// NewGameWithClock wires an externally built clock, letting tests drive
// time deterministically.
func NewGameWithClock(cfg Config, clock *Clock) *Game {
	if _, ok := content.WeaponByID(cfg.StartWeapon); !ok {
		cfg.StartWeapon = content.WeaponIDs()[0]
	}

	center := vmath.V(parameter.WorldWidth/2, parameter.WorldHeight/2)
	rng := rand.New(rand.NewSource(cfg.Seed))
	reg := status.NewRegistry()

	g := &Game{
		cfg:     cfg,
		clock:   clock,
		rng:     rng,
		events:  event.NewQueue(),
		reg:     reg,
		phase:   PhaseTitle,
		world:   NewWorld(component.NewPlayer(center, cfg.StartBonus)),
		spawner: system.NewSpawnSystem(rng),
		weapons: system.NewWeaponSystem(),
		collide: system.NewCollisionSystem(),
		pickups: system.NewExperienceSystem(),

		stFrame:        reg.Ints.Get("sim.frame"),
		stEnemies:      reg.Ints.Get("sim.enemies"),
		stProjectiles:  reg.Ints.Get("sim.projectiles"),
		stPickups:      reg.Ints.Get("sim.pickups"),
		stCells:        reg.Ints.Get("sim.cells"),
		stKills:        reg.Ints.Get("run.kills"),
		stPhaseRejects: reg.Ints.Get("phase.rejected"),
		stElapsed:      reg.Floats.Get("run.elapsed"),
	}
	clock.Pause()
	return g
}

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) Events() *event.Queue { return g.events }

func (g *Game) Registry() *status.Registry { return g.reg }

func (g *Game) Player() *component.Player { return g.world.Player }

func (g *Game) Frame() int64 { return g.frame }

// ApplyPermanent installs new hub bonuses, effective immediately and for
// every following run.
func (g *Game) ApplyPermanent(ps content.PassiveStats) {
	g.cfg.StartBonus = ps
	g.world.Player.Permanent = ps
	g.world.Player.RecomputeStats()
}

// EnterHub moves to the hub from the title or summary screens. The
// caller-facing twin of BeginRun for menu flows driven outside Step.
func (g *Game) EnterHub() bool {
	return g.setPhase(PhaseHub)
}

// BeginRun resets all run state and starts the simulation. Only legal
// from the hub.
func (g *Game) BeginRun() bool {
	if !g.setPhase(PhasePlaying) {
		return false
	}

	center := vmath.V(parameter.WorldWidth/2, parameter.WorldHeight/2)
	g.world.Player.Reset(center)
	g.world.Reset()
	g.weapons.Reset()
	g.spawner.Reset()

	if !g.world.Player.AddWeapon(g.cfg.StartWeapon) {
		g.world.Player.AddWeapon(content.WeaponIDs()[0])
	}

	g.kills = 0
	g.gold = 0
	g.pendingLevels = 0
	g.choices = nil
	g.choiceCursor = 0
	g.report = nil
	g.extractUnlocked = false
	g.extractChannel = 0

	g.runStart = g.clock.Seconds()
	g.elapsed = 0
	g.clock.Tick() // drop any stale delta from menu time
	return true
}

// Step advances the game by one frame: input first, then whichever logic
// the current phase runs. Returns the frame's gameplay outcomes; the
// result is valid until the next Step.
func (g *Game) Step(in InputSource) *FrameResult {
	g.frame++
	g.res.reset()

	switch g.phase {
	case PhaseTitle:
		if in.Consume(ActionConfirm) {
			g.events.PushSound(event.SoundUISelect, g.frame)
			g.setPhase(PhaseHub)
		}
	case PhaseHub:
		// Hub menus run in the caller; transitions arrive via BeginRun.
	case PhasePlaying:
		if in.Consume(ActionPause) {
			g.events.PushSound(event.SoundUISelect, g.frame)
			g.setPhase(PhasePaused)
		} else {
			g.simulate(in)
		}
	case PhasePaused:
		if in.Consume(ActionPause) || in.Consume(ActionConfirm) {
			g.events.PushSound(event.SoundUISelect, g.frame)
			g.setPhase(PhasePlaying)
		} else if in.Consume(ActionCancel) {
			// Abandoning banks like a death.
			g.endRun(false)
		}
	case PhaseLevelUp:
		g.stepLevelUp(in)
	case PhaseSummary:
		if in.Consume(ActionConfirm) {
			g.events.PushSound(event.SoundUISelect, g.frame)
			g.setPhase(PhaseHub)
		}
	}

	g.updateStatus()
	return &g.res
}

// simulate runs the fixed update pipeline for one playing frame.
func (g *Game) simulate(in InputSource) {
	dt := g.clock.Tick()
	g.elapsed = g.clock.Seconds() - g.runStart
	move := in.MoveVector()
	player := g.world.Player

	player.Update(dt, move)

	wres := g.weapons.Update(dt, player, move, g.world.Enemies)
	for _, pr := range wres.Projectiles {
		g.world.AddProjectile(pr)
	}
	system.AdvanceProjectiles(dt, g.world.Projectiles)

	for _, e := range g.world.Enemies {
		if shot := e.Update(dt, player.Pos); shot != nil {
			g.world.AddEnemyShot(shot)
		}
	}
	for _, s := range g.world.EnemyShots {
		if s.Alive {
			s.Update(dt)
		}
	}

	if !g.cfg.NoSpawn {
		for _, e := range g.spawner.Update(dt, g.elapsed, player.Pos, g.world.LiveEnemies()) {
			g.world.AddEnemy(e)
		}
	}

	cres := g.collide.Update(player, g.world.Projectiles, g.weapons.Drones(), g.world.EnemyShots, g.world.Enemies, g.rng, g.cfg.GodMode)
	pres := g.pickups.Update(dt, player, g.world.Pickups)

	g.res.Hits = append(g.res.Hits, wres.Hits...)
	g.res.Hits = append(g.res.Hits, cres.Hits...)
	g.res.Pulses = append(g.res.Pulses, wres.Pulses...)
	g.res.Explosions = append(g.res.Explosions, wres.Explosions...)
	g.res.Collected = append(g.res.Collected, pres.Collected...)
	g.res.PlayerHit = cres.PlayerHit

	g.processKills(wres.Kills)
	g.processKills(cres.Kills)

	g.gold += pres.GoldGained
	g.pendingLevels += pres.LevelsGained

	g.pushFrameSounds(wres, cres, pres)

	g.world.Sweep()

	if player.Dead() {
		g.endRun(false)
		return
	}

	g.updateExtraction(dt, player)
	if g.phase != PhasePlaying {
		return
	}

	if g.pendingLevels > 0 {
		g.pendingLevels--
		g.choices = system.BuildChoices(player, g.rng)
		g.choiceCursor = 0
		g.res.LeveledUp = true
		g.events.PushSound(event.SoundLevelUp, g.frame)
		g.setPhase(PhaseLevelUp)
	}
}

// processKills runs the death pipeline: counters, drops, swarm bursts.
func (g *Game) processKills(kills []system.KillEvent) {
	for _, k := range kills {
		g.kills++
		g.res.Kills = append(g.res.Kills, k)

		g.world.AddPickup(component.NewPickup(k.Pos, component.PickupXP, k.Def.XP))
		if g.rng.Float64() < parameter.HealthDropChance {
			g.world.AddPickup(component.NewPickup(g.jitter(k.Pos), component.PickupHealth, parameter.HealthDropAmount))
		}
		if g.rng.Float64() < parameter.GoldDropChance {
			g.world.AddPickup(component.NewPickup(g.jitter(k.Pos), component.PickupGold, 1+g.rng.Intn(parameter.GoldDropMax)))
		}

		if k.Def.Class == content.ClassSwarm {
			g.minionBuf = g.spawner.Minions(k.Def, k.Pos, g.world.LiveEnemies(), g.minionBuf[:0])
			for _, m := range g.minionBuf {
				g.world.AddEnemy(m)
			}
		}
	}
}

// jitter offsets drop positions so stacked drops stay clickable apart.
func (g *Game) jitter(pos vmath.Vec2) vmath.Vec2 {
	return pos.Add(vmath.V((g.rng.Float64()*2-1)*1.5, (g.rng.Float64()*2-1)*1.5))
}

func (g *Game) pushFrameSounds(wres *system.WeaponResult, cres *system.CollisionResult, pres *system.PickupResult) {
	if wres.Fired {
		g.events.PushSound(event.SoundShoot, g.frame)
	}
	if wres.MinesPlaced > 0 {
		g.events.PushSound(event.SoundMinePlace, g.frame)
	}
	if len(wres.Explosions) > 0 {
		g.events.PushSound(event.SoundExplosion, g.frame)
	}
	if len(g.res.Kills) > 0 {
		g.events.PushSound(event.SoundKill, g.frame)
	} else if len(g.res.Hits) > 0 {
		g.events.PushSound(event.SoundHit, g.frame)
	}
	if cres.PlayerHit {
		g.events.PushSound(event.SoundPlayerHurt, g.frame)
	}
	if len(pres.Collected) > 0 {
		g.events.PushSound(event.SoundPickup, g.frame)
	}
}

// updateExtraction opens the exit zone at the unlock time and tracks the
// channel. Leaving the zone resets progress.
func (g *Game) updateExtraction(dt float64, player *component.Player) {
	if !g.extractUnlocked {
		if g.elapsed < parameter.ExtractionUnlockTime {
			return
		}
		g.extractUnlocked = true
		g.extractPos = g.pickExtractionPos(player.Pos)
		g.events.PushSound(event.SoundExtraction, g.frame)
		return
	}

	if player.Pos.Distance(g.extractPos) <= parameter.ExtractionZoneRadius {
		g.extractChannel += dt
		if g.extractChannel >= parameter.ExtractionChannelTime {
			g.endRun(true)
		}
		return
	}
	g.extractChannel = 0
}

// pickExtractionPos places the zone away from the player so reaching it
// is a run of its own. Gives up on the distance constraint after a few
// tries rather than looping on a small world.
func (g *Game) pickExtractionPos(playerPos vmath.Vec2) vmath.Vec2 {
	inset := parameter.ExtractionZoneRadius + 2
	var pos vmath.Vec2
	for i := 0; i < 8; i++ {
		pos = vmath.V(
			inset+g.rng.Float64()*(parameter.WorldWidth-2*inset),
			inset+g.rng.Float64()*(parameter.WorldHeight-2*inset),
		)
		if pos.Distance(playerPos) >= 60 {
			break
		}
	}
	return pos
}

// stepLevelUp handles the suspended upgrade menu. Digits select
// directly; up/down plus confirm walk the highlight.
func (g *Game) stepLevelUp(in InputSource) {
	switch {
	case in.Consume(ActionChoice1):
		g.applyChoice(0)
	case in.Consume(ActionChoice2):
		g.applyChoice(1)
	case in.Consume(ActionChoice3):
		g.applyChoice(2)
	case in.Consume(ActionUp):
		g.moveCursor(-1)
	case in.Consume(ActionDown):
		g.moveCursor(1)
	case in.Consume(ActionConfirm):
		g.applyChoice(g.choiceCursor)
	}
}

func (g *Game) moveCursor(delta int) {
	if len(g.choices) == 0 {
		return
	}
	g.events.PushSound(event.SoundUIMove, g.frame)
	g.choiceCursor = (g.choiceCursor + delta + len(g.choices)) % len(g.choices)
}

// applyChoice commits the selected option. With further levels banked the
// menu reopens with a fresh pool instead of returning to play.
func (g *Game) applyChoice(index int) {
	if index < 0 || index >= len(g.choices) {
		return
	}
	system.ApplyChoice(g.world.Player, g.choices[index])
	g.events.PushSound(event.SoundUISelect, g.frame)

	if g.pendingLevels > 0 {
		g.pendingLevels--
		g.choices = system.BuildChoices(g.world.Player, g.rng)
		g.choiceCursor = 0
		return
	}
	g.choices = nil
	g.choiceCursor = 0
	g.setPhase(PhasePlaying)
}

// endRun freezes the simulation and publishes the report.
func (g *Game) endRun(extracted bool) {
	g.report = &RunReport{
		Survived:  g.elapsed,
		Kills:     g.kills,
		Level:     g.world.Player.Level,
		GoldFound: g.gold,
		Extracted: extracted,
	}
	if extracted {
		g.events.PushSound(event.SoundExtraction, g.frame)
	} else {
		g.events.PushSound(event.SoundGameOver, g.frame)
	}
	g.setPhase(PhaseSummary)
	g.events.Push(event.GameEvent{
		Type:  event.EventRunEnded,
		Frame: g.frame,
		Payload: &event.RunEndedPayload{
			Extracted: extracted,
			Survived:  g.report.Survived,
			Kills:     g.report.Kills,
			Level:     g.report.Level,
			Gold:      g.report.GoldEarned(),
		},
	})
}

// setPhase validates the edge, swaps the phase, manages the clock and
// announces the change. Illegal edges are dropped and counted.
func (g *Game) setPhase(to Phase) bool {
	if g.phase == to {
		return true
	}
	if !phaseAllowed(g.phase, to) {
		g.stPhaseRejects.Add(1)
		return false
	}
	from := g.phase
	g.phase = to

	if to == PhasePlaying {
		g.clock.Resume()
		g.clock.Tick() // fresh delta reference for the first frame back
	} else {
		g.clock.Pause()
	}

	g.events.Push(event.GameEvent{
		Type:    event.EventPhaseChanged,
		Frame:   g.frame,
		Payload: &event.PhaseChangedPayload{From: from.String(), To: to.String()},
	})
	return true
}

func (g *Game) updateStatus() {
	g.stFrame.Store(g.frame)
	g.stEnemies.Store(int64(len(g.world.Enemies)))
	g.stProjectiles.Store(int64(len(g.world.Projectiles)))
	g.stPickups.Store(int64(len(g.world.Pickups)))
	cells, _ := g.collide.HashStats()
	g.stCells.Store(int64(cells))
	g.stKills.Store(int64(g.kills))
	g.stElapsed.Set(g.elapsed)
}

// Snapshot exposes the current frame to the presentation layer. The
// returned value shares slices with the live world; treat as read-only
// and do not hold across Steps.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:       g.phase,
		Frame:       g.frame,
		RunElapsed:  g.elapsed,
		Player:      g.world.Player,
		Enemies:     g.world.Enemies,
		Projectiles: g.world.Projectiles,
		EnemyShots:  g.world.EnemyShots,
		Pickups:     g.world.Pickups,
		Drones:      g.weapons.Drones(),
		Mines:       g.weapons.Mines(),
		Kills:       g.kills,
		Gold:        g.gold,

		PendingChoices: g.choices,
		ChoiceCursor:   g.choiceCursor,
		Report:         g.report,

		Extraction: ExtractionView{
			Unlocked: g.extractUnlocked,
			Pos:      g.extractPos,
			Radius:   parameter.ExtractionZoneRadius,
			Channel:  g.extractChannel / parameter.ExtractionChannelTime,
		},
		CameraTarget: g.world.Player.Pos,
	}
}
