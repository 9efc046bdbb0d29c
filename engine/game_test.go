package engine

import (
	"testing"
	"time"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/event"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// stubInput is a scriptable InputSource for driver tests.
type stubInput struct {
	move    vmath.Vec2
	pressed map[Action]bool
}

func (s *stubInput) MoveVector() vmath.Vec2 {
	return s.move
}

func (s *stubInput) Consume(a Action) bool {
	if s.pressed[a] {
		delete(s.pressed, a)
		return true
	}
	return false
}

func (s *stubInput) press(a Action) {
	if s.pressed == nil {
		s.pressed = make(map[Action]bool)
	}
	s.pressed[a] = true
}

type testRig struct {
	g  *Game
	ft *fakeTime
	in *stubInput
}

func newRig(t *testing.T, cfg Config) *testRig {
	t.Helper()
	ft := newFakeTime()
	return &testRig{
		g:  NewGameWithClock(cfg, NewClockWithSource(ft.Now)),
		ft: ft,
		in: &stubInput{},
	}
}

// step advances one 60fps frame.
func (r *testRig) step() *FrameResult {
	r.ft.Advance(time.Second / 60)
	return r.g.Step(r.in)
}

// toPlaying walks title -> hub -> playing.
func (r *testRig) toPlaying(t *testing.T) {
	t.Helper()
	r.in.press(ActionConfirm)
	r.step()
	if r.g.Phase() != PhaseHub {
		t.Fatalf("Expected hub after title confirm, got %v", r.g.Phase())
	}
	if !r.g.BeginRun() {
		t.Fatal("Expected run to begin from the hub")
	}
}

func testCfg() Config {
	cfg := DefaultConfig()
	cfg.NoSpawn = true
	return cfg
}

// TestPhaseFlowTitleToPlaying verifies the menu path into a live run
func TestPhaseFlowTitleToPlaying(t *testing.T) {
	r := newRig(t, testCfg())

	if r.g.Phase() != PhaseTitle {
		t.Fatalf("Expected title at start, got %v", r.g.Phase())
	}
	r.toPlaying(t)
	if r.g.Phase() != PhasePlaying {
		t.Fatalf("Expected playing, got %v", r.g.Phase())
	}

	p := r.g.Player()
	if !p.HasWeapon("bolt") {
		t.Errorf("Expected the starting weapon granted")
	}
	if p.Level != 1 || p.Experience != 0 {
		t.Errorf("Expected fresh progression, got level %d xp %d", p.Level, p.Experience)
	}
}

// TestBeginRunRejectedFromTitle verifies the phase machine blocks the illegal edge
func TestBeginRunRejectedFromTitle(t *testing.T) {
	r := newRig(t, testCfg())

	if r.g.BeginRun() {
		t.Errorf("Expected BeginRun rejected from the title screen")
	}
	if got := r.g.Registry().Ints.Get("phase.rejected").Load(); got != 1 {
		t.Errorf("Expected 1 rejected transition counted, got %d", got)
	}
}

// TestProjectileKillPipeline verifies two 5-damage hits kill a basic enemy and drop experience
func TestProjectileKillPipeline(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)

	p := r.g.Player()
	p.Weapons = p.Weapons[:0] // hand-driven projectiles only

	def, _ := content.EnemyByID("basic")
	enemy := component.NewEnemy(def, p.Pos.Add(vmath.V(6, 0)), r.g.rng)
	r.g.world.AddEnemy(enemy)

	fire := func() *component.Projectile {
		shot := component.NewProjectile(p.Pos, vmath.V(1, 0), 42, 5, 0.5, 0, 50)
		r.g.world.AddProjectile(shot)
		return shot
	}

	kills := 0
	shot := fire()
	for i := 0; i < 30 && shot.Alive; i++ {
		kills += len(r.step().Kills)
	}
	if shot.Alive {
		t.Fatal("Expected the first shot consumed on impact")
	}
	if enemy.Health != def.Health-5 {
		t.Errorf("Expected health %v after the first hit, got %v", def.Health-5, enemy.Health)
	}
	if enemy.Dying || kills != 0 {
		t.Fatalf("Expected the enemy alive after one hit")
	}

	shot = fire()
	for i := 0; i < 30 && shot.Alive; i++ {
		kills += len(r.step().Kills)
	}
	if !enemy.Dying {
		t.Fatal("Expected the enemy dying after the second hit")
	}
	if kills != 1 {
		t.Errorf("Expected exactly one kill reported, got %d", kills)
	}

	// Death animation runs out, the sweep removes the enemy, the drop stays.
	for i := 0; i < 30; i++ {
		r.step()
	}
	snap := r.g.Snapshot()
	if len(snap.Enemies) != 0 {
		t.Errorf("Expected the corpse swept, got %d enemies", len(snap.Enemies))
	}
	found := false
	for _, pk := range snap.Pickups {
		if pk.Type == component.PickupXP && pk.Value == def.XP {
			found = true
		}
	}
	if !found && r.g.Player().Experience == 0 {
		t.Errorf("Expected the experience drop present or already collected")
	}
}

// TestLevelUpSuspendsAndResumes verifies 5 xp at level 1 opens the upgrade menu and a pick resumes play
func TestLevelUpSuspendsAndResumes(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)
	p := r.g.Player()

	r.g.world.AddPickup(component.NewPickup(p.Pos, component.PickupXP, 5))
	res := r.step()

	if !res.LeveledUp {
		t.Fatal("Expected the level-up flag on the collection frame")
	}
	if p.Level != 2 {
		t.Errorf("Expected level 2, got %d", p.Level)
	}
	if p.Experience != 0 {
		t.Errorf("Expected an empty bar after an exact threshold, got %d", p.Experience)
	}
	if r.g.Phase() != PhaseLevelUp {
		t.Fatalf("Expected the level-up phase, got %v", r.g.Phase())
	}

	snap := r.g.Snapshot()
	if len(snap.PendingChoices) == 0 {
		t.Fatal("Expected upgrade choices offered")
	}

	// Simulation is suspended: run time freezes while the menu is up.
	before := snap.RunElapsed
	for i := 0; i < 10; i++ {
		r.step()
	}
	if got := r.g.Snapshot().RunElapsed; got != before {
		t.Errorf("Expected run time frozen in the menu, got %v from %v", got, before)
	}

	r.in.press(ActionChoice1)
	r.step()
	if r.g.Phase() != PhasePlaying {
		t.Errorf("Expected play resumed after the pick, got %v", r.g.Phase())
	}
}

// TestBankedLevelsReopenMenu verifies two level-ups in one frame produce two consecutive menus
func TestBankedLevelsReopenMenu(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)
	p := r.g.Player()

	r.g.world.AddPickup(component.NewPickup(p.Pos, component.PickupXP, 5))
	r.g.world.AddPickup(component.NewPickup(p.Pos, component.PickupXP, 6))
	r.step()

	if p.Level != 3 {
		t.Fatalf("Expected level 3 from both pickups, got %d", p.Level)
	}
	if r.g.Phase() != PhaseLevelUp {
		t.Fatalf("Expected the menu open, got %v", r.g.Phase())
	}

	r.in.press(ActionChoice1)
	r.step()
	if r.g.Phase() != PhaseLevelUp {
		t.Errorf("Expected a second menu for the banked level, got %v", r.g.Phase())
	}

	r.in.press(ActionChoice1)
	r.step()
	if r.g.Phase() != PhasePlaying {
		t.Errorf("Expected play after the second pick, got %v", r.g.Phase())
	}
}

// TestPauseFreezesRunTime verifies pausing stops elapsed time and resuming continues it
func TestPauseFreezesRunTime(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)

	for i := 0; i < 60; i++ {
		r.step()
	}
	elapsed := r.g.Snapshot().RunElapsed
	if elapsed <= 0.9 {
		t.Fatalf("Expected about a second of run time, got %v", elapsed)
	}

	r.in.press(ActionPause)
	r.step()
	if r.g.Phase() != PhasePaused {
		t.Fatalf("Expected paused, got %v", r.g.Phase())
	}

	r.ft.Advance(30 * time.Second)
	r.step()
	if got := r.g.Snapshot().RunElapsed; got != elapsed {
		t.Errorf("Expected run time frozen across the pause, got %v from %v", got, elapsed)
	}

	r.in.press(ActionPause)
	r.step()
	if r.g.Phase() != PhasePlaying {
		t.Fatalf("Expected resumed, got %v", r.g.Phase())
	}
	r.step()
	after := r.g.Snapshot().RunElapsed
	if after <= elapsed || after > elapsed+0.1 {
		t.Errorf("Expected a small step after resume, got %v from %v", after, elapsed)
	}
}

// TestAbandonBanksDeathFraction verifies quitting from pause ends the run with the death payout
func TestAbandonBanksDeathFraction(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)
	r.g.gold = 100

	r.in.press(ActionPause)
	r.step()
	r.in.press(ActionCancel)
	r.step()

	if r.g.Phase() != PhaseSummary {
		t.Fatalf("Expected the summary after abandoning, got %v", r.g.Phase())
	}
	report := r.g.Snapshot().Report
	if report == nil {
		t.Fatal("Expected a run report")
	}
	if report.Extracted {
		t.Errorf("Expected an unextracted run")
	}
	want := int(100 * parameter.DeathGoldFraction)
	if got := report.GoldEarned(); got != want {
		t.Errorf("Expected %d gold banked, got %d", want, got)
	}
}

// TestPlayerDeathEndsRun verifies a lethal hit moves the game to the summary
func TestPlayerDeathEndsRun(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)
	p := r.g.Player()
	p.Health = 1

	def, _ := content.EnemyByID("brute")
	r.g.world.AddEnemy(component.NewEnemy(def, p.Pos, r.g.rng))
	r.step()

	if r.g.Phase() != PhaseSummary {
		t.Fatalf("Expected the summary after death, got %v", r.g.Phase())
	}
	report := r.g.Snapshot().Report
	if report == nil || report.Extracted {
		t.Errorf("Expected a death report")
	}
}

// TestExtractionChannelCompletes verifies holding the zone for the channel time extracts the run
func TestExtractionChannelCompletes(t *testing.T) {
	cfg := testCfg()
	cfg.GodMode = true
	r := newRig(t, cfg)
	r.toPlaying(t)

	// Cross the unlock threshold in one stride; the delta clamp bounds
	// the simulation step while elapsed time jumps.
	r.ft.Advance(time.Duration(parameter.ExtractionUnlockTime+1) * time.Second)
	r.g.Step(r.in)

	snap := r.g.Snapshot()
	if !snap.Extraction.Unlocked {
		t.Fatal("Expected the extraction zone unlocked")
	}

	r.g.Player().Pos = snap.Extraction.Pos
	for i := 0; i < 240 && r.g.Phase() == PhasePlaying; i++ {
		r.step()
	}

	if r.g.Phase() != PhaseSummary {
		t.Fatalf("Expected extraction to end the run, got %v", r.g.Phase())
	}
	report := r.g.Snapshot().Report
	if report == nil || !report.Extracted {
		t.Fatal("Expected an extracted report")
	}
}

// TestExtractionChannelResetsOutside verifies leaving the zone zeroes the channel
func TestExtractionChannelResetsOutside(t *testing.T) {
	cfg := testCfg()
	cfg.GodMode = true
	r := newRig(t, cfg)
	r.toPlaying(t)

	r.ft.Advance(time.Duration(parameter.ExtractionUnlockTime+1) * time.Second)
	r.g.Step(r.in)
	snap := r.g.Snapshot()

	r.g.Player().Pos = snap.Extraction.Pos
	for i := 0; i < 30; i++ {
		r.step()
	}
	if r.g.Snapshot().Extraction.Channel <= 0 {
		t.Fatal("Expected channel progress inside the zone")
	}

	r.g.Player().Pos = snap.Extraction.Pos.Add(vmath.V(parameter.ExtractionZoneRadius*3, 0))
	r.step()
	if got := r.g.Snapshot().Extraction.Channel; got != 0 {
		t.Errorf("Expected channel reset outside the zone, got %v", got)
	}
}

// TestRunEndedEventPublished verifies the end-of-run event carries the banked gold
func TestRunEndedEventPublished(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)
	r.g.gold = 40
	r.g.Events().Consume() // drop menu noise

	r.in.press(ActionPause)
	r.step()
	r.in.press(ActionCancel)
	r.step()

	var ended *event.RunEndedPayload
	for _, ev := range r.g.Events().Consume() {
		if ev.Type == event.EventRunEnded {
			ended = ev.Payload.(*event.RunEndedPayload)
		}
	}
	if ended == nil {
		t.Fatal("Expected a run-ended event")
	}
	if ended.Gold != int(40*parameter.DeathGoldFraction) {
		t.Errorf("Expected banked gold in the event, got %d", ended.Gold)
	}
	if ended.Extracted {
		t.Errorf("Expected a death ending")
	}
}

// TestSwarmDeathBurstsMinions verifies a cluster kill spawns its minions
func TestSwarmDeathBurstsMinions(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)
	p := r.g.Player()
	p.Weapons = p.Weapons[:0]

	def, _ := content.EnemyByID("cluster")
	swarm := component.NewEnemy(def, p.Pos.Add(vmath.V(8, 0)), r.g.rng)
	r.g.world.AddEnemy(swarm)

	shot := component.NewProjectile(swarm.Pos, vmath.V(1, 0), 1, def.Health*2, 0.5, 0, 50)
	r.g.world.AddProjectile(shot)
	r.step()

	if !swarm.Dying {
		t.Fatal("Expected the cluster killed")
	}
	minions := 0
	for _, e := range r.g.Snapshot().Enemies {
		if e.Def.ID == def.MinionID {
			minions++
		}
	}
	if minions != def.MinionCount {
		t.Errorf("Expected %d minions after the burst, got %d", def.MinionCount, minions)
	}
}

// TestSecondRunStartsClean verifies a new run carries no state from the previous one
func TestSecondRunStartsClean(t *testing.T) {
	r := newRig(t, testCfg())
	r.toPlaying(t)
	p := r.g.Player()

	r.g.world.AddPickup(component.NewPickup(p.Pos, component.PickupXP, 5))
	r.step()
	r.in.press(ActionChoice1)
	r.step()

	r.in.press(ActionPause)
	r.step()
	r.in.press(ActionCancel)
	r.step()
	r.in.press(ActionConfirm)
	r.step() // summary -> hub

	if !r.g.BeginRun() {
		t.Fatal("Expected a second run to start")
	}
	if p.Level != 1 || p.Experience != 0 {
		t.Errorf("Expected progression reset, got level %d xp %d", p.Level, p.Experience)
	}
	snap := r.g.Snapshot()
	if len(snap.Enemies) != 0 || len(snap.Pickups) != 0 || len(snap.Projectiles) != 0 {
		t.Errorf("Expected an empty world on the second run")
	}
	if snap.Kills != 0 || snap.Gold != 0 {
		t.Errorf("Expected run counters reset, got kills %d gold %d", snap.Kills, snap.Gold)
	}
}

// TestGodModeSurvivesContact verifies god mode keeps the run alive under contact damage
func TestGodModeSurvivesContact(t *testing.T) {
	cfg := testCfg()
	cfg.GodMode = true
	r := newRig(t, cfg)
	r.toPlaying(t)
	p := r.g.Player()

	def, _ := content.EnemyByID("brute")
	r.g.world.AddEnemy(component.NewEnemy(def, p.Pos, r.g.rng))
	for i := 0; i < 60; i++ {
		r.step()
	}

	if p.Health != p.MaxHealth {
		t.Errorf("Expected full health under god mode, got %v", p.Health)
	}
	if r.g.Phase() != PhasePlaying {
		t.Errorf("Expected the run still live, got %v", r.g.Phase())
	}
}
