package component

import (
	"math"
	"testing"

	"glyphstorm/content"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

func testPlayer() *Player {
	return NewPlayer(vmath.V(50, 50), content.BasePassiveStats())
}

// TestTakeDamageStartsInvulnerability verifies a hit opens the grace
// window for exactly the configured duration
func TestTakeDamageStartsInvulnerability(t *testing.T) {
	p := testPlayer()
	start := p.Health

	if !p.TakeDamage(20) {
		t.Fatal("Expected first hit to land")
	}
	if p.Health != start-20 {
		t.Errorf("Expected health %f, got %f", start-20, p.Health)
	}
	if !p.Invulnerable {
		t.Fatal("Expected invulnerability after the hit")
	}
	if p.InvulnTimer != parameter.PlayerInvulnDuration {
		t.Errorf("Expected timer %f, got %f", parameter.PlayerInvulnDuration, p.InvulnTimer)
	}

	if p.TakeDamage(20) {
		t.Error("Expected hit gated while invulnerable")
	}
	if p.Health != start-20 {
		t.Errorf("Expected no further damage, got %f", p.Health)
	}
}

// TestInvulnerabilityExpires verifies the window closes after the duration
func TestInvulnerabilityExpires(t *testing.T) {
	p := testPlayer()
	p.TakeDamage(10)

	elapsed := 0.0
	for elapsed < parameter.PlayerInvulnDuration+0.05 {
		p.Update(1.0/60.0, vmath.Vec2{})
		elapsed += 1.0 / 60.0
	}
	if p.Invulnerable {
		t.Error("Expected invulnerability expired")
	}
	if !p.TakeDamage(5) {
		t.Error("Expected hit to land after expiry")
	}
}

// TestMovementClampedToWorld verifies the avatar cannot leave bounds
func TestMovementClampedToWorld(t *testing.T) {
	p := testPlayer()
	p.Pos = vmath.V(1, 1)
	for i := 0; i < 120; i++ {
		p.Update(1.0/30.0, vmath.V(-1, -1))
	}
	if p.Pos.X < p.Radius || p.Pos.Y < p.Radius {
		t.Errorf("Expected clamp at radius, got (%f, %f)", p.Pos.X, p.Pos.Y)
	}
}

// TestWeaponRosterCap verifies the exclusive, capped weapon list
func TestWeaponRosterCap(t *testing.T) {
	p := testPlayer()
	ids := content.WeaponIDs()
	if len(ids) <= parameter.PlayerMaxWeapons {
		t.Fatalf("Test needs more defs than the cap, have %d", len(ids))
	}

	for i := 0; i < parameter.PlayerMaxWeapons; i++ {
		if !p.AddWeapon(ids[i]) {
			t.Fatalf("Expected slot %d to accept %s", i, ids[i])
		}
	}
	if p.AddWeapon(ids[parameter.PlayerMaxWeapons]) {
		t.Error("Expected full roster to reject a new weapon")
	}
	if p.AddWeapon(ids[0]) {
		t.Error("Expected duplicate weapon rejected")
	}
	if p.AddWeapon("no-such-weapon") {
		t.Error("Expected unknown id rejected")
	}
}

// TestPassiveRecompute verifies stat derivation updates on roster change
func TestPassiveRecompute(t *testing.T) {
	p := testPlayer()
	if !p.AddPassive("power") {
		t.Fatal("Expected power passive accepted")
	}
	if math.Abs(p.Stats.DamageMult-1.10) > 1e-9 {
		t.Errorf("Expected damage mult 1.10, got %f", p.Stats.DamageMult)
	}

	if !p.LevelPassive("power") {
		t.Fatal("Expected power level up")
	}
	if math.Abs(p.Stats.DamageMult-1.20) > 1e-9 {
		t.Errorf("Expected damage mult 1.20, got %f", p.Stats.DamageMult)
	}
}

// TestMaxHealthPassiveHealsGained verifies raising the cap grants the delta
func TestMaxHealthPassiveHealsGained(t *testing.T) {
	p := testPlayer()
	p.Health = 50
	before := p.MaxHealth

	p.AddPassive("heart")
	if p.MaxHealth <= before {
		t.Fatal("Expected max health raised")
	}
	gained := p.MaxHealth - before
	if math.Abs(p.Health-(50+gained)) > 1e-9 {
		t.Errorf("Expected health 50+%f, got %f", gained, p.Health)
	}
}

// TestResetClearsRunState verifies a fresh run starts clean
func TestResetClearsRunState(t *testing.T) {
	p := testPlayer()
	p.AddWeapon("bolt")
	p.AddPassive("power")
	p.Experience = 42
	p.Level = 7
	p.TakeDamage(30)

	p.Reset(vmath.V(10, 10))

	if p.Level != 1 || p.Experience != 0 {
		t.Errorf("Expected level 1 exp 0, got level %d exp %d", p.Level, p.Experience)
	}
	if len(p.Weapons) != 0 || len(p.Passives) != 0 {
		t.Error("Expected empty loadout after reset")
	}
	if p.Health != p.MaxHealth {
		t.Errorf("Expected full health, got %f/%f", p.Health, p.MaxHealth)
	}
	if p.Invulnerable {
		t.Error("Expected invulnerability cleared")
	}
}

// TestPermanentBonusesSurviveReset verifies hub bonuses persist across runs
func TestPermanentBonusesSurviveReset(t *testing.T) {
	perm := content.BasePassiveStats()
	perm.MaxHealthBonus = 40
	perm.DamageMult = 1.2

	p := NewPlayer(vmath.V(50, 50), perm)
	if p.MaxHealth != parameter.PlayerStartHealth+40 {
		t.Errorf("Expected max health %f, got %f", parameter.PlayerStartHealth+40.0, p.MaxHealth)
	}

	p.Reset(vmath.V(10, 10))
	if p.MaxHealth != parameter.PlayerStartHealth+40 {
		t.Errorf("Expected bonus kept after reset, got %f", p.MaxHealth)
	}
	if math.Abs(p.Stats.DamageMult-1.2) > 1e-9 {
		t.Errorf("Expected permanent damage mult 1.2, got %f", p.Stats.DamageMult)
	}
}
