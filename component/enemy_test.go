package component

import (
	"math/rand"
	"testing"

	"glyphstorm/content"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// TestSpeedJitterBounds verifies spawn speed stays within ±10% of base
func TestSpeedJitterBounds(t *testing.T) {
	def, _ := content.EnemyByID("basic")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		e := NewEnemy(def, vmath.V(0, 0), rng)
		lo := def.Speed * (1 - parameter.EnemySpeedJitter)
		hi := def.Speed * (1 + parameter.EnemySpeedJitter)
		if e.Speed < lo || e.Speed > hi {
			t.Fatalf("Expected speed in [%f, %f], got %f", lo, hi, e.Speed)
		}
	}
}

// TestTwoPhaseDeath verifies dying starts an animation window before
// the alive flag drops
func TestTwoPhaseDeath(t *testing.T) {
	e := testEnemyAt(t, vmath.V(0, 0))

	killed := e.TakeDamage(e.Health)
	if !killed {
		t.Fatal("Expected kill report on lethal hit")
	}
	if !e.Dying {
		t.Fatal("Expected dying phase")
	}
	if !e.Alive {
		t.Fatal("Expected alive during death animation")
	}
	if e.Collidable() {
		t.Error("Expected dying enemy out of collision")
	}

	if e.TakeDamage(100) {
		t.Error("Expected no second kill report while dying")
	}

	for i := 0; i < 30; i++ {
		e.Update(parameter.EnemyDeathDuration/10, vmath.V(100, 100))
	}
	if e.Alive {
		t.Error("Expected removal after the animation window")
	}
}

// TestMeleeSeeksPlayer verifies melee movement closes distance
func TestMeleeSeeksPlayer(t *testing.T) {
	e := testEnemyAt(t, vmath.V(0, 0))
	playerPos := vmath.V(20, 0)

	before := e.Pos.Distance(playerPos)
	for i := 0; i < 30; i++ {
		e.Update(1.0/60.0, playerPos)
	}
	if after := e.Pos.Distance(playerPos); after >= before {
		t.Errorf("Expected distance to shrink, got %f -> %f", before, after)
	}
}

// TestRangerHoldsBandAndFires verifies the distance band and shot cadence
func TestRangerHoldsBandAndFires(t *testing.T) {
	def, ok := content.EnemyByID("spitter")
	if !ok {
		t.Fatal("Expected spitter definition")
	}
	rng := rand.New(rand.NewSource(5))
	e := NewEnemy(def, vmath.V(0, 0), rng)
	playerPos := vmath.V(def.KeepDistance/2, 0)

	before := e.Pos.Distance(playerPos)
	e.Update(1.0/60.0, playerPos)
	if after := e.Pos.Distance(playerPos); after <= before {
		t.Errorf("Expected backing away inside keep distance, got %f -> %f", before, after)
	}

	var shot *EnemyShot
	e.Pos = vmath.V(def.AttackRange-2, 0)
	for i := 0; i < int(def.AttackCooldown*60)+10 && shot == nil; i++ {
		shot = e.Update(1.0/60.0, vmath.V(0, 0))
	}
	if shot == nil {
		t.Fatal("Expected a shot within one attack cycle in range")
	}
	if shot.Damage != def.ShotDamage {
		t.Errorf("Expected shot damage %f, got %f", def.ShotDamage, shot.Damage)
	}
	if !shot.Alive {
		t.Error("Expected live shot")
	}
}

// TestEnemyShotExpiresAtRange verifies hostile shots have bounded flight
func TestEnemyShotExpiresAtRange(t *testing.T) {
	s := NewEnemyShot(vmath.V(0, 0), vmath.V(1, 0), 30, 5)
	for i := 0; i < 200 && s.Alive; i++ {
		s.Update(1.0 / 30.0)
	}
	if s.Alive {
		t.Error("Expected expiry at max range")
	}
	if s.Traveled < s.Range {
		t.Errorf("Expected traveled >= %f, got %f", s.Range, s.Traveled)
	}
}

// TestHealthFraction verifies the render hint scales with damage
func TestHealthFraction(t *testing.T) {
	e := testEnemyAt(t, vmath.V(0, 0))
	if e.HealthFraction() != 1 {
		t.Errorf("Expected 1 at full health, got %f", e.HealthFraction())
	}
	e.TakeDamage(e.MaxHealth / 2)
	if f := e.HealthFraction(); f != 0.5 {
		t.Errorf("Expected 0.5, got %f", f)
	}
}
