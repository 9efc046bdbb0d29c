package system

import (
	"math/rand"
	"testing"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/vmath"
)

func enemyAt(t *testing.T, x, y float64) *component.Enemy {
	t.Helper()
	def, ok := content.EnemyByID("basic")
	if !ok {
		t.Fatal("Expected basic enemy definition")
	}
	return component.NewEnemy(def, vmath.V(x, y), rand.New(rand.NewSource(7)))
}

// TestNearestEnemyPicksClosest verifies the single-target query returns the closest collidable enemy
func TestNearestEnemyPicksClosest(t *testing.T) {
	far := enemyAt(t, 50, 0)
	near := enemyAt(t, 10, 0)
	got, ok := NearestEnemy(vmath.V(0, 0), []*component.Enemy{far, near})
	if !ok || got != near {
		t.Errorf("Expected nearest enemy at distance 10, got %+v", got)
	}
}

// TestNearestEnemySkipsDying verifies enemies in their death animation are not targeted
func TestNearestEnemySkipsDying(t *testing.T) {
	near := enemyAt(t, 5, 0)
	far := enemyAt(t, 20, 0)
	near.TakeDamage(1000)

	got, ok := NearestEnemy(vmath.V(0, 0), []*component.Enemy{near, far})
	if !ok || got != far {
		t.Errorf("Expected dying enemy skipped in favor of the live one")
	}
}

// TestNearestEnemyEmpty verifies ok=false with no candidates
func TestNearestEnemyEmpty(t *testing.T) {
	if _, ok := NearestEnemy(vmath.V(0, 0), nil); ok {
		t.Errorf("Expected no target from an empty field")
	}
}

// TestNearestEnemyWithinRadius verifies the radius-bounded query rejects targets outside the radius
func TestNearestEnemyWithinRadius(t *testing.T) {
	e := enemyAt(t, 30, 0)
	if _, ok := NearestEnemyWithin(vmath.V(0, 0), 20, []*component.Enemy{e}); ok {
		t.Errorf("Expected no lock outside radius 20")
	}
	if got, ok := NearestEnemyWithin(vmath.V(0, 0), 40, []*component.Enemy{e}); !ok || got != e {
		t.Errorf("Expected lock inside radius 40")
	}
}

// TestNearestEnemiesOrdered verifies multi-target results come back in ascending distance order
func TestNearestEnemiesOrdered(t *testing.T) {
	a := enemyAt(t, 30, 0)
	b := enemyAt(t, 10, 0)
	c := enemyAt(t, 20, 0)

	var buf []*component.Enemy
	got := NearestEnemies(vmath.V(0, 0), 3, []*component.Enemy{a, b, c}, buf)
	if len(got) != 3 {
		t.Fatalf("Expected 3 targets, got %d", len(got))
	}
	if got[0] != b || got[1] != c || got[2] != a {
		t.Errorf("Expected targets ordered by distance 10, 20, 30")
	}
}

// TestNearestEnemiesTruncates verifies no more than n targets are returned
func TestNearestEnemiesTruncates(t *testing.T) {
	enemies := []*component.Enemy{enemyAt(t, 1, 0), enemyAt(t, 2, 0), enemyAt(t, 3, 0), enemyAt(t, 4, 0)}
	got := NearestEnemies(vmath.V(0, 0), 2, enemies, nil)
	if len(got) != 2 {
		t.Fatalf("Expected 2 targets, got %d", len(got))
	}
	if got[0].Pos.X != 1 || got[1].Pos.X != 2 {
		t.Errorf("Expected the two closest targets kept")
	}
}

// TestNearestEnemiesFewerThanRequested verifies the result is all targets when the field is small
func TestNearestEnemiesFewerThanRequested(t *testing.T) {
	e := enemyAt(t, 5, 5)
	got := NearestEnemies(vmath.V(0, 0), 4, []*component.Enemy{e}, nil)
	if len(got) != 1 || got[0] != e {
		t.Errorf("Expected the lone enemy returned for a 4-shot request")
	}
}

// TestNearestEnemiesReusesBuffer verifies the caller-owned buffer is reused across calls
func TestNearestEnemiesReusesBuffer(t *testing.T) {
	enemies := []*component.Enemy{enemyAt(t, 1, 0), enemyAt(t, 2, 0)}
	buf := make([]*component.Enemy, 0, 8)
	first := NearestEnemies(vmath.V(0, 0), 2, enemies, buf)
	second := NearestEnemies(vmath.V(0, 0), 1, enemies, first)
	if len(second) != 1 {
		t.Fatalf("Expected 1 target on reuse, got %d", len(second))
	}
	if cap(second) != cap(buf) {
		t.Errorf("Expected the same backing buffer across calls")
	}
}
