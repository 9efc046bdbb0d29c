package content

import "math/rand"

// EnemyClass is the behavior archetype driving kind-specific update logic
type EnemyClass int

const (
	// ClassMelee walks at the player and deals contact damage
	ClassMelee EnemyClass = iota
	// ClassRanger holds a distance band and fires shots at the player
	ClassRanger
	// ClassSwarm walks like melee and bursts into minions on death
	ClassSwarm
)

// EnemyID keys the enemy definition table
type EnemyID string

// EnemyDef is the immutable descriptor for one enemy kind
type EnemyDef struct {
	ID     EnemyID
	Name   string
	Glyph  rune
	Class  EnemyClass
	Health float64
	Speed  float64
	Damage float64
	Radius float64
	XP     int

	// Spawn selection
	Weight     int     // Weighted-random share once unlocked
	UnlockTime float64 // Seconds into the run before this kind may spawn

	// Ranger behavior
	AttackCooldown float64
	AttackRange    float64 // Outer edge of the preferred distance band
	KeepDistance   float64 // Inner edge, backs away inside it
	ShotSpeed      float64
	ShotDamage     float64

	// Swarm behavior
	MinionID    EnemyID
	MinionCount int
}

// Enemies is the definition table, frozen after init
var Enemies = map[EnemyID]*EnemyDef{
	"basic": {
		ID:     "basic",
		Name:   "Mote",
		Glyph:  'x',
		Class:  ClassMelee,
		Health: 10,
		Speed:  7,
		Damage: 8,
		Radius: 0.8,
		XP:     2,
		Weight: 100,
	},
	"runner": {
		ID:         "runner",
		Name:       "Streak",
		Glyph:      'z',
		Class:      ClassMelee,
		Health:     8,
		Speed:      13,
		Damage:     6,
		Radius:     0.7,
		XP:         3,
		Weight:     45,
		UnlockTime: 60,
	},
	"brute": {
		ID:         "brute",
		Name:       "Blot",
		Glyph:      'X',
		Class:      ClassMelee,
		Health:     46,
		Speed:      4.5,
		Damage:     18,
		Radius:     1.4,
		XP:         8,
		Weight:     22,
		UnlockTime: 120,
	},
	"spitter": {
		ID:             "spitter",
		Name:           "Spitter",
		Glyph:          'y',
		Class:          ClassRanger,
		Health:         14,
		Speed:          6,
		Damage:         5,
		Radius:         0.8,
		XP:             5,
		Weight:         28,
		UnlockTime:     180,
		AttackCooldown: 2.4,
		AttackRange:    22,
		KeepDistance:   12,
		ShotSpeed:      18,
		ShotDamage:     7,
	},
	"cluster": {
		ID:          "cluster",
		Name:        "Cluster",
		Glyph:       '8',
		Class:       ClassSwarm,
		Health:      30,
		Speed:       5.5,
		Damage:      10,
		Radius:      1.2,
		XP:          6,
		Weight:      18,
		UnlockTime:  240,
		MinionID:    "basic",
		MinionCount: 3,
	},
}

// EnemyByID looks up an enemy definition. Unknown ids return ok=false
// and the caller skips the spawn
func EnemyByID(id EnemyID) (*EnemyDef, bool) {
	def, ok := Enemies[id]
	return def, ok
}

// MaxEnemyRadius is the largest body radius in the table. Collision
// queries widen their search window by it so no overlap is missed
var MaxEnemyRadius = func() float64 {
	max := 0.0
	for _, def := range Enemies {
		if def.Radius > max {
			max = def.Radius
		}
	}
	return max
}()

// allowedEnemies returns kinds unlocked at the given elapsed time, in
// ascending unlock order so the weight-zero fallback is deterministic
var enemyUnlockOrder = []EnemyID{"basic", "runner", "brute", "spitter", "cluster"}

func allowedEnemies(elapsed float64) []*EnemyDef {
	allowed := make([]*EnemyDef, 0, len(enemyUnlockOrder))
	for _, id := range enemyUnlockOrder {
		def := Enemies[id]
		if def != nil && def.UnlockTime <= elapsed {
			allowed = append(allowed, def)
		}
	}
	return allowed
}

// RandomEnemyID picks a weighted-random kind from the time-gated allow
// list. Zero total weight falls back to the first allowed kind. Returns
// ok=false only if nothing is unlocked
func RandomEnemyID(elapsed float64, rng *rand.Rand) (EnemyID, bool) {
	allowed := allowedEnemies(elapsed)
	if len(allowed) == 0 {
		return "", false
	}

	total := 0
	for _, def := range allowed {
		total += def.Weight
	}
	if total <= 0 {
		return allowed[0].ID, true
	}

	pick := rng.Intn(total)
	for _, def := range allowed {
		pick -= def.Weight
		if pick < 0 {
			return def.ID, true
		}
	}
	return allowed[0].ID, true
}
