package content

import "sort"

// WeaponKind is the closed set of firing behaviors. WeaponSystem switches
// exhaustively over this enum; adding a kind means adding a firing branch
type WeaponKind int

const (
	// KindProjectile fires at the nearest enemy
	KindProjectile WeaponKind = iota
	// KindDirectional fires along the player's movement heading
	KindDirectional
	// KindSpread fans a volley across the nearest targets
	KindSpread
	// KindHoming fires seeking projectiles
	KindHoming
	// KindAura damages everything in range on a cooldown tick, no projectile
	KindAura
	// KindOrbit maintains drones circling the player, no cooldown
	KindOrbit
	// KindDeployable places mines at the player's position
	KindDeployable
)

// String returns the kind name for diagnostics
func (k WeaponKind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindDirectional:
		return "directional"
	case KindSpread:
		return "spread"
	case KindHoming:
		return "homing"
	case KindAura:
		return "aura"
	case KindOrbit:
		return "orbit"
	case KindDeployable:
		return "deployable"
	}
	return "unknown"
}

// WeaponID keys the weapon definition table
type WeaponID string

// WeaponStats are the numeric fields upgrades and passives act on.
// Effective values are derived per frame, never stored on instances
type WeaponStats struct {
	Damage      float64
	AttackSpeed float64 // Fires per second; cooldown is its inverse
	Range       float64
	Speed       float64 // Projectile travel speed
	Amount      int     // Volley size, or drone count for orbit weapons
	SpreadAngle float64 // Degrees, spread fan width per target
	Pierce      int     // Extra enemies a projectile survives hitting
	Size        float64 // Projectile radius scale

	// Orbit
	OrbitRadius float64
	OrbitSpeed  float64 // Radians per second

	// Homing
	TurnRate float64 // Radians per second

	// Deployable
	ArmDelay        float64
	Lifetime        float64
	ExplosionRadius float64
	MaxActive       int
}

// WeaponStat addresses a single WeaponStats field in upgrade overrides
type WeaponStat int

const (
	StatDamage WeaponStat = iota
	StatAttackSpeed
	StatRange
	StatSpeed
	StatAmount
	StatSpreadAngle
	StatPierce
	StatSize
	StatOrbitRadius
	StatOrbitSpeed
	StatTurnRate
	StatArmDelay
	StatLifetime
	StatExplosionRadius
	StatMaxActive
)

// WeaponUpgrade replaces one stat with an absolute value once the weapon
// reaches Level. All entries at or below the current level apply, in order
type WeaponUpgrade struct {
	Level int
	Stat  WeaponStat
	Value float64
}

// WeaponDef is the immutable descriptor for one weapon type
type WeaponDef struct {
	ID       WeaponID
	Name     string
	Glyph    rune
	Kind     WeaponKind
	MaxLevel int
	Base     WeaponStats
	Upgrades []WeaponUpgrade
}

// Weapons is the definition table, frozen after init
var Weapons = map[WeaponID]*WeaponDef{
	"bolt": {
		ID:       "bolt",
		Name:     "Arc Bolt",
		Glyph:    '*',
		Kind:     KindProjectile,
		MaxLevel: 5,
		Base: WeaponStats{
			Damage:      8,
			AttackSpeed: 1.2,
			Range:       50,
			Speed:       42,
			Amount:      1,
			Size:        1.0,
		},
		Upgrades: []WeaponUpgrade{
			{Level: 2, Stat: StatDamage, Value: 12},
			{Level: 3, Stat: StatAttackSpeed, Value: 1.6},
			{Level: 4, Stat: StatDamage, Value: 18},
			{Level: 5, Stat: StatPierce, Value: 1},
		},
	},
	"knife": {
		ID:       "knife",
		Name:     "Thrown Glyph",
		Glyph:    '/',
		Kind:     KindDirectional,
		MaxLevel: 5,
		Base: WeaponStats{
			Damage:      5,
			AttackSpeed: 2.0,
			Range:       36,
			Speed:       55,
			Amount:      1,
			Pierce:      1,
			Size:        0.8,
		},
		Upgrades: []WeaponUpgrade{
			{Level: 2, Stat: StatAttackSpeed, Value: 2.6},
			{Level: 3, Stat: StatDamage, Value: 8},
			{Level: 4, Stat: StatPierce, Value: 2},
			{Level: 5, Stat: StatAttackSpeed, Value: 3.4},
		},
	},
	"fan": {
		ID:       "fan",
		Name:     "Sigil Fan",
		Glyph:    'v',
		Kind:     KindSpread,
		MaxLevel: 5,
		Base: WeaponStats{
			Damage:      5,
			AttackSpeed: 0.9,
			Range:       40,
			Speed:       38,
			Amount:      3,
			SpreadAngle: 30,
			Size:        0.9,
		},
		Upgrades: []WeaponUpgrade{
			{Level: 2, Stat: StatAmount, Value: 4},
			{Level: 3, Stat: StatDamage, Value: 7},
			{Level: 4, Stat: StatAmount, Value: 6},
			{Level: 5, Stat: StatSpreadAngle, Value: 45},
		},
	},
	"seeker": {
		ID:       "seeker",
		Name:     "Seeker Rune",
		Glyph:    '>',
		Kind:     KindHoming,
		MaxLevel: 5,
		Base: WeaponStats{
			Damage:      10,
			AttackSpeed: 0.7,
			Range:       60,
			Speed:       30,
			Amount:      1,
			TurnRate:    4.5,
			Size:        0.9,
		},
		Upgrades: []WeaponUpgrade{
			{Level: 2, Stat: StatDamage, Value: 15},
			{Level: 3, Stat: StatAmount, Value: 2},
			{Level: 4, Stat: StatTurnRate, Value: 6.5},
			{Level: 5, Stat: StatDamage, Value: 22},
		},
	},
	"nova": {
		ID:       "nova",
		Name:     "Rune Nova",
		Glyph:    'O',
		Kind:     KindAura,
		MaxLevel: 5,
		Base: WeaponStats{
			Damage:      6,
			AttackSpeed: 0.5,
			Range:       9,
		},
		Upgrades: []WeaponUpgrade{
			{Level: 2, Stat: StatRange, Value: 11},
			{Level: 3, Stat: StatDamage, Value: 9},
			{Level: 4, Stat: StatAttackSpeed, Value: 0.7},
			{Level: 5, Stat: StatRange, Value: 14},
		},
	},
	"orbitals": {
		ID:       "orbitals",
		Name:     "Orbit Sigils",
		Glyph:    'o',
		Kind:     KindOrbit,
		MaxLevel: 5,
		Base: WeaponStats{
			Damage:      6,
			Amount:      2,
			OrbitRadius: 6,
			OrbitSpeed:  2.4,
		},
		Upgrades: []WeaponUpgrade{
			{Level: 2, Stat: StatAmount, Value: 3},
			{Level: 3, Stat: StatDamage, Value: 9},
			{Level: 4, Stat: StatAmount, Value: 4},
			{Level: 5, Stat: StatOrbitSpeed, Value: 3.2},
		},
	},
	"mines": {
		ID:       "mines",
		Name:     "Glyph Mines",
		Glyph:    '+',
		Kind:     KindDeployable,
		MaxLevel: 5,
		Base: WeaponStats{
			Damage:          18,
			AttackSpeed:     0.4,
			ArmDelay:        0.3,
			Lifetime:        8,
			ExplosionRadius: 6,
			MaxActive:       3,
		},
		Upgrades: []WeaponUpgrade{
			{Level: 2, Stat: StatDamage, Value: 26},
			{Level: 3, Stat: StatMaxActive, Value: 4},
			{Level: 4, Stat: StatExplosionRadius, Value: 8},
			{Level: 5, Stat: StatMaxActive, Value: 6},
		},
	},
}

// WeaponByID looks up a weapon definition. Unknown ids return ok=false
// and the caller skips the action
func WeaponByID(id WeaponID) (*WeaponDef, bool) {
	def, ok := Weapons[id]
	return def, ok
}

// WeaponIDs returns all table keys in stable order for choice pools
func WeaponIDs() []WeaponID {
	ids := make([]WeaponID, 0, len(Weapons))
	for id := range Weapons {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
