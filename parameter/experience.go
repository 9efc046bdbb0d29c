package parameter

// Level Curve
const (
	// XPBase is the base of the exponential level threshold curve
	XPBase = 4.0

	// XPGrowth is the per-level multiplier of the threshold curve.
	// Threshold for level L is floor(XPBase * XPGrowth^L)
	XPGrowth = 1.25
)

// Level Up
const (
	// LevelUpChoices is how many upgrade options are offered per level
	LevelUpChoices = 3
)

// Pickups
const (
	// PickupCap bounds live pickups, oldest evicted on overflow
	PickupCap = 400

	// PickupBaseRadius is the smallest pickup visual/collision radius
	PickupBaseRadius = 0.4

	// PickupRadiusPerValue grows pickup radius with stored value
	PickupRadiusPerValue = 0.02

	// PickupMagnetRadius is a pickup's own attraction radius before the
	// player's pull radius is considered
	PickupMagnetRadius = 3.0
)

// Drops
const (
	// HealthDropChance is the probability a kill drops a health pickup
	HealthDropChance = 0.04

	// HealthDropAmount is the heal granted by a health pickup
	HealthDropAmount = 10

	// GoldDropChance is the probability a kill drops gold
	GoldDropChance = 0.08

	// GoldDropMax is the largest gold value in a single drop
	GoldDropMax = 3
)
