package parameter

// Player Body
const (
	// PlayerStartHealth is the base maximum health before hub bonuses
	PlayerStartHealth = 100.0

	// PlayerRadius is the collision circle radius
	PlayerRadius = 0.8

	// PlayerSpeed is movement speed in cells per second
	PlayerSpeed = 18.0

	// PlayerInvulnDuration is the post-hit grace window in seconds
	PlayerInvulnDuration = 0.8
)

// Loadout Capacity
const (
	// PlayerMaxWeapons caps the weapon roster per run
	PlayerMaxWeapons = 4

	// PlayerMaxPassives caps owned passive items per run
	PlayerMaxPassives = 4
)

// Collection
const (
	// PlayerPickupRadius is the base pull radius before passive bonuses
	PlayerPickupRadius = 4.5

	// PickupMagnetSpeed is how fast attracted pickups travel, cells per second
	PickupMagnetSpeed = 28.0

	// PickupCollectDistance is the overlap distance that consumes a pickup
	PickupCollectDistance = 1.0
)
