package render

// Priority determines render order. Lower values render first, so later
// layers composite over earlier ones
type Priority int

const (
	PriorityZone Priority = iota
	PriorityPickup
	PriorityMine
	PriorityProjectile
	PriorityDrone
	PriorityEnemy
	PriorityPlayer
	PriorityParticle
	PriorityText
	PriorityHUD
	PriorityOverlay
	PriorityDebug
)
