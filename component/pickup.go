package component

import (
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// PickupType tags what collecting grants
type PickupType int

const (
	PickupXP PickupType = iota
	PickupHealth
	PickupGold
)

// Pickup is a collectible drop. It drifts toward the player once inside
// the larger of its own magnet radius or the player's pull radius
type Pickup struct {
	Pos  vmath.Vec2
	Type PickupType

	Value        int
	Radius       float64
	MagnetRadius float64
	MagnetSpeed  float64

	Alive bool
}

// NewPickup creates a drop. Radius scales with value so rich drops read
// larger on screen
func NewPickup(pos vmath.Vec2, kind PickupType, value int) *Pickup {
	return &Pickup{
		Pos:          pos,
		Type:         kind,
		Value:        value,
		Radius:       parameter.PickupBaseRadius + float64(value)*parameter.PickupRadiusPerValue,
		MagnetRadius: parameter.PickupMagnetRadius,
		MagnetSpeed:  parameter.PickupMagnetSpeed,
		Alive:        true,
	}
}

// Update applies magnetic attraction toward the player. pullRadius is the
// player's effective pickup radius; the larger of the two wins
func (pk *Pickup) Update(dt float64, playerPos vmath.Vec2, pullRadius float64) {
	if !pk.Alive {
		return
	}
	magnet := pk.MagnetRadius
	if pullRadius > magnet {
		magnet = pullRadius
	}

	to := playerPos.Sub(pk.Pos)
	if to.MagnitudeSq() > magnet*magnet {
		return
	}
	pk.Pos = pk.Pos.Add(to.Normalize().Scale(pk.MagnetSpeed * dt))
}

// Collected reports overlap with the player
func (pk *Pickup) Collected(playerPos vmath.Vec2, playerRadius float64) bool {
	reach := pk.Radius + playerRadius + parameter.PickupCollectDistance
	return pk.Pos.DistanceSq(playerPos) < reach*reach
}
