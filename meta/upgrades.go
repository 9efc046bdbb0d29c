package meta

import (
	"math"
	"sort"

	"glyphstorm/content"
)

// UpgradeID keys the permanent hub upgrade table
type UpgradeID string

// UpgradeDef is one purchasable permanent bonus. Cost rises per level
// already owned; Effect and Magnitude reuse the passive stat fold so a
// hub level behaves exactly like an in-run passive level
type UpgradeDef struct {
	ID         UpgradeID
	Name       string
	Detail     string
	MaxLevel   int
	BaseCost   int
	CostGrowth float64
	Effect     content.PassiveEffectKind
	Magnitude  float64
}

// Upgrades is the hub catalog, frozen after init
var Upgrades = map[UpgradeID]*UpgradeDef{
	"stock":  {ID: "stock", Name: "Heavy Stock", Detail: "+15 max health", MaxLevel: 5, BaseCost: 40, CostGrowth: 1.6, Effect: content.EffectMaxHealth, Magnitude: 15},
	"nib":    {ID: "nib", Name: "Sharpened Nib", Detail: "+8% damage", MaxLevel: 5, BaseCost: 50, CostGrowth: 1.6, Effect: content.EffectDamageMult, Magnitude: 0.08},
	"stride": {ID: "stride", Name: "Italic Stride", Detail: "+5% move speed", MaxLevel: 4, BaseCost: 45, CostGrowth: 1.6, Effect: content.EffectSpeedMult, Magnitude: 0.05},
	"lure":   {ID: "lure", Name: "Greedy Gutter", Detail: "+1.2 pickup radius", MaxLevel: 4, BaseCost: 35, CostGrowth: 1.5, Effect: content.EffectPickupRadius, Magnitude: 1.2},
}

// UpgradeByID looks up a hub upgrade. Unknown ids return ok=false
func UpgradeByID(id UpgradeID) (*UpgradeDef, bool) {
	def, ok := Upgrades[id]
	return def, ok
}

// UpgradeIDs returns the catalog keys sorted for stable menu order
func UpgradeIDs() []UpgradeID {
	ids := make([]UpgradeID, 0, len(Upgrades))
	for id := range Upgrades {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Cost returns the gold price of the next level given the owned level
func (d *UpgradeDef) Cost(owned int) int {
	return int(float64(d.BaseCost) * math.Pow(d.CostGrowth, float64(owned)))
}
