package content

import "sort"

// PassiveID keys the passive item definition table
type PassiveID string

// PassiveEffectKind is the closed set of passive stat contributions.
// DerivePassiveStats dispatches over it; definitions stay behavior-free data
type PassiveEffectKind int

const (
	// EffectDamageMult adds Magnitude per level to the damage multiplier
	EffectDamageMult PassiveEffectKind = iota
	// EffectSpeedMult adds Magnitude per level to movement speed
	EffectSpeedMult
	// EffectCooldownMult adds Magnitude per level to the cooldown multiplier,
	// negative values fire faster
	EffectCooldownMult
	// EffectAreaMult adds Magnitude per level to range and projectile size
	EffectAreaMult
	// EffectXPMult adds Magnitude per level to experience gain
	EffectXPMult
	// EffectPickupRadius adds Magnitude cells per level to the pull radius
	EffectPickupRadius
	// EffectRegen adds Magnitude health per second per level
	EffectRegen
	// EffectMaxHealth adds Magnitude flat max health per level
	EffectMaxHealth
)

// PassiveDef is the immutable descriptor for one passive item.
// Magnitude scales linearly with item level
type PassiveDef struct {
	ID        PassiveID
	Name      string
	Glyph     rune
	MaxLevel  int
	Effect    PassiveEffectKind
	Magnitude float64
}

// Passives is the definition table, frozen after init
var Passives = map[PassiveID]*PassiveDef{
	"power":   {ID: "power", Name: "Ink of Power", Glyph: '!', MaxLevel: 5, Effect: EffectDamageMult, Magnitude: 0.10},
	"boots":   {ID: "boots", Name: "Swift Serifs", Glyph: '~', MaxLevel: 5, Effect: EffectSpeedMult, Magnitude: 0.08},
	"focus":   {ID: "focus", Name: "Cursor Focus", Glyph: '^', MaxLevel: 5, Effect: EffectCooldownMult, Magnitude: -0.08},
	"lens":    {ID: "lens", Name: "Wide Lens", Glyph: '=', MaxLevel: 5, Effect: EffectAreaMult, Magnitude: 0.10},
	"scholar": {ID: "scholar", Name: "Margin Notes", Glyph: '?', MaxLevel: 5, Effect: EffectXPMult, Magnitude: 0.10},
	"magnet":  {ID: "magnet", Name: "Pull Quote", Glyph: '&', MaxLevel: 5, Effect: EffectPickupRadius, Magnitude: 1.5},
	"heart":   {ID: "heart", Name: "Bold Heart", Glyph: '#', MaxLevel: 5, Effect: EffectMaxHealth, Magnitude: 20},
	"salve":   {ID: "salve", Name: "White Space", Glyph: '_', MaxLevel: 5, Effect: EffectRegen, Magnitude: 0.5},
}

// PassiveByID looks up a passive definition. Unknown ids return ok=false
func PassiveByID(id PassiveID) (*PassiveDef, bool) {
	def, ok := Passives[id]
	return def, ok
}

// PassiveIDs returns all table keys in stable order for choice pools
func PassiveIDs() []PassiveID {
	ids := make([]PassiveID, 0, len(Passives))
	for id := range Passives {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PassiveItem is an owned passive: definition reference plus level
type PassiveItem struct {
	ID    PassiveID
	Level int
}
