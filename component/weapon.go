package component

import "glyphstorm/content"

// WeaponInstance pairs an immutable definition with the only two mutable
// fields a carried weapon has. Everything else is derived per frame
type WeaponInstance struct {
	Def      *content.WeaponDef
	Level    int
	Cooldown float64 // Seconds until next fire
}

// NewWeaponInstance creates a level 1 instance ready to fire
func NewWeaponInstance(def *content.WeaponDef) *WeaponInstance {
	return &WeaponInstance{
		Def:   def,
		Level: 1,
	}
}

// Effective derives the live stats for the current level and passives
func (w *WeaponInstance) Effective(ps content.PassiveStats) content.WeaponStats {
	return content.EffectiveStats(w.Def, w.Level, ps)
}

// CanLevel reports whether the weapon is below its definition cap
func (w *WeaponInstance) CanLevel() bool {
	return w.Level < w.Def.MaxLevel
}
