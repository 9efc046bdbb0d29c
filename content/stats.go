package content

import "glyphstorm/parameter"

// PassiveStats is the derived modifier bundle from owned passives.
// Recomputed whenever the passive roster changes, never incrementally
type PassiveStats struct {
	DamageMult        float64
	SpeedMult         float64
	CooldownMult      float64 // Added to 1; negative fires faster
	AreaMult          float64
	XPMult            float64
	PickupRadiusBonus float64
	HealthRegen       float64
	MaxHealthBonus    float64
}

// BasePassiveStats returns the identity bundle of an empty roster
func BasePassiveStats() PassiveStats {
	return PassiveStats{
		DamageMult:   1,
		SpeedMult:    1,
		CooldownMult: 0,
		AreaMult:     1,
		XPMult:       1,
	}
}

// DerivePassiveStats folds every owned item into a fresh bundle.
// Unknown ids are skipped, the rest of the roster still applies
func DerivePassiveStats(items []PassiveItem) PassiveStats {
	ps := BasePassiveStats()
	for _, item := range items {
		def, ok := PassiveByID(item.ID)
		if !ok {
			continue
		}
		contribution := def.Magnitude * float64(item.Level)
		switch def.Effect {
		case EffectDamageMult:
			ps.DamageMult += contribution
		case EffectSpeedMult:
			ps.SpeedMult += contribution
		case EffectCooldownMult:
			ps.CooldownMult += contribution
		case EffectAreaMult:
			ps.AreaMult += contribution
		case EffectXPMult:
			ps.XPMult += contribution
		case EffectPickupRadius:
			ps.PickupRadiusBonus += contribution
		case EffectRegen:
			ps.HealthRegen += contribution
		case EffectMaxHealth:
			ps.MaxHealthBonus += contribution
		}
	}
	return ps
}

// EffectiveStats derives the live stats for a weapon at the given level.
// Upgrade overrides are absolute replacements applied for every entry whose
// level threshold is reached, then passive multipliers scale the result
func EffectiveStats(def *WeaponDef, level int, ps PassiveStats) WeaponStats {
	stats := def.Base
	for _, up := range def.Upgrades {
		if up.Level <= level {
			applyOverride(&stats, up.Stat, up.Value)
		}
	}

	stats.Damage *= ps.DamageMult
	stats.Range *= ps.AreaMult
	stats.ExplosionRadius *= ps.AreaMult
	stats.Size *= ps.AreaMult
	return stats
}

// FireCooldown returns seconds between shots:
// inverse attack speed scaled by the passive cooldown multiplier
func FireCooldown(stats WeaponStats, ps PassiveStats) float64 {
	if stats.AttackSpeed <= 0 {
		return parameter.MinFireCooldown
	}
	cd := (1.0 / stats.AttackSpeed) * (1.0 + ps.CooldownMult)
	if cd < parameter.MinFireCooldown {
		cd = parameter.MinFireCooldown
	}
	return cd
}

func applyOverride(stats *WeaponStats, stat WeaponStat, value float64) {
	switch stat {
	case StatDamage:
		stats.Damage = value
	case StatAttackSpeed:
		stats.AttackSpeed = value
	case StatRange:
		stats.Range = value
	case StatSpeed:
		stats.Speed = value
	case StatAmount:
		stats.Amount = int(value)
	case StatSpreadAngle:
		stats.SpreadAngle = value
	case StatPierce:
		stats.Pierce = int(value)
	case StatSize:
		stats.Size = value
	case StatOrbitRadius:
		stats.OrbitRadius = value
	case StatOrbitSpeed:
		stats.OrbitSpeed = value
	case StatTurnRate:
		stats.TurnRate = value
	case StatArmDelay:
		stats.ArmDelay = value
	case StatLifetime:
		stats.Lifetime = value
	case StatExplosionRadius:
		stats.ExplosionRadius = value
	case StatMaxActive:
		stats.MaxActive = int(value)
	}
}
