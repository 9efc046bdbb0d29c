package component

import (
	"glyphstorm/content"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// Player is the run avatar. One exists per run; Reset reinitializes it
// for a fresh run while the owning session decides when that happens
type Player struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64

	Health    float64
	MaxHealth float64

	Invulnerable bool
	InvulnTimer  float64

	Level      int
	Experience int

	Weapons  []*WeaponInstance
	Passives []content.PassiveItem

	// Stats is the merged modifier bundle: permanent hub bonuses folded
	// with the derived passive roster. Recomputed on roster change
	Stats content.PassiveStats

	// Permanent carries hub upgrade bonuses for the whole run
	Permanent content.PassiveStats

	baseSpeed     float64
	baseMaxHealth float64
}

// NewPlayer creates the avatar with permanent bonuses applied
func NewPlayer(pos vmath.Vec2, permanent content.PassiveStats) *Player {
	p := &Player{
		Radius:        parameter.PlayerRadius,
		baseSpeed:     parameter.PlayerSpeed,
		baseMaxHealth: parameter.PlayerStartHealth,
		Permanent:     permanent,
	}
	p.Reset(pos)
	return p
}

// Reset reinitializes position, health, level, and loadout for a new run.
// Permanent bonuses survive; everything earned in-run does not
func (p *Player) Reset(pos vmath.Vec2) {
	p.Pos = pos
	p.Vel = vmath.Vec2{}
	p.Level = 1
	p.Experience = 0
	p.Invulnerable = false
	p.InvulnTimer = 0
	p.Weapons = p.Weapons[:0]
	p.Passives = p.Passives[:0]
	p.RecomputeStats()
	p.Health = p.MaxHealth
}

// RecomputeStats rebuilds the merged bundle from the passive roster and
// permanent bonuses. Max health growth heals by the gained amount
func (p *Player) RecomputeStats() {
	prevMax := p.MaxHealth
	derived := content.DerivePassiveStats(p.Passives)

	merged := derived
	merged.DamageMult *= p.Permanent.DamageMult
	merged.SpeedMult *= p.Permanent.SpeedMult
	merged.AreaMult *= p.Permanent.AreaMult
	merged.XPMult *= p.Permanent.XPMult
	merged.CooldownMult += p.Permanent.CooldownMult
	merged.PickupRadiusBonus += p.Permanent.PickupRadiusBonus
	merged.HealthRegen += p.Permanent.HealthRegen
	merged.MaxHealthBonus += p.Permanent.MaxHealthBonus
	p.Stats = merged

	p.MaxHealth = p.baseMaxHealth + p.Stats.MaxHealthBonus
	if prevMax > 0 && p.MaxHealth > prevMax {
		p.Health += p.MaxHealth - prevMax
	}
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// Update advances movement, invulnerability, and regen. The move vector
// comes from the input collaborator and may be zero
func (p *Player) Update(dt float64, move vmath.Vec2) {
	p.Vel = move.Normalize().Scale(p.EffectiveSpeed())
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if p.Pos.X < p.Radius {
		p.Pos.X = p.Radius
	}
	if p.Pos.Y < p.Radius {
		p.Pos.Y = p.Radius
	}
	if p.Pos.X > parameter.WorldWidth-p.Radius {
		p.Pos.X = parameter.WorldWidth - p.Radius
	}
	if p.Pos.Y > parameter.WorldHeight-p.Radius {
		p.Pos.Y = parameter.WorldHeight - p.Radius
	}

	if p.Invulnerable {
		p.InvulnTimer -= dt
		if p.InvulnTimer <= 0 {
			p.Invulnerable = false
			p.InvulnTimer = 0
		}
	}

	if p.Stats.HealthRegen > 0 && p.Health < p.MaxHealth {
		p.Health += p.Stats.HealthRegen * dt
		if p.Health > p.MaxHealth {
			p.Health = p.MaxHealth
		}
	}
}

// TakeDamage applies one frame's accumulated contact damage. The caller
// sums simultaneous sources first so invulnerability triggers once.
// Returns true when the hit was applied (not gated by invulnerability)
func (p *Player) TakeDamage(amount float64) bool {
	if p.Invulnerable || amount <= 0 {
		return false
	}
	p.Health -= amount
	p.Invulnerable = true
	p.InvulnTimer = parameter.PlayerInvulnDuration
	return true
}

// Heal restores health up to the maximum
func (p *Player) Heal(amount float64) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// Dead reports whether health is depleted
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// EffectiveSpeed is base speed scaled by passives
func (p *Player) EffectiveSpeed() float64 {
	return p.baseSpeed * p.Stats.SpeedMult
}

// EffectivePickupRadius is base pull radius plus passive bonus
func (p *Player) EffectivePickupRadius() float64 {
	return parameter.PlayerPickupRadius + p.Stats.PickupRadiusBonus
}

// HasWeapon reports ownership of a weapon id
func (p *Player) HasWeapon(id content.WeaponID) bool {
	return p.FindWeapon(id) != nil
}

// FindWeapon returns the owned instance for id, or nil
func (p *Player) FindWeapon(id content.WeaponID) *WeaponInstance {
	for _, w := range p.Weapons {
		if w.Def.ID == id {
			return w
		}
	}
	return nil
}

// AddWeapon acquires a new weapon at level 1. Fails when the roster is
// full, the id is unknown, or the weapon is already owned
func (p *Player) AddWeapon(id content.WeaponID) bool {
	if len(p.Weapons) >= parameter.PlayerMaxWeapons || p.HasWeapon(id) {
		return false
	}
	def, ok := content.WeaponByID(id)
	if !ok {
		return false
	}
	p.Weapons = append(p.Weapons, NewWeaponInstance(def))
	return true
}

// LevelWeapon raises an owned weapon one level, capped at its max
func (p *Player) LevelWeapon(id content.WeaponID) bool {
	w := p.FindWeapon(id)
	if w == nil || !w.CanLevel() {
		return false
	}
	w.Level++
	return true
}

// PassiveLevel returns the owned level for id, zero when unowned
func (p *Player) PassiveLevel(id content.PassiveID) int {
	for _, item := range p.Passives {
		if item.ID == id {
			return item.Level
		}
	}
	return 0
}

// AddPassive acquires a new passive at level 1 and recomputes stats
func (p *Player) AddPassive(id content.PassiveID) bool {
	if len(p.Passives) >= parameter.PlayerMaxPassives || p.PassiveLevel(id) > 0 {
		return false
	}
	if _, ok := content.PassiveByID(id); !ok {
		return false
	}
	p.Passives = append(p.Passives, content.PassiveItem{ID: id, Level: 1})
	p.RecomputeStats()
	return true
}

// LevelPassive raises an owned passive one level and recomputes stats
func (p *Player) LevelPassive(id content.PassiveID) bool {
	for i, item := range p.Passives {
		if item.ID != id {
			continue
		}
		def, ok := content.PassiveByID(id)
		if !ok || item.Level >= def.MaxLevel {
			return false
		}
		p.Passives[i].Level++
		p.RecomputeStats()
		return true
	}
	return false
}
