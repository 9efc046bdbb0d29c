package system

import (
	"math"
	"math/rand"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// Threshold returns the experience required to advance past the given
// level. The curve compounds so later levels take meaningfully longer.
func Threshold(level int) int {
	return int(parameter.XPBase * math.Pow(parameter.XPGrowth, float64(level)))
}

// AddExperience credits experience and consumes at most one level per
// call. Overflow past the threshold carries into the next level's bar,
// so a large pickup near the bar's end wastes nothing.
func AddExperience(p *component.Player, value int) bool {
	p.Experience += value
	need := Threshold(p.Level)
	if p.Experience < need {
		return false
	}
	p.Experience -= need
	p.Level++
	return true
}

// CollectEvent is one pickup absorbed this frame, for sound and VFX.
type CollectEvent struct {
	Type  component.PickupType
	Value int
	Pos   vmath.Vec2
}

// PickupResult is what the pickup pass produced in one frame. Slices are
// reused between frames; consume before the next Update.
type PickupResult struct {
	Collected    []CollectEvent
	XPGained     int
	GoldGained   int
	Healed       float64
	LevelsGained int
}

func (r *PickupResult) reset() {
	r.Collected = r.Collected[:0]
	r.XPGained = 0
	r.GoldGained = 0
	r.Healed = 0
	r.LevelsGained = 0
}

// ExperienceSystem runs pickup magnetism and collection, and routes the
// collected value: experience into the level curve, health into the
// pool, gold into the run tally.
type ExperienceSystem struct {
	res PickupResult
}

func NewExperienceSystem() *ExperienceSystem {
	return &ExperienceSystem{}
}

// Update advances every pickup and absorbs the ones touching the player.
// The result is valid until the next call.
func (es *ExperienceSystem) Update(dt float64, player *component.Player, pickups []*component.Pickup) *PickupResult {
	es.res.reset()
	pull := player.EffectivePickupRadius()

	for _, pk := range pickups {
		if !pk.Alive {
			continue
		}
		pk.Update(dt, player.Pos, pull)
		if !pk.Collected(player.Pos, player.Radius) {
			continue
		}
		pk.Alive = false
		es.res.Collected = append(es.res.Collected, CollectEvent{Type: pk.Type, Value: pk.Value, Pos: pk.Pos})

		switch pk.Type {
		case component.PickupXP:
			gained := int(math.Round(float64(pk.Value) * player.Stats.XPMult))
			if gained < 1 {
				gained = 1
			}
			es.res.XPGained += gained
			if AddExperience(player, gained) {
				es.res.LevelsGained++
			}
		case component.PickupHealth:
			before := player.Health
			player.Heal(float64(pk.Value))
			es.res.Healed += player.Health - before
		case component.PickupGold:
			es.res.GoldGained += pk.Value
		}
	}

	return &es.res
}

// BuildChoices assembles the level-up option pool: level-ups for every
// owned weapon and passive below its cap, plus new acquisitions while
// the matching roster has room. The pool is shuffled and truncated to
// the offer size; an exhausted pool degrades to the lone skip option.
func BuildChoices(player *component.Player, rng *rand.Rand) []content.UpgradeChoice {
	pool := make([]content.UpgradeChoice, 0, 16)

	for _, w := range player.Weapons {
		if w.CanLevel() {
			pool = append(pool, content.WeaponLevelChoice(w.Def, w.Level+1))
		}
	}
	if len(player.Weapons) < parameter.PlayerMaxWeapons {
		for _, id := range content.WeaponIDs() {
			if player.HasWeapon(id) {
				continue
			}
			if def, ok := content.WeaponByID(id); ok {
				pool = append(pool, content.NewWeaponChoice(def))
			}
		}
	}

	for _, item := range player.Passives {
		def, ok := content.PassiveByID(item.ID)
		if !ok {
			continue
		}
		if item.Level < def.MaxLevel {
			pool = append(pool, content.PassiveLevelChoice(def, item.Level+1))
		}
	}
	if len(player.Passives) < parameter.PlayerMaxPassives {
		for _, id := range content.PassiveIDs() {
			if player.PassiveLevel(id) > 0 {
				continue
			}
			if def, ok := content.PassiveByID(id); ok {
				pool = append(pool, content.NewPassiveChoice(def))
			}
		}
	}

	if len(pool) == 0 {
		return []content.UpgradeChoice{content.SkipChoice()}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > parameter.LevelUpChoices {
		pool = pool[:parameter.LevelUpChoices]
	}
	return pool
}

// ApplyChoice commits a selected option to the player. Unknown or stale
// choices fall through without effect; the roster methods revalidate.
func ApplyChoice(player *component.Player, choice content.UpgradeChoice) {
	switch choice.Kind {
	case content.UpgradeNewWeapon:
		player.AddWeapon(choice.WeaponID)
	case content.UpgradeWeaponLevel:
		player.LevelWeapon(choice.WeaponID)
	case content.UpgradeNewPassive:
		player.AddPassive(choice.PassiveID)
	case content.UpgradePassiveLevel:
		player.LevelPassive(choice.PassiveID)
	case content.UpgradeSkip:
	}
}
