package content

import "fmt"

// UpgradeKind is the closed set of level-up choice effects. A single
// dispatcher applies them; the choice data carries no behavior
type UpgradeKind int

const (
	// UpgradeNewWeapon adds an unowned weapon at level 1
	UpgradeNewWeapon UpgradeKind = iota
	// UpgradeWeaponLevel raises an owned weapon one level
	UpgradeWeaponLevel
	// UpgradeNewPassive adds an unowned passive at level 1
	UpgradeNewPassive
	// UpgradePassiveLevel raises an owned passive one level
	UpgradePassiveLevel
	// UpgradeSkip is offered alone when everything is maxed and full
	UpgradeSkip
)

// UpgradeChoice is one selectable level-up option
type UpgradeChoice struct {
	Kind      UpgradeKind
	WeaponID  WeaponID  // Set for weapon kinds
	PassiveID PassiveID // Set for passive kinds
	Name      string
	Detail    string
}

// SkipChoice is the fallback option for an empty pool
func SkipChoice() UpgradeChoice {
	return UpgradeChoice{Kind: UpgradeSkip, Name: "Skip", Detail: "Take nothing"}
}

// NewWeaponChoice builds the option for acquiring id
func NewWeaponChoice(def *WeaponDef) UpgradeChoice {
	return UpgradeChoice{
		Kind:     UpgradeNewWeapon,
		WeaponID: def.ID,
		Name:     def.Name,
		Detail:   fmt.Sprintf("New weapon (%s)", def.Kind),
	}
}

// WeaponLevelChoice builds the option for levelling an owned weapon
func WeaponLevelChoice(def *WeaponDef, nextLevel int) UpgradeChoice {
	return UpgradeChoice{
		Kind:     UpgradeWeaponLevel,
		WeaponID: def.ID,
		Name:     def.Name,
		Detail:   fmt.Sprintf("Weapon level %d", nextLevel),
	}
}

// NewPassiveChoice builds the option for acquiring id
func NewPassiveChoice(def *PassiveDef) UpgradeChoice {
	return UpgradeChoice{
		Kind:      UpgradeNewPassive,
		PassiveID: def.ID,
		Name:      def.Name,
		Detail:    "New passive",
	}
}

// PassiveLevelChoice builds the option for levelling an owned passive
func PassiveLevelChoice(def *PassiveDef, nextLevel int) UpgradeChoice {
	return UpgradeChoice{
		Kind:      UpgradePassiveLevel,
		PassiveID: def.ID,
		Name:      def.Name,
		Detail:    fmt.Sprintf("Passive level %d", nextLevel),
	}
}
