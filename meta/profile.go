package meta

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"glyphstorm/content"
	"glyphstorm/event"
	"glyphstorm/parameter"
)

// RunRecord is one finished run in the profile history
type RunRecord struct {
	ID        string    `yaml:"id"`
	When      time.Time `yaml:"when"`
	Survived  float64   `yaml:"survived"`
	Kills     int       `yaml:"kills"`
	Level     int       `yaml:"level"`
	Gold      int       `yaml:"gold"`
	Extracted bool      `yaml:"extracted"`
}

// Profile is the persistent meta progression: banked gold, lifetime
// stats, purchased hub upgrades, and recent run history. The simulation
// never sees it; runs report through the event queue and the profile
// applies the outcome here
type Profile struct {
	Gold         int               `yaml:"gold"`
	Runs         int               `yaml:"runs"`
	Extractions  int               `yaml:"extractions"`
	TotalKills   int               `yaml:"total_kills"`
	BestSurvived float64           `yaml:"best_survived"`
	BestLevel    int               `yaml:"best_level"`
	Upgrades     map[UpgradeID]int `yaml:"upgrades"`
	History      []RunRecord       `yaml:"history"`
}

// NewProfile creates an empty profile
func NewProfile() *Profile {
	return &Profile{
		Upgrades: make(map[UpgradeID]int),
	}
}

// LoadProfile reads a profile from disk. A missing file is a fresh
// profile, not an error; a corrupt file is an error so the caller can
// refuse to overwrite it silently
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewProfile(), nil
		}
		return nil, err
	}

	p := NewProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if p.Upgrades == nil {
		p.Upgrades = make(map[UpgradeID]int)
	}
	return p, nil
}

// Save writes the profile, creating parent directories as needed
func (p *Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultProfilePath places the profile under the user config dir,
// falling back to the working directory when none is available
func DefaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "glyphstorm-profile.yml"
	}
	return filepath.Join(dir, "glyphstorm", "profile.yml")
}

// Record folds a finished run into the profile and returns the history
// entry it created
func (p *Profile) Record(end *event.RunEndedPayload) RunRecord {
	rec := RunRecord{
		ID:        uuid.NewString(),
		When:      time.Now().UTC(),
		Survived:  end.Survived,
		Kills:     end.Kills,
		Level:     end.Level,
		Gold:      end.Gold,
		Extracted: end.Extracted,
	}

	p.Gold += end.Gold
	p.Runs++
	if end.Extracted {
		p.Extractions++
	}
	p.TotalKills += end.Kills
	if end.Survived > p.BestSurvived {
		p.BestSurvived = end.Survived
	}
	if end.Level > p.BestLevel {
		p.BestLevel = end.Level
	}

	p.History = append(p.History, rec)
	if len(p.History) > parameter.ProfileHistoryCap {
		p.History = p.History[len(p.History)-parameter.ProfileHistoryCap:]
	}
	return rec
}

// UpgradeLevel returns the owned level of a hub upgrade
func (p *Profile) UpgradeLevel(id UpgradeID) int {
	return p.Upgrades[id]
}

// NextCost returns the price of the next level and whether another
// level can be bought at all
func (p *Profile) NextCost(id UpgradeID) (int, bool) {
	def, ok := UpgradeByID(id)
	if !ok {
		return 0, false
	}
	owned := p.Upgrades[id]
	if owned >= def.MaxLevel {
		return 0, false
	}
	return def.Cost(owned), true
}

// Purchase buys the next level of an upgrade when affordable
func (p *Profile) Purchase(id UpgradeID) bool {
	cost, ok := p.NextCost(id)
	if !ok || p.Gold < cost {
		return false
	}
	p.Gold -= cost
	p.Upgrades[id]++
	return true
}

// PermanentBonus folds every owned upgrade level into the stat bundle
// handed to new runs
func (p *Profile) PermanentBonus() content.PassiveStats {
	ps := content.BasePassiveStats()
	for id, level := range p.Upgrades {
		def, ok := UpgradeByID(id)
		if !ok {
			continue
		}
		contribution := def.Magnitude * float64(level)
		switch def.Effect {
		case content.EffectDamageMult:
			ps.DamageMult += contribution
		case content.EffectSpeedMult:
			ps.SpeedMult += contribution
		case content.EffectCooldownMult:
			ps.CooldownMult += contribution
		case content.EffectAreaMult:
			ps.AreaMult += contribution
		case content.EffectXPMult:
			ps.XPMult += contribution
		case content.EffectPickupRadius:
			ps.PickupRadiusBonus += contribution
		case content.EffectRegen:
			ps.HealthRegen += contribution
		case content.EffectMaxHealth:
			ps.MaxHealthBonus += contribution
		}
	}
	return ps
}
