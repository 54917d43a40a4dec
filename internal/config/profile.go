// Package config decodes character profiles from YAML. A profile is
// read-only calculator input: everything the player owns, plus the
// combat scenario to evaluate against.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/mapleidle/internal/data"
	"github.com/udisondev/mapleidle/internal/model"
	"github.com/udisondev/mapleidle/internal/stat"
)

// Profile is the YAML character profile.
type Profile struct {
	Job   string `yaml:"job"`
	Level int    `yaml:"level"`

	Combat CombatProfile `yaml:"combat"`

	Equipment         []EquipmentProfile `yaml:"equipment"`
	Artifacts         []ArtifactProfile  `yaml:"artifacts"`
	EquippedArtifacts []string           `yaml:"equipped_artifacts"`

	Weapons    []WeaponProfile    `yaml:"weapons"`
	Companions []CompanionProfile `yaml:"companions"`
	HeroPower  []StatLineProfile  `yaml:"hero_power"`
	Passives   []StatLineProfile  `yaml:"passives"`

	Guild     GuildProfile     `yaml:"guild"`
	MapleRank MapleRankProfile `yaml:"maple_rank"`
}

// CombatProfile selects the scenario the profile is evaluated in.
type CombatProfile struct {
	Mode    string `yaml:"mode"`
	Chapter int    `yaml:"chapter"`
}

// EquipmentProfile is one equipped item.
type EquipmentProfile struct {
	Slot            string           `yaml:"slot"`
	Attack          float64          `yaml:"attack"`
	MainStat        float64          `yaml:"main_stat"`
	Starforce       int              `yaml:"starforce"`
	Potentials      []PotentialEntry `yaml:"potentials"`
	BonusPotentials []PotentialEntry `yaml:"bonus_potentials"`
}

// ArtifactProfile is one owned artifact.
type ArtifactProfile struct {
	Key        string           `yaml:"key"`
	Stars      int              `yaml:"stars"`
	Potentials []PotentialEntry `yaml:"potentials"`
}

// PotentialEntry is one rolled potential line.
type PotentialEntry struct {
	Stat  string  `yaml:"stat"`
	Value float64 `yaml:"value"`
	Tier  string  `yaml:"tier"`
}

// WeaponProfile is one owned weapon.
type WeaponProfile struct {
	Rarity   string `yaml:"rarity"`
	Tier     int    `yaml:"tier"`
	Level    int    `yaml:"level"`
	Equipped bool   `yaml:"equipped"`
}

// CompanionProfile is one owned companion.
type CompanionProfile struct {
	Key      string `yaml:"key"`
	Level    int    `yaml:"level"`
	Equipped bool   `yaml:"equipped"`
}

// StatLineProfile is a generic named stat contribution.
type StatLineProfile struct {
	Source string  `yaml:"source"`
	Stat   string  `yaml:"stat"`
	Value  float64 `yaml:"value"`
}

// GuildProfile holds guild passive values.
type GuildProfile struct {
	FinalDamage float64 `yaml:"final_damage"` // decimal, 0.06 = 6%
	DamagePct   float64 `yaml:"damage_pct"`
	CritRate    float64 `yaml:"crit_rate"`
}

// MapleRankProfile holds per-stat rank levels.
type MapleRankProfile struct {
	AttackSpeed  int `yaml:"attack_speed"`
	CritRate     int `yaml:"crit_rate"`
	Damage       int `yaml:"damage"`
	BossDamage   int `yaml:"boss_damage"`
	NormalDamage int `yaml:"normal_damage"`
	CritDamage   int `yaml:"crit_damage"`
}

// DefaultProfile returns a profile with the scenario defaults filled
// in; everything else starts empty.
func DefaultProfile() Profile {
	return Profile{
		Job:   string(data.JobBowmaster),
		Level: 1,
		Combat: CombatProfile{
			Mode:    string(data.ModeBoss),
			Chapter: 1,
		},
	}
}

// LoadProfile loads a profile from a YAML file. A missing file
// returns the defaults.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("reading profile %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes a profile from YAML bytes over the defaults.
func ParseProfile(raw []byte) (Profile, error) {
	p := DefaultProfile()
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parsing profile: %w", err)
	}
	return p, nil
}

// Character converts the profile to a validated model character.
func (p Profile) Character() (*model.Character, error) {
	job, err := data.ParseJobClass(p.Job)
	if err != nil {
		return nil, err
	}

	c := &model.Character{
		Job:               job,
		Level:             p.Level,
		Artifacts:         make(map[string]model.ArtifactInstance, len(p.Artifacts)),
		EquippedArtifacts: p.EquippedArtifacts,
		Guild: model.GuildSkills{
			FinalDamage: p.Guild.FinalDamage,
			DamagePct:   p.Guild.DamagePct,
			CritRate:    p.Guild.CritRate,
		},
		MapleRank: model.MapleRank{
			AttackSpeed:  p.MapleRank.AttackSpeed,
			CritRate:     p.MapleRank.CritRate,
			Damage:       p.MapleRank.Damage,
			BossDamage:   p.MapleRank.BossDamage,
			NormalDamage: p.MapleRank.NormalDamage,
			CritDamage:   p.MapleRank.CritDamage,
		},
	}

	for _, eq := range p.Equipment {
		pots, err := parseLines(eq.Slot, eq.Potentials)
		if err != nil {
			return nil, err
		}
		bonus, err := parseLines(eq.Slot, eq.BonusPotentials)
		if err != nil {
			return nil, err
		}
		c.Equipment = append(c.Equipment, model.Equipment{
			Slot:            eq.Slot,
			Attack:          eq.Attack,
			MainStat:        eq.MainStat,
			Starforce:       eq.Starforce,
			Potentials:      pots,
			BonusPotentials: bonus,
		})
	}

	for _, art := range p.Artifacts {
		pots, err := parseLines(art.Key, art.Potentials)
		if err != nil {
			return nil, err
		}
		c.Artifacts[art.Key] = model.ArtifactInstance{
			Key:        art.Key,
			Stars:      art.Stars,
			Potentials: pots,
		}
	}

	for _, w := range p.Weapons {
		rarity, err := data.ParseWeaponRarity(w.Rarity)
		if err != nil {
			return nil, err
		}
		c.Weapons = append(c.Weapons, model.Weapon{
			Rarity:   rarity,
			Tier:     w.Tier,
			Level:    w.Level,
			Equipped: w.Equipped,
		})
	}
	for _, comp := range p.Companions {
		c.Companions = append(c.Companions, model.Companion{
			Key:      comp.Key,
			Level:    comp.Level,
			Equipped: comp.Equipped,
		})
	}
	for _, line := range p.HeroPower {
		c.HeroPower = append(c.HeroPower, model.StatLine{
			Source: line.Source,
			Stat:   stat.Key(line.Stat),
			Value:  line.Value,
		})
	}
	for _, line := range p.Passives {
		c.Passives = append(c.Passives, model.StatLine{
			Source: line.Source,
			Stat:   stat.Key(line.Stat),
			Value:  line.Value,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Scenario resolves the profile's combat mode.
func (p Profile) Scenario() (data.CombatMode, int, error) {
	mode, err := data.ParseCombatMode(p.Combat.Mode)
	if err != nil {
		return "", 0, err
	}
	return mode, p.Combat.Chapter, nil
}

func parseLines(owner string, entries []PotentialEntry) ([]model.PotentialLine, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]model.PotentialLine, 0, len(entries))
	for _, e := range entries {
		line := model.PotentialLine{
			Stat:  stat.Key(e.Stat),
			Value: e.Value,
		}
		if e.Tier != "" {
			tier, err := data.ParsePotentialTier(e.Tier)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", owner, err)
			}
			line.Tier = tier
		}
		out = append(out, line)
	}
	return out, nil
}
