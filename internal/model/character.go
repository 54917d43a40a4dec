package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/udisondev/mapleidle/internal/data"
	"github.com/udisondev/mapleidle/internal/stat"
)

// Validation errors. Aggregation refuses to run on inconsistent input
// so a bad profile cannot silently skew a build comparison.
var (
	ErrArtifactNotOwned   = errors.New("equipped artifact not in inventory")
	ErrDuplicateEquip     = errors.New("artifact equipped in more than one slot")
	ErrTooManyEquipped    = errors.New("too many equipped")
	ErrUnknownArtifact    = errors.New("unknown artifact key")
	ErrUnknownSlot        = errors.New("unknown equipment slot")
	ErrInvalidPotential   = errors.New("invalid potential line")
	ErrInvalidStarforce   = errors.New("starforce out of range")
	ErrInvalidAwakening   = errors.New("awakening stars out of range")
	ErrUnknownJob         = errors.New("unknown job class")
	ErrUnknownCompanion   = errors.New("unknown companion key")
	ErrUnknownWeapon      = errors.New("unknown weapon rarity or tier")

	ErrInvalidCompanionLevel = errors.New("companion level out of range")
	ErrInvalidWeaponLevel    = errors.New("weapon level out of range")

	errCompanionSlotLimit = fmt.Errorf("%w companions (max %d)", ErrTooManyEquipped, MaxEquippedCompanions)
	errWeaponSlotLimit    = fmt.Errorf("%w weapons (max 1)", ErrTooManyEquipped)
)

// MaxEquippedCompanions is the companion equip slot count.
const MaxEquippedCompanions = 7

// EquipmentSlots lists the equipment slot names.
var EquipmentSlots = []string{
	"weapon", "hat", "top", "bottom", "gloves", "shoes",
	"belt", "shoulder", "cape", "ring", "necklace", "face",
}

var equipmentSlotSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(EquipmentSlots))
	for _, s := range EquipmentSlots {
		m[s] = struct{}{}
	}
	return m
}()

// PotentialLine is one rolled potential on an item or artifact.
type PotentialLine struct {
	Stat  stat.Key
	Value float64
	Tier  data.PotentialTier
}

// Equipment is one equipped item. Base stat values are the displayed
// (post-starforce) totals.
type Equipment struct {
	Slot      string
	Attack    float64
	MainStat  float64 // flat main stat on the item, resolved by job
	Starforce int

	// Regular and bonus potentials roll independently, up to 3 lines
	// each.
	Potentials      []PotentialLine
	BonusPotentials []PotentialLine
}

// ArtifactInstance is an owned artifact with awakening progress and
// rolled potentials.
type ArtifactInstance struct {
	Key        string
	Stars      int
	Potentials []PotentialLine
}

// Definition resolves the static artifact definition.
func (a ArtifactInstance) Definition() (data.ArtifactDefinition, bool) {
	return data.GetArtifact(a.Key)
}

// Companion is one owned companion. Ownership alone grants the
// level-scaled inventory effect; the on-equip stat applies only while
// the companion occupies one of the equip slots.
type Companion struct {
	Key      string
	Level    int
	Equipped bool
}

// Definition resolves the static companion definition.
func (c Companion) Definition() (data.CompanionDefinition, bool) {
	return data.GetCompanion(c.Key)
}

// Weapon is one owned weapon. Every owned weapon contributes its
// inventory attack%; the equipped one adds the full on-equip attack%
// and the rarity's attack speed bonus on top.
type Weapon struct {
	Rarity   data.WeaponRarity
	Tier     int
	Level    int
	Equipped bool
}

// StatLine is a generic (stat, value) contribution used for hero
// power lines and passive skills.
type StatLine struct {
	Source string
	Stat   stat.Key
	Value  float64
}

// GuildSkills holds guild passive levels already converted to stat
// values.
type GuildSkills struct {
	FinalDamage float64 // decimal
	DamagePct   float64
	CritRate    float64
}

// MapleRank holds per-stat rank levels; each level grants a fixed
// amount of its stat.
type MapleRank struct {
	AttackSpeed  int // 0.5% per level
	CritRate     int // 1% per level
	Damage       int // 2% per level
	BossDamage   int // 2% per level
	NormalDamage int // 2% per level
	CritDamage   int // 2% per level
}

// Character is the full calculator input: everything a player owns
// and has leveled. Constructed fresh from profile data at calculation
// time; the calculator never mutates it.
type Character struct {
	Job   data.JobClass
	Level int

	Equipment []Equipment

	Artifacts         map[string]ArtifactInstance // owned, keyed by artifact key
	EquippedArtifacts []string                    // keys, at most 3

	Weapons    []Weapon
	Companions []Companion
	HeroPower  []StatLine
	Passives   []StatLine
	Guild      GuildSkills
	MapleRank  MapleRank
}

// Validate checks structural integrity before aggregation. It reports
// the first violation found with enough context to fix the profile.
func (c *Character) Validate() error {
	if _, ok := data.GetJob(c.Job); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownJob, c.Job)
	}

	for _, eq := range c.Equipment {
		if _, ok := equipmentSlotSet[eq.Slot]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, eq.Slot)
		}
		if eq.Starforce < 0 || eq.Starforce > data.MaxStars {
			return fmt.Errorf("%w: %s has %d stars", ErrInvalidStarforce, eq.Slot, eq.Starforce)
		}
		for _, line := range eq.Potentials {
			if err := validateLine(eq.Slot, line); err != nil {
				return err
			}
		}
		for _, line := range eq.BonusPotentials {
			if err := validateLine(eq.Slot, line); err != nil {
				return err
			}
		}
		if len(eq.Potentials) > 3 || len(eq.BonusPotentials) > 3 {
			return fmt.Errorf("%w: %s has more than 3 lines", ErrInvalidPotential, eq.Slot)
		}
	}

	if len(c.EquippedArtifacts) > data.EquippedArtifactSlots {
		return fmt.Errorf("%w artifacts (max %d)", ErrTooManyEquipped, data.EquippedArtifactSlots)
	}
	seen := make(map[string]struct{}, len(c.EquippedArtifacts))
	for _, key := range c.EquippedArtifacts {
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateEquip, key)
		}
		seen[key] = struct{}{}
		if _, owned := c.Artifacts[key]; !owned {
			return fmt.Errorf("%w: %q", ErrArtifactNotOwned, key)
		}
	}

	for key, art := range c.Artifacts {
		def, ok := data.GetArtifact(key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownArtifact, key)
		}
		if art.Stars < 0 || art.Stars > data.MaxAwakening {
			return fmt.Errorf("%w: %s has %d stars", ErrInvalidAwakening, key, art.Stars)
		}
		if limit := data.PotentialSlots(def.Tier, data.MaxAwakening); len(art.Potentials) > limit {
			return fmt.Errorf("%w: %s has %d lines (tier cap %d)", ErrInvalidPotential, key, len(art.Potentials), limit)
		}
		for _, line := range art.Potentials {
			if err := validateLine(key, line); err != nil {
				return err
			}
		}
	}

	wielded := 0
	for _, w := range c.Weapons {
		if _, ok := data.WeaponBaseATK(w.Rarity, w.Tier); !ok {
			return fmt.Errorf("%w: %s tier %d", ErrUnknownWeapon, w.Rarity, w.Tier)
		}
		if w.Level < 1 || w.Level > data.WeaponMaxLevel(w.Rarity) {
			return fmt.Errorf("%w: %s tier %d at level %d (cap %d)",
				ErrInvalidWeaponLevel, w.Rarity, w.Tier, w.Level, data.WeaponMaxLevel(w.Rarity))
		}
		if w.Equipped {
			wielded++
		}
	}
	if wielded > 1 {
		return errWeaponSlotLimit
	}

	equipped := 0
	for _, comp := range c.Companions {
		def, ok := data.GetCompanion(comp.Key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCompanion, comp.Key)
		}
		if comp.Level < 0 || comp.Level > def.MaxLevel() {
			return fmt.Errorf("%w: %s at level %d (cap %d)",
				ErrInvalidCompanionLevel, comp.Key, comp.Level, def.MaxLevel())
		}
		if comp.Equipped {
			equipped++
		}
	}
	if equipped > MaxEquippedCompanions {
		return errCompanionSlotLimit
	}

	for _, line := range c.HeroPower {
		if err := stat.Validate(line.Stat); err != nil {
			return fmt.Errorf("hero power %s: %w", line.Source, err)
		}
	}
	for _, line := range c.Passives {
		if err := stat.Validate(line.Stat); err != nil {
			return fmt.Errorf("passive %s: %w", line.Source, err)
		}
	}

	return nil
}

func validateLine(owner string, line PotentialLine) error {
	if line.Stat == "" {
		return nil // empty slot
	}
	if err := stat.Validate(line.Stat); err != nil {
		return fmt.Errorf("%s: %w", owner, err)
	}
	if line.Value < 0 {
		return fmt.Errorf("%w: %s rolls negative %s", ErrInvalidPotential, owner, line.Stat)
	}
	return nil
}

// Clone returns a deep copy. Optimizers bump stars or swap potential
// lines on clones; the caller's character never changes.
func (c *Character) Clone() *Character {
	out := *c
	out.Equipment = make([]Equipment, len(c.Equipment))
	for i, eq := range c.Equipment {
		eq.Potentials = slices.Clone(eq.Potentials)
		eq.BonusPotentials = slices.Clone(eq.BonusPotentials)
		out.Equipment[i] = eq
	}
	out.Artifacts = make(map[string]ArtifactInstance, len(c.Artifacts))
	for key, art := range c.Artifacts {
		art.Potentials = slices.Clone(art.Potentials)
		out.Artifacts[key] = art
	}
	out.EquippedArtifacts = slices.Clone(c.EquippedArtifacts)
	out.Weapons = slices.Clone(c.Weapons)
	out.Companions = slices.Clone(c.Companions)
	out.HeroPower = slices.Clone(c.HeroPower)
	out.Passives = slices.Clone(c.Passives)
	return &out
}

// EquippedSet returns the equipped artifact keys as a set.
func (c *Character) EquippedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.EquippedArtifacts))
	for _, key := range c.EquippedArtifacts {
		set[key] = struct{}{}
	}
	return set
}

// TotalAwakeningStars sums awakening stars across the collection;
// this drives the resonance bonus.
func (c *Character) TotalAwakeningStars() int {
	total := 0
	for _, art := range c.Artifacts {
		total += art.Stars
	}
	return total
}
