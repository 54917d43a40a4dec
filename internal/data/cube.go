package data

import (
	"errors"
	"fmt"

	"github.com/udisondev/mapleidle/internal/stat"
)

// ErrNoTierUp is returned for tier transitions that are not defined
// in the probability tables. The tables are closed static data, so a
// miss is a configuration error, never a user-input problem.
var ErrNoTierUp = errors.New("tier transition not defined")

// PotentialTier is the tier of a potential line, lowest to highest.
type PotentialTier uint8

const (
	TierNormal PotentialTier = iota
	TierRare
	TierEpic
	TierUnique
	TierLegendary
	TierMystic
)

var tierNames = [...]string{"normal", "rare", "epic", "unique", "legendary", "mystic"}

func (t PotentialTier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return fmt.Sprintf("tier(%d)", uint8(t))
}

// Next returns the next tier up, or (TierMystic, false) at the cap.
func (t PotentialTier) Next() (PotentialTier, bool) {
	if t >= TierMystic {
		return TierMystic, false
	}
	return t + 1, true
}

// ParsePotentialTier converts a profile string to a tier.
func ParsePotentialTier(s string) (PotentialTier, error) {
	for i, name := range tierNames {
		if name == s {
			return PotentialTier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown potential tier %q", s)
}

// CubeType selects the regular or bonus potential system. The two
// systems roll independent lines and keep independent pity counters.
type CubeType string

const (
	CubeRegular CubeType = "regular"
	CubeBonus   CubeType = "bonus"
)

// tierUpRates are the natural per-cube tier-up probabilities.
var tierUpRates = map[PotentialTier]float64{
	TierNormal:    0.06,    // 6% to Rare
	TierRare:      0.03333, // 3.333% to Epic
	TierEpic:      0.006,   // 0.6% to Unique
	TierUnique:    0.0021,  // 0.21% to Legendary
	TierLegendary: 0.0014,  // 0.14% to Mystic
}

// Pity thresholds: a tier-up is guaranteed once this many cubes have
// been used without one.
var regularPity = map[PotentialTier]int{
	TierNormal:    33,
	TierRare:      60,
	TierEpic:      150,
	TierUnique:    333,
	TierLegendary: 714,
}

var bonusPity = map[PotentialTier]int{
	TierNormal:    45,
	TierRare:      85,
	TierEpic:      150,
	TierUnique:    417,
	TierLegendary: 714,
}

// TierUpRate returns the natural tier-up probability from tier t.
// TierMystic cannot tier up.
func TierUpRate(t PotentialTier) (float64, error) {
	p, ok := tierUpRates[t]
	if !ok {
		return 0, fmt.Errorf("%w: from %s", ErrNoTierUp, t)
	}
	return p, nil
}

// PityThreshold returns the guaranteed-tier-up roll count for the
// given cube system and current tier.
func PityThreshold(ct CubeType, t PotentialTier) (int, error) {
	table := regularPity
	if ct == CubeBonus {
		table = bonusPity
	}
	n, ok := table[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s cube from %s", ErrNoTierUp, ct, t)
	}
	return n, nil
}

// SlotYellowRates: chance for each potential slot to roll at the
// item's current tier (yellow) instead of a lower tier (grey).
var SlotYellowRates = map[int]float64{
	1: 1.00,
	2: 0.24,
	3: 0.08,
}

// Cube prices in blue diamonds (normal shop, unlimited purchases).
const (
	RegularCubeCost = 1000
	BonusCubeCost   = 2000
)

// CubeCost returns the per-cube blue diamond price.
func CubeCost(ct CubeType) float64 {
	if ct == CubeBonus {
		return BonusCubeCost
	}
	return RegularCubeCost
}

// PotentialStat is one entry of the rollable stat pool at a tier.
type PotentialStat struct {
	Stat        stat.Key
	Value       float64
	Probability float64
}

// PotentialPool lists the stats a yellow line can roll at each tier.
// Each main stat has 4.5% chance for the % line and 9.25% for flat.
var PotentialPool = map[PotentialTier][]PotentialStat{
	TierNormal: {
		{stat.DEXPct, 3.0, 0.045},
		{stat.STRPct, 3.0, 0.045},
		{stat.INTPct, 3.0, 0.045},
		{stat.LUKPct, 3.0, 0.045},
		{stat.Defense, 3.0, 0.09},
	},
	TierRare: {
		{stat.DEXPct, 4.5, 0.045},
		{stat.STRPct, 4.5, 0.045},
		{stat.INTPct, 4.5, 0.045},
		{stat.LUKPct, 4.5, 0.045},
		{stat.Defense, 4.5, 0.09},
		{stat.CritRate, 4.5, 0.025},
		{stat.AttackSpeed, 3.5, 0.025},
		{stat.DamagePct, 8.0, 0.04},
		{stat.MinDmgMult, 6.0, 0.04},
		{stat.MaxDmgMult, 6.0, 0.04},
	},
	TierEpic: {
		{stat.DEXPct, 6.0, 0.045},
		{stat.STRPct, 6.0, 0.045},
		{stat.INTPct, 6.0, 0.045},
		{stat.LUKPct, 6.0, 0.045},
		{stat.DEXFlat, 200, 0.0925},
		{stat.STRFlat, 200, 0.0925},
		{stat.INTFlat, 200, 0.0925},
		{stat.LUKFlat, 200, 0.0925},
		{stat.Defense, 6.0, 0.09},
		{stat.MaxHP, 12.0, 0.09},
		{stat.CritRate, 6.0, 0.025},
		{stat.AttackSpeed, 4.0, 0.025},
		{stat.DamagePct, 12.0, 0.04},
		{stat.MinDmgMult, 8.0, 0.04},
		{stat.MaxDmgMult, 8.0, 0.04},
	},
	TierUnique: {
		{stat.DEXPct, 9.0, 0.045},
		{stat.STRPct, 9.0, 0.045},
		{stat.INTPct, 9.0, 0.045},
		{stat.LUKPct, 9.0, 0.045},
		{stat.DEXFlat, 400, 0.0925},
		{stat.STRFlat, 400, 0.0925},
		{stat.INTFlat, 400, 0.0925},
		{stat.LUKFlat, 400, 0.0925},
		{stat.Defense, 9.0, 0.09},
		{stat.MaxHP, 15.0, 0.09},
		{stat.CritRate, 9.0, 0.025},
		{stat.AttackSpeed, 5.0, 0.025},
		{stat.DamagePct, 18.0, 0.04},
		{stat.MinDmgMult, 10.0, 0.04},
		{stat.MaxDmgMult, 10.0, 0.04},
		{stat.SkillCD, 1.0, 0.01},
	},
	TierLegendary: {
		{stat.DEXPct, 12.0, 0.045},
		{stat.STRPct, 12.0, 0.045},
		{stat.INTPct, 12.0, 0.045},
		{stat.LUKPct, 12.0, 0.045},
		{stat.DEXFlat, 600, 0.0925},
		{stat.STRFlat, 600, 0.0925},
		{stat.INTFlat, 600, 0.0925},
		{stat.LUKFlat, 600, 0.0925},
		{stat.Defense, 12.0, 0.09},
		{stat.MaxHP, 20.0, 0.09},
		{stat.CritRate, 12.0, 0.025},
		{stat.AttackSpeed, 7.0, 0.025},
		{stat.DamagePct, 25.0, 0.04},
		{stat.MinDmgMult, 15.0, 0.04},
		{stat.MaxDmgMult, 15.0, 0.04},
		{stat.SkillCD, 1.5, 0.01},
	},
	TierMystic: {
		{stat.DEXPct, 15.0, 0.045},
		{stat.STRPct, 15.0, 0.045},
		{stat.INTPct, 15.0, 0.045},
		{stat.LUKPct, 15.0, 0.045},
		{stat.DEXFlat, 1000, 0.0925},
		{stat.STRFlat, 1000, 0.0925},
		{stat.INTFlat, 1000, 0.0925},
		{stat.LUKFlat, 1000, 0.0925},
		{stat.Defense, 15.0, 0.09},
		{stat.MaxHP, 25.0, 0.09},
		{stat.CritRate, 15.0, 0.025},
		{stat.AttackSpeed, 10.0, 0.025},
		{stat.DamagePct, 35.0, 0.04},
		{stat.MinDmgMult, 25.0, 0.04},
		{stat.MaxDmgMult, 25.0, 0.04},
		{stat.SkillCD, 2.0, 0.01},
	},
}

// SpecialPotential is a slot-specific line (e.g. gloves can roll
// Crit Damage, shoulders can roll Defense Penetration).
type SpecialPotential struct {
	Stat   stat.Key
	Values map[PotentialTier]float64
}

// SpecialPotentialRate is the base chance of rolling a special line.
const SpecialPotentialRate = 0.01

// SpecialPotentials maps equipment slot name to its special line.
var SpecialPotentials = map[string]SpecialPotential{
	"gloves": {stat.CritDamage, map[PotentialTier]float64{
		TierUnique: 20.0, TierLegendary: 30.0, TierMystic: 50.0,
	}},
	"shoulder": {stat.DefPen, map[PotentialTier]float64{
		TierUnique: 8.0, TierLegendary: 12.0, TierMystic: 20.0,
	}},
	"ring": {stat.AllSkills, map[PotentialTier]float64{
		TierEpic: 5, TierUnique: 8, TierLegendary: 12, TierMystic: 16,
	}},
	"necklace": {stat.AllSkills, map[PotentialTier]float64{
		TierEpic: 5, TierUnique: 8, TierLegendary: 12, TierMystic: 16,
	}},
	"cape": {stat.FinalDamage, map[PotentialTier]float64{
		TierEpic: 3.0, TierUnique: 5.0, TierLegendary: 8.0, TierMystic: 12.0,
	}},
	"bottom": {stat.FinalDamage, map[PotentialTier]float64{
		TierEpic: 3.0, TierUnique: 5.0, TierLegendary: 8.0, TierMystic: 12.0,
	}},
	"belt": {stat.BuffDuration, map[PotentialTier]float64{
		TierEpic: 5.0, TierUnique: 8.0, TierLegendary: 12.0, TierMystic: 20.0,
	}},
	"top": {stat.BATargets, map[PotentialTier]float64{
		TierUnique: 1, TierLegendary: 2, TierMystic: 3,
	}},
	"hat": {stat.SkillCD, map[PotentialTier]float64{
		TierEpic: 0.5, TierUnique: 1.0, TierLegendary: 1.5, TierMystic: 2.0,
	}},
}
