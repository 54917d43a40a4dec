package data

// Weapon summoning. The summon level climbs with total summons and
// shifts the rarity odds; within a rarity, a tier split divides the
// rarity's probability mass.

// DiamondsPerTicket is the diamond price of one summon ticket
// (6000 diamonds buy 159.5 tickets).
const DiamondsPerTicket = 6000.0 / 159.5

// MaxSummonLevel is the highest summon level.
const MaxSummonLevel = 17

// summonLevelThresholds maps summon level to the total summons
// required to reach it.
var summonLevelThresholds = map[int]int{
	1: 0, 2: 100, 3: 250, 4: 500, 5: 800, 6: 1300, 7: 1800,
	8: 2400, 9: 3200, 10: 4100, 11: 5400, 12: 7000, 13: 9300,
	14: 12100, 15: 15600, 16: 31200, 17: 46800,
}

// SummonLevel returns the summon level reached after a number of
// total summons.
func SummonLevel(totalSummons int) int {
	level := 1
	for lv := 2; lv <= MaxSummonLevel; lv++ {
		if totalSummons >= summonLevelThresholds[lv] {
			level = lv
		}
	}
	return level
}

// SummonsForLevel returns the total summons required to reach a level.
func SummonsForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxSummonLevel {
		level = MaxSummonLevel
	}
	return summonLevelThresholds[level]
}

// summonRarityRates holds the exact rarity odds per summon level.
// Each level's rates sum to 1.
var summonRarityRates = map[int]map[WeaponRarity]float64{
	1:  {WeaponNormal: 0.92, WeaponRare: 0.08},
	2:  {WeaponNormal: 0.88, WeaponRare: 0.12},
	3:  {WeaponNormal: 0.842, WeaponRare: 0.15, WeaponEpic: 0.008},
	4:  {WeaponNormal: 0.806, WeaponRare: 0.176, WeaponEpic: 0.018},
	5:  {WeaponNormal: 0.773, WeaponRare: 0.202, WeaponEpic: 0.023, WeaponUnique: 0.002},
	6:  {WeaponNormal: 0.741, WeaponRare: 0.227, WeaponEpic: 0.026, WeaponUnique: 0.006},
	7:  {WeaponNormal: 0.7027, WeaponRare: 0.257, WeaponEpic: 0.031, WeaponUnique: 0.009, WeaponLegendary: 0.0003},
	8:  {WeaponNormal: 0.6642, WeaponRare: 0.287, WeaponEpic: 0.036, WeaponUnique: 0.012, WeaponLegendary: 0.0008},
	9:  {WeaponNormal: 0.6253, WeaponRare: 0.317, WeaponEpic: 0.041, WeaponUnique: 0.015, WeaponLegendary: 0.0017},
	10: {WeaponNormal: 0.5866, WeaponRare: 0.347, WeaponEpic: 0.046, WeaponUnique: 0.018, WeaponLegendary: 0.0024},
	11: {WeaponNormal: 0.5477, WeaponRare: 0.377, WeaponEpic: 0.051, WeaponUnique: 0.021, WeaponLegendary: 0.0032, WeaponMystic: 0.0001},
	12: {WeaponNormal: 0.5089, WeaponRare: 0.407, WeaponEpic: 0.056, WeaponUnique: 0.024, WeaponLegendary: 0.0038, WeaponMystic: 0.0003},
	13: {WeaponNormal: 0.4701, WeaponRare: 0.437, WeaponEpic: 0.061, WeaponUnique: 0.027, WeaponLegendary: 0.0044, WeaponMystic: 0.0005},
	14: {WeaponNormal: 0.4315, WeaponRare: 0.467, WeaponEpic: 0.066, WeaponUnique: 0.030, WeaponLegendary: 0.0048, WeaponMystic: 0.0007},
	15: {WeaponNormal: 0.39287, WeaponRare: 0.497, WeaponEpic: 0.071, WeaponUnique: 0.033, WeaponLegendary: 0.0050, WeaponMystic: 0.0011, WeaponAncient: 0.00003},
	16: {WeaponNormal: 0.39342, WeaponRare: 0.497, WeaponEpic: 0.071, WeaponUnique: 0.033, WeaponLegendary: 0.004, WeaponMystic: 0.0015, WeaponAncient: 0.00008},
	17: {WeaponNormal: 0.39297, WeaponRare: 0.497, WeaponEpic: 0.071, WeaponUnique: 0.033, WeaponLegendary: 0.004, WeaponMystic: 0.0019, WeaponAncient: 0.00013},
}

// summonTierPatterns are whole-number tier splits within a rarity.
// Percentage = parts / sum(parts).
var summonTierPatterns = map[string]map[int]int{
	"100":         {4: 100},
	"75_25":       {4: 75, 3: 25},
	"70_30":       {4: 70, 3: 30},
	"65_25_10":    {4: 65, 3: 25, 2: 10},
	"60_30_10":    {4: 60, 3: 30, 2: 10},
	"50_30_15_5":  {4: 50, 3: 30, 2: 15, 1: 5},
	"40_30_20_10": {4: 40, 3: 30, 2: 20, 1: 10},
	"50_30_13_7":  {4: 50, 3: 30, 2: 13, 1: 7},
	"40_33_20_7":  {4: 40, 3: 33, 2: 20, 1: 7},
}

// summonPatternMap names the tier split per (level, rarity). Newly
// unlocked rarities start tier-4-only and spread out as the level
// climbs; mature rarities settle on 40/30/20/10.
var summonPatternMap = map[int]map[WeaponRarity]string{
	1:  {WeaponNormal: "40_30_20_10", WeaponRare: "70_30"},
	2:  {WeaponNormal: "40_30_20_10", WeaponRare: "50_30_15_5"},
	3:  {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "70_30"},
	4:  {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10"},
	5:  {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "70_30"},
	6:  {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "50_30_15_5"},
	7:  {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "100"},
	8:  {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "70_30"},
	9:  {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "60_30_10"},
	10: {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "50_30_15_5"},
	11: {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "40_33_20_7", WeaponMystic: "100"},
	12: {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "40_33_20_7", WeaponMystic: "70_30"},
	13: {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "40_33_20_7", WeaponMystic: "60_30_10"},
	14: {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "40_33_20_7", WeaponMystic: "50_30_15_5"},
	15: {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "50_30_13_7", WeaponMystic: "50_30_13_7", WeaponAncient: "100"},
	16: {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "40_30_20_10", WeaponMystic: "40_33_20_7", WeaponAncient: "75_25"},
	17: {WeaponNormal: "40_30_20_10", WeaponRare: "40_30_20_10", WeaponEpic: "40_30_20_10", WeaponUnique: "40_30_20_10", WeaponLegendary: "40_30_20_10", WeaponMystic: "40_33_20_7", WeaponAncient: "65_25_10"},
}

func clampSummonLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxSummonLevel {
		return MaxSummonLevel
	}
	return level
}

// SummonRarityRate returns the probability of pulling a rarity at a
// summon level.
func SummonRarityRate(level int, r WeaponRarity) float64 {
	return summonRarityRates[clampSummonLevel(level)][r]
}

// SummonTierSplit returns the tier distribution within a rarity at a
// summon level (sums to 1; empty when the rarity is locked).
func SummonTierSplit(level int, r WeaponRarity) map[int]float64 {
	name, ok := summonPatternMap[clampSummonLevel(level)][r]
	if !ok {
		return nil
	}
	pattern := summonTierPatterns[name]
	total := 0
	for _, parts := range pattern {
		total += parts
	}
	out := make(map[int]float64, len(pattern))
	for tier, parts := range pattern {
		out[tier] = float64(parts) / float64(total)
	}
	return out
}

// WeaponDropRate returns the per-ticket probability of pulling one
// specific weapon at a summon level.
func WeaponDropRate(level int, r WeaponRarity, tier int) float64 {
	return SummonRarityRate(level, r) * SummonTierSplit(level, r)[tier]
}

// Weapon awakening consumes duplicates: one for A1, two for A2, up to
// five for A5. Promoting a maxed weapon costs five more.
const (
	MaxWeaponAwakening    = 5
	WeaponPromotionCopies = 5
)

// WeaponAwakeningDuplicates returns the duplicates consumed by a
// single awakening step.
func WeaponAwakeningDuplicates(targetStar int) int {
	if targetStar < 1 || targetStar > MaxWeaponAwakening {
		return 0
	}
	return targetStar
}
