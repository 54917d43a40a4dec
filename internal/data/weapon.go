package data

import (
	"fmt"
	"math"
)

// WeaponRarity is the rarity rung of a weapon. Within a rarity,
// weapons come in tiers 4 (weakest) down to 1.
type WeaponRarity string

const (
	WeaponNormal    WeaponRarity = "normal"
	WeaponRare      WeaponRarity = "rare"
	WeaponEpic      WeaponRarity = "epic"
	WeaponUnique    WeaponRarity = "unique"
	WeaponLegendary WeaponRarity = "legendary"
	WeaponMystic    WeaponRarity = "mystic"
	WeaponAncient   WeaponRarity = "ancient"
)

// WeaponRarityOrder lists rarities from weakest to strongest; the
// promotion ladder climbs this order.
var WeaponRarityOrder = []WeaponRarity{
	WeaponNormal, WeaponRare, WeaponEpic, WeaponUnique,
	WeaponLegendary, WeaponMystic, WeaponAncient,
}

// Next returns the next rarity up the ladder.
func (r WeaponRarity) Next() (WeaponRarity, bool) {
	for i, cur := range WeaponRarityOrder {
		if cur == r && i+1 < len(WeaponRarityOrder) {
			return WeaponRarityOrder[i+1], true
		}
	}
	return "", false
}

// ParseWeaponRarity converts a profile string to a WeaponRarity.
func ParseWeaponRarity(s string) (WeaponRarity, error) {
	r := WeaponRarity(s)
	for _, cur := range WeaponRarityOrder {
		if cur == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown weapon rarity %q", s)
}

type weaponKey struct {
	Rarity WeaponRarity
	Tier   int
}

// weaponBaseATK is the on-equip attack% at level multiplier 1.0.
// Ancient currently tops out at tier 2 (tier 3 and 2 extrapolate the
// 1.35x per-tier progression).
var weaponBaseATK = map[weaponKey]float64{
	{WeaponNormal, 4}: 15.0, {WeaponNormal, 3}: 18.0, {WeaponNormal, 2}: 21.0, {WeaponNormal, 1}: 25.0,
	{WeaponRare, 4}: 31.3, {WeaponRare, 3}: 39.1, {WeaponRare, 2}: 48.9, {WeaponRare, 1}: 61.1,
	{WeaponEpic, 4}: 76.4, {WeaponEpic, 3}: 95.5, {WeaponEpic, 2}: 119.4, {WeaponEpic, 1}: 149.3,
	{WeaponUnique, 4}: 194.1, {WeaponUnique, 3}: 252.3, {WeaponUnique, 2}: 328.0, {WeaponUnique, 1}: 426.4,
	{WeaponLegendary, 4}: 554.3, {WeaponLegendary, 3}: 720.6, {WeaponLegendary, 2}: 936.8, {WeaponLegendary, 1}: 1217.8,
	{WeaponMystic, 4}: 1619.7, {WeaponMystic, 3}: 2154.2, {WeaponMystic, 2}: 2865.1, {WeaponMystic, 1}: 3810.6,
	{WeaponAncient, 4}: 5144.3, {WeaponAncient, 3}: 6944.8, {WeaponAncient, 2}: 9375.5,
}

// weaponBaseCost is the level-up base cost in weapon enhancers.
var weaponBaseCost = map[weaponKey]float64{
	{WeaponNormal, 4}: 10, {WeaponNormal, 3}: 12, {WeaponNormal, 2}: 14.4, {WeaponNormal, 1}: 17.28,
	{WeaponRare, 4}: 40, {WeaponRare, 3}: 48, {WeaponRare, 2}: 57.6, {WeaponRare, 1}: 69.12,
	{WeaponEpic, 4}: 140, {WeaponEpic, 3}: 168, {WeaponEpic, 2}: 201.6, {WeaponEpic, 1}: 241.92,
	{WeaponUnique, 4}: 490, {WeaponUnique, 3}: 588, {WeaponUnique, 2}: 705.6, {WeaponUnique, 1}: 846.72,
	{WeaponLegendary, 4}: 1470, {WeaponLegendary, 3}: 1764, {WeaponLegendary, 2}: 2116.8, {WeaponLegendary, 1}: 2540.16,
	{WeaponMystic, 4}: 5880, {WeaponMystic, 3}: 7056, {WeaponMystic, 2}: 8467.2, {WeaponMystic, 1}: 10160.64,
	{WeaponAncient, 4}: 23520, {WeaponAncient, 3}: 70000, {WeaponAncient, 2}: 120000,
}

// weaponMaxLevels caps weapon levels per rarity.
var weaponMaxLevels = map[WeaponRarity]int{
	WeaponNormal:    50,
	WeaponRare:      70,
	WeaponEpic:      90,
	WeaponUnique:    110,
	WeaponLegendary: 130,
	WeaponMystic:    150,
	WeaponAncient:   200,
}

// weaponAttackSpeedBonus is the attack speed% granted while the
// weapon is equipped. Nothing below epic grants any.
var weaponAttackSpeedBonus = map[WeaponRarity]float64{
	WeaponEpic:      2.0,
	WeaponUnique:    3.0,
	WeaponLegendary: 4.0,
	WeaponMystic:    6.0,
	WeaponAncient:   8.0,
}

// Inventory attack% is a fixed fraction of the on-equip value and
// applies to every owned weapon, equipped or not.
const (
	weaponInventoryRatioLow  = 1.0 / 3.5 // normal through unique
	weaponInventoryRatioHigh = 1.0 / 4.0 // legendary and above
)

// DiamondsToEnhancers converts diamonds to weapon enhancers
// (3000 diamonds buy 60000 enhancers).
const DiamondsToEnhancers = 20.0

// WeaponBaseATK returns the level-1 on-equip attack% for a rarity and
// tier. ok is false for combinations that do not exist.
func WeaponBaseATK(r WeaponRarity, tier int) (float64, bool) {
	v, ok := weaponBaseATK[weaponKey{r, tier}]
	return v, ok
}

// WeaponMaxLevel returns the level cap for a rarity.
func WeaponMaxLevel(r WeaponRarity) int {
	return weaponMaxLevels[r]
}

// WeaponAttackSpeedBonus returns the on-equip attack speed% for a
// rarity (0 below epic).
func WeaponAttackSpeedBonus(r WeaponRarity) float64 {
	return weaponAttackSpeedBonus[r]
}

// WeaponInventoryRatio returns the inventory fraction of the on-equip
// attack% for a rarity.
func WeaponInventoryRatio(r WeaponRarity) float64 {
	switch r {
	case WeaponLegendary, WeaponMystic, WeaponAncient:
		return weaponInventoryRatioHigh
	}
	return weaponInventoryRatioLow
}

// WeaponLevelMultiplier scales the base attack% by weapon level. The
// curve steepens at every 100/130/155/175 breakpoint.
func WeaponLevelMultiplier(level int) float64 {
	lv := float64(level)
	switch {
	case level <= 0:
		return 0
	case level <= 100:
		return 0.997 + 0.003*lv
	case level <= 130:
		return 0.596 + 0.007*lv
	case level <= 155:
		return 0.466 + 0.008*lv
	case level <= 175:
		return 0.311 + 0.009*lv
	default:
		return 0.136 + 0.010*lv
	}
}

// WeaponOnEquipATK returns the on-equip attack% of a weapon at a
// level (0 for unknown rarity/tier combinations).
func WeaponOnEquipATK(r WeaponRarity, tier, level int) float64 {
	base, ok := WeaponBaseATK(r, tier)
	if !ok {
		return 0
	}
	return base * WeaponLevelMultiplier(level)
}

// WeaponInventoryATK returns the always-on inventory attack% of an
// owned weapon at a level.
func WeaponInventoryATK(r WeaponRarity, tier, level int) float64 {
	return WeaponOnEquipATK(r, tier, level) * WeaponInventoryRatio(r)
}

// weaponCostMultiplier compounds the per-level cost growth: 1% per
// level through 50, then 1.5%, 2% and 2.5% in the later brackets.
func weaponCostMultiplier(level int) float64 {
	lv := float64(level)
	switch {
	case level <= 0:
		return 0
	case level <= 50:
		return math.Pow(1.01, lv-1)
	case level <= 100:
		return math.Pow(1.01, 49) * math.Pow(1.015, lv-50)
	case level <= 150:
		return math.Pow(1.01, 49) * math.Pow(1.015, 50) * math.Pow(1.02, lv-100)
	default:
		return math.Pow(1.01, 49) * math.Pow(1.015, 50) * math.Pow(1.02, 50) * math.Pow(1.025, lv-150)
	}
}

// WeaponLevelCost returns the enhancer cost of leveling a weapon from
// the given level to the next one.
func WeaponLevelCost(r WeaponRarity, tier, fromLevel int) int {
	base, ok := weaponBaseCost[weaponKey{r, tier}]
	if !ok {
		return 0
	}
	return int(math.Ceil(base * weaponCostMultiplier(fromLevel)))
}

// WeaponTotalLevelCost sums the enhancer cost of leveling from one
// level to another.
func WeaponTotalLevelCost(r WeaponRarity, tier, fromLevel, toLevel int) int {
	total := 0
	for lv := fromLevel; lv < toLevel; lv++ {
		total += WeaponLevelCost(r, tier, lv)
	}
	return total
}

// EnhancersToDiamonds converts a weapon enhancer amount to its diamond
// price.
func EnhancersToDiamonds(enhancers int) float64 {
	return float64(enhancers) / DiamondsToEnhancers
}

// PromoteWeapon returns the weapon a fully awakened one promotes
// into: tier 1 crosses into tier 4 of the next rarity, other tiers
// climb one tier within the rarity. ok is false when the result does
// not exist (top of the ladder).
func PromoteWeapon(r WeaponRarity, tier int) (WeaponRarity, int, bool) {
	if _, exists := weaponBaseATK[weaponKey{r, tier}]; !exists {
		return "", 0, false
	}
	if tier == 1 {
		next, ok := r.Next()
		if !ok {
			return "", 0, false
		}
		return next, 4, true
	}
	if _, exists := weaponBaseATK[weaponKey{r, tier - 1}]; !exists {
		return "", 0, false
	}
	return r, tier - 1, true
}
