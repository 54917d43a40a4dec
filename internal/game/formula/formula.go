// Package formula implements the verified damage formulas. Every
// function here is total: well-typed numeric input always yields a
// result, validation is the caller's job.
package formula

import (
	"math"
	"slices"
	"strings"

	"github.com/udisondev/mapleidle/internal/stat"
)

// Game-wide formula constants, verified through in-game testing.
const (
	// BaseCritDamage is the crit damage % every character has before
	// bonuses.
	BaseCritDamage = 30.0

	// DefPenCap: defense penetration cannot exceed 100%.
	DefPenCap = 1.0

	// AtkSpdCap: attack speed caps at 150%, with diminishing returns
	// on the way there.
	AtkSpdCap = 150.0

	// Stat-proportional damage per point: main stat gives 1% per
	// point, secondary stat a quarter of that.
	mainStatRate      = 0.01
	secondaryStatRate = 0.0025
)

// TotalMainStat combines the flat pool with the percentage bonus:
// total = flat × (1 + pct/100).
func TotalMainStat(flatPool, pct float64) float64 {
	return flatPool * (1 + pct/100)
}

// StatMultiplier returns the stat-proportional damage multiplier for
// totals of the main and secondary stat.
func StatMultiplier(mainStat, secondaryStat float64) float64 {
	return 1 + mainStat*mainStatRate + secondaryStat*secondaryStatRate
}

// AmpMultiplier converts Damage Amplification % (scrolls) to a
// multiplier. Straight percentage: 23.2% amp = ×1.232.
func AmpMultiplier(ampPct float64) float64 {
	return 1 + ampPct/100
}

// sorted returns the sources ordered by name. Multiplication is
// commutative, but a stable order keeps floating-point accumulation
// reproducible across runs and test output deterministic.
func sorted(sources []stat.Source) []stat.Source {
	out := slices.Clone(sources)
	slices.SortStableFunc(out, func(a, b stat.Source) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// FinalDamageMultiplier combines final damage sources (decimals):
// mult = Π(1 + fd_i).
func FinalDamageMultiplier(sources []stat.Source) float64 {
	mult := 1.0
	for _, s := range sorted(sources) {
		mult *= 1 + s.Value
	}
	return mult
}

// CombinedFinalDamage returns the total final damage as a decimal:
// Π(1 + fd_i) − 1.
func CombinedFinalDamage(sources []stat.Source) float64 {
	return FinalDamageMultiplier(sources) - 1
}

// CombinedDefPen combines defense penetration sources (decimals).
// Each source penetrates the REMAINING defense, not the original:
// total = 1 − Π(1 − ied_i), capped at 100%.
//
// Summing the sources is a known wrong way to compute this; any
// caller assuming additive def pen stacking is a bug.
func CombinedDefPen(sources []stat.Source) float64 {
	remaining := 1.0
	for _, s := range sorted(sources) {
		remaining *= 1 - s.Value
	}
	return min(1-remaining, DefPenCap)
}

// CombinedAttackSpeed combines attack speed sources (display
// percentages) with diminishing returns toward the 150% cap: each
// source closes source/150 of the remaining gap.
func CombinedAttackSpeed(sources []stat.Source) float64 {
	total := 0.0
	for _, s := range sorted(sources) {
		if s.Value <= 0 {
			continue
		}
		total += (AtkSpdCap - total) * (s.Value / AtkSpdCap)
	}
	return min(total, AtkSpdCap)
}

// DefenseMultiplier is the damage retained against enemy defense:
// 1 / (1 + def × (1 − pen)). The denominator is ≥ 1 for non-negative
// inputs, so the division is safe.
func DefenseMultiplier(defPen, enemyDef float64) float64 {
	return 1 / (1 + enemyDef*(1-defPen))
}

// EffectiveCritMultiplier weights crit and non-crit hits: crits deal
// 1 + cd/100, the rest deal ×1. Crit rate above 100% adds nothing.
// critDamage must already include the 30% base.
func EffectiveCritMultiplier(critRate, critDamage float64) float64 {
	rate := min(critRate, 100) / 100
	return 1 + rate*critDamage/100
}

// CritConversionBonus converts crit rate into bonus crit damage
// (Book of Ancient style): bonus = critRate × rate. The crit rate
// passed in must be the value aggregated before the conversion so the
// converted portion is never fed back into itself.
func CritConversionBonus(critRate, conversionRate float64) float64 {
	return critRate * conversionRate
}

// StackMultiplier is the multiplier of a stacking damage buff:
// 1 + stacks × perStack. perStack is a decimal.
func StackMultiplier(perStack float64, stacks float64) float64 {
	return 1 + stacks*perStack
}

// AverageStacks returns the time-weighted average stack count over a
// fight when one stack is gained every secondsPerStack seconds up to
// maxStacks. Infinite fights sit at max stacks.
func AverageStacks(duration, secondsPerStack float64, maxStacks int) float64 {
	if duration <= 0 || maxStacks <= 0 || secondsPerStack <= 0 {
		return 0
	}
	if math.IsInf(duration, 1) {
		return float64(maxStacks)
	}
	weighted := 0.0
	for n := 0; n <= maxStacks; n++ {
		start := float64(n) * secondsPerStack
		if start >= duration {
			break
		}
		// The last stack holds until the fight ends.
		end := float64(n+1) * secondsPerStack
		if n == maxStacks {
			end = duration
		}
		weighted += float64(n) * (min(end, duration) - start)
	}
	return weighted / duration
}
