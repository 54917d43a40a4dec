// Package cube models the potential tier-up system: per-cube tier-up
// chances, the pity guarantee, expected roll counts and diamond
// costs, and multi-slot hit probabilities.
package cube

import (
	"fmt"
	"math"

	"github.com/udisondev/mapleidle/internal/data"
)

// TierUpWithin returns P(at least one tier-up in n rolls) from the
// given tier using the given cube system. Pity makes the probability
// exactly 1 once n reaches the threshold; below it the rolls are
// independent Bernoulli trials.
func TierUpWithin(ct data.CubeType, from data.PotentialTier, n int) (float64, error) {
	if n <= 0 {
		return 0, nil
	}
	p, err := data.TierUpRate(from)
	if err != nil {
		return 0, err
	}
	pity, err := data.PityThreshold(ct, from)
	if err != nil {
		return 0, err
	}
	if n >= pity {
		return 1, nil
	}
	return 1 - math.Pow(1-p, float64(n)), nil
}

// ExpectedRolls returns the expected number of cubes to tier up from
// the given tier, accounting for the pity guarantee:
//
//	E = Σ_{k=0}^{T-1} (1-p)^k = (1 - (1-p)^T) / p
//
// where T is the pity threshold. A zero natural rate degenerates to
// exactly T rolls (pity always fires); zero rate without pity would
// be an infinite wait.
func ExpectedRolls(ct data.CubeType, from data.PotentialTier) (float64, error) {
	p, err := data.TierUpRate(from)
	if err != nil {
		return 0, err
	}
	pity, err := data.PityThreshold(ct, from)
	if err != nil {
		return 0, err
	}
	if p <= 0 {
		if pity > 0 {
			return float64(pity), nil
		}
		return math.Inf(1), nil
	}
	return (1 - math.Pow(1-p, float64(pity))) / p, nil
}

// ExpectedCost returns the expected blue diamond cost to tier up from
// the given tier.
func ExpectedCost(ct data.CubeType, from data.PotentialTier) (float64, error) {
	rolls, err := ExpectedRolls(ct, from)
	if err != nil {
		return 0, err
	}
	return rolls * data.CubeCost(ct), nil
}

// ExpectedCostToTier sums the expected diamond cost of climbing from
// one tier to a higher one, pity included at every step.
func ExpectedCostToTier(ct data.CubeType, from, to data.PotentialTier) (float64, error) {
	if to <= from {
		return 0, nil
	}
	total := 0.0
	for t := from; t < to; t++ {
		c, err := ExpectedCost(ct, t)
		if err != nil {
			return 0, fmt.Errorf("step %s: %w", t, err)
		}
		total += c
	}
	return total, nil
}

// AnySlotHits returns P(at least one of k independent slots rolls a
// target line), each with per-slot probability p. Exact complement,
// not the k*p approximation: the approximation overshoots badly once
// k*p gets large.
func AnySlotHits(p float64, k int) float64 {
	if k <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(1-p, float64(k))
}

// TargetLineChance returns P(at least one of the first `slots`
// potential slots produces a target line with per-line probability p).
// Slots are independent but not identical: lower slots roll at the
// item's tier (yellow) far more often, so each slot hits with
// yellowRate(i) × p.
func TargetLineChance(p float64, slots int) float64 {
	if p <= 0 || slots <= 0 {
		return 0
	}
	miss := 1.0
	for i := 1; i <= slots; i++ {
		miss *= 1 - data.SlotYellowRates[i]*p
	}
	return 1 - miss
}

// SpecialLineValue returns the slot-specific special line available
// on an equipment slot at a tier, with its per-roll chance. ok is
// false when the slot has no special line or the tier is too low to
// roll it.
func SpecialLineValue(slot string, tier data.PotentialTier) (data.SpecialPotential, float64, bool) {
	sp, exists := data.SpecialPotentials[slot]
	if !exists {
		return data.SpecialPotential{}, 0, false
	}
	if _, atTier := sp.Values[tier]; !atTier {
		return data.SpecialPotential{}, 0, false
	}
	return sp, data.SpecialPotentialRate, true
}

// PityCounter tracks cube rolls toward the guaranteed tier-up.
type PityCounter struct {
	Count     int
	Threshold int
}

// NewPityCounter starts a counter for a cube system and tier.
func NewPityCounter(ct data.CubeType, from data.PotentialTier) (*PityCounter, error) {
	pity, err := data.PityThreshold(ct, from)
	if err != nil {
		return nil, err
	}
	return &PityCounter{Threshold: pity}, nil
}

// Advance records one roll. tieredUp reports whether the roll
// naturally tiered up; the return value reports whether a tier-up
// happened, forced by pity if the threshold is reached. On any
// tier-up the counter resets for the next tier's climb.
func (pc *PityCounter) Advance(tieredUp bool) bool {
	pc.Count++
	if tieredUp || pc.Count >= pc.Threshold {
		pc.Count = 0
		return true
	}
	return false
}

// Remaining returns rolls left before the guarantee fires.
func (pc *PityCounter) Remaining() int {
	return pc.Threshold - pc.Count
}
