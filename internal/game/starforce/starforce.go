// Package starforce models enhancement economics: per-attempt outcome
// rates, protection strategies, and expected cost to climb between
// star counts. Outcomes chain (a decrease forces a re-climb of the
// previous stage), so the solver works stage by stage from the bottom.
package starforce

import (
	"errors"
	"fmt"
	"math"

	"github.com/udisondev/mapleidle/internal/data"
)

// Currency conversion constants.
const (
	// MesoToDiamond converts meso enhancement fees to blue diamonds.
	MesoToDiamond = 0.004

	// ScrollDiamondCost is the blue diamond price of one enhancement
	// scroll.
	ScrollDiamondCost = 350

	// DestructionFee is the meso fee to restore a destroyed item at
	// its current star count.
	DestructionFee = 1_000_000
)

// NoDestroyProtectionStages lists stages where destruction protection
// cannot be purchased.
var NoDestroyProtectionStages = map[int]bool{22: true, 23: true, 24: true}

// ErrProtectionUnavailable is returned when a strategy requests
// destruction protection at a stage that does not sell it.
var ErrProtectionUnavailable = errors.New("destruction protection unavailable at this stage")

// ErrBadStarRange is returned for invalid star ranges.
var ErrBadStarRange = errors.New("invalid star range")

// Strategy selects enhancement protections. Each active protection
// doubles the attempt cost at the stages where it applies.
type Strategy struct {
	// DecreaseProtection turns a star decrease into a maintain.
	DecreaseProtection bool
	// DestroyProtection turns a destruction into a maintain. Not
	// sold at stages 22-24.
	DestroyProtection bool
}

// costMultiplier returns the attempt cost factor for the protections
// active at a stage.
func (s Strategy) costMultiplier(stage data.StarforceStage) float64 {
	mult := 1.0
	if s.DecreaseProtection && stage.Decrease > 0 {
		mult *= 2
	}
	if s.DestroyProtection && stage.Destroy > 0 {
		mult *= 2
	}
	return mult
}

// Rates are the effective outcome probabilities of one attempt after
// protections are applied. They sum to 1.
type Rates struct {
	Success  float64
	Maintain float64
	Decrease float64
	Destroy  float64
}

// StageRates returns the effective rates for enhancing from a star
// count under a strategy.
func StageRates(star int, strat Strategy) (Rates, error) {
	stage, ok := data.StarforceTable[star]
	if !ok {
		return Rates{}, fmt.Errorf("%w: no stage for star %d", ErrBadStarRange, star)
	}
	r := Rates{
		Success:  stage.SuccessRate,
		Maintain: stage.Maintain,
		Decrease: stage.Decrease,
		Destroy:  stage.Destroy,
	}
	if strat.DecreaseProtection {
		r.Maintain += r.Decrease
		r.Decrease = 0
	}
	if strat.DestroyProtection {
		if NoDestroyProtectionStages[star] && stage.Destroy > 0 {
			return Rates{}, fmt.Errorf("%w: star %d", ErrProtectionUnavailable, star)
		}
		r.Maintain += r.Destroy
		r.Destroy = 0
	}
	return r, nil
}

// AttemptCost returns the blue diamond cost of one enhancement
// attempt at a star count under a strategy (scrolls + meso fee,
// protection multiplier applied).
func AttemptCost(star int, strat Strategy) (float64, error) {
	stage, ok := data.StarforceTable[star]
	if !ok {
		return 0, fmt.Errorf("%w: no stage for star %d", ErrBadStarRange, star)
	}
	base := float64(stage.Scrolls)*ScrollDiamondCost + float64(stage.Meso)*MesoToDiamond
	return base * strat.costMultiplier(stage), nil
}

// stageCosts solves the per-stage expected climb costs bottom-up.
//
// C[s] is the expected diamond cost to go from star s to s+1. A
// maintain repeats the attempt, a decrease re-pays the full climb of
// the previous stage, a destruction pays the restore fee and repeats:
//
//	C[s] = (attempt + dec×C[s-1] + dest×fee) / success
//
// The same recurrence with attempt=1, fee=0 yields expected attempt
// counts.
func stageCosts(upTo int, strat Strategy) ([]float64, []float64, error) {
	costs := make([]float64, upTo)
	attempts := make([]float64, upTo)
	feeDiamonds := float64(DestructionFee) * MesoToDiamond
	for s := 0; s < upTo; s++ {
		r, err := StageRates(s, strat)
		if err != nil {
			return nil, nil, err
		}
		attempt, err := AttemptCost(s, strat)
		if err != nil {
			return nil, nil, err
		}
		if r.Success <= 0 {
			costs[s] = math.Inf(1)
			attempts[s] = math.Inf(1)
			continue
		}
		prevCost, prevAttempts := 0.0, 0.0
		if s > 0 {
			prevCost = costs[s-1]
			prevAttempts = attempts[s-1]
		}
		costs[s] = (attempt + r.Decrease*prevCost + r.Destroy*feeDiamonds) / r.Success
		attempts[s] = (1 + r.Decrease*prevAttempts) / r.Success
	}
	return costs, attempts, nil
}

// ExpectedCost returns the expected blue diamond cost to climb from
// one star count to another under a strategy.
func ExpectedCost(from, to int, strat Strategy) (float64, error) {
	if from < 0 || to > data.MaxStars || from > to {
		return 0, fmt.Errorf("%w: %d -> %d", ErrBadStarRange, from, to)
	}
	costs, _, err := stageCosts(to, strat)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for s := from; s < to; s++ {
		total += costs[s]
	}
	return total, nil
}

// ExpectedAttempts returns the expected number of enhancement
// attempts to climb from one star count to another.
func ExpectedAttempts(from, to int, strat Strategy) (float64, error) {
	if from < 0 || to > data.MaxStars || from > to {
		return 0, fmt.Errorf("%w: %d -> %d", ErrBadStarRange, from, to)
	}
	_, attempts, err := stageCosts(to, strat)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for s := from; s < to; s++ {
		total += attempts[s]
	}
	return total, nil
}

// SuccessBeforeDestroy returns the per-attempt probability that a
// stage resolves in success rather than destruction, conditioning out
// maintains and decreases.
func SuccessBeforeDestroy(star int, strat Strategy) (float64, error) {
	r, err := StageRates(star, strat)
	if err != nil {
		return 0, err
	}
	if r.Destroy == 0 {
		return 1, nil
	}
	return r.Success / (r.Success + r.Destroy), nil
}

// CompareStrategies returns the expected climb cost for each
// strategy that is legal over the star range. Destruction protection
// is skipped for ranges crossing stages that do not sell it.
func CompareStrategies(from, to int) map[string]float64 {
	strategies := map[string]Strategy{
		"none":     {},
		"decrease": {DecreaseProtection: true},
		"destroy":  {DestroyProtection: true},
		"both":     {DecreaseProtection: true, DestroyProtection: true},
	}
	out := make(map[string]float64, len(strategies))
	for name, strat := range strategies {
		cost, err := ExpectedCost(from, to, strat)
		if err != nil {
			continue
		}
		out[name] = cost
	}
	return out
}

// BaseStat recovers the pre-enhancement stat from a displayed total:
// displayed = base × amplify, so base = displayed / amplify.
func BaseStat(displayed float64, stars int, sub bool) float64 {
	return displayed / data.AmplifyMultiplier(stars, sub)
}

// DisplayedStat applies the amplify multiplier to a base stat.
func DisplayedStat(base float64, stars int, sub bool) float64 {
	return base * data.AmplifyMultiplier(stars, sub)
}
