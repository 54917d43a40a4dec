package rank

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/udisondev/mapleidle/internal/data"
	"github.com/udisondev/mapleidle/internal/game/dps"
	"github.com/udisondev/mapleidle/internal/model"
)

// ErrBadSlot is returned for a potential slot index outside the
// artifact's unlocked range.
var ErrBadSlot = errors.New("potential slot not unlocked")

// AwakeningOption is the value of awakening one artifact by one star.
type AwakeningOption struct {
	Key       string
	Name      string
	FromStars int
	ToStars   int

	DPSGainPct  float64
	DiamondCost float64 // duplicates needed × chest price

	// PerThousand is DPS% gained per 1000 diamonds, the number the
	// options are ranked by.
	PerThousand float64
}

// Awakenings ranks every possible next awakening step by diamond
// efficiency. Awakening cost is paid in duplicates, priced at the
// artifact chest rate.
func Awakenings(log *slog.Logger, c *model.Character, mode data.CombatMode, chapter int) ([]AwakeningOption, error) {
	if log == nil {
		log = slog.Default()
	}
	base, err := dps.Evaluate(c, mode, chapter, nil)
	if err != nil {
		return nil, fmt.Errorf("rank awakenings: %w", err)
	}

	options := make([]AwakeningOption, 0, len(c.Artifacts))
	for key, art := range c.Artifacts {
		def, ok := data.GetArtifact(key)
		if !ok || art.Stars >= data.MaxAwakening {
			continue
		}
		next := c.Clone()
		bumped := next.Artifacts[key]
		bumped.Stars++
		next.Artifacts[key] = bumped

		res, err := dps.Evaluate(next, mode, chapter, nil)
		if err != nil {
			return nil, fmt.Errorf("rank awakening %s: %w", key, err)
		}
		gain := 0.0
		if base.Total > 0 {
			gain = (res.Total - base.Total) / base.Total * 100
		}
		dupes := data.AwakeningCosts[def.Tier][art.Stars+1]
		cost := float64(dupes) * data.ArtifactChestCost
		opt := AwakeningOption{
			Key:         key,
			Name:        def.Name,
			FromStars:   art.Stars,
			ToStars:     art.Stars + 1,
			DPSGainPct:  gain,
			DiamondCost: cost,
		}
		if cost > 0 {
			opt.PerThousand = gain / (cost / 1000)
		}
		options = append(options, opt)
		log.Debug("awakening option",
			"artifact", key,
			"to_stars", opt.ToStars,
			"gain_pct", gain,
			"cost", cost,
		)
	}

	slices.SortStableFunc(options, func(a, b AwakeningOption) int {
		switch {
		case a.PerThousand > b.PerThousand:
			return -1
		case a.PerThousand < b.PerThousand:
			return 1
		}
		return strings.Compare(a.Key, b.Key)
	})
	return options, nil
}

// RerollValue is the expected value of rerolling one artifact
// potential slot.
type RerollValue struct {
	Key  string
	Slot int
	Tier data.PotentialTier

	// ExpectedGainPct is the probability-weighted DPS change of one
	// reroll against the current line. Negative means the current
	// line beats the pool average and rerolling is expected to lose.
	ExpectedGainPct float64

	RerollCost float64 // diamond-equivalent enhancer cost
}

// PotentialReroll computes the expected DPS change of rerolling the
// given potential slot at the given tier, weighting every line the
// pool can produce by its roll probability.
func PotentialReroll(c *model.Character, mode data.CombatMode, chapter int, artifactKey string, slot int, tier data.PotentialTier) (RerollValue, error) {
	art, owned := c.Artifacts[artifactKey]
	if !owned {
		return RerollValue{}, fmt.Errorf("reroll: %w: %q", model.ErrArtifactNotOwned, artifactKey)
	}
	def, ok := data.GetArtifact(artifactKey)
	if !ok {
		return RerollValue{}, fmt.Errorf("reroll: %w: %q", model.ErrUnknownArtifact, artifactKey)
	}
	if slot < 0 || slot >= data.PotentialSlots(def.Tier, art.Stars) {
		return RerollValue{}, fmt.Errorf("reroll: %w: %s slot %d", ErrBadSlot, artifactKey, slot)
	}
	pool := data.PotentialPool[tier]
	if len(pool) == 0 {
		return RerollValue{}, fmt.Errorf("reroll: no potential pool for tier %s", tier)
	}

	base, err := dps.Evaluate(c, mode, chapter, nil)
	if err != nil {
		return RerollValue{}, fmt.Errorf("reroll: %w", err)
	}

	totalProb := 0.0
	weightedDPS := 0.0
	for _, cand := range pool {
		next := c.Clone()
		withLine := next.Artifacts[artifactKey]
		line := model.PotentialLine{Stat: cand.Stat, Value: cand.Value, Tier: tier}
		for len(withLine.Potentials) <= slot {
			withLine.Potentials = append(withLine.Potentials, model.PotentialLine{})
		}
		withLine.Potentials[slot] = line
		next.Artifacts[artifactKey] = withLine

		res, err := dps.Evaluate(next, mode, chapter, nil)
		if err != nil {
			return RerollValue{}, fmt.Errorf("reroll %s line %s: %w", artifactKey, cand.Stat, err)
		}
		totalProb += cand.Probability
		weightedDPS += cand.Probability * res.Total
	}
	expected := weightedDPS / totalProb

	gain := 0.0
	if base.Total > 0 {
		gain = (expected - base.Total) / base.Total * 100
	}
	return RerollValue{
		Key:             artifactKey,
		Slot:            slot,
		Tier:            tier,
		ExpectedGainPct: gain,
		RerollCost:      data.ReconfigureDiamondCost(def.Tier),
	}, nil
}
