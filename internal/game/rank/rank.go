// Package rank orders upgrade options by marginal DPS: which artifact
// to equip, which to awaken next, whether a potential reroll is worth
// its diamonds. Equipping changes the aggregated block, which changes
// the value of equipping, so the top slots are settled with a
// fixed-point pass rather than trusting the first ranking.
package rank

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/udisondev/mapleidle/internal/data"
	"github.com/udisondev/mapleidle/internal/game/dps"
	"github.com/udisondev/mapleidle/internal/model"
)

// Entry is one artifact's marginal value: DPS with it equipped minus
// DPS without it, everything else held constant.
type Entry struct {
	Key      string
	Name     string
	Tier     data.ArtifactTier
	Marginal float64
	GainPct  float64 // marginal as % of DPS without the artifact
}

// Report is a full ranking run.
type Report struct {
	Entries    []Entry
	CurrentDPS float64  // with the character's own equips
	Best       []string // top slots after the fixed-point pass
	BestDPS    float64
}

// Artifacts ranks every owned artifact by marginal DPS in a scenario,
// then re-evaluates the top picks as a set: the first ranking uses
// each artifact's marginal value against the current equips, the
// second pass aggregates the winners together and reports that DPS.
func Artifacts(log *slog.Logger, c *model.Character, mode data.CombatMode, chapter int) (*Report, error) {
	if log == nil {
		log = slog.Default()
	}
	current, err := dps.Evaluate(c, mode, chapter, nil)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}

	equipped := c.EquippedSet()
	entries := make([]Entry, 0, len(c.Artifacts))
	for key := range c.Artifacts {
		def, ok := data.GetArtifact(key)
		if !ok {
			continue
		}
		with := setWith(equipped, key)
		without := setWithout(equipped, key)
		withRes, err := dps.Evaluate(c, mode, chapter, with)
		if err != nil {
			return nil, fmt.Errorf("rank %s: %w", key, err)
		}
		withoutRes, err := dps.Evaluate(c, mode, chapter, without)
		if err != nil {
			return nil, fmt.Errorf("rank %s: %w", key, err)
		}
		marginal := withRes.Total - withoutRes.Total
		gain := 0.0
		if withoutRes.Total > 0 {
			gain = marginal / withoutRes.Total * 100
		}
		entries = append(entries, Entry{
			Key:      key,
			Name:     def.Name,
			Tier:     def.Tier,
			Marginal: marginal,
			GainPct:  gain,
		})
		log.Debug("artifact marginal",
			"artifact", key,
			"mode", string(mode),
			"marginal", marginal,
			"gain_pct", gain,
		)
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Marginal > b.Marginal:
			return -1
		case a.Marginal < b.Marginal:
			return 1
		}
		return strings.Compare(a.Key, b.Key)
	})

	// Fixed-point pass: the top picks become the equipped set and the
	// final DPS is reported for that set as a whole.
	top := min(data.EquippedArtifactSlots, len(entries))
	best := make([]string, 0, top)
	override := make(map[string]struct{}, top)
	for _, e := range entries[:top] {
		best = append(best, e.Key)
		override[e.Key] = struct{}{}
	}
	bestDPS := current.Total
	if len(best) > 0 {
		res, err := dps.Evaluate(c, mode, chapter, override)
		if err != nil {
			return nil, fmt.Errorf("rank best set: %w", err)
		}
		bestDPS = res.Total
	}

	return &Report{
		Entries:    entries,
		CurrentDPS: current.Total,
		Best:       best,
		BestDPS:    bestDPS,
	}, nil
}

func setWith(base map[string]struct{}, key string) map[string]struct{} {
	out := make(map[string]struct{}, len(base)+1)
	for k := range base {
		out[k] = struct{}{}
	}
	out[key] = struct{}{}
	return out
}

func setWithout(base map[string]struct{}, key string) map[string]struct{} {
	out := make(map[string]struct{}, len(base))
	for k := range base {
		if k != key {
			out[k] = struct{}{}
		}
	}
	return out
}
