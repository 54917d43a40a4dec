package dps

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/udisondev/mapleidle/internal/data"
	"github.com/udisondev/mapleidle/internal/model"
	"github.com/udisondev/mapleidle/internal/stat"
)

// baselineCharacter is a mid-game bowmaster with enough pieces to
// exercise every multiplier.
func baselineCharacter() *model.Character {
	return &model.Character{
		Job:   data.JobBowmaster,
		Level: 120,
		Equipment: []model.Equipment{
			{Slot: "weapon", Attack: 5000, MainStat: 1200, Starforce: 15},
			{Slot: "gloves", Attack: 800, MainStat: 300, Starforce: 10,
				Potentials: []model.PotentialLine{
					{Stat: stat.CritDamage, Value: 20, Tier: data.TierUnique},
				}},
			{Slot: "shoulder", Attack: 600, MainStat: 250,
				Potentials: []model.PotentialLine{
					{Stat: stat.DefPen, Value: 12, Tier: data.TierLegendary},
				}},
		},
		Artifacts: map[string]model.ArtifactInstance{
			"book_of_ancient":  {Key: "book_of_ancient", Stars: 2},
			"hexagon_necklace": {Key: "hexagon_necklace", Stars: 1},
			"star_rock":        {Key: "star_rock", Stars: 0},
		},
		EquippedArtifacts: []string{"book_of_ancient", "hexagon_necklace"},
		Weapons: []model.Weapon{
			{Rarity: data.WeaponUnique, Tier: 3, Level: 40, Equipped: true},
		},
		Companions: []model.Companion{
			{Key: "night_lord_4th", Level: 3, Equipped: true},
		},
		HeroPower: []model.StatLine{
			{Source: "tier3", Stat: stat.DamagePct, Value: 25},
		},
		Guild:     model.GuildSkills{FinalDamage: 0.06, CritRate: 5},
		MapleRank: model.MapleRank{CritRate: 5, Damage: 3},
	}
}

func TestEvaluate_PositiveAndDecomposable(t *testing.T) {
	res, err := Evaluate(baselineCharacter(), data.ModeBoss, 14, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Total <= 0 {
		t.Fatalf("Total = %v, want > 0", res.Total)
	}

	bd := res.Breakdown
	product := bd.Attack * bd.StatMult * bd.DamageMult * bd.StackMult *
		bd.SkillMult * bd.RangeMult * bd.CritMult * bd.FinalDamageMult *
		bd.AmpMult * bd.DefenseMult * bd.SpeedMult
	if math.Abs(product-res.Total) > res.Total*1e-12 {
		t.Errorf("breakdown product = %v, Total = %v", product, res.Total)
	}
	if bd.CritDamage < 30 {
		t.Errorf("CritDamage = %v, want >= base 30", bd.CritDamage)
	}
}

func TestEvaluate_DefPenRaisesDPS(t *testing.T) {
	c := baselineCharacter()
	base, err := Evaluate(c, data.ModeBoss, 14, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	c.Passives = append(c.Passives, model.StatLine{Source: "sharp_eyes", Stat: stat.DefPen, Value: 20})
	more, err := Evaluate(c, data.ModeBoss, 14, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if more.Total <= base.Total {
		t.Errorf("extra def pen did not raise DPS: %v -> %v", base.Total, more.Total)
	}
	if more.Breakdown.DefPen <= base.Breakdown.DefPen {
		t.Errorf("combined def pen did not rise: %v -> %v",
			base.Breakdown.DefPen, more.Breakdown.DefPen)
	}
	if more.Breakdown.DefPen >= 1 {
		t.Errorf("combined def pen = %v, want < 1", more.Breakdown.DefPen)
	}
}

func TestEvaluate_StackBuffFullInInfiniteFight(t *testing.T) {
	c := &model.Character{
		Job:   data.JobBowmaster,
		Level: 100,
		Equipment: []model.Equipment{
			{Slot: "weapon", Attack: 1000, MainStat: 100},
		},
		Artifacts: map[string]model.ArtifactInstance{
			// 24% per stack at 3 stars.
			"hexagon_necklace": {Key: "hexagon_necklace", Stars: 3},
		},
		EquippedArtifacts: []string{"hexagon_necklace"},
	}

	// Chapter hunt is infinite: the buff sits at 3 stacks, ×1.72.
	hunt, err := Evaluate(c, data.ModeChapterHunt, 1, nil)
	if err != nil {
		t.Fatalf("Evaluate hunt: %v", err)
	}
	if got := hunt.Breakdown.StackMult; math.Abs(got-1.72) > 1e-9 {
		t.Errorf("infinite-fight StackMult = %v, want 1.72", got)
	}

	// A 60s boss fight averages one stack over the ramp.
	boss, err := Evaluate(c, data.ModeBoss, 1, nil)
	if err != nil {
		t.Fatalf("Evaluate boss: %v", err)
	}
	if got := boss.Breakdown.StackMult; got >= hunt.Breakdown.StackMult {
		t.Errorf("short-fight StackMult = %v, want below %v", got, hunt.Breakdown.StackMult)
	}
}

func TestEvaluate_BossWeightBlending(t *testing.T) {
	c := baselineCharacter()
	c.Companions = nil
	c.Passives = []model.StatLine{{Source: "hunter", Stat: stat.NormalDamage, Value: 50}}

	// Pure boss mode ignores normal damage entirely.
	boss, err := Evaluate(c, data.ModeBoss, 14, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	withoutNormal := baselineCharacter()
	withoutNormal.Companions = nil
	ref, err := Evaluate(withoutNormal, data.ModeBoss, 14, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if boss.Breakdown.DamageMult != ref.Breakdown.DamageMult {
		t.Errorf("normal damage leaked into boss mode: %v vs %v",
			boss.Breakdown.DamageMult, ref.Breakdown.DamageMult)
	}

	// Stage mode blends it at 1 - boss weight.
	stage, err := Evaluate(c, data.ModeStage, 14, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if stage.Breakdown.DamageMult <= boss.Breakdown.DamageMult {
		t.Error("normal damage had no effect in stage mode")
	}
}

func TestEvaluate_WorldBossDefense(t *testing.T) {
	c := baselineCharacter()
	boss, err := Evaluate(c, data.ModeBoss, 1, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	world, err := Evaluate(c, data.ModeWorldBoss, 1, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// World boss defense dwarfs chapter 1 mobs.
	if world.Breakdown.DefenseMult >= boss.Breakdown.DefenseMult {
		t.Errorf("world boss mitigation %v not below chapter boss %v",
			world.Breakdown.DefenseMult, boss.Breakdown.DefenseMult)
	}
}

func TestEvaluate_UnknownMode(t *testing.T) {
	if _, err := Evaluate(baselineCharacter(), data.CombatMode("raid"), 1, nil); err == nil {
		t.Error("Evaluate(unknown mode) succeeded, want error")
	}
}

func TestWhatIf_NeverMutatesBase(t *testing.T) {
	base := stat.NewBlock()
	if err := base.Add(stat.CritRate, 50); err != nil {
		t.Fatalf("Add: %v", err)
	}
	base.AddFinalDamage("guild", 0.06)

	errBoom := errors.New("boom")
	_, err := WhatIf(base,
		func(b *stat.Block) {
			_ = b.Add(stat.CritRate, 999)
			b.AddFinalDamage("speculative", 0.5)
		},
		func(b *stat.Block) (float64, error) {
			return 0, errBoom
		},
	)
	if !errors.Is(err, errBoom) {
		t.Fatalf("WhatIf error = %v, want boom", err)
	}

	// The failed evaluation must leave no trace on the base block.
	if got := base.Get(stat.CritRate); got != 50 {
		t.Errorf("base crit rate = %v after failed what-if, want 50", got)
	}
	if got := len(base.FinalDamageSources()); got != 1 {
		t.Errorf("base final damage sources = %d after failed what-if, want 1", got)
	}
}

func TestWhatIf_EvaluatesMutation(t *testing.T) {
	base := stat.NewBlock()
	if err := base.Add(stat.DamagePct, 100); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := WhatIf(base,
		func(b *stat.Block) { _ = b.Add(stat.DamagePct, 50) },
		func(b *stat.Block) (float64, error) { return b.Get(stat.DamagePct), nil },
	)
	if err != nil {
		t.Fatalf("WhatIf: %v", err)
	}
	if got != 150 {
		t.Errorf("what-if value = %v, want 150", got)
	}
	if base.Get(stat.DamagePct) != 100 {
		t.Errorf("base mutated to %v", base.Get(stat.DamagePct))
	}
}

func TestBatchEvaluate(t *testing.T) {
	c := baselineCharacter()
	candidates := []Candidate{
		{Label: "current", Override: nil},
		{Label: "with star rock", Override: map[string]struct{}{
			"book_of_ancient": {}, "hexagon_necklace": {}, "star_rock": {},
		}},
		{Label: "bare", Override: map[string]struct{}{}},
	}

	results, err := BatchEvaluate(context.Background(), c, data.ModeBoss, 14, candidates)
	if err != nil {
		t.Fatalf("BatchEvaluate: %v", err)
	}
	if len(results) != len(candidates) {
		t.Fatalf("got %d results, want %d", len(results), len(candidates))
	}
	for i, res := range results {
		if res.Label != candidates[i].Label {
			t.Errorf("result %d label = %q, want %q", i, res.Label, candidates[i].Label)
		}
		if res.DPS <= 0 {
			t.Errorf("candidate %q DPS = %v, want > 0", res.Label, res.DPS)
		}
	}
	// More active artifacts cannot lower DPS here.
	if results[1].DPS <= results[2].DPS {
		t.Errorf("three equips (%v) not above zero equips (%v)", results[1].DPS, results[2].DPS)
	}
}

func TestBatchEvaluate_PropagatesError(t *testing.T) {
	c := baselineCharacter()
	c.Job = data.JobClass("paladin")
	_, err := BatchEvaluate(context.Background(), c, data.ModeBoss, 14, []Candidate{{Label: "bad"}})
	if err == nil {
		t.Error("BatchEvaluate with invalid character succeeded, want error")
	}
}
