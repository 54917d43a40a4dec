// Package dps turns an aggregated stat block into a damage-per-second
// estimate with a full multiplier breakdown. Calculation is pure: the
// same block, job and scenario always produce the same result.
package dps

import (
	"fmt"

	"github.com/udisondev/mapleidle/internal/data"
	"github.com/udisondev/mapleidle/internal/game/aggregate"
	"github.com/udisondev/mapleidle/internal/game/formula"
	"github.com/udisondev/mapleidle/internal/model"
	"github.com/udisondev/mapleidle/internal/stat"
)

// Breakdown exposes every multiplier of the damage product so build
// comparisons can show where a gain actually came from.
type Breakdown struct {
	Attack        float64 // total attack after attack%
	MainStat      float64 // main stat total after %
	SecondaryStat float64

	StatMult        float64 // stat-proportional multiplier
	DamageMult      float64 // 1 + damage%/100, scenario-weighted boss/normal on top
	StackMult       float64 // time-averaged stacking buffs
	SkillMult       float64
	RangeMult       float64 // average of min/max damage multipliers
	CritMult        float64
	FinalDamageMult float64
	AmpMult         float64
	DefenseMult     float64 // damage retained against enemy defense
	SpeedMult       float64 // hits per second factor

	DefPen      float64 // combined, decimal
	AttackSpeed float64 // combined, display %
	CritRate    float64
	CritDamage  float64 // includes the base 30
}

// Result is one DPS evaluation.
type Result struct {
	Total     float64
	Breakdown Breakdown
}

// Calculate computes DPS from an aggregated result. enemyDef is the
// scenario's enemy defense (see data.EnemyDefense).
func Calculate(agg *aggregate.Result, job data.JobClass, scenario data.ScenarioConfig, enemyDef float64) (Result, error) {
	info, ok := data.GetJob(job)
	if !ok {
		return Result{}, fmt.Errorf("dps: unknown job class %q", job)
	}
	b := agg.Block

	mainStat := formula.TotalMainStat(
		b.Get(stat.FlatKey(info.Main)),
		b.Get(stat.PctKey(info.Main)),
	)
	secondaryStat := formula.TotalMainStat(
		b.Get(stat.FlatKey(info.Secondary)),
		b.Get(stat.PctKey(info.Secondary)),
	)
	attack := b.Get(stat.AttackFlat) * (1 + b.Get(stat.AttackPct)/100)

	bd := Breakdown{
		Attack:        attack,
		MainStat:      mainStat,
		SecondaryStat: secondaryStat,
		StatMult:      formula.StatMultiplier(mainStat, secondaryStat),
		SkillMult:     1 + b.Get(stat.SkillDamage)/100,
		RangeMult:     1 + (b.Get(stat.MinDmgMult)+b.Get(stat.MaxDmgMult))/2/100,
		AmpMult:       formula.AmpMultiplier(b.Get(stat.DamageAmp)),
	}

	bd.DefPen = formula.CombinedDefPen(b.DefPenSources())
	bd.DefenseMult = formula.DefenseMultiplier(bd.DefPen, enemyDef)
	bd.FinalDamageMult = formula.FinalDamageMultiplier(b.FinalDamageSources())
	bd.AttackSpeed = formula.CombinedAttackSpeed(b.AttackSpeedSources())
	bd.SpeedMult = 1 + bd.AttackSpeed/100

	bd.CritRate = b.Get(stat.CritRate)
	bd.CritDamage = formula.BaseCritDamage + b.Get(stat.CritDamage)
	bd.CritMult = formula.EffectiveCritMultiplier(bd.CritRate, bd.CritDamage)

	// Damage% is additive; stacking buffs (duration-dependent) multiply
	// on top after time-averaging over the fight.
	bd.DamageMult = weightedDamageMult(b, scenario)
	bd.StackMult = stackMultiplier(agg.StackBuffs, scenario.Duration)

	base := bd.Attack * bd.StatMult
	total := base *
		bd.DamageMult *
		bd.StackMult *
		bd.SkillMult *
		bd.RangeMult *
		bd.CritMult *
		bd.FinalDamageMult *
		bd.AmpMult *
		bd.DefenseMult *
		bd.SpeedMult

	return Result{Total: total, Breakdown: bd}, nil
}

// weightedDamageMult blends boss and normal damage by the scenario's
// boss HP weight: a stage fight is mostly judged on its boss HP bar
// even though most of the clock is spent on mobs.
func weightedDamageMult(b *stat.Block, scenario data.ScenarioConfig) float64 {
	base := b.Get(stat.DamagePct)
	boss := 1 + (base+b.Get(stat.BossDamage))/100
	normal := 1 + (base+b.Get(stat.NormalDamage))/100
	w := scenario.BossWeight
	return w*boss + (1-w)*normal
}

func stackMultiplier(buffs []aggregate.StackBuff, duration float64) float64 {
	mult := 1.0
	for _, buff := range buffs {
		avg := formula.AverageStacks(duration, buff.SecondsPerStack, buff.MaxStacks)
		mult *= formula.StackMultiplier(buff.PerStack, avg)
	}
	return mult
}

// Evaluate aggregates a character and calculates DPS in one shot.
// The override set, when non-nil, replaces the character's equipped
// artifacts for this evaluation only.
func Evaluate(c *model.Character, mode data.CombatMode, chapter int, override map[string]struct{}) (Result, error) {
	scenario, ok := data.GetScenario(mode)
	if !ok {
		return Result{}, fmt.Errorf("dps: unknown combat mode %q", mode)
	}
	agg, err := aggregate.Aggregate(c, aggregate.Options{Scenario: scenario, Override: override})
	if err != nil {
		return Result{}, err
	}
	return Calculate(agg, c.Job, scenario, data.EnemyDefense(mode, chapter))
}
