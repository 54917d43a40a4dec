// Package aggregate folds every stat source a character owns into a
// single stat block. The pass order is fixed: additive sources first,
// derived conversions last, so a conversion always reads the final
// value of its source stat and never feeds back into itself.
package aggregate

import (
	"fmt"

	"github.com/udisondev/mapleidle/internal/data"
	"github.com/udisondev/mapleidle/internal/game/formula"
	"github.com/udisondev/mapleidle/internal/model"
	"github.com/udisondev/mapleidle/internal/stat"
)

// Options controls one aggregation run.
type Options struct {
	// Scenario selects the combat mode the block is being built for;
	// scenario-restricted artifact effects and uptime scaling depend
	// on it.
	Scenario data.ScenarioConfig

	// Override, when non-nil, replaces the character's equipped
	// artifact set for this run. The ranking layer uses it to evaluate
	// hypothetical equips without mutating the character. Membership
	// is checked against this exact set, nothing is re-derived.
	Override map[string]struct{}
}

// StackBuff is a stacking damage buff that cannot be folded into the
// block: its value depends on fight duration, which the DPS layer
// owns.
type StackBuff struct {
	Source          string
	PerStack        float64 // decimal, per stack
	MaxStacks       int
	SecondsPerStack float64
}

// Result is the aggregation output.
type Result struct {
	Block      *stat.Block
	StackBuffs []StackBuff
}

// Aggregate builds the stat block for a character. It validates the
// character first and refuses to aggregate inconsistent input.
func Aggregate(c *model.Character, opts Options) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	mainFlat, mainPct, err := data.MainStatKeys(c.Job)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	agg := &aggregator{
		block:    stat.NewBlock(),
		mainFlat: mainFlat,
		mainPct:  mainPct,
		scenario: opts.Scenario,
	}

	agg.equipment(c)
	agg.weapons(c)
	agg.heroPower(c)
	agg.mapleRank(c)
	agg.companions(c)
	agg.guild(c)
	agg.passives(c)
	agg.artifactInventory(c)

	active := opts.Override
	if active == nil {
		active = c.EquippedSet()
	}
	agg.artifactActive(c, active)
	agg.resonance(c)

	// Derived conversions read fully-aggregated source stats, so they
	// run strictly after every other pass.
	agg.derived(c, active)

	if agg.err != nil {
		return nil, fmt.Errorf("aggregate: %w", agg.err)
	}
	return &Result{Block: agg.block, StackBuffs: agg.stacks}, nil
}

type aggregator struct {
	block    *stat.Block
	mainFlat stat.Key
	mainPct  stat.Key
	scenario data.ScenarioConfig
	stacks   []StackBuff
	err      error
}

// resolve maps the generic main-stat keys to the job's attribute keys.
func (a *aggregator) resolve(k stat.Key) stat.Key {
	switch k {
	case stat.MainStatFlat:
		return a.mainFlat
	case stat.MainStatPct:
		return a.mainPct
	}
	return k
}

// addDisplay adds a stat given in display units (12.0 = 12%), the
// convention for profile-sourced lines. Multiplicative stats are
// routed to their source lists; final damage and def pen convert to
// decimals, attack speed sources stay in display units.
func (a *aggregator) addDisplay(source string, k stat.Key, v float64) {
	if a.err != nil {
		return
	}
	k = a.resolve(k)
	switch k {
	case stat.FinalDamage:
		a.block.AddFinalDamage(source, v/100)
	case stat.DefPen:
		a.block.AddDefPen(source, v/100)
	case stat.AttackSpeed:
		a.block.AddAttackSpeed(source, v)
	default:
		a.err = a.block.Add(k, v)
	}
}

// addDecimal adds a stat given in decimal units (0.12 = 12%), the
// convention for artifact effect tables. Flat stats pass through
// unchanged.
func (a *aggregator) addDecimal(source string, k stat.Key, v float64) {
	if a.err != nil {
		return
	}
	k = a.resolve(k)
	switch k {
	case stat.FinalDamage:
		a.block.AddFinalDamage(source, v)
		return
	case stat.DefPen:
		a.block.AddDefPen(source, v)
		return
	case stat.AttackSpeed:
		a.block.AddAttackSpeed(source, v*100)
		return
	}
	d, ok := stat.Lookup(k)
	if !ok {
		a.err = fmt.Errorf("%w: %q", stat.ErrUnknownStat, k)
		return
	}
	if d.Percent {
		v *= 100
	}
	a.err = a.block.Add(k, v)
}

func (a *aggregator) equipment(c *model.Character) {
	for _, eq := range c.Equipment {
		a.addDisplay(eq.Slot, stat.AttackFlat, eq.Attack)
		a.addDisplay(eq.Slot, a.mainFlat, eq.MainStat)
		for _, line := range eq.Potentials {
			if line.Stat == "" {
				continue
			}
			a.addDisplay(eq.Slot+"/potential", line.Stat, line.Value)
		}
		for _, line := range eq.BonusPotentials {
			if line.Stat == "" {
				continue
			}
			a.addDisplay(eq.Slot+"/bonus", line.Stat, line.Value)
		}
	}
}

func (a *aggregator) heroPower(c *model.Character) {
	for _, line := range c.HeroPower {
		a.addDisplay("hero_power/"+line.Source, line.Stat, line.Value)
	}
}

// Maple rank stat grants per level.
const (
	rankAttackSpeedPerLevel = 0.5
	rankCritRatePerLevel    = 1.0
	rankDamagePerLevel      = 2.0
)

func (a *aggregator) mapleRank(c *model.Character) {
	r := c.MapleRank
	if r.AttackSpeed > 0 {
		a.block.AddAttackSpeed("maple_rank", float64(r.AttackSpeed)*rankAttackSpeedPerLevel)
	}
	a.addDisplay("maple_rank", stat.CritRate, float64(r.CritRate)*rankCritRatePerLevel)
	a.addDisplay("maple_rank", stat.DamagePct, float64(r.Damage)*rankDamagePerLevel)
	a.addDisplay("maple_rank", stat.BossDamage, float64(r.BossDamage)*rankDamagePerLevel)
	a.addDisplay("maple_rank", stat.NormalDamage, float64(r.NormalDamage)*rankDamagePerLevel)
	a.addDisplay("maple_rank", stat.CritDamage, float64(r.CritDamage)*rankDamagePerLevel)
}

// weapons applies weapon contributions: every owned weapon grants its
// inventory attack%, the equipped one adds the full on-equip attack%
// and the rarity's attack speed bonus.
func (a *aggregator) weapons(c *model.Character) {
	for _, w := range c.Weapons {
		src := fmt.Sprintf("weapon/%s_t%d", w.Rarity, w.Tier)
		a.addDisplay(src+"/inventory", stat.AttackPct, data.WeaponInventoryATK(w.Rarity, w.Tier, w.Level))
		if !w.Equipped {
			continue
		}
		a.addDisplay(src, stat.AttackPct, data.WeaponOnEquipATK(w.Rarity, w.Tier, w.Level))
		if spd := data.WeaponAttackSpeedBonus(w.Rarity); spd > 0 {
			a.block.AddAttackSpeed(src, spd)
		}
	}
}

// companions applies companion contributions: every owned companion
// grants its level-scaled inventory stats, equipped ones add their
// on-equip stat. Attack speed companions land in the diminishing
// source list one by one, same as any other attack speed source.
func (a *aggregator) companions(c *model.Character) {
	for _, comp := range c.Companions {
		def, ok := data.GetCompanion(comp.Key)
		if !ok {
			continue // Validate already rejected unknown keys
		}
		for _, line := range def.InventoryStats(comp.Level) {
			a.addDisplay("companion/"+comp.Key+"/inventory", line.Stat, line.Value)
		}
		if !comp.Equipped {
			continue
		}
		a.addDisplay("companion/"+comp.Key, def.EquipStat, def.OnEquipValue(comp.Level))
	}
}

func (a *aggregator) guild(c *model.Character) {
	if c.Guild.FinalDamage > 0 {
		a.block.AddFinalDamage("guild", c.Guild.FinalDamage)
	}
	a.addDisplay("guild", stat.DamagePct, c.Guild.DamagePct)
	a.addDisplay("guild", stat.CritRate, c.Guild.CritRate)
}

func (a *aggregator) passives(c *model.Character) {
	for _, line := range c.Passives {
		a.addDisplay("passive/"+line.Source, line.Stat, line.Value)
	}
}

// artifactInventory applies inventory effects: owning an artifact is
// enough, equipping is not required.
func (a *aggregator) artifactInventory(c *model.Character) {
	for key, art := range c.Artifacts {
		def, ok := data.GetArtifact(key)
		if !ok || def.InventoryStat == "" {
			continue
		}
		a.addDecimal(key+"/inventory", def.InventoryStat, def.InventoryValue(art.Stars))
	}
}

// artifactActive applies the active effects of artifacts in the
// active set, plus their rolled potentials.
func (a *aggregator) artifactActive(c *model.Character, active map[string]struct{}) {
	for key := range active {
		art, owned := c.Artifacts[key]
		if !owned {
			continue
		}
		def, ok := data.GetArtifact(key)
		if !ok {
			continue
		}
		for _, line := range art.Potentials {
			if line.Stat == "" {
				continue
			}
			a.addDisplay(key+"/potential", line.Stat, line.Value)
		}
		if !def.AppliesTo(a.scenario.Mode) {
			continue
		}
		uptime := def.Uptime(a.scenario.Duration)
		for _, eff := range def.ActiveEffects {
			switch eff.Kind {
			case data.EffectMultiplicative:
				a.stacks = append(a.stacks, StackBuff{
					Source:          key,
					PerStack:        eff.Value(art.Stars),
					MaxStacks:       eff.MaxStacks,
					SecondsPerStack: data.HexSecondsPerStack,
				})
			case data.EffectFlat:
				v := eff.Value(art.Stars)
				if def.MaxTargets > 0 {
					v *= a.averageTargets(def.MaxTargets)
				}
				a.addDecimal(key, eff.Stat, v*uptime)
			}
		}
	}
}

// averageTargets is the time-averaged enemy count a per-target effect
// sees: the capped mob count during mob waves, a single target for the
// rest of the fight.
func (a *aggregator) averageTargets(maxTargets int) float64 {
	mobs := float64(min(maxTargets, a.scenario.NumEnemies))
	return a.scenario.MobTime*mobs + (1 - a.scenario.MobTime)
}

// resonance grants flat main stat and HP for every awakening star in
// the collection.
func (a *aggregator) resonance(c *model.Character) {
	stars := float64(c.TotalAwakeningStars())
	if stars == 0 {
		return
	}
	a.addDisplay("resonance", a.mainFlat, stars*data.ResonanceMainStatPerStar)
	a.addDisplay("resonance", stat.MaxHP, stars*data.ResonanceHPPerStar)
}

// derived applies stat-to-stat conversions of active artifacts after
// every additive pass, so the conversion reads the final source value.
func (a *aggregator) derived(c *model.Character, active map[string]struct{}) {
	for key := range active {
		art, owned := c.Artifacts[key]
		if !owned {
			continue
		}
		def, ok := data.GetArtifact(key)
		if !ok || !def.AppliesTo(a.scenario.Mode) {
			continue
		}
		uptime := def.Uptime(a.scenario.Duration)
		for _, eff := range def.ActiveEffects {
			if eff.Kind != data.EffectDerived {
				continue
			}
			src := a.sourceValue(eff.DerivedFrom)
			bonus := formula.CritConversionBonus(src, eff.Value(art.Stars))
			a.addDisplay(key+"/derived", eff.Stat, bonus*uptime)
		}
	}
}

// sourceValue reads the display-unit total of a stat, combining
// multiplicative source lists where needed.
func (a *aggregator) sourceValue(k stat.Key) float64 {
	switch k {
	case stat.AttackSpeed:
		return formula.CombinedAttackSpeed(a.block.AttackSpeedSources())
	case stat.FinalDamage:
		return formula.CombinedFinalDamage(a.block.FinalDamageSources()) * 100
	case stat.DefPen:
		return formula.CombinedDefPen(a.block.DefPenSources()) * 100
	}
	return a.block.Get(k)
}
