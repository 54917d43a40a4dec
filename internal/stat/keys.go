package stat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStat is returned when a stat key is not part of the
// standardized vocabulary. Callers must fail loudly instead of
// silently dropping or coercing unknown keys.
var ErrUnknownStat = errors.New("unknown stat key")

// Key is a standardized stat identifier. The key set is closed:
// every stat produced by equipment import, potentials, artifacts,
// companions or any other collaborator must use one of the keys
// defined in this package.
//
// Naming convention: "_flat" suffix = additive absolute value,
// "_pct" suffix or bare name = percentage (stored as 50.0 for 50%).
type Key string

// Attribute is one of the four primary attributes. Which attribute
// acts as "main stat" is determined by the job class.
type Attribute string

const (
	AttrSTR Attribute = "str"
	AttrDEX Attribute = "dex"
	AttrINT Attribute = "int"
	AttrLUK Attribute = "luk"
)

// Main stats.
const (
	DEXFlat Key = "dex_flat"
	STRFlat Key = "str_flat"
	INTFlat Key = "int_flat"
	LUKFlat Key = "luk_flat"

	DEXPct Key = "dex_pct"
	STRPct Key = "str_pct"
	INTPct Key = "int_pct"
	LUKPct Key = "luk_pct"

	// Generic keys resolved to a concrete attribute by job class.
	MainStatFlat Key = "main_stat_flat"
	MainStatPct  Key = "main_stat_pct"
)

// Attack and damage stats.
const (
	AttackFlat   Key = "attack_flat"
	AttackPct    Key = "attack_pct"
	DamagePct    Key = "damage_pct"
	BossDamage   Key = "boss_damage"
	NormalDamage Key = "normal_damage"
	DamageAmp    Key = "damage_amp"
	CritRate     Key = "crit_rate"
	CritDamage   Key = "crit_damage"
	MinDmgMult   Key = "min_dmg_mult"
	MaxDmgMult   Key = "max_dmg_mult"
)

// Multiplicative-stacking stats. These are never stored as a folded
// scalar in a Block: they are collected as (source, value) lists and
// combined at read time by the formula package.
const (
	DefPen      Key = "def_pen"
	FinalDamage Key = "final_damage"
	AttackSpeed Key = "attack_speed"
)

// Skill and utility stats.
const (
	AllSkills         Key = "all_skills"
	SkillDamage       Key = "skill_damage"
	SkillCD           Key = "skill_cd"
	BuffDuration      Key = "buff_duration"
	Accuracy          Key = "accuracy"
	BATargets         Key = "ba_targets"
	BasicAttackDamage Key = "basic_attack_damage"
	StatusEffectDmg   Key = "status_effect_dmg"
)

// Defensive stats (tracked, do not affect DPS).
const (
	MaxHP   Key = "max_hp"
	Defense Key = "defense"
)

// StackingType describes how multiple sources of the same stat combine.
type StackingType uint8

const (
	// StackAdditive: total = sum of sources.
	StackAdditive StackingType = iota
	// StackMultFinalDamage: mult = prod(1+src), total = mult - 1.
	StackMultFinalDamage
	// StackMultDefPen: remaining = prod(1-src), total = 1 - remaining.
	StackMultDefPen
	// StackDiminishing: each source closes part of the gap to the cap,
	// v += (cap - v) * src/cap.
	StackDiminishing
)

// Category groups stats for display.
type Category string

const (
	CategoryMainStat       Category = "main_stat"
	CategoryAttack         Category = "attack"
	CategoryDamage         Category = "damage"
	CategoryCritical       Category = "critical"
	CategorySkill          Category = "skill"
	CategoryUtility        Category = "utility"
	CategoryMultiplicative Category = "multiplicative"
	CategoryDefense        Category = "defense"
)

// Definition holds metadata for one stat key.
type Definition struct {
	Key         Key
	DisplayName string
	Category    Category
	Stacking    StackingType
	Percent     bool // formatted with a % suffix
	AffectsDPS  bool
}

var definitions = map[Key]Definition{
	DEXFlat:      {DEXFlat, "DEX (Flat)", CategoryMainStat, StackAdditive, false, true},
	STRFlat:      {STRFlat, "STR (Flat)", CategoryMainStat, StackAdditive, false, true},
	INTFlat:      {INTFlat, "INT (Flat)", CategoryMainStat, StackAdditive, false, true},
	LUKFlat:      {LUKFlat, "LUK (Flat)", CategoryMainStat, StackAdditive, false, true},
	DEXPct:       {DEXPct, "DEX %", CategoryMainStat, StackAdditive, true, true},
	STRPct:       {STRPct, "STR %", CategoryMainStat, StackAdditive, true, true},
	INTPct:       {INTPct, "INT %", CategoryMainStat, StackAdditive, true, true},
	LUKPct:       {LUKPct, "LUK %", CategoryMainStat, StackAdditive, true, true},
	MainStatFlat: {MainStatFlat, "Main Stat (Flat)", CategoryMainStat, StackAdditive, false, true},
	MainStatPct:  {MainStatPct, "Main Stat %", CategoryMainStat, StackAdditive, true, true},

	AttackFlat:   {AttackFlat, "Attack (Flat)", CategoryAttack, StackAdditive, false, true},
	AttackPct:    {AttackPct, "Attack %", CategoryAttack, StackAdditive, true, true},
	DamagePct:    {DamagePct, "Damage %", CategoryDamage, StackAdditive, true, true},
	BossDamage:   {BossDamage, "Boss Damage %", CategoryDamage, StackAdditive, true, true},
	NormalDamage: {NormalDamage, "Normal Damage %", CategoryDamage, StackAdditive, true, true},
	DamageAmp:    {DamageAmp, "Damage Amplification %", CategoryDamage, StackAdditive, true, true},
	CritRate:     {CritRate, "Crit Rate %", CategoryCritical, StackAdditive, true, true},
	CritDamage:   {CritDamage, "Crit Damage %", CategoryCritical, StackAdditive, true, true},
	MinDmgMult:   {MinDmgMult, "Min Damage %", CategoryDamage, StackAdditive, true, true},
	MaxDmgMult:   {MaxDmgMult, "Max Damage %", CategoryDamage, StackAdditive, true, true},

	DefPen:      {DefPen, "Defense Penetration %", CategoryMultiplicative, StackMultDefPen, true, true},
	FinalDamage: {FinalDamage, "Final Damage %", CategoryMultiplicative, StackMultFinalDamage, true, true},
	AttackSpeed: {AttackSpeed, "Attack Speed %", CategoryMultiplicative, StackDiminishing, true, true},

	AllSkills:         {AllSkills, "All Skills", CategorySkill, StackAdditive, false, true},
	SkillDamage:       {SkillDamage, "Skill Damage %", CategorySkill, StackAdditive, true, true},
	SkillCD:           {SkillCD, "Skill CD %", CategorySkill, StackAdditive, true, true},
	BuffDuration:      {BuffDuration, "Buff Duration %", CategorySkill, StackAdditive, true, true},
	Accuracy:          {Accuracy, "Accuracy", CategoryUtility, StackAdditive, false, true},
	BATargets:         {BATargets, "BA Targets", CategoryUtility, StackAdditive, false, true},
	BasicAttackDamage: {BasicAttackDamage, "BA Damage %", CategoryUtility, StackAdditive, true, true},
	StatusEffectDmg:   {StatusEffectDmg, "Status Effect Dmg %", CategoryUtility, StackAdditive, true, false},

	MaxHP:   {MaxHP, "Max HP", CategoryDefense, StackAdditive, false, false},
	Defense: {Defense, "Defense", CategoryDefense, StackAdditive, false, false},
}

// Lookup returns the definition for a key.
func Lookup(k Key) (Definition, bool) {
	d, ok := definitions[k]
	return d, ok
}

// Validate returns ErrUnknownStat (wrapped with the offending key)
// if k is not part of the vocabulary.
func Validate(k Key) error {
	if _, ok := definitions[k]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStat, k)
	}
	return nil
}

// IsMultiplicative reports whether a stat stacks multiplicatively and
// must be carried as a source list instead of a summed scalar.
func IsMultiplicative(k Key) bool {
	d, ok := definitions[k]
	return ok && d.Stacking != StackAdditive
}

// IsGeneric reports whether a key must be resolved through the job
// class before aggregation (main_stat_flat / main_stat_pct).
func IsGeneric(k Key) bool {
	return k == MainStatFlat || k == MainStatPct
}

// FlatKey returns the flat stat key for an attribute (dex -> dex_flat).
func FlatKey(a Attribute) Key {
	return Key(string(a) + "_flat")
}

// PctKey returns the percent stat key for an attribute (dex -> dex_pct).
func PctKey(a Attribute) Key {
	return Key(string(a) + "_pct")
}

// DisplayName returns the display name for a key, falling back to a
// title-cased version of the raw key for forward compatibility in UIs.
func DisplayName(k Key) string {
	if d, ok := definitions[k]; ok {
		return d.DisplayName
	}
	parts := strings.Split(string(k), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// FormatValue formats a value for display according to the key's
// definition.
func FormatValue(k Key, v float64) string {
	d, ok := definitions[k]
	if !ok {
		return fmt.Sprintf("%.1f", v)
	}
	if d.Percent {
		return fmt.Sprintf("%.1f%%", v)
	}
	return fmt.Sprintf("%.0f", v)
}

// Keys returns every key in the vocabulary. Order is unspecified.
func Keys() []Key {
	out := make([]Key, 0, len(definitions))
	for k := range definitions {
		out = append(out, k)
	}
	return out
}
