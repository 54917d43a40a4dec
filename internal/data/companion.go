package data

import "github.com/udisondev/mapleidle/internal/stat"

// CompanionGrade is the job advancement tier of a companion. The grade
// determines the max level, the on-equip scaling and which stats the
// always-on inventory effect grants.
type CompanionGrade uint8

const (
	CompanionBasic CompanionGrade = iota
	CompanionFirstJob
	CompanionSecondJob
	CompanionThirdJob
	CompanionFourthJob
)

func (g CompanionGrade) String() string {
	switch g {
	case CompanionBasic:
		return "basic"
	case CompanionFirstJob:
		return "1st_job"
	case CompanionSecondJob:
		return "2nd_job"
	case CompanionThirdJob:
		return "3rd_job"
	case CompanionFourthJob:
		return "4th_job"
	}
	return "unknown"
}

// CompanionMaxLevels caps companion levels per grade.
var CompanionMaxLevels = map[CompanionGrade]int{
	CompanionBasic:     100,
	CompanionFirstJob:  50,
	CompanionSecondJob: 30,
	CompanionThirdJob:  10,
	CompanionFourthJob: 10,
}

// companionScaling is a linear level curve: value = Base + (level-1)*PerLevel.
type companionScaling struct {
	Base     float64
	PerLevel float64
}

func (s companionScaling) at(level int) float64 {
	return s.Base + float64(level-1)*s.PerLevel
}

// companionEquipScaling holds the on-equip effect curve per stat and
// grade, in display units. Calibrated against in-game companion
// tooltips (Bowmaster 4th: 20% attack speed at level 1, 26% at 4;
// Hero 2nd: 17.5% max damage at level 26; and so on).
var companionEquipScaling = map[stat.Key]map[CompanionGrade]companionScaling{
	stat.AttackFlat: {
		CompanionBasic:    {6.54, 6.54},
		CompanionFirstJob: {23.6, 23.6},
	},
	stat.AttackSpeed: {
		CompanionSecondJob: {10.0, 0.23},
		CompanionThirdJob:  {14.0, 0.3},
		CompanionFourthJob: {20.0, 2.0},
	},
	stat.MinDmgMult: {
		CompanionSecondJob: {10.0, 0.23},
		CompanionThirdJob:  {14.0, 0.4},
		CompanionFourthJob: {20.0, 2.0},
	},
	stat.MaxDmgMult: {
		CompanionSecondJob: {5.0, 0.5},
		CompanionThirdJob:  {12.0, 0.35},
		CompanionFourthJob: {18.0, 1.5},
	},
	stat.BossDamage: {
		CompanionSecondJob: {10.0, 0.23},
		CompanionThirdJob:  {14.0, 0.4},
		CompanionFourthJob: {20.0, 1.5},
	},
	stat.NormalDamage: {
		CompanionSecondJob: {10.0, 0.23},
		CompanionThirdJob:  {15.0, 0.4},
		CompanionFourthJob: {18.0, 1.5},
	},
	stat.CritRate: {
		CompanionSecondJob: {5.0, 0.1},
		CompanionThirdJob:  {7.0, 0.2},
		CompanionFourthJob: {11.0, 1.1},
	},
	stat.StatusEffectDmg: {
		CompanionSecondJob: {15.0, 0.5},
		CompanionThirdJob:  {20.0, 0.6},
		CompanionFourthJob: {30.0, 2.0},
	},
	stat.Accuracy: {
		CompanionSecondJob: {8.0, 0.5},
		CompanionThirdJob:  {12.0, 0.6},
		CompanionFourthJob: {16.0, 1.0},
	},
}

// Inventory effect scaling per grade. Basic and 1st job grant flat
// attack and HP per level, 2nd job grants flat main stat, 3rd and 4th
// grant damage% on a base+per-level curve.
const (
	companionBasicAttackPerLevel  = 17.03
	companionBasicHPPerLevel      = 170.34
	companionFirstAttackPerLevel  = 19.02
	companionFirstHPPerLevel      = 190.3
	companionSecondMainPerLevel   = 19.6
	companionSecondHPPerLevel     = 490.5
	companionThirdDamageBase      = 4.8
	companionThirdDamagePerLevel  = 1.0
	companionFourthDamageBase     = 8.0
	companionFourthDamagePerLevel = 2.0
)

// CompanionStatLine is one stat contribution of a companion, in
// display units.
type CompanionStatLine struct {
	Stat  stat.Key
	Value float64
}

// CompanionDefinition is the static description of one companion.
type CompanionDefinition struct {
	Key   string
	Name  string
	Grade CompanionGrade

	// EquipStat is the stat the companion grants while occupying one
	// of the 7 equip slots.
	EquipStat stat.Key
}

// MaxLevel returns the level cap for the companion's grade.
func (d CompanionDefinition) MaxLevel() int {
	return CompanionMaxLevels[d.Grade]
}

// OnEquipValue returns the on-equip stat value at a level, in display
// units. Level 0 (not leveled) grants nothing.
func (d CompanionDefinition) OnEquipValue(level int) float64 {
	if level <= 0 {
		return 0
	}
	if limit := d.MaxLevel(); level > limit {
		level = limit
	}
	s, ok := companionEquipScaling[d.EquipStat][d.Grade]
	if !ok {
		return 0
	}
	return s.at(level)
}

// InventoryStats returns the always-on inventory contribution at a
// level. Every owned companion grants these whether equipped or not.
func (d CompanionDefinition) InventoryStats(level int) []CompanionStatLine {
	if level <= 0 {
		return nil
	}
	if limit := d.MaxLevel(); level > limit {
		level = limit
	}
	lv := float64(level)
	switch d.Grade {
	case CompanionBasic:
		return []CompanionStatLine{
			{stat.AttackFlat, lv * companionBasicAttackPerLevel},
			{stat.MaxHP, lv * companionBasicHPPerLevel},
		}
	case CompanionFirstJob:
		return []CompanionStatLine{
			{stat.AttackFlat, lv * companionFirstAttackPerLevel},
			{stat.MaxHP, lv * companionFirstHPPerLevel},
		}
	case CompanionSecondJob:
		return []CompanionStatLine{
			{stat.MainStatFlat, lv * companionSecondMainPerLevel},
			{stat.MaxHP, lv * companionSecondHPPerLevel},
		}
	case CompanionThirdJob:
		return []CompanionStatLine{
			{stat.DamagePct, companionScaling{companionThirdDamageBase, companionThirdDamagePerLevel}.at(level)},
		}
	case CompanionFourthJob:
		return []CompanionStatLine{
			{stat.DamagePct, companionScaling{companionFourthDamageBase, companionFourthDamagePerLevel}.at(level)},
		}
	}
	return nil
}

// Companions is the companion catalog, keyed by snake_case identifier.
var Companions = buildCompanions()

func buildCompanions() map[string]CompanionDefinition {
	m := make(map[string]CompanionDefinition, 36)
	add := func(key, name string, grade CompanionGrade, equip stat.Key) {
		m[key] = CompanionDefinition{Key: key, Name: name, Grade: grade, EquipStat: equip}
	}

	// Basic grade: flat attack on equip.
	add("aspiring_warrior", "Aspiring Warrior", CompanionBasic, stat.AttackFlat)
	add("aspiring_mage", "Aspiring Mage", CompanionBasic, stat.AttackFlat)
	add("aspiring_bowman", "Aspiring Bowman", CompanionBasic, stat.AttackFlat)
	add("aspiring_thief", "Aspiring Thief", CompanionBasic, stat.AttackFlat)

	// 1st job: flat attack on equip across the board.
	for key, name := range map[string]string{
		"bowmaster_1st":    "Bowmaster (1st)",
		"marksman_1st":     "Marksman (1st)",
		"night_lord_1st":   "Night Lord (1st)",
		"shadower_1st":     "Shadower (1st)",
		"hero_1st":         "Hero (1st)",
		"dark_knight_1st":  "Dark Knight (1st)",
		"arch_mage_fp_1st": "Arch Mage F/P (1st)",
		"arch_mage_il_1st": "Arch Mage I/L (1st)",
	} {
		add(key, name, CompanionFirstJob, stat.AttackFlat)
	}

	// 2nd, 3rd and 4th job: each job carries its signature stat.
	jobStats := []struct {
		job    string
		name   string
		second stat.Key
		third  stat.Key
		fourth stat.Key
	}{
		{"bowmaster", "Bowmaster", stat.AttackSpeed, stat.AttackSpeed, stat.AttackSpeed},
		{"marksman", "Marksman", stat.StatusEffectDmg, stat.StatusEffectDmg, stat.StatusEffectDmg},
		{"night_lord", "Night Lord", stat.BossDamage, stat.BossDamage, stat.BossDamage},
		{"shadower", "Shadower", stat.MinDmgMult, stat.MinDmgMult, stat.MinDmgMult},
		{"hero", "Hero", stat.MaxDmgMult, stat.MaxDmgMult, stat.MaxDmgMult},
		{"dark_knight", "Dark Knight", stat.Accuracy, stat.Accuracy, stat.BossDamage},
		{"arch_mage_fp", "Arch Mage F/P", stat.CritRate, stat.CritRate, stat.CritRate},
		{"arch_mage_il", "Arch Mage I/L", stat.NormalDamage, stat.NormalDamage, stat.NormalDamage},
	}
	for _, j := range jobStats {
		add(j.job+"_2nd", j.name+" (2nd)", CompanionSecondJob, j.second)
		add(j.job+"_3rd", j.name+" (3rd)", CompanionThirdJob, j.third)
		add(j.job+"_4th", j.name+" (4th)", CompanionFourthJob, j.fourth)
	}
	return m
}

// GetCompanion returns a companion definition by key.
func GetCompanion(key string) (CompanionDefinition, bool) {
	d, ok := Companions[key]
	return d, ok
}
