package data

import (
	"fmt"

	"github.com/udisondev/mapleidle/internal/stat"
)

// JobClass identifies a playable job. The job determines which of the
// four attributes is the main stat for damage scaling.
type JobClass string

const (
	// Archer branch (DEX/STR)
	JobBowmaster JobClass = "bowmaster"
	JobMarksman  JobClass = "marksman"
	// Warrior branch (STR/DEX)
	JobHero       JobClass = "hero"
	JobDarkKnight JobClass = "dark_knight"
	// Mage branch (INT/LUK)
	JobArchmageFP JobClass = "archmage_fire_poison"
	JobArchmageIL JobClass = "archmage_ice_lightning"
	// Thief branch (LUK/DEX)
	JobNightLord JobClass = "night_lord"
	JobShadower  JobClass = "shadower"
)

// JobInfo holds metadata for a single job class.
type JobInfo struct {
	ID        JobClass
	Name      string
	Branch    string
	Main      stat.Attribute
	Secondary stat.Attribute
}

var jobTable = map[JobClass]JobInfo{
	JobBowmaster:  {JobBowmaster, "Bowmaster", "Archer", stat.AttrDEX, stat.AttrSTR},
	JobMarksman:   {JobMarksman, "Marksman", "Archer", stat.AttrDEX, stat.AttrSTR},
	JobHero:       {JobHero, "Hero", "Warrior", stat.AttrSTR, stat.AttrDEX},
	JobDarkKnight: {JobDarkKnight, "Dark Knight", "Warrior", stat.AttrSTR, stat.AttrDEX},
	JobArchmageFP: {JobArchmageFP, "Archmage (F/P)", "Mage", stat.AttrINT, stat.AttrLUK},
	JobArchmageIL: {JobArchmageIL, "Archmage (I/L)", "Mage", stat.AttrINT, stat.AttrLUK},
	JobNightLord:  {JobNightLord, "Night Lord", "Thief", stat.AttrLUK, stat.AttrDEX},
	JobShadower:   {JobShadower, "Shadower", "Thief", stat.AttrLUK, stat.AttrDEX},
}

// GetJob returns job metadata.
func GetJob(jc JobClass) (JobInfo, bool) {
	info, ok := jobTable[jc]
	return info, ok
}

// ParseJobClass converts a profile string to a JobClass.
func ParseJobClass(s string) (JobClass, error) {
	jc := JobClass(s)
	if _, ok := jobTable[jc]; !ok {
		return "", fmt.Errorf("unknown job class %q", s)
	}
	return jc, nil
}

// MainStatKeys returns the flat/percent key pair the job's main stat
// aggregates under (e.g. Bowmaster → dex_flat, dex_pct).
func MainStatKeys(jc JobClass) (flat, pct stat.Key, err error) {
	info, ok := jobTable[jc]
	if !ok {
		return "", "", fmt.Errorf("unknown job class %q", jc)
	}
	return stat.FlatKey(info.Main), stat.PctKey(info.Main), nil
}
