package data

import (
	"math"

	"github.com/udisondev/mapleidle/internal/stat"
)

// ArtifactTier is the rarity tier of an artifact.
type ArtifactTier string

const (
	ArtifactEpic      ArtifactTier = "epic"
	ArtifactUnique    ArtifactTier = "unique"
	ArtifactLegendary ArtifactTier = "legendary"
)

// EffectKind describes how an artifact effect is applied.
type EffectKind uint8

const (
	// EffectFlat adds directly to a stat: stat += base + stars*perStar.
	EffectFlat EffectKind = iota
	// EffectDerived adds a value computed from another aggregated
	// stat: stat += source_stat * rate(stars). Applied after all flat
	// passes so the source value is final (and never fed back into
	// itself).
	EffectDerived
	// EffectMultiplicative is applied as a damage multiplier per
	// stack (Hexagon Necklace), never folded into additive stats.
	EffectMultiplicative
)

// MaxAwakening is the awakening star cap. Effects scale linearly from
// star 0 to star 5.
const MaxAwakening = 5

// ArtifactEffect is one stat effect of an artifact's active ability.
// Values here are decimals (0.10 = 10%) and get converted to display
// percentages when entering a stat block.
type ArtifactEffect struct {
	Stat    stat.Key
	Base    float64 // value at star 0
	PerStar float64
	Kind    EffectKind

	// DerivedFrom names the source stat for EffectDerived.
	DerivedFrom stat.Key

	// MaxStacks for stacking multiplicative effects.
	MaxStacks int
}

// Value returns the effect value at an awakening level. For stacking
// effects this is the per-stack value.
func (e ArtifactEffect) Value(stars int) float64 {
	if stars < 0 {
		stars = 0
	}
	if stars > MaxAwakening {
		stars = MaxAwakening
	}
	return e.Base + float64(stars)*e.PerStar
}

// ArtifactDefinition is the static description of one artifact.
//
// The active effect applies only while the artifact occupies one of
// the equip slots; the inventory effect applies to every owned copy.
type ArtifactDefinition struct {
	Key  string
	Name string
	Tier ArtifactTier

	ActiveEffects []ArtifactEffect

	InventoryStat    stat.Key
	InventoryBase    float64
	InventoryPerStar float64

	// Scenario restricts the active effect to one combat mode
	// (empty = universal).
	Scenario CombatMode

	// Uptime mechanics for the active effect.
	BuffDuration float64 // seconds the buff lasts (0 = permanent)
	BuffCooldown float64 // seconds between procs
	TriggerDelay float64 // delay before the first trigger
	ProcChance   float64 // 0 means always on
	RampTime     float64 // seconds to reach max stacks
	MaxTargets   int     // for per-target effects
}

// InventoryValue returns the inventory effect value at an awakening
// level (decimal for percentage stats).
func (d ArtifactDefinition) InventoryValue(stars int) float64 {
	if stars < 0 {
		stars = 0
	}
	if stars > MaxAwakening {
		stars = MaxAwakening
	}
	return d.InventoryBase + float64(stars)*d.InventoryPerStar
}

// AppliesTo reports whether the active effect counts in a scenario.
func (d ArtifactDefinition) AppliesTo(mode CombatMode) bool {
	return d.Scenario == "" || d.Scenario == mode
}

// Uptime returns the fraction of a fight the active effect is live.
func (d ArtifactDefinition) Uptime(fightDuration float64) float64 {
	if d.BuffDuration > 0 && d.BuffCooldown > 0 {
		remaining := fightDuration
		if !math.IsInf(fightDuration, 1) {
			remaining = fightDuration - d.TriggerDelay
			if remaining <= 0 {
				return 0
			}
		}
		cycle := d.BuffDuration + d.BuffCooldown
		up := d.BuffDuration / cycle
		if math.IsInf(fightDuration, 1) {
			return up
		}
		return up * remaining / fightDuration
	}
	if d.RampTime > 0 {
		if math.IsInf(fightDuration, 1) {
			return 1
		}
		if fightDuration <= 0 {
			return 0
		}
		if fightDuration > d.RampTime {
			full := fightDuration - d.RampTime
			return (full + d.RampTime*0.5) / fightDuration
		}
		// Fight ends during ramp-up.
		return 0.25 * fightDuration / d.RampTime
	}
	if d.ProcChance > 0 && d.ProcChance < 1 {
		return d.ProcChance
	}
	return 1
}

// EquippedArtifactSlots is the number of artifact equip slots.
const EquippedArtifactSlots = 3

// Hexagon Necklace stack mechanics.
const (
	HexSecondsPerStack = 20
	HexMaxStacks       = 3
)

// Artifacts is the artifact catalog, keyed by snake_case identifier.
var Artifacts = map[string]ArtifactDefinition{
	"hexagon_necklace": {
		Key:  "hexagon_necklace",
		Name: "Hexagon Necklace",
		Tier: ArtifactUnique,
		ActiveEffects: []ArtifactEffect{
			// Damage +15%..30% per stack, max 3 stacks.
			{Stat: stat.DamagePct, Base: 0.15, PerStar: 0.03, Kind: EffectMultiplicative, MaxStacks: HexMaxStacks},
		},
		InventoryStat:    stat.AttackFlat,
		InventoryBase:    400,
		InventoryPerStar: 320,
	},
	"book_of_ancient": {
		Key:  "book_of_ancient",
		Name: "Book of Ancient",
		Tier: ArtifactLegendary,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.CritRate, Base: 0.10, PerStar: 0.02, Kind: EffectFlat},
			// Crit Damage increased by 30%..60% of Crit Rate.
			{Stat: stat.CritDamage, Base: 0.30, PerStar: 0.06, Kind: EffectDerived, DerivedFrom: stat.CritRate},
		},
		InventoryStat:    stat.CritRate,
		InventoryBase:    0.03,
		InventoryPerStar: 0.006,
	},
	"fire_flower": {
		Key:  "fire_flower",
		Name: "Fire Flower",
		Tier: ArtifactLegendary,
		ActiveEffects: []ArtifactEffect{
			// Final Damage +1%..2% per nearby target, max 10.
			{Stat: stat.FinalDamage, Base: 0.01, PerStar: 0.002, Kind: EffectFlat},
		},
		InventoryStat:    stat.FinalDamage,
		InventoryBase:    0.02,
		InventoryPerStar: 0.004,
		MaxTargets:       10,
	},
	"chalice": {
		Key:  "chalice",
		Name: "Chalice",
		Tier: ArtifactLegendary,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.FinalDamage, Base: 0.15, PerStar: 0.03, Kind: EffectFlat},
		},
		InventoryStat:    stat.DamagePct,
		InventoryBase:    0.10,
		InventoryPerStar: 0.02,
		BuffDuration:     30,
		BuffCooldown:     30,
		TriggerDelay:     10, // first boss kill lands around 10s
	},
	"star_rock": {
		Key:  "star_rock",
		Name: "Star Rock",
		Tier: ArtifactLegendary,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.BossDamage, Base: 0.50, PerStar: 0.10, Kind: EffectFlat},
		},
		InventoryStat:    stat.Defense,
		InventoryBase:    0.10,
		InventoryPerStar: 0.02,
	},
	"sayrams_necklace": {
		Key:  "sayrams_necklace",
		Name: "Sayram's Necklace",
		Tier: ArtifactLegendary,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.NormalDamage, Base: 0.30, PerStar: 0.06, Kind: EffectFlat},
		},
		InventoryStat:    stat.BasicAttackDamage,
		InventoryBase:    0.10,
		InventoryPerStar: 0.02,
	},
	"lit_lamp": {
		Key:  "lit_lamp",
		Name: "Lit Lamp",
		Tier: ArtifactLegendary,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.FinalDamage, Base: 0.20, PerStar: 0.04, Kind: EffectFlat},
		},
		InventoryStat:    stat.BossDamage,
		InventoryBase:    0.10,
		InventoryPerStar: 0.02,
		Scenario:         ModeWorldBoss,
	},
	"silver_pendant": {
		Key:  "silver_pendant",
		Name: "Silver Pendant",
		Tier: ArtifactLegendary,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.DamagePct, Base: 0.10, PerStar: 0.02, Kind: EffectFlat},
		},
		InventoryStat:    stat.DefPen,
		InventoryBase:    0.03,
		InventoryPerStar: 0.006,
		ProcChance:       0.15,
	},
	"icy_soul_rock": {
		Key:  "icy_soul_rock",
		Name: "Icy Soul Rock",
		Tier: ArtifactLegendary,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.CritDamage, Base: 0.40, PerStar: 0.08, Kind: EffectFlat},
		},
		InventoryStat:    stat.CritDamage,
		InventoryBase:    0.10,
		InventoryPerStar: 0.02,
	},
	"clear_spring_water": {
		Key:  "clear_spring_water",
		Name: "Clear Spring Water",
		Tier: ArtifactUnique,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.FinalDamage, Base: 0.10, PerStar: 0.02, Kind: EffectFlat},
		},
		InventoryStat:    stat.AttackFlat,
		InventoryBase:    400,
		InventoryPerStar: 320,
	},
	"athena_pierces_gloves": {
		Key:  "athena_pierces_gloves",
		Name: "Athena Pierce's Gloves",
		Tier: ArtifactUnique,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.AttackSpeed, Base: 0.08, PerStar: 0.016, Kind: EffectFlat},
			// Max damage derived from attack speed.
			{Stat: stat.MaxDmgMult, Base: 0.25, PerStar: 0.05, Kind: EffectDerived, DerivedFrom: stat.AttackSpeed},
		},
		InventoryStat:    stat.MaxDmgMult,
		InventoryBase:    0.05,
		InventoryPerStar: 0.01,
	},
	"shamaness_marble": {
		Key:  "shamaness_marble",
		Name: "Shamaness Marble",
		Tier: ArtifactEpic,
		ActiveEffects: []ArtifactEffect{
			{Stat: stat.DamagePct, Base: 0.08, PerStar: 0.016, Kind: EffectFlat},
		},
		InventoryStat:    stat.MaxHP,
		InventoryBase:    500,
		InventoryPerStar: 100,
	},
}

// GetArtifact returns an artifact definition by key.
func GetArtifact(key string) (ArtifactDefinition, bool) {
	d, ok := Artifacts[key]
	return d, ok
}

// MaxPotentialSlotsByTier caps potential slots by artifact tier.
var MaxPotentialSlotsByTier = map[ArtifactTier]int{
	ArtifactEpic:      1,
	ArtifactUnique:    2,
	ArtifactLegendary: 3,
}

// potentialSlotUnlocks maps awakening stars to unlocked slots before
// the tier cap is applied.
var potentialSlotUnlocks = [MaxAwakening + 1]int{0, 1, 1, 2, 2, 3}

// PotentialSlots returns the number of usable potential slots for an
// artifact of the given tier at the given awakening level.
func PotentialSlots(tier ArtifactTier, stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > MaxAwakening {
		stars = MaxAwakening
	}
	slots := potentialSlotUnlocks[stars]
	if tierCap, ok := MaxPotentialSlotsByTier[tier]; ok && slots > tierCap {
		slots = tierCap
	}
	return slots
}

// AwakeningCosts maps tier → target star → duplicates consumed for
// that single awakening step.
var AwakeningCosts = map[ArtifactTier]map[int]int{
	ArtifactEpic:      {1: 5, 2: 7, 3: 12, 4: 16, 5: 20},
	ArtifactUnique:    {1: 2, 2: 4, 3: 6, 4: 10, 5: 15},
	ArtifactLegendary: {1: 1, 2: 2, 3: 3, 4: 4, 5: 5},
}

// ArtifactChestCost is the blue diamond price of one artifact chest.
const ArtifactChestCost = 1500

// ReconfigureEnhancerCost maps tier → artifact enhancers per potential
// reroll. Enhancers exchange at 1500 diamonds per 10000.
var ReconfigureEnhancerCost = map[ArtifactTier]int{
	ArtifactEpic:      1000,
	ArtifactUnique:    1500,
	ArtifactLegendary: 2000,
}

// EnhancerExchangeRate converts artifact enhancers to blue diamonds.
const EnhancerExchangeRate = 1500.0 / 10000.0

// ReconfigureDiamondCost returns the diamond-equivalent cost of one
// potential reroll for the tier.
func ReconfigureDiamondCost(tier ArtifactTier) float64 {
	return float64(ReconfigureEnhancerCost[tier]) * EnhancerExchangeRate
}

// Resonance: every awakening star across the whole collection feeds a
// shared level that grants flat main stat and HP. Linear
// approximation of the in-game table.
const (
	ResonanceMainStatPerStar = 10.0
	ResonanceHPPerStar       = 100.0
)
