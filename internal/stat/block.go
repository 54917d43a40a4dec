package stat

import (
	"fmt"
	"slices"
)

// Source is a single named contribution to a multiplicative-stacking
// stat. Values are decimals: 0.19 means 19%.
//
// Multiplicative stats must never be pre-folded into a scalar; the
// combination formula is applied at read time over the full list so
// that association order cannot change the result.
type Source struct {
	Name  string
	Value float64
}

// Block holds a character's aggregated stats.
//
// Additive stats live in a key→value map using the vocabulary from
// this package; percentage stats are stored as display percentages
// (50.0 = 50%). The three multiplicative stats are carried as source
// lists.
type Block struct {
	values map[Key]float64

	finalDamage []Source
	defPen      []Source
	attackSpeed []Source
}

// NewBlock returns an empty Block.
func NewBlock() *Block {
	return &Block{values: make(map[Key]float64)}
}

// Add adds v to the additive stat k. Unknown keys and multiplicative
// keys are rejected: the former is a caller error, the latter must go
// through AddFinalDamage/AddDefPen/AddAttackSpeed.
func (b *Block) Add(k Key, v float64) error {
	d, ok := definitions[k]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStat, k)
	}
	if d.Stacking != StackAdditive {
		return fmt.Errorf("stat %q stacks multiplicatively, add it as a source", k)
	}
	b.values[k] += v
	return nil
}

// Get returns the accumulated additive value for k. Multiplicative
// keys always return 0 here; read their source lists instead.
func (b *Block) Get(k Key) float64 {
	return b.values[k]
}

// AddFinalDamage appends a final damage source. Value is a decimal
// (0.13 for 13%).
func (b *Block) AddFinalDamage(name string, value float64) {
	b.finalDamage = append(b.finalDamage, Source{Name: name, Value: value})
}

// AddDefPen appends a defense penetration source. Value is a decimal.
func (b *Block) AddDefPen(name string, value float64) {
	b.defPen = append(b.defPen, Source{Name: name, Value: value})
}

// AddAttackSpeed appends an attack speed source. Value is a display
// percentage (15.0 for 15%), matching in-game tooltips.
func (b *Block) AddAttackSpeed(name string, value float64) {
	b.attackSpeed = append(b.attackSpeed, Source{Name: name, Value: value})
}

// FinalDamageSources returns a copy of the final damage source list.
func (b *Block) FinalDamageSources() []Source {
	return slices.Clone(b.finalDamage)
}

// DefPenSources returns a copy of the defense penetration source list.
func (b *Block) DefPenSources() []Source {
	return slices.Clone(b.defPen)
}

// AttackSpeedSources returns a copy of the attack speed source list.
func (b *Block) AttackSpeedSources() []Source {
	return slices.Clone(b.attackSpeed)
}

// Clone returns a deep copy. Speculative (what-if) evaluation must
// mutate only clones, never the caller's block.
func (b *Block) Clone() *Block {
	c := &Block{
		values:      make(map[Key]float64, len(b.values)),
		finalDamage: slices.Clone(b.finalDamage),
		defPen:      slices.Clone(b.defPen),
		attackSpeed: slices.Clone(b.attackSpeed),
	}
	for k, v := range b.values {
		c.values[k] = v
	}
	return c
}

// Merge adds every stat from other into b, source lists included.
func (b *Block) Merge(other *Block) {
	for k, v := range other.values {
		b.values[k] += v
	}
	b.finalDamage = append(b.finalDamage, other.finalDamage...)
	b.defPen = append(b.defPen, other.defPen...)
	b.attackSpeed = append(b.attackSpeed, other.attackSpeed...)
}

// NonZero returns the additive keys with a non-zero value, sorted,
// for deterministic display and test output.
func (b *Block) NonZero() []Key {
	out := make([]Key, 0, len(b.values))
	for k, v := range b.values {
		if v != 0 {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
