package formula

import (
	"math"
	"testing"

	"github.com/udisondev/mapleidle/internal/stat"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func sources(values ...float64) []stat.Source {
	out := make([]stat.Source, len(values))
	for i, v := range values {
		out[i] = stat.Source{Name: string(rune('a' + i)), Value: v}
	}
	return out
}

func TestTotalMainStat(t *testing.T) {
	tests := []struct {
		name string
		flat float64
		pct  float64
		want float64
	}{
		{"no percent", 1000, 0, 1000},
		{"fifty percent", 1000, 50, 1500},
		{"zero flat", 0, 120, 0},
		{"fractional", 1234, 37.5, 1234 * 1.375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalMainStat(tt.flat, tt.pct); !almostEqual(got, tt.want) {
				t.Errorf("TotalMainStat(%v, %v) = %v, want %v", tt.flat, tt.pct, got, tt.want)
			}
		})
	}
}

func TestStatMultiplier(t *testing.T) {
	// 1000 main and 400 secondary: 1 + 10 + 1 = 12.
	if got := StatMultiplier(1000, 400); !almostEqual(got, 12) {
		t.Errorf("StatMultiplier(1000, 400) = %v, want 12", got)
	}
	if got := StatMultiplier(0, 0); !almostEqual(got, 1) {
		t.Errorf("StatMultiplier(0, 0) = %v, want 1", got)
	}
}

func TestCombinedDefPen_KnownScenario(t *testing.T) {
	// Three sources combine through remaining defense, not by sum:
	// 1 - 0.81*0.835*0.90 = 0.391285, far from the naive 45.5%.
	got := CombinedDefPen(sources(0.19, 0.165, 0.10))
	want := 1 - 0.81*0.835*0.90
	if !almostEqual(got, want) {
		t.Errorf("CombinedDefPen = %v, want %v", got, want)
	}
	if math.Abs(got-0.391285) > 1e-6 {
		t.Errorf("CombinedDefPen = %v, want ~0.391285", got)
	}
}

func TestCombinedDefPen_Monotonic(t *testing.T) {
	base := CombinedDefPen(sources(0.19, 0.165, 0.10))
	raised := CombinedDefPen(sources(0.19, 0.30, 0.10))
	if raised <= base {
		t.Errorf("raising a source lowered combined def pen: %v -> %v", base, raised)
	}
}

func TestCombinedDefPen_BoundedBelowOne(t *testing.T) {
	got := CombinedDefPen(sources(0.99, 0.99, 0.99, 0.99))
	if got >= 1 {
		t.Errorf("CombinedDefPen = %v, want < 1", got)
	}
}

func TestCombinedFinalDamage_Commutative(t *testing.T) {
	a := []stat.Source{{Name: "guild", Value: 0.06}, {Name: "cape", Value: 0.08}, {Name: "chalice", Value: 0.18}}
	b := []stat.Source{{Name: "chalice", Value: 0.18}, {Name: "guild", Value: 0.06}, {Name: "cape", Value: 0.08}}
	if got, want := CombinedFinalDamage(a), CombinedFinalDamage(b); got != want {
		t.Errorf("order changed combined final damage: %v vs %v", got, want)
	}
}

func TestCombinedFinalDamage_Multiplies(t *testing.T) {
	got := CombinedFinalDamage(sources(0.10, 0.20))
	want := 1.10*1.20 - 1
	if !almostEqual(got, want) {
		t.Errorf("CombinedFinalDamage = %v, want %v", got, want)
	}
}

func TestCombinedAttackSpeed_DiminishingAndCapped(t *testing.T) {
	// One source of 75 closes half the gap to 150.
	if got := CombinedAttackSpeed(sources(75)); !almostEqual(got, 75) {
		t.Errorf("single source = %v, want 75", got)
	}
	// Second 75 closes half of the remaining 75.
	if got := CombinedAttackSpeed(sources(75, 75)); !almostEqual(got, 112.5) {
		t.Errorf("two sources = %v, want 112.5", got)
	}
	// Never exceeds the cap.
	if got := CombinedAttackSpeed(sources(150, 150, 150)); got > AtkSpdCap {
		t.Errorf("combined = %v, want <= %v", got, AtkSpdCap)
	}
}

func TestDefenseMultiplier(t *testing.T) {
	// No defense: full damage.
	if got := DefenseMultiplier(0, 0); !almostEqual(got, 1) {
		t.Errorf("DefenseMultiplier(0, 0) = %v, want 1", got)
	}
	// Full penetration neutralizes any defense.
	if got := DefenseMultiplier(1, 6.527); !almostEqual(got, 1) {
		t.Errorf("DefenseMultiplier(1, def) = %v, want 1", got)
	}
	// Chapter 14 defense, no penetration: 1/1.388.
	if got := DefenseMultiplier(0, 0.388); !almostEqual(got, 1/1.388) {
		t.Errorf("DefenseMultiplier(0, 0.388) = %v, want %v", got, 1/1.388)
	}
}

func TestEffectiveCritMultiplier(t *testing.T) {
	// 50% rate at 130% crit damage: 1 + 0.5*1.3 = 1.65.
	if got := EffectiveCritMultiplier(50, 130); !almostEqual(got, 1.65) {
		t.Errorf("EffectiveCritMultiplier(50, 130) = %v, want 1.65", got)
	}
	// Rate above 100 adds nothing over 100.
	if got, capped := EffectiveCritMultiplier(140, 200), EffectiveCritMultiplier(100, 200); got != capped {
		t.Errorf("crit rate above 100 changed the multiplier: %v vs %v", got, capped)
	}
}

func TestCritConversionBonus(t *testing.T) {
	// The verified conversion fixture: 111.9 crit rate at a 36% rate.
	got := CritConversionBonus(111.9, 0.36)
	if math.Abs(got-40.284) > 1e-9 {
		t.Errorf("CritConversionBonus(111.9, 0.36) = %v, want 40.284", got)
	}
}

func TestAmpMultiplier(t *testing.T) {
	if got := AmpMultiplier(23.2); !almostEqual(got, 1.232) {
		t.Errorf("AmpMultiplier(23.2) = %v, want 1.232", got)
	}
}

func TestStackMultiplier_ThreeStacks(t *testing.T) {
	// 3 stacks at 26% each: 1.78.
	if got := StackMultiplier(0.26, 3); !almostEqual(got, 1.78) {
		t.Errorf("StackMultiplier(0.26, 3) = %v, want 1.78", got)
	}
}

func TestAdditiveThenMultiplicativeOrdering(t *testing.T) {
	// Damage% sources sum first, the stack buff multiplies the sum:
	// 173.2% × 1.78 = 308.296%.
	additive := 45.0 + 40.0 + 35.0 + 21.5 + 31.7
	if !almostEqual(additive, 173.2) {
		t.Fatalf("additive sum = %v, want 173.2", additive)
	}
	got := additive * StackMultiplier(0.26, 3)
	if math.Abs(got-308.296) > 1e-9 {
		t.Errorf("additive-then-multiplicative = %v, want 308.296", got)
	}
}

func TestAverageStacks(t *testing.T) {
	tests := []struct {
		name      string
		duration  float64
		perStack  float64
		maxStacks int
		want      float64
	}{
		// 60s fight, 20s per stack, max 3: 0,1,2 for 20s each = 1.0.
		{"ramp fills fight", 60, 20, 3, 1.0},
		// Infinite fight sits at max stacks.
		{"infinite", math.Inf(1), 20, 3, 3},
		// 100s: 20s each at 0,1,2 then 40s at 3 = (0+20+40+120)/100.
		{"past ramp", 100, 20, 3, 1.8},
		{"zero duration", 0, 20, 3, 0},
		// Fight shorter than first stack: never stacks.
		{"too short", 15, 20, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageStacks(tt.duration, tt.perStack, tt.maxStacks)
			if !almostEqual(got, tt.want) {
				t.Errorf("AverageStacks(%v, %v, %d) = %v, want %v",
					tt.duration, tt.perStack, tt.maxStacks, got, tt.want)
			}
		})
	}
}
