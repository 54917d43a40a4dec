package data

import (
	"math"
	"testing"
)

func TestWeaponLevelMultiplier(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{0, 0},
		{1, 1.0},
		{100, 1.297},
		{101, 1.303},
		{130, 1.506},
		{131, 1.514},
		{200, 2.136},
	}
	for _, tt := range tests {
		if got := WeaponLevelMultiplier(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WeaponLevelMultiplier(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestWeaponBaseATK(t *testing.T) {
	if got, ok := WeaponBaseATK(WeaponNormal, 4); !ok || got != 15.0 {
		t.Errorf("WeaponBaseATK(normal, 4) = %v, %v", got, ok)
	}
	if got, ok := WeaponBaseATK(WeaponAncient, 2); !ok || got != 9375.5 {
		t.Errorf("WeaponBaseATK(ancient, 2) = %v, %v", got, ok)
	}
	// Ancient tier 1 does not exist yet.
	if _, ok := WeaponBaseATK(WeaponAncient, 1); ok {
		t.Error("WeaponBaseATK(ancient, 1) exists, want missing")
	}
}

func TestWeaponInventoryRatio(t *testing.T) {
	if got := WeaponInventoryRatio(WeaponUnique); math.Abs(got-1.0/3.5) > 1e-12 {
		t.Errorf("unique inventory ratio = %v, want 1/3.5", got)
	}
	if got := WeaponInventoryRatio(WeaponLegendary); got != 0.25 {
		t.Errorf("legendary inventory ratio = %v, want 0.25", got)
	}
}

func TestWeaponATKValues(t *testing.T) {
	if got := WeaponOnEquipATK(WeaponMystic, 4, 1); math.Abs(got-1619.7) > 1e-9 {
		t.Errorf("mystic T4 level 1 on-equip = %v, want 1619.7", got)
	}
	want := 31.3 * (0.997 + 0.003*10) / 3.5
	if got := WeaponInventoryATK(WeaponRare, 4, 10); math.Abs(got-want) > 1e-9 {
		t.Errorf("rare T4 level 10 inventory = %v, want %v", got, want)
	}
	if got := WeaponOnEquipATK(WeaponAncient, 1, 1); got != 0 {
		t.Errorf("missing combination on-equip = %v, want 0", got)
	}
}

func TestWeaponLevelCost(t *testing.T) {
	if got := WeaponLevelCost(WeaponNormal, 4, 1); got != 10 {
		t.Errorf("normal T4 cost at level 1 = %d, want 10", got)
	}
	// Level 2 compounds 1% and rounds up.
	if got := WeaponLevelCost(WeaponNormal, 4, 2); got != 11 {
		t.Errorf("normal T4 cost at level 2 = %d, want 11", got)
	}
	if got := WeaponTotalLevelCost(WeaponNormal, 4, 1, 3); got != 21 {
		t.Errorf("normal T4 total 1->3 = %d, want 21", got)
	}
	if got := EnhancersToDiamonds(60000); got != 3000 {
		t.Errorf("EnhancersToDiamonds(60000) = %v, want 3000", got)
	}
}

func TestPromoteWeapon(t *testing.T) {
	tests := []struct {
		rarity   WeaponRarity
		tier     int
		wantR    WeaponRarity
		wantTier int
		wantOK   bool
	}{
		{WeaponNormal, 1, WeaponRare, 4, true},
		{WeaponRare, 3, WeaponRare, 2, true},
		{WeaponMystic, 1, WeaponAncient, 4, true},
		{WeaponAncient, 3, WeaponAncient, 2, true},
		// Ancient tier 2 is the top of the ladder today.
		{WeaponAncient, 2, "", 0, false},
		{WeaponAncient, 1, "", 0, false},
	}
	for _, tt := range tests {
		r, tier, ok := PromoteWeapon(tt.rarity, tt.tier)
		if r != tt.wantR || tier != tt.wantTier || ok != tt.wantOK {
			t.Errorf("PromoteWeapon(%s, %d) = %s, %d, %v, want %s, %d, %v",
				tt.rarity, tt.tier, r, tier, ok, tt.wantR, tt.wantTier, tt.wantOK)
		}
	}
}

func TestSummonLevel(t *testing.T) {
	tests := []struct {
		summons int
		want    int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{15600, 15},
		{46800, 17},
		{1_000_000, 17},
	}
	for _, tt := range tests {
		if got := SummonLevel(tt.summons); got != tt.want {
			t.Errorf("SummonLevel(%d) = %d, want %d", tt.summons, got, tt.want)
		}
	}
	if got := SummonsForLevel(15); got != 15600 {
		t.Errorf("SummonsForLevel(15) = %d, want 15600", got)
	}
}

func TestSummonRatesSumToOne(t *testing.T) {
	for level := 1; level <= MaxSummonLevel; level++ {
		sum := 0.0
		for _, r := range WeaponRarityOrder {
			sum += SummonRarityRate(level, r)
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("level %d rarity rates sum to %v", level, sum)
		}
		for _, r := range WeaponRarityOrder {
			split := SummonTierSplit(level, r)
			if split == nil {
				continue
			}
			total := 0.0
			for _, p := range split {
				total += p
			}
			if math.Abs(total-1) > 1e-9 {
				t.Errorf("level %d %s tier split sums to %v", level, r, total)
			}
		}
	}
}

func TestSummonTierSplit(t *testing.T) {
	split := SummonTierSplit(1, WeaponRare)
	if math.Abs(split[4]-0.7) > 1e-12 || math.Abs(split[3]-0.3) > 1e-12 {
		t.Errorf("level 1 rare split = %v, want 70/30", split)
	}
	if got := SummonTierSplit(5, WeaponAncient); got != nil {
		t.Errorf("locked rarity split = %v, want nil", got)
	}
}

func TestWeaponDropRate(t *testing.T) {
	if got := WeaponDropRate(15, WeaponAncient, 4); math.Abs(got-0.00003) > 1e-12 {
		t.Errorf("ancient T4 drop at level 15 = %v, want 0.00003", got)
	}
	// Epic is locked before level 3.
	if got := WeaponDropRate(1, WeaponEpic, 4); got != 0 {
		t.Errorf("locked epic drop = %v, want 0", got)
	}
}

func TestWeaponAwakeningDuplicates(t *testing.T) {
	for star := 1; star <= MaxWeaponAwakening; star++ {
		if got := WeaponAwakeningDuplicates(star); got != star {
			t.Errorf("WeaponAwakeningDuplicates(%d) = %d", star, got)
		}
	}
	if got := WeaponAwakeningDuplicates(0); got != 0 {
		t.Errorf("WeaponAwakeningDuplicates(0) = %d, want 0", got)
	}
	if got := WeaponAwakeningDuplicates(6); got != 0 {
		t.Errorf("WeaponAwakeningDuplicates(6) = %d, want 0", got)
	}
}
