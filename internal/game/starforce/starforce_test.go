package starforce

import (
	"math"
	"testing"

	"github.com/udisondev/mapleidle/internal/data"
)

func TestStageRates_SumToOne(t *testing.T) {
	for star := 0; star < data.MaxStars; star++ {
		r, err := StageRates(star, Strategy{})
		if err != nil {
			t.Fatalf("StageRates(%d): %v", star, err)
		}
		sum := r.Success + r.Maintain + r.Decrease + r.Destroy
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("star %d: rates sum to %v, want 1", star, sum)
		}
	}
}

func TestStageRates_DecreaseProtection(t *testing.T) {
	// Star 13 has a 12% decrease chance; protection folds it into
	// maintain without touching success or destroy.
	plain, err := StageRates(13, Strategy{})
	if err != nil {
		t.Fatalf("StageRates: %v", err)
	}
	prot, err := StageRates(13, Strategy{DecreaseProtection: true})
	if err != nil {
		t.Fatalf("StageRates with protection: %v", err)
	}
	if prot.Decrease != 0 {
		t.Errorf("Decrease = %v with protection, want 0", prot.Decrease)
	}
	if want := plain.Maintain + plain.Decrease; prot.Maintain != want {
		t.Errorf("Maintain = %v, want %v", prot.Maintain, want)
	}
	if prot.Success != plain.Success || prot.Destroy != plain.Destroy {
		t.Error("protection changed success or destroy rate")
	}
}

func TestStageRates_DestroyProtectionUnavailableHighStars(t *testing.T) {
	for _, star := range []int{22, 23, 24} {
		if _, err := StageRates(star, Strategy{DestroyProtection: true}); err == nil {
			t.Errorf("star %d: destroy protection accepted, want error", star)
		}
	}
	// Star 21 still sells it.
	r, err := StageRates(21, Strategy{DestroyProtection: true})
	if err != nil {
		t.Fatalf("StageRates(21): %v", err)
	}
	if r.Destroy != 0 {
		t.Errorf("Destroy = %v with protection, want 0", r.Destroy)
	}
}

func TestAttemptCost_ProtectionDoubles(t *testing.T) {
	plain, err := AttemptCost(16, Strategy{})
	if err != nil {
		t.Fatalf("AttemptCost: %v", err)
	}
	stage := data.StarforceTable[16]
	if want := float64(stage.Scrolls)*ScrollDiamondCost + float64(stage.Meso)*MesoToDiamond; plain != want {
		t.Errorf("AttemptCost(16) = %v, want %v", plain, want)
	}

	// Star 16 has both decrease and destroy chances, so both
	// protections double the bill independently.
	both, err := AttemptCost(16, Strategy{DecreaseProtection: true, DestroyProtection: true})
	if err != nil {
		t.Fatalf("AttemptCost both: %v", err)
	}
	if both != plain*4 {
		t.Errorf("AttemptCost(16, both) = %v, want %v", both, plain*4)
	}

	// Safe-zone stages have nothing to protect, no surcharge.
	safePlain, _ := AttemptCost(5, Strategy{})
	safeProt, _ := AttemptCost(5, Strategy{DecreaseProtection: true, DestroyProtection: true})
	if safePlain != safeProt {
		t.Errorf("safe zone surcharge: %v vs %v", safePlain, safeProt)
	}
}

func TestExpectedCost_GuaranteedStageIsOneAttempt(t *testing.T) {
	// Stars 0 and 1 succeed 100% of the time: exactly one attempt
	// each, at face value.
	cost, err := ExpectedCost(0, 2, Strategy{})
	if err != nil {
		t.Fatalf("ExpectedCost: %v", err)
	}
	c0, _ := AttemptCost(0, Strategy{})
	c1, _ := AttemptCost(1, Strategy{})
	if math.Abs(cost-(c0+c1)) > 1e-9 {
		t.Errorf("ExpectedCost(0, 2) = %v, want %v", cost, c0+c1)
	}

	attempts, err := ExpectedAttempts(0, 2, Strategy{})
	if err != nil {
		t.Fatalf("ExpectedAttempts: %v", err)
	}
	if math.Abs(attempts-2) > 1e-9 {
		t.Errorf("ExpectedAttempts(0, 2) = %v, want 2", attempts)
	}
}

func TestExpectedCost_MonotonicInTarget(t *testing.T) {
	prev := 0.0
	for to := 1; to <= 20; to++ {
		cost, err := ExpectedCost(0, to, Strategy{})
		if err != nil {
			t.Fatalf("ExpectedCost(0, %d): %v", to, err)
		}
		if cost <= prev {
			t.Errorf("ExpectedCost(0, %d) = %v, not above previous %v", to, cost, prev)
		}
		prev = cost
	}
}

func TestExpectedCost_DecreaseMakesStagesDearer(t *testing.T) {
	// A decrease re-pays the previous climb, so stage 13's expected
	// cost must exceed the no-chain estimate attempt/success.
	costs, _, err := stageCosts(14, Strategy{})
	if err != nil {
		t.Fatalf("stageCosts: %v", err)
	}
	attempt, _ := AttemptCost(13, Strategy{})
	r, _ := StageRates(13, Strategy{})
	naive := attempt / r.Success
	if costs[13] <= naive {
		t.Errorf("stage 13 cost = %v, want above no-chain %v", costs[13], naive)
	}
}

func TestExpectedCost_BadRange(t *testing.T) {
	if _, err := ExpectedCost(5, 3, Strategy{}); err == nil {
		t.Error("descending range accepted")
	}
	if _, err := ExpectedCost(-1, 3, Strategy{}); err == nil {
		t.Error("negative start accepted")
	}
	if _, err := ExpectedCost(0, data.MaxStars+1, Strategy{}); err == nil {
		t.Error("target above cap accepted")
	}
}

func TestSuccessBeforeDestroy(t *testing.T) {
	// No destruction below star 15.
	p, err := SuccessBeforeDestroy(10, Strategy{})
	if err != nil {
		t.Fatalf("SuccessBeforeDestroy: %v", err)
	}
	if p != 1 {
		t.Errorf("SuccessBeforeDestroy(10) = %v, want 1", p)
	}

	stage := data.StarforceTable[17]
	p, err = SuccessBeforeDestroy(17, Strategy{})
	if err != nil {
		t.Fatalf("SuccessBeforeDestroy: %v", err)
	}
	want := stage.SuccessRate / (stage.SuccessRate + stage.Destroy)
	if math.Abs(p-want) > 1e-12 {
		t.Errorf("SuccessBeforeDestroy(17) = %v, want %v", p, want)
	}
}

func TestCompareStrategies_SkipsIllegalDestroyProtection(t *testing.T) {
	out := CompareStrategies(20, 25)
	if _, ok := out["none"]; !ok {
		t.Error("missing unprotected strategy")
	}
	if _, ok := out["destroy"]; ok {
		t.Error("destroy protection offered across stages 22-24")
	}
}

func TestBaseStat_RoundTrip(t *testing.T) {
	// Recovering the base and re-applying amplify must reproduce the
	// displayed stat at every stage, main and sub schedules alike.
	const displayed = 4321.5
	for stars := 0; stars <= data.MaxStars; stars++ {
		for _, sub := range []bool{false, true} {
			base := BaseStat(displayed, stars, sub)
			back := DisplayedStat(base, stars, sub)
			if math.Abs(back-displayed) > 1e-9 {
				t.Errorf("stars %d sub %v: round trip %v -> %v -> %v",
					stars, sub, displayed, base, back)
			}
		}
	}
}
