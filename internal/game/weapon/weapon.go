// Package weapon models weapon acquisition economics: expected summon
// tickets and diamonds for a target weapon, awakening copy counts, and
// the promote-vs-summon comparison.
package weapon

import (
	"errors"
	"fmt"
	"math"

	"github.com/udisondev/mapleidle/internal/data"
)

// ErrUnavailable is returned when a weapon cannot drop at the given
// summon level.
var ErrUnavailable = errors.New("weapon not available at this summon level")

// ExpectedTickets returns the expected summon tickets to pull one copy
// of a weapon. Each summon is an independent trial, so E = 1/p.
func ExpectedTickets(level int, r data.WeaponRarity, tier int) (float64, error) {
	rate := data.WeaponDropRate(level, r, tier)
	if rate <= 0 {
		return 0, fmt.Errorf("%w: %s tier %d at level %d", ErrUnavailable, r, tier, level)
	}
	return 1 / rate, nil
}

// ExpectedDiamonds returns the expected diamond cost of pulling one
// copy of a weapon.
func ExpectedDiamonds(level int, r data.WeaponRarity, tier int) (float64, error) {
	tickets, err := ExpectedTickets(level, r, tier)
	if err != nil {
		return 0, err
	}
	return tickets * data.DiamondsPerTicket, nil
}

// ObtainWithin returns P(at least one copy in n tickets).
func ObtainWithin(level int, r data.WeaponRarity, tier, n int) float64 {
	rate := data.WeaponDropRate(level, r, tier)
	if rate <= 0 || n <= 0 {
		return 0
	}
	if rate >= 1 {
		return 1
	}
	return 1 - math.Pow(1-rate, float64(n))
}

// TicketsForProbability returns the ticket count needed to reach a
// target probability of at least one copy.
func TicketsForProbability(level int, r data.WeaponRarity, tier int, target float64) (float64, error) {
	rate := data.WeaponDropRate(level, r, tier)
	if rate <= 0 {
		return 0, fmt.Errorf("%w: %s tier %d at level %d", ErrUnavailable, r, tier, level)
	}
	if target <= 0 {
		return 0, nil
	}
	if target >= 1 || rate >= 1 {
		return math.Inf(1), nil
	}
	return math.Log(1-target) / math.Log(1-rate), nil
}

// DuplicatesForAwakening returns the total duplicates consumed to
// reach a target awakening level from A0 (A3 = 1+2+3 = 6).
func DuplicatesForAwakening(target int) int {
	if target > data.MaxWeaponAwakening {
		target = data.MaxWeaponAwakening
	}
	total := 0
	for star := 1; star <= target; star++ {
		total += data.WeaponAwakeningDuplicates(star)
	}
	return total
}

// CopiesForAwakening returns the total copies of a weapon needed to
// hold it at a target awakening: the initial copy plus duplicates.
func CopiesForAwakening(target int) int {
	return 1 + DuplicatesForAwakening(target)
}

// CopiesToPromote returns the copies needed to max-awaken a weapon and
// promote it: 1 initial + 15 awakening + 5 promotion.
func CopiesToPromote() int {
	return CopiesForAwakening(data.MaxWeaponAwakening) + data.WeaponPromotionCopies
}

// ExpectedTicketsForCopies returns the expected tickets to pull n
// copies of a weapon.
func ExpectedTicketsForCopies(level int, r data.WeaponRarity, tier, copies int) (float64, error) {
	if copies <= 0 {
		return 0, nil
	}
	per, err := ExpectedTickets(level, r, tier)
	if err != nil {
		return 0, err
	}
	return float64(copies) * per, nil
}

// Acquisition compares the two ways of reaching a tier-4 weapon:
// summoning it directly, or farming tier-1 copies of the previous
// rarity and promoting.
type Acquisition struct {
	DirectTickets    float64
	PromotionTickets float64

	DirectDiamonds    float64
	PromotionDiamonds float64
}

// CompareAcquisition computes both acquisition paths for a tier-4
// target. Only tier-4 weapons can be reached by cross-rarity
// promotion; other tiers have no promotion path.
func CompareAcquisition(level int, target data.WeaponRarity, tier int) (Acquisition, error) {
	if tier != 4 {
		return Acquisition{}, fmt.Errorf("no promotion path to %s tier %d", target, tier)
	}
	direct, err := ExpectedTickets(level, target, tier)
	if err != nil {
		return Acquisition{}, err
	}

	// Walk the rarity ladder down one step: the source is tier 1 of
	// the previous rarity, promoted after a full awakening.
	var source data.WeaponRarity
	for _, r := range data.WeaponRarityOrder {
		if next, ok := r.Next(); ok && next == target {
			source = r
			break
		}
	}
	if source == "" {
		return Acquisition{}, fmt.Errorf("no rarity below %s to promote from", target)
	}
	promo, err := ExpectedTicketsForCopies(level, source, 1, CopiesToPromote())
	if err != nil {
		return Acquisition{}, err
	}

	return Acquisition{
		DirectTickets:     direct,
		PromotionTickets:  promo,
		DirectDiamonds:    direct * data.DiamondsPerTicket,
		PromotionDiamonds: promo * data.DiamondsPerTicket,
	}, nil
}
