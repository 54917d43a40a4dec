package data

// StarforceStage holds the outcome rates and stat amplification for a
// single enhancement attempt (star → star+1).
//
// Rates sum to 1: success + maintain + decrease + destroy. Amplify
// values are fractional bonuses: MainAmplifyAfter = 3.50 means total
// main stats show +350% after reaching star+1.
type StarforceStage struct {
	Star        int
	SuccessRate float64
	Maintain    float64
	Decrease    float64
	Destroy     float64

	MainAmplifyBefore float64
	MainAmplifyAfter  float64
	SubAmplifyBefore  float64
	SubAmplifyAfter   float64

	Scrolls int
	Meso    int64
}

// MaxStars is the enhancement cap.
const MaxStars = 25

// StarforceTable maps current star count to the attempt parameters
// for enhancing to the next star. In-game rates, verified by logging
// enhancement sessions.
var StarforceTable = map[int]StarforceStage{
	// Safe zone (0-12): no decrease or destruction.
	0:  {0, 1.00, 0.00, 0, 0, 0.00, 0.10, 0, 0, 1, 30000},
	1:  {1, 1.00, 0.00, 0, 0, 0.10, 0.20, 0, 0, 1, 30000},
	2:  {2, 0.90, 0.10, 0, 0, 0.20, 0.30, 0, 0, 2, 40000},
	3:  {3, 0.85, 0.15, 0, 0, 0.30, 0.40, 0, 0, 3, 50000},
	4:  {4, 0.80, 0.20, 0, 0, 0.40, 0.60, 0.00, 0.10, 4, 60000},
	5:  {5, 0.70, 0.30, 0, 0, 0.60, 0.75, 0.10, 0.10, 5, 70000},
	6:  {6, 0.65, 0.35, 0, 0, 0.75, 0.90, 0.10, 0.10, 6, 90000},
	7:  {7, 0.60, 0.40, 0, 0, 0.90, 1.05, 0.10, 0.10, 7, 110000},
	8:  {8, 0.55, 0.45, 0, 0, 1.05, 1.20, 0.10, 0.10, 8, 130000},
	9:  {9, 0.50, 0.50, 0, 0, 1.20, 1.50, 0.10, 0.25, 9, 150000},
	10: {10, 0.35, 0.65, 0, 0, 1.50, 1.75, 0.25, 0.25, 10, 170000},
	11: {11, 0.34, 0.66, 0, 0, 1.75, 2.00, 0.25, 0.25, 11, 190000},
	12: {12, 0.33, 0.67, 0, 0, 2.00, 2.25, 0.25, 0.25, 12, 210000},
	// Decrease zone (13-14): 12% decrease, still no destruction.
	13: {13, 0.32, 0.56, 0.12, 0, 2.25, 2.50, 0.25, 0.25, 13, 230000},
	14: {14, 0.31, 0.57, 0.12, 0, 2.50, 3.00, 0.25, 0.50, 14, 250000},
	// Destruction zone (15+).
	15: {15, 0.30, 0.67, 0.00, 0.03, 3.00, 3.50, 0.50, 0.60, 15, 270000},
	16: {16, 0.275, 0.53, 0.15, 0.045, 3.50, 4.00, 0.60, 0.70, 16, 300000},
	17: {17, 0.25, 0.54, 0.15, 0.06, 4.00, 4.50, 0.70, 0.80, 17, 330000},
	18: {18, 0.225, 0.55, 0.15, 0.075, 4.50, 5.00, 0.80, 0.90, 18, 360000},
	19: {19, 0.20, 0.56, 0.15, 0.09, 5.00, 6.00, 0.90, 1.00, 19, 390000},
	// High stars (20+): large amplify jumps, 10%+ destruction.
	20: {20, 0.14, 0.75, 0.00, 0.11, 6.00, 7.00, 1.00, 1.10, 20, 420000},
	21: {21, 0.10, 0.70, 0.10, 0.10, 7.00, 9.00, 1.10, 1.30, 25, 470000},
	22: {22, 0.08, 0.72, 0.10, 0.10, 9.00, 12.00, 1.30, 1.60, 30, 520000},
	23: {23, 0.06, 0.74, 0.10, 0.10, 12.00, 15.00, 1.60, 2.00, 35, 570000},
	24: {24, 0.04, 0.76, 0.10, 0.10, 15.00, 20.00, 2.00, 2.50, 40, 620000},
}

// AmplifyMultiplier returns the total stat multiplier at a star count:
// displayed stat = base stat × multiplier. Main stats and sub stats
// (Damage% lines etc.) amplify on separate schedules.
func AmplifyMultiplier(stars int, sub bool) float64 {
	if stars <= 0 {
		return 1.0
	}
	if stars >= MaxStars {
		if sub {
			return 1 + 2.50
		}
		return 1 + 20.00
	}
	stage, ok := StarforceTable[stars-1]
	if !ok {
		return 1.0
	}
	if sub {
		return 1 + stage.SubAmplifyAfter
	}
	return 1 + stage.MainAmplifyAfter
}
