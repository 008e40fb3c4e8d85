// core/classify/thresholds.go
package classify

// PlantThresholds gates total TE, LTR and TIR content independently; the
// remaining cutoffs drive advisory tags only.
type PlantThresholds struct {
	TotalPass    float64
	TotalSuspect float64

	LTRPass    float64
	LTRSuspect float64

	TIRPass    float64
	TIRSuspect float64

	HeliWarnLow float64
	HeliWarnMid float64

	LTRKnownHintLow     float64
	LTRUnknownPctHint   float64
	LTRUnknownRatioHint float64
}

// AnimalThresholds gates on total TE only; the minimums drive advisory tags.
type AnimalThresholds struct {
	TotalPass    float64
	TotalSuspect float64

	MinLTR    float64
	MinTIR    float64
	MinNonLTR float64
}

// FungiThresholds gates on total TE only; the minimums drive advisory tags.
type FungiThresholds struct {
	TotalPass    float64
	TotalSuspect float64

	MinLTR float64
	MinTIR float64
}

// Thresholds bundles one parameter set per species group. Built once per run
// and read-only afterwards, so safe to share across worker goroutines.
type Thresholds struct {
	Plant  PlantThresholds
	Animal AnimalThresholds
	Fungi  FungiThresholds
}

// Defaults returns the hand-tuned cutoffs.
func Defaults() Thresholds {
	return Thresholds{
		Plant: PlantThresholds{
			TotalPass:    20.0,
			TotalSuspect: 10.0,

			LTRPass:    5.0,
			LTRSuspect: 1.0,

			TIRPass:    2.0,
			TIRSuspect: 0.5,

			HeliWarnLow: 0.1,
			HeliWarnMid: 0.5,

			LTRKnownHintLow:     1.0,
			LTRUnknownPctHint:   10.0,
			LTRUnknownRatioHint: 0.60,
		},
		Animal: AnimalThresholds{
			TotalPass:    10.0,
			TotalSuspect: 3.0,

			MinLTR:    0.1,
			MinTIR:    0.1,
			MinNonLTR: 0.2,
		},
		Fungi: FungiThresholds{
			TotalPass:    5.0,
			TotalSuspect: 0.5,

			MinLTR: 0.1,
			MinTIR: 0.1,
		},
	}
}
