// core/classify/classify.go
package classify

import (
	"fmt"

	"teaudit-core/metrics"
)

// Status is a verdict level. NA marks verdicts that were never evaluated
// (biological status of a technically incomplete sample).
type Status string

const (
	Pass    Status = "PASS"
	Suspect Status = "SUSPECT"
	Fail    Status = "FAIL"
	NA      Status = "NA"
)

// Profile selects one of the fixed species-group rule sets.
type Profile string

const (
	Plant  Profile = "plant"
	Animal Profile = "animal"
	Fungi  Profile = "fungi"
)

// ParseProfile validates a profile name.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case Plant, Animal, Fungi:
		return Profile(s), nil
	}
	return "", fmt.Errorf("unknown profile %q (want plant|animal|fungi)", s)
}

// TriLevel maps an optional value onto PASS/SUSPECT/FAIL against two cutoffs.
// Absence is the worst case: a metric that was never reported fails outright,
// while a present-but-low value may still land in SUSPECT.
func TriLevel(v metrics.Opt, passCut, suspectCut float64) Status {
	switch {
	case !v.Present:
		return Fail
	case v.Value >= passCut:
		return Pass
	case v.Value >= suspectCut:
		return Suspect
	default:
		return Fail
	}
}

// worst returns the most severe of the given statuses (FAIL > SUSPECT > PASS).
func worst(sts ...Status) Status {
	out := Pass
	for _, st := range sts {
		switch st {
		case Fail:
			return Fail
		case Suspect:
			out = Suspect
		}
	}
	return out
}

// hardTags appends HARD_FAIL_/HARD_SUSPECT_ tags for a gating metric.
func hardTags(tags []string, st Status, metric string) []string {
	switch st {
	case Fail:
		return append(tags, "HARD_FAIL_"+metric)
	case Suspect:
		return append(tags, "HARD_SUSPECT_"+metric)
	}
	return tags
}

// Classify runs the species-group rule set for profile. It is total: defined
// for every combination of present and absent metrics, with no side effects.
func Classify(p Profile, m metrics.Metrics, t Thresholds) (Status, []string) {
	switch p {
	case Plant:
		return classifyPlant(m, t.Plant)
	case Animal:
		return classifyAnimal(m, t.Animal)
	default:
		return classifyFungi(m, t.Fungi)
	}
}

// classifyPlant hard-gates total TE, LTR and TIR: plant genomes are expected
// to carry co-dominant LTR and TIR content. Everything else is advisory.
func classifyPlant(m metrics.Metrics, t PlantThresholds) (Status, []string) {
	var tags []string

	stTotal := TriLevel(m.TotalTE, t.TotalPass, t.TotalSuspect)
	stLTR := TriLevel(m.LTRTotal, t.LTRPass, t.LTRSuspect)
	stTIR := TriLevel(m.TIR, t.TIRPass, t.TIRSuspect)

	tags = hardTags(tags, stTotal, "TOTAL_TE")
	tags = hardTags(tags, stLTR, "LTR_TOTAL")
	tags = hardTags(tags, stTIR, "TIR")

	if !m.Helitron.Present {
		tags = append(tags, "WARN_HELITRON_NOT_REPORTED")
	} else {
		// Both bands carry the same tag today; the split keeps the low and
		// mid cutoffs independently tunable.
		switch {
		case m.Helitron.Value < t.HeliWarnLow:
			tags = append(tags, "WARN_LOW_HELITRON")
		case m.Helitron.Value < t.HeliWarnMid:
			tags = append(tags, "WARN_LOW_HELITRON")
		}
	}

	switch {
	case !m.Line.Present:
		tags = append(tags, "WARN_LINE_NOT_REPORTED")
	case m.Line.Value == 0:
		tags = append(tags, "WARN_LINE_ZERO")
	}
	switch {
	case !m.Sine.Present:
		tags = append(tags, "WARN_SINE_NOT_REPORTED")
	case m.Sine.Value == 0:
		tags = append(tags, "WARN_SINE_ZERO")
	}

	if !m.LTRKnown.Present {
		tags = append(tags, "WARN_LTR_KNOWN_NOT_REPORTED")
	} else if m.LTRKnown.Value < t.LTRKnownHintLow {
		tags = append(tags, "HINT_LOW_LTR_KNOWN")
	}

	if m.LTRUnknown.Present && m.LTRTotal.Present && m.LTRTotal.Value > 0 {
		ratio := m.LTRUnknown.Value / m.LTRTotal.Value
		if m.LTRUnknown.Value >= t.LTRUnknownPctHint || ratio >= t.LTRUnknownRatioHint {
			tags = append(tags, "HINT_HIGH_LTR_UNKNOWN")
		}
	}

	return worst(stTotal, stLTR, stTIR), tags
}

// classifyAnimal gates on total TE alone; low LTR/TIR/non-LTR content only
// warns, reflecting weaker priors outside plant genomes.
func classifyAnimal(m metrics.Metrics, t AnimalThresholds) (Status, []string) {
	var tags []string

	stTotal := TriLevel(m.TotalTE, t.TotalPass, t.TotalSuspect)
	tags = hardTags(tags, stTotal, "TOTAL_TE")

	if !m.LTRTotal.Present || m.LTRTotal.Value < t.MinLTR {
		tags = append(tags, "WARN_LOW_LTR")
	}
	if !m.TIR.Present || m.TIR.Value < t.MinTIR {
		tags = append(tags, "WARN_LOW_TIR")
	}

	// Combined non-LTR burden: an absent component contributes 0, but when
	// both are absent the combined value is failing regardless of the cutoff.
	nonLTR := 0.0
	reported := false
	if m.Line.Present {
		nonLTR += m.Line.Value
		reported = true
	}
	if m.Sine.Present {
		nonLTR += m.Sine.Value
		reported = true
	}
	if !reported || nonLTR < t.MinNonLTR {
		tags = append(tags, "WARN_LOW_NONLTR")
	}

	return stTotal, tags
}

// classifyFungi gates on total TE alone with absence advisories.
func classifyFungi(m metrics.Metrics, t FungiThresholds) (Status, []string) {
	var tags []string

	stTotal := TriLevel(m.TotalTE, t.TotalPass, t.TotalSuspect)
	tags = hardTags(tags, stTotal, "TOTAL_TE")

	if !m.LTRTotal.Present || m.LTRTotal.Value < t.MinLTR {
		tags = append(tags, "WARN_LOW_LTR")
	}
	if !m.TIR.Present || m.TIR.Value < t.MinTIR {
		tags = append(tags, "WARN_LOW_TIR")
	}

	if !m.Helitron.Present {
		tags = append(tags, "WARN_HELITRON_NOT_REPORTED")
	}
	if !m.Line.Present {
		tags = append(tags, "WARN_LINE_NOT_REPORTED")
	}
	if !m.Sine.Present {
		tags = append(tags, "WARN_SINE_NOT_REPORTED")
	}

	return stTotal, tags
}
