// core/metrics/extract.go
package metrics

import (
	"strings"

	"teaudit-core/sumparse"
)

// Source labels recorded by PickTotal so downstream reports can audit which
// reported number was treated as the genome-wide TE percentage.
const (
	SourceTotal             = sumparse.KeyTotal
	SourceTotalInterspersed = sumparse.KeyTotalInterspersed
	SourceMissing           = "MISSING"
)

// Metrics is the fixed set of aggregates the rule engine consumes. Percentage
// and base-pair fields are independently optional; LinePresent/SinePresent
// track whether the category appeared at all, regardless of its value.
type Metrics struct {
	TotalTE     Opt
	TotalTEBP   Opt
	TotalSource string

	LTRTotal     Opt
	LTRTotalBP   Opt
	LTRKnown     Opt
	LTRKnownBP   Opt
	LTRUnknown   Opt
	LTRUnknownBP Opt

	TIR   Opt
	TIRBP Opt

	Helitron   Opt
	HelitronBP Opt

	LinePresent bool
	Line        Opt
	LineBP      Opt

	SinePresent bool
	Sine        Opt
	SineBP      Opt
}

// Lookup resolves one exact key, returning its percentage and base pairs.
func Lookup(t sumparse.Table, key string) (pct, bp Opt) {
	e, ok := t[key]
	if !ok {
		return None(), None()
	}
	pct = Some(e.Pct)
	if e.HasBP {
		bp = Some(e.BP)
	}
	return pct, bp
}

// SumByPrefix sums percentage and base pairs over all keys starting with
// prefix. The percentage sum is present once at least one key matched; the
// base-pair sum additionally requires at least one matched entry to carry a
// numeric base-pair value.
func SumByPrefix(t sumparse.Table, prefix string) (pct, bp Opt) {
	for k, e := range t {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		pct = Some(pct.Value + e.Pct)
		if e.HasBP {
			bp = Some(bp.Value + e.BP)
		}
	}
	return pct, bp
}

// PickTotal prefers the TOTAL row, falls back to TOTAL INTERSPERSED, and
// reports SourceMissing with absent values when neither appeared.
func PickTotal(t sumparse.Table) (pct, bp Opt, source string) {
	if pct, bp = Lookup(t, sumparse.KeyTotal); pct.Present {
		return pct, bp, SourceTotal
	}
	if pct, bp = Lookup(t, sumparse.KeyTotalInterspersed); pct.Present {
		return pct, bp, SourceTotalInterspersed
	}
	return None(), None(), SourceMissing
}

// lookupAny returns the first present key among variants.
func lookupAny(t sumparse.Table, keys ...string) (pct, bp Opt) {
	for _, k := range keys {
		if pct, bp = Lookup(t, k); pct.Present {
			return pct, bp
		}
	}
	return None(), None()
}

// sumPresent adds the present values among vs; the result is present when at
// least one input was.
func sumPresent(vs ...Opt) Opt {
	out := None()
	for _, v := range vs {
		if v.Present {
			out = Some(out.Value + v.Value)
		}
	}
	return out
}

// Extract derives the rule-engine metrics from a parsed repeat-class table.
// It never fails: categories missing from the table yield absent fields.
func Extract(t sumparse.Table) Metrics {
	var m Metrics
	m.TotalTE, m.TotalTEBP, m.TotalSource = PickTotal(t)

	m.LTRTotal, m.LTRTotalBP = SumByPrefix(t, "LTR/")

	// Known LTR is a closed allowlist (Copia + Gypsy), not a prefix sum:
	// "known" excludes LTR/unknown and every other LTR sub-family.
	copiaPct, copiaBP := lookupAny(t, "LTR/Copia", "LTR/copia")
	gypsyPct, gypsyBP := lookupAny(t, "LTR/Gypsy", "LTR/gypsy")
	m.LTRKnown = sumPresent(copiaPct, gypsyPct)
	if m.LTRKnown.Present {
		m.LTRKnownBP = sumPresent(copiaBP, gypsyBP)
	}

	// Family-name capitalization drifts across pipeline versions.
	m.LTRUnknown, m.LTRUnknownBP = lookupAny(t, "LTR/unknown", "LTR/Unknown")
	m.Helitron, m.HelitronBP = lookupAny(t, "NONTIR/helitron", "NONTIR/Helitron")

	m.TIR, m.TIRBP = SumByPrefix(t, "TIR/")
	m.Line, m.LineBP = SumByPrefix(t, "LINE/")
	m.LinePresent = m.Line.Present
	m.Sine, m.SineBP = SumByPrefix(t, "SINE/")
	m.SinePresent = m.Sine.Present
	return m
}
