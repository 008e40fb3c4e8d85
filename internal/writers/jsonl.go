// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"teaudit/internal/audit"
	"teaudit/pkg/api"

	"teaudit-core/metrics"
)

func init() { Register("jsonl", WriteJSONL) }

// WriteJSONL renders one api.RecordV1 JSON object per line.
func WriteJSONL(w io.Writer, recs []audit.Record) error {
	enc := json.NewEncoder(w)
	for _, r := range recs {
		if err := enc.Encode(toWire(r)); err != nil {
			return err
		}
	}
	return nil
}

func toWire(r audit.Record) api.RecordV1 {
	return api.RecordV1{
		Profile:  r.Profile,
		GenomeID: r.GenomeID,
		SampleID: r.SampleID,

		OverallStatus: string(r.Overall),
		TechStatus:    string(r.Tech),
		BioStatus:     string(r.Bio),

		TotalTEPct:    optPtr(r.Metrics.TotalTE),
		TotalTEBP:     optPtr(r.Metrics.TotalTEBP),
		TotalTESource: r.Metrics.TotalSource,

		LTRTotalPct:   optPtr(r.Metrics.LTRTotal),
		LTRTotalBP:    optPtr(r.Metrics.LTRTotalBP),
		LTRKnownPct:   optPtr(r.Metrics.LTRKnown),
		LTRKnownBP:    optPtr(r.Metrics.LTRKnownBP),
		LTRUnknownPct: optPtr(r.Metrics.LTRUnknown),
		LTRUnknownBP:  optPtr(r.Metrics.LTRUnknownBP),

		TIRPct: optPtr(r.Metrics.TIR),
		TIRBP:  optPtr(r.Metrics.TIRBP),

		HelitronPct: optPtr(r.Metrics.Helitron),
		HelitronBP:  optPtr(r.Metrics.HelitronBP),

		LinePresent: r.Metrics.LinePresent,
		LinePct:     optPtr(r.Metrics.Line),
		LineBP:      optPtr(r.Metrics.LineBP),

		SinePresent: r.Metrics.SinePresent,
		SinePct:     optPtr(r.Metrics.Sine),
		SineBP:      optPtr(r.Metrics.SineBP),

		Notes:     r.Notes,
		Tags:      r.Tags,
		Missing:   r.Missing,
		TEannoSum: r.SumPath,
		SampleDir: r.SampleDir,
	}
}

func optPtr(v metrics.Opt) *float64 {
	if !v.Present {
		return nil
	}
	x := v.Value
	return &x
}
