// internal/writers/tsv.go
package writers

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"teaudit/internal/audit"

	"teaudit-core/metrics"
)

// TSVColumns is the canonical column order for tabular outputs. Keep this as
// the single source of truth; the digest and downstream spreadsheets key on
// these names.
var TSVColumns = []string{
	"profile", "genome_id", "sample_id",
	"overall_status", "tech_status", "bio_status",
	"total_te_pct", "total_te_bp", "total_te_source",
	"ltr_total_pct", "ltr_total_bp", "ltr_known_pct", "ltr_known_bp", "ltr_unknown_pct", "ltr_unknown_bp",
	"tir_pct", "tir_bp", "helitron_pct", "helitron_bp",
	"line_present", "line_pct", "line_bp", "sine_present", "sine_pct", "sine_bp",
	"notes", "tags", "missing", "teanno_sum", "sample_dir",
}

func init() { Register("tsv", WriteTSV) }

// WriteTSV renders recs as a tab-separated table with a header row. Absent
// numerics render as NA; percentages carry 3 decimals, base pairs none.
func WriteTSV(w io.Writer, recs []audit.Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(TSVColumns); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{
			r.Profile, r.GenomeID, r.SampleID,
			string(r.Overall), string(r.Tech), string(r.Bio),
			fmtPct(r.Metrics.TotalTE), fmtBP(r.Metrics.TotalTEBP), r.Metrics.TotalSource,
			fmtPct(r.Metrics.LTRTotal), fmtBP(r.Metrics.LTRTotalBP),
			fmtPct(r.Metrics.LTRKnown), fmtBP(r.Metrics.LTRKnownBP),
			fmtPct(r.Metrics.LTRUnknown), fmtBP(r.Metrics.LTRUnknownBP),
			fmtPct(r.Metrics.TIR), fmtBP(r.Metrics.TIRBP),
			fmtPct(r.Metrics.Helitron), fmtBP(r.Metrics.HelitronBP),
			fmtFlag(r.Metrics.LinePresent), fmtPct(r.Metrics.Line), fmtBP(r.Metrics.LineBP),
			fmtFlag(r.Metrics.SinePresent), fmtPct(r.Metrics.Sine), fmtBP(r.Metrics.SineBP),
			r.Notes, JoinList(r.Tags), JoinList(r.Missing),
			r.SumPath, r.SampleDir,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JoinList renders a tag or missing-artifact list; individual items never
// embed semicolons.
func JoinList(items []string) string { return strings.Join(items, "; ") }

func fmtPct(v metrics.Opt) string {
	if !v.Present {
		return "NA"
	}
	return strconv.FormatFloat(v.Value, 'f', 3, 64)
}

func fmtBP(v metrics.Opt) string {
	if !v.Present {
		return "NA"
	}
	return strconv.FormatFloat(v.Value, 'f', 0, 64)
}

func fmtFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
