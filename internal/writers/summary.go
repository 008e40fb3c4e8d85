// internal/writers/summary.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"teaudit/internal/audit"

	"teaudit-core/classify"
)

// WriteSummary renders the plain-text digest: status counts, reason-tag
// frequencies for FAIL and SUSPECT samples, and the technical missing-artifact
// breakdown.
func WriteSummary(w io.Writer, recs []audit.Record, profile string, generated time.Time) error {
	overall := map[classify.Status]int{}
	tech := map[classify.Status]int{}
	bio := map[classify.Status]int{}

	failTags := counter{}
	suspectTags := counter{}
	techMissing := counter{}
	var maskedBP float64

	for _, r := range recs {
		overall[r.Overall]++
		tech[r.Tech]++
		bio[r.Bio]++

		if r.Tech == classify.Fail {
			for _, t := range r.Tags {
				if strings.HasPrefix(t, "TECH_MISSING_") {
					techMissing[strings.TrimPrefix(t, "TECH_MISSING_")]++
				}
			}
		}
		switch r.Overall {
		case classify.Fail:
			for _, t := range r.Tags {
				if strings.HasPrefix(t, "TECH_") || strings.HasPrefix(t, "HARD_FAIL_") {
					failTags[t]++
				}
			}
		case classify.Suspect:
			for _, t := range r.Tags {
				if strings.HasPrefix(t, "HARD_SUSPECT_") {
					suspectTags[t]++
				}
			}
		}
		if r.Tech == classify.Pass && r.Metrics.TotalTEBP.Present {
			maskedBP += r.Metrics.TotalTEBP.Value
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "EDTA-Audit summary\n")
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Profile: %s\n\n", profile)

	fmt.Fprintf(&b, "Counts\n")
	fmt.Fprintf(&b, "  TOTAL\t%d\n", len(recs))
	fmt.Fprintf(&b, "  OVERALL_PASS\t%d\n", overall[classify.Pass])
	fmt.Fprintf(&b, "  OVERALL_SUSPECT\t%d\n", overall[classify.Suspect])
	fmt.Fprintf(&b, "  OVERALL_FAIL\t%d\n", overall[classify.Fail])
	fmt.Fprintf(&b, "  TECH_PASS\t%d\n", tech[classify.Pass])
	fmt.Fprintf(&b, "  TECH_FAIL\t%d\n", tech[classify.Fail])
	fmt.Fprintf(&b, "  BIO_PASS\t%d\n", bio[classify.Pass])
	fmt.Fprintf(&b, "  BIO_SUSPECT\t%d\n", bio[classify.Suspect])
	fmt.Fprintf(&b, "  BIO_FAIL\t%d\n", bio[classify.Fail])
	fmt.Fprintf(&b, "  BIO_NA\t%d\n", bio[classify.NA])
	fmt.Fprintf(&b, "  MASKED_BP_TECH_PASS\t%s\n\n", humanize.Comma(int64(maskedBP)))

	dumpCounter(&b, "FAIL reason tags (TECH_* + HARD_FAIL_*)", failTags)
	b.WriteString("\n")
	dumpCounter(&b, "SUSPECT reason tags (HARD_SUSPECT_*)", suspectTags)
	b.WriteString("\n")
	dumpCounter(&b, "TECH missing breakdown", techMissing)

	_, err := io.WriteString(w, b.String())
	return err
}

type counter map[string]int

// dumpCounter writes a titled frequency list, highest count first, ties
// broken by key for deterministic output.
func dumpCounter(b *strings.Builder, title string, c counter) {
	fmt.Fprintf(b, "%s\n", title)
	if len(c) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c[keys[i]] != c[keys[j]] {
			return c[keys[i]] > c[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		fmt.Fprintf(b, "  %s\t%d\n", k, c[k])
	}
}
