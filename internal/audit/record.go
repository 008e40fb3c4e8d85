// internal/audit/record.go
package audit

import (
	"regexp"

	"teaudit-core/classify"
	"teaudit-core/metrics"
)

// Record is the complete audit result for one sample directory. It is built
// exactly once and immutable afterwards; writers own all presentation (NA
// rendering, semicolon joining).
type Record struct {
	Profile  string
	GenomeID string
	SampleID string

	Overall classify.Status
	Tech    classify.Status
	Bio     classify.Status

	Metrics metrics.Metrics

	Notes   string
	Tags    []string
	Missing []string

	SumPath   string
	SampleDir string
}

var genomeIDRe = regexp.MustCompile(`^(GC[AF]_\d+\.\d+)`)

// ExtractGenomeID returns the assembly accession prefix of a sample ID, or
// the sample ID itself when no accession is recognizable.
func ExtractGenomeID(sampleID string) string {
	if m := genomeIDRe.FindStringSubmatch(sampleID); m != nil {
		return m[1]
	}
	return sampleID
}
