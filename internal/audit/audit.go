// internal/audit/audit.go
package audit

import (
	"fmt"
	"os"
	"path/filepath"

	"teaudit-core/classify"
	"teaudit-core/metrics"
	"teaudit-core/sumparse"
	"teaudit-core/techcheck"
)

// Auditor runs the per-sample pipeline: completeness check, summary parse,
// metric extraction, rule-engine classification. It holds only read-only
// configuration, so one Auditor is safe to share across worker goroutines.
type Auditor struct {
	Profile    classify.Profile
	Thresholds classify.Thresholds
	Tech       techcheck.Config
}

// Sample audits one sample directory. Every failure mode is folded into the
// returned Record; nothing here aborts the surrounding run.
func (a Auditor) Sample(dir string) Record {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	sampleID := filepath.Base(abs)

	rec := Record{
		Profile:   string(a.Profile),
		GenomeID:  ExtractGenomeID(sampleID),
		SampleID:  sampleID,
		SampleDir: abs,
	}

	paths := techcheck.Locate(abs)
	techSt, missing := techcheck.Check(paths, a.Tech)

	if techSt == classify.Fail {
		rec.Overall = classify.Fail
		rec.Tech = classify.Fail
		rec.Bio = classify.NA
		rec.Metrics.TotalSource = "NA"
		rec.Notes = "TECH_FAIL: incomplete EDTA output"
		rec.Missing = missing
		for _, m := range missing {
			rec.Tags = append(rec.Tags, "TECH_MISSING_"+m)
		}
		rec.SumPath = paths.Sum
		if rec.SumPath == "" {
			rec.SumPath = "NA"
		}
		return rec
	}

	table, err := parseSum(paths.Sum)
	if err != nil {
		rec.Overall = classify.Fail
		rec.Tech = classify.Fail
		rec.Bio = classify.NA
		rec.Metrics.TotalSource = "NA"
		rec.Notes = fmt.Sprintf("TECH_FAIL: TEanno.sum parse error: %v", err)
		rec.Tags = append(rec.Tags, "TECH_PARSE_ERROR")
		rec.Missing = []string{techcheck.LabelSum + "(parse_error)"}
		rec.SumPath = paths.Sum
		return rec
	}

	rec.Metrics = metrics.Extract(table)
	rec.Tags = append(rec.Tags, "INFO_TOTAL_SOURCE_"+rec.Metrics.TotalSource)

	bio, bioTags := classify.Classify(a.Profile, rec.Metrics, a.Thresholds)
	rec.Tags = append(rec.Tags, bioTags...)

	rec.Tech = classify.Pass
	rec.Bio = bio
	rec.Overall = bio
	rec.SumPath = paths.Sum
	return rec
}

func parseSum(path string) (sumparse.Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return sumparse.Parse(fh)
}
