// pkg/api/record_v1.go
package api

// RecordV1 is the stable JSONL schema for audit records.
// Keep fields, names, and types stable. Percentage and base-pair fields are
// null when the category never appeared in the summary report; "not
// reported" and "reported as zero" are distinct on the wire too.
type RecordV1 struct {
	Profile  string `json:"profile"`
	GenomeID string `json:"genome_id"`
	SampleID string `json:"sample_id"`

	OverallStatus string `json:"overall_status"`
	TechStatus    string `json:"tech_status"`
	BioStatus     string `json:"bio_status"`

	TotalTEPct    *float64 `json:"total_te_pct"`
	TotalTEBP     *float64 `json:"total_te_bp"`
	TotalTESource string   `json:"total_te_source"`

	LTRTotalPct   *float64 `json:"ltr_total_pct"`
	LTRTotalBP    *float64 `json:"ltr_total_bp"`
	LTRKnownPct   *float64 `json:"ltr_known_pct"`
	LTRKnownBP    *float64 `json:"ltr_known_bp"`
	LTRUnknownPct *float64 `json:"ltr_unknown_pct"`
	LTRUnknownBP  *float64 `json:"ltr_unknown_bp"`

	TIRPct *float64 `json:"tir_pct"`
	TIRBP  *float64 `json:"tir_bp"`

	HelitronPct *float64 `json:"helitron_pct"`
	HelitronBP  *float64 `json:"helitron_bp"`

	LinePresent bool     `json:"line_present"`
	LinePct     *float64 `json:"line_pct"`
	LineBP      *float64 `json:"line_bp"`

	SinePresent bool     `json:"sine_present"`
	SinePct     *float64 `json:"sine_pct"`
	SineBP      *float64 `json:"sine_bp"`

	Notes     string   `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Missing   []string `json:"missing,omitempty"`
	TEannoSum string   `json:"teanno_sum"`
	SampleDir string   `json:"sample_dir"`
}
