// internal/audit/audit_test.go
package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"teaudit-core/classify"
	"teaudit-core/techcheck"
)

const plantSum = `Class                  Count        bpMasked    %masked
=====                  =====        ========     =======
LTR                    --           --           --
    Copia              10           5,000        0.50%
    unknown            900          90,000       9.00%
TIR                    --           --           --
    Mutator            300          30,000       3.00%

Total                  1210         250,000      25.00%

Repeat Stats
`

// writeSample lays out a complete sample directory around the given summary.
func writeSample(t *testing.T, name, sum string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	prefix := name + ".fna.mod.EDTA."
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefix+"TEanno.sum"), []byte(sum), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefix+"TEanno.gff3"), []byte("##gff-version 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefix+"TElib.fa"), []byte(">TE\nACGT\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, name+".fna.mod.EDTA.anno"), 0o755))
	return dir
}

func plantAuditor() Auditor {
	return Auditor{
		Profile:    classify.Plant,
		Thresholds: classify.Defaults(),
		Tech:       techcheck.DefaultConfig(),
	}
}

func TestSamplePlantPass(t *testing.T) {
	dir := writeSample(t, "GCA_000001215.4_dmel_genomic", plantSum)
	rec := plantAuditor().Sample(dir)

	require.Equal(t, classify.Pass, rec.Overall)
	require.Equal(t, classify.Pass, rec.Tech)
	require.Equal(t, classify.Pass, rec.Bio)
	require.Equal(t, "GCA_000001215.4", rec.GenomeID)
	require.Equal(t, "GCA_000001215.4_dmel_genomic", rec.SampleID)
	require.Empty(t, rec.Missing)

	require.Contains(t, rec.Tags, "INFO_TOTAL_SOURCE_TOTAL")
	require.Contains(t, rec.Tags, "HINT_LOW_LTR_KNOWN")
	require.Contains(t, rec.Tags, "HINT_HIGH_LTR_UNKNOWN")
	require.Contains(t, rec.Tags, "WARN_HELITRON_NOT_REPORTED")
	require.Contains(t, rec.Tags, "WARN_LINE_NOT_REPORTED")
	require.Contains(t, rec.Tags, "WARN_SINE_NOT_REPORTED")

	require.Equal(t, 25.0, rec.Metrics.TotalTE.Value)
	require.InDelta(t, 9.5, rec.Metrics.LTRTotal.Value, 1e-9)
	require.Equal(t, 3.0, rec.Metrics.TIR.Value)
	require.True(t, strings.HasSuffix(rec.SumPath, "TEanno.sum"))
}

func TestSampleTechFailMissingLib(t *testing.T) {
	dir := writeSample(t, "GCA_000002985.6_ce_genomic", plantSum)
	require.NoError(t, os.Remove(filepath.Join(dir, "GCA_000002985.6_ce_genomic.fna.mod.EDTA.TElib.fa")))

	a := plantAuditor()
	a.Profile = classify.Animal
	rec := a.Sample(dir)

	require.Equal(t, classify.Fail, rec.Overall)
	require.Equal(t, classify.Fail, rec.Tech)
	require.Equal(t, classify.NA, rec.Bio)
	require.Equal(t, []string{techcheck.LabelLib}, rec.Missing)
	require.Contains(t, rec.Tags, "TECH_MISSING_TElib.fa")
	require.Equal(t, "TECH_FAIL: incomplete EDTA output", rec.Notes)

	// Tech fail short-circuits before extraction: no metric is populated.
	require.False(t, rec.Metrics.TotalTE.Present)
	require.False(t, rec.Metrics.LTRTotal.Present)
	require.Equal(t, "NA", rec.Metrics.TotalSource)
	require.False(t, rec.Metrics.LinePresent)
}

func TestSampleEmptySampleDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "GCF_000001405.40_hs_genomic")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	rec := plantAuditor().Sample(dir)

	require.Equal(t, classify.Fail, rec.Tech)
	require.Equal(t, classify.NA, rec.Bio)
	require.Equal(t, "NA", rec.SumPath)
	require.ElementsMatch(t, []string{
		techcheck.LabelSum, techcheck.LabelGFF3, techcheck.LabelLib, techcheck.LabelAnnoDir,
	}, rec.Missing)
}

func TestSampleParseErrorIsTechFail(t *testing.T) {
	// A single line beyond the scanner limit forces a read error out of the
	// parser, which must surface as TECH_PARSE_ERROR, not a crash.
	huge := "Class  Count  bpMasked  %masked\n" + strings.Repeat("x", 2<<20) + "\n"
	dir := writeSample(t, "GCA_000003025.6_ss_genomic", huge)
	rec := plantAuditor().Sample(dir)

	require.Equal(t, classify.Fail, rec.Overall)
	require.Equal(t, classify.Fail, rec.Tech)
	require.Equal(t, classify.NA, rec.Bio)
	require.Contains(t, rec.Tags, "TECH_PARSE_ERROR")
	require.Equal(t, []string{"TEanno.sum(parse_error)"}, rec.Missing)
	require.Contains(t, rec.Notes, "parse error")
}

func TestSampleSummaryWithoutHeader(t *testing.T) {
	// Parseable-but-empty summaries are not parse errors; the rule engine
	// sees absent metrics and fails the biology instead.
	dir := writeSample(t, "GCA_000004515.5_gm_genomic", "no table in here\n")
	rec := plantAuditor().Sample(dir)

	require.Equal(t, classify.Pass, rec.Tech)
	require.Equal(t, classify.Fail, rec.Bio)
	require.Contains(t, rec.Tags, "INFO_TOTAL_SOURCE_MISSING")
	require.Contains(t, rec.Tags, "HARD_FAIL_TOTAL_TE")
}

func TestExtractGenomeID(t *testing.T) {
	cases := map[string]string{
		"GCA_000001215.4_dmel_genomic": "GCA_000001215.4",
		"GCF_000002985.6_ce_genomic":   "GCF_000002985.6",
		"weird_sample_name":            "weird_sample_name",
	}
	for in, want := range cases {
		require.Equal(t, want, ExtractGenomeID(in))
	}
}
