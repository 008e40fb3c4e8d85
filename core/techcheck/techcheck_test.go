// core/techcheck/techcheck_test.go
package techcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"teaudit-core/classify"
)

const prefix = "GCA_000001215.4_genomic.fna.mod.EDTA."

// writeSample lays out a sample directory with the named artifacts.
func writeSample(t *testing.T, artifacts ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, a := range artifacts {
		if strings.HasSuffix(a, "/") {
			require.NoError(t, os.MkdirAll(filepath.Join(dir, strings.TrimSuffix(a, "/")), 0o755))
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, a), []byte("x\n"), 0o644))
	}
	return dir
}

func TestLocateFromSummary(t *testing.T) {
	dir := writeSample(t, prefix+"TEanno.sum")
	p := Locate(dir)
	require.Equal(t, filepath.Join(dir, prefix+"TEanno.sum"), p.Sum)
	require.Equal(t, filepath.Join(dir, prefix+"TEanno.gff3"), p.GFF3)
	require.Equal(t, filepath.Join(dir, prefix+"TElib.fa"), p.Lib)
	require.Equal(t, filepath.Join(dir, "GCA_000001215.4_genomic.fna.mod.EDTA.anno"), p.AnnoDir)
}

func TestLocateGuessesPrefixFromGenome(t *testing.T) {
	dir := writeSample(t, "GCA_000001215.4_genomic.fna.mod")
	p := Locate(dir)
	require.Empty(t, p.Sum)
	require.Equal(t, filepath.Join(dir, prefix+"TEanno.gff3"), p.GFF3)
	require.Equal(t, filepath.Join(dir, prefix+"TElib.fa"), p.Lib)
	require.Equal(t, filepath.Join(dir, "GCA_000001215.4_genomic.fna.mod.EDTA.anno"), p.AnnoDir)
}

func TestLocatePrefersModOverPlainFNA(t *testing.T) {
	dir := writeSample(t, "a_genomic.fna", "b_genomic.fna.mod")
	p := Locate(dir)
	require.Contains(t, p.GFF3, "b_genomic.fna.mod.EDTA.")
}

func TestLocateEmptyDir(t *testing.T) {
	p := Locate(t.TempDir())
	require.Empty(t, p.Sum)
	require.Empty(t, p.GFF3)
	require.Empty(t, p.Lib)
	require.Empty(t, p.AnnoDir)
}

func TestCheckComplete(t *testing.T) {
	dir := writeSample(t,
		prefix+"TEanno.sum",
		prefix+"TEanno.gff3",
		prefix+"TElib.fa",
		"GCA_000001215.4_genomic.fna.mod.EDTA.anno/",
	)
	st, missing := Check(Locate(dir), DefaultConfig())
	require.Equal(t, classify.Pass, st)
	require.Empty(t, missing)
}

func TestCheckMissingLib(t *testing.T) {
	dir := writeSample(t,
		prefix+"TEanno.sum",
		prefix+"TEanno.gff3",
		"GCA_000001215.4_genomic.fna.mod.EDTA.anno/",
	)
	st, missing := Check(Locate(dir), DefaultConfig())
	require.Equal(t, classify.Fail, st)
	require.Equal(t, []string{LabelLib}, missing)
}

func TestCheckEmptyFileIsMissing(t *testing.T) {
	dir := writeSample(t,
		prefix+"TEanno.sum",
		prefix+"TElib.fa",
		"GCA_000001215.4_genomic.fna.mod.EDTA.anno/",
	)
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefix+"TEanno.gff3"), nil, 0o644))
	st, missing := Check(Locate(dir), DefaultConfig())
	require.Equal(t, classify.Fail, st)
	require.Equal(t, []string{LabelGFF3}, missing)
}

func TestCheckAnnoDirMustBeDirectory(t *testing.T) {
	dir := writeSample(t,
		prefix+"TEanno.sum",
		prefix+"TEanno.gff3",
		prefix+"TElib.fa",
		"GCA_000001215.4_genomic.fna.mod.EDTA.anno", // file, not dir
	)
	st, missing := Check(Locate(dir), DefaultConfig())
	require.Equal(t, classify.Fail, st)
	require.Equal(t, []string{LabelAnnoDir}, missing)
}

func TestCheckOptionalAnnoDir(t *testing.T) {
	dir := writeSample(t,
		prefix+"TEanno.sum",
		prefix+"TEanno.gff3",
		prefix+"TElib.fa",
	)
	cfg := DefaultConfig()
	cfg.RequireAnnoDir = false
	st, missing := Check(Locate(dir), cfg)
	require.Equal(t, classify.Pass, st)
	require.Empty(t, missing)
}

func TestCheckNothingLocatable(t *testing.T) {
	st, missing := Check(Locate(t.TempDir()), DefaultConfig())
	require.Equal(t, classify.Fail, st)
	require.Equal(t, []string{LabelSum, LabelGFF3, LabelLib, LabelAnnoDir}, missing)
}

// Deriving sibling paths from the summary path and re-deriving the summary
// path back from them is idempotent.
func TestLocateRoundTrip(t *testing.T) {
	dir := writeSample(t, prefix+"TEanno.sum")
	p := Locate(dir)
	fromGFF3 := strings.TrimSuffix(p.GFF3, "TEanno.gff3") + "TEanno.sum"
	fromLib := strings.TrimSuffix(p.Lib, "TElib.fa") + "TEanno.sum"
	fromAnno := strings.TrimSuffix(p.AnnoDir, ".anno") + ".TEanno.sum"
	require.Equal(t, p.Sum, fromGFF3)
	require.Equal(t, p.Sum, fromLib)
	require.Equal(t, p.Sum, fromAnno)
}
