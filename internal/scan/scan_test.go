// internal/scan/scan_test.go
package scan

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var sampleRe = regexp.MustCompile(`^GC[AF]_\d+\.\d+.*_genomic$`)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
}

func TestFindSampleDirs(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"batch1/GCA_000001215.4_dmel_genomic",
		"batch1/GCF_000002985.6_ce_genomic",
		"batch1/notes",
		"GCA_000005005.2_zm_genomic",
	)
	got, err := FindSampleDirs(root, true, 6, sampleRe)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, p := range got {
		require.True(t, filepath.IsAbs(p))
		require.Regexp(t, sampleRe, filepath.Base(p))
	}
}

func TestFindSampleDirsDoesNotDescendIntoSamples(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "GCA_000001215.4_dmel_genomic/GCA_000009999.9_inner_genomic")
	got, err := FindSampleDirs(root, true, 6, sampleRe)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "GCA_000001215.4_dmel_genomic", filepath.Base(got[0]))
}

func TestFindSampleDirsSkipsPipelineSubtrees(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"work.EDTA.raw/GCA_000001215.4_x_genomic",
		"work.EDTA.combine/GCA_000001215.5_x_genomic",
		"GCA_000002985.6_ce_genomic",
	)
	got, err := FindSampleDirs(root, true, 6, sampleRe)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "GCA_000002985.6_ce_genomic", filepath.Base(got[0]))
}

func TestFindSampleDirsMaxDepth(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"a/GCA_000001111.1_s_genomic",
		"a/b/c/GCA_000002222.2_d_genomic",
	)
	got, err := FindSampleDirs(root, true, 2, sampleRe)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "GCA_000001111.1_s_genomic", filepath.Base(got[0]))

	got, err = FindSampleDirs(root, true, -1, sampleRe)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestFindSampleDirsNonRecursiveChecksRootOnly(t *testing.T) {
	root := t.TempDir()
	sample := filepath.Join(root, "GCA_000001111.1_s_genomic")
	mkdirs(t, root, "GCA_000001111.1_s_genomic")
	got, err := FindSampleDirs(root, false, 6, sampleRe)
	require.NoError(t, err)
	require.Empty(t, got, "children are not matched without recursion")

	got, err = FindSampleDirs(sample, false, 6, sampleRe)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFindSampleDirsMissingRoot(t *testing.T) {
	_, err := FindSampleDirs(filepath.Join(t.TempDir(), "nope"), true, 6, sampleRe)
	require.Error(t, err)
}

func TestFindSampleDirsSorted(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"z/GCA_000000003.1_c_genomic",
		"a/GCA_000000001.1_a_genomic",
		"m/GCA_000000002.1_b_genomic",
	)
	got, err := FindSampleDirs(root, true, 6, sampleRe)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1], got[i])
	}
}
