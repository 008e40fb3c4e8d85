// core/techcheck/techcheck.go
package techcheck

import (
	"os"
	"path/filepath"
	"strings"

	"teaudit-core/classify"
)

// Artifact labels used in missing lists and TECH_MISSING_ tags. These are
// stable wire values consumed by the digest writer.
const (
	LabelSum     = "TEanno.sum"
	LabelGFF3    = "TEanno.gff3"
	LabelLib     = "TElib.fa"
	LabelAnnoDir = "EDTA.anno/"
)

// Paths holds the expected artifact locations inside one sample directory.
// A path may be empty when no prefix could be inferred at all.
type Paths struct {
	SampleDir string
	Sum       string
	GFF3      string
	Lib       string
	AnnoDir   string
}

// Config marks each artifact as required or optional for a technical PASS.
type Config struct {
	RequireSum     bool
	RequireGFF3    bool
	RequireLib     bool
	RequireAnnoDir bool
}

// DefaultConfig requires all four artifacts.
func DefaultConfig() Config {
	return Config{RequireSum: true, RequireGFF3: true, RequireLib: true, RequireAnnoDir: true}
}

// Locate resolves the expected artifact paths for sampleDir. The summary file
// anchors the shared filename prefix; without it the prefix is guessed from a
// genome sequence file (*.fna.mod, then *.fna) using the pipeline's fixed
// ".EDTA." suffix convention. A read failure on the directory yields empty
// paths, which the check then reports as missing artifacts.
func Locate(sampleDir string) Paths {
	p := Paths{SampleDir: sampleDir}

	entries, err := os.ReadDir(sampleDir)
	if err != nil {
		return p
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	for _, n := range names {
		if strings.HasSuffix(n, "EDTA.TEanno.sum") {
			p.Sum = filepath.Join(sampleDir, n)
			break
		}
	}

	if p.Sum != "" {
		base := strings.TrimSuffix(p.Sum, "TEanno.sum")
		p.GFF3 = base + "TEanno.gff3"
		p.Lib = base + "TElib.fa"
		p.AnnoDir = strings.Replace(p.Sum, ".TEanno.sum", "", 1) + ".anno"
		return p
	}

	// No summary file: guess the most plausible prefix so the missing set is
	// still attributable to concrete paths.
	seed := ""
	for _, n := range names {
		if strings.HasSuffix(n, ".fna.mod") {
			seed = filepath.Join(sampleDir, n)
			break
		}
	}
	if seed == "" {
		for _, n := range names {
			if strings.HasSuffix(n, ".fna") {
				seed = filepath.Join(sampleDir, n)
				break
			}
		}
	}
	if seed != "" {
		prefix := seed + ".EDTA."
		p.GFF3 = prefix + "TEanno.gff3"
		p.Lib = prefix + "TElib.fa"
		p.AnnoDir = seed + ".EDTA.anno"
	}
	return p
}

// Check verifies the required artifacts exist and are non-trivial: files must
// be present and non-empty, the annotation directory must be a directory.
// It returns FAIL with the missing artifact labels, or PASS with none.
func Check(p Paths, cfg Config) (classify.Status, []string) {
	var missing []string

	if cfg.RequireSum && !isNonEmptyFile(p.Sum) {
		missing = append(missing, LabelSum)
	}
	if cfg.RequireGFF3 && !isNonEmptyFile(p.GFF3) {
		missing = append(missing, LabelGFF3)
	}
	if cfg.RequireLib && !isNonEmptyFile(p.Lib) {
		missing = append(missing, LabelLib)
	}
	if cfg.RequireAnnoDir && !isDir(p.AnnoDir) {
		missing = append(missing, LabelAnnoDir)
	}

	if len(missing) > 0 {
		return classify.Fail, missing
	}
	return classify.Pass, nil
}

func isNonEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular() && fi.Size() > 0
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
