// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"regexp"

	"teaudit/internal/version"

	"teaudit-core/classify"
)

// DefaultSampleRegex matches assembly-accession sample directory basenames,
// e.g. GCA_000001215.4_xyz_genomic.
const DefaultSampleRegex = `^GC[AF]_\d+\.\d+.*_genomic$`

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Root        string
	SampleRegex string
	Recursive   bool
	MaxDepth    int

	// Classification
	Profile    string
	ConfigPath string

	// Completeness requirements
	RequireSum     bool
	RequireGFF3    bool
	RequireLib     bool
	RequireAnnoDir bool

	// Performance
	Threads int

	// Output
	OutDir string
	Output string

	Quiet   bool
	Verbose bool
	Version bool
}

// NewUsageFlagSet returns a configured FlagSet with custom usage/help.
func NewUsageFlagSet(name string) *flag.FlagSet {
	fs := NewFlagSet(name)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: audit EDTA transposable-element annotation outputs

Scans a root directory for genome-assembly sample directories, checks each for
a complete set of pipeline artifacts, and classifies the biological
plausibility of complete annotations against species-group thresholds.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var noRecursive bool
	var noSum, noGFF3, noLib, noAnnoDir bool

	// Input
	fs.StringVar(&opt.Root, "dir", "", "root directory containing sample dirs [*]")
	fs.StringVar(&opt.SampleRegex, "sample-regex", DefaultSampleRegex, "regex matched against sample directory basenames")
	fs.BoolVar(&noRecursive, "no-recursive", false, "scan only the root directory itself [false]")
	fs.IntVar(&opt.MaxDepth, "max-depth", 6, "max recursion depth (-1 = unlimited) [6]")

	// Classification
	fs.StringVar(&opt.Profile, "profile", "plant", "species-group profile: plant | animal | fungi [plant]")
	fs.StringVar(&opt.ConfigPath, "config", "", "YAML file overriding thresholds / requirements")

	// Completeness requirements
	fs.BoolVar(&noSum, "no-require-sum", false, "do not require *.TEanno.sum for technical PASS [false]")
	fs.BoolVar(&noGFF3, "no-require-gff3", false, "do not require *.TEanno.gff3 for technical PASS [false]")
	fs.BoolVar(&noLib, "no-require-lib", false, "do not require *.TElib.fa for technical PASS [false]")
	fs.BoolVar(&noAnnoDir, "no-require-anno-dir", false, "do not require *.EDTA.anno/ for technical PASS [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.OutDir, "out", "audit_out", "output directory [audit_out]")
	fs.StringVar(&opt.Output, "output", "tsv", "table format: tsv | jsonl [tsv]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Recursive = !noRecursive
	opt.RequireSum = !noSum
	opt.RequireGFF3 = !noGFF3
	opt.RequireLib = !noLib
	opt.RequireAnnoDir = !noAnnoDir

	// Validation
	if opt.Root == "" {
		return opt, errors.New("--dir is required")
	}
	if _, err := classify.ParseProfile(opt.Profile); err != nil {
		return opt, err
	}
	if _, err := regexp.Compile(opt.SampleRegex); err != nil {
		return opt, fmt.Errorf("invalid --sample-regex: %w", err)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.MaxDepth < -1 {
		return opt, errors.New("--max-depth must be ≥ -1")
	}
	if opt.Output != "tsv" && opt.Output != "jsonl" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
