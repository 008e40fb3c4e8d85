// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"runtime"
	"time"

	"go.uber.org/zap"

	"teaudit/internal/audit"
	"teaudit/internal/cli"
	"teaudit/internal/config"
	"teaudit/internal/logging"
	"teaudit/internal/pipeline"
	"teaudit/internal/scan"
	"teaudit/internal/version"
	"teaudit/internal/writers"

	"teaudit-core/classify"
	"teaudit-core/techcheck"
)

// RunContext drives one audit run. Exit codes: 0 success, 2 usage or
// configuration error (including zero discovered samples), 3 output I/O
// failure. Per-sample failures never bubble up here; they live in Records.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewUsageFlagSet("teaudit")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "teaudit version %s\n", version.Version)
		return 0
	}

	logger, err := logging.New(opts.Quiet, opts.Verbose)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	defer func() { _ = logger.Sync() }()

	thresholds := classify.Defaults()
	techCfg := techcheck.Config{
		RequireSum:     opts.RequireSum,
		RequireGFF3:    opts.RequireGFF3,
		RequireLib:     opts.RequireLib,
		RequireAnnoDir: opts.RequireAnnoDir,
	}
	sampleRegex := opts.SampleRegex

	if opts.ConfigPath != "" {
		file, err := config.Load(opts.ConfigPath)
		if err != nil {
			logger.Error("config load failed", zap.Error(err))
			return 2
		}
		file.Apply(&thresholds, &techCfg, &sampleRegex)
		// Explicit flags win over the config file.
		explicit := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if explicit["sample-regex"] {
			sampleRegex = opts.SampleRegex
		}
		if explicit["no-require-sum"] {
			techCfg.RequireSum = opts.RequireSum
		}
		if explicit["no-require-gff3"] {
			techCfg.RequireGFF3 = opts.RequireGFF3
		}
		if explicit["no-require-lib"] {
			techCfg.RequireLib = opts.RequireLib
		}
		if explicit["no-require-anno-dir"] {
			techCfg.RequireAnnoDir = opts.RequireAnnoDir
		}
	}

	re, err := regexp.Compile(sampleRegex)
	if err != nil {
		logger.Error("invalid sample regex", zap.String("regex", sampleRegex), zap.Error(err))
		return 2
	}
	profile, err := classify.ParseProfile(opts.Profile)
	if err != nil {
		logger.Error("invalid profile", zap.Error(err))
		return 2
	}

	logger.Info("scanning sample directories",
		zap.String("root", opts.Root),
		zap.Bool("recursive", opts.Recursive),
		zap.Int("max_depth", opts.MaxDepth),
		zap.String("profile", string(profile)),
		zap.String("sample_regex", sampleRegex),
	)

	dirs, err := scan.FindSampleDirs(opts.Root, opts.Recursive, opts.MaxDepth, re)
	if err != nil {
		logger.Error("scan failed", zap.Error(err))
		return 2
	}
	logger.Info("found sample directories", zap.Int("count", len(dirs)))
	if len(dirs) == 0 {
		logger.Error("no sample directories matched the pattern under root",
			zap.String("root", opts.Root), zap.String("sample_regex", sampleRegex))
		return 2
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	auditor := audit.Auditor{Profile: profile, Thresholds: thresholds, Tech: techCfg}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	records := pipeline.Map(ctx, threads, dirs, auditor.Sample)

	var passRecs, suspectRecs, failRecs []audit.Record
	for _, r := range records {
		switch r.Overall {
		case classify.Pass:
			passRecs = append(passRecs, r)
		case classify.Suspect:
			suspectRecs = append(suspectRecs, r)
		default:
			failRecs = append(failRecs, r)
		}
	}

	ext := writers.Ext(opts.Output)
	now := time.Now()
	outputs := []struct {
		name string
		recs []audit.Record
	}{
		{"all" + ext, records},
		{"pass" + ext, passRecs},
		{"suspect" + ext, suspectRecs},
		{"fail" + ext, failRecs},
	}
	for _, o := range outputs {
		path := filepath.Join(opts.OutDir, o.name)
		if err := writers.WriteRecordsFile(path, opts.Output, o.recs); err != nil {
			logger.Error("write failed", zap.String("path", path), zap.Error(err))
			return 3
		}
	}
	summaryPath := filepath.Join(opts.OutDir, "summary.txt")
	if err := writers.WriteSummaryFile(summaryPath, records, string(profile), now); err != nil {
		logger.Error("write failed", zap.String("path", summaryPath), zap.Error(err))
		return 3
	}

	logger.Info("done",
		zap.Int("total", len(records)),
		zap.Int("pass", len(passRecs)),
		zap.Int("suspect", len(suspectRecs)),
		zap.Int("fail", len(failRecs)),
		zap.String("out", opts.OutDir),
	)
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
