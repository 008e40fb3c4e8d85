// internal/scan/scan.go
package scan

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Directories produced by the pipeline inside a sample; never descended into,
// so a nested *_genomic name in raw output cannot masquerade as a sample.
var skipSuffixes = []string{".EDTA.anno", ".EDTA.raw", ".EDTA.combine", ".EDTA.final"}

// FindSampleDirs walks root and returns the sorted, de-duplicated absolute
// paths of directories whose basename matches re. A matched directory is a
// sample unit: it is recorded and not descended into. With recursive=false
// only root itself is considered; maxDepth < 0 means unlimited. Unreadable
// subtrees are skipped, not fatal.
func FindSampleDirs(root string, recursive bool, maxDepth int, re *regexp.Regexp) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		depth := 0
		if rel, err := filepath.Rel(absRoot, path); err == nil && rel != "." {
			depth = strings.Count(rel, string(filepath.Separator)) + 1
		}
		if !recursive && depth > 0 {
			return fs.SkipDir
		}
		if recursive && maxDepth >= 0 && depth > maxDepth {
			return fs.SkipDir
		}
		for _, suf := range skipSuffixes {
			if strings.HasSuffix(d.Name(), suf) {
				return fs.SkipDir
			}
		}

		if re.MatchString(d.Name()) {
			seen[path] = struct{}{}
			return fs.SkipDir
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}
