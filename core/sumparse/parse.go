// core/sumparse/parse.go
package sumparse

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one recovered row of the repeat-class table. BP is the masked
// base-pair count; HasBP is false when the source column was not numeric.
type Entry struct {
	Pct   float64
	BP    float64
	HasBP bool
}

// Table maps a repeat-category key to its recovered values. Keys are either a
// top-level class name ("LTR", "TOTAL") or a "CLASS/Family" composite nested
// under the most recently seen class heading. TOTAL and TOTAL_INTERSPERSED are
// reserved whole-genome aggregate keys, never class prefixes.
type Table map[string]Entry

// Reserved aggregate keys.
const (
	KeyTotal             = "TOTAL"
	KeyTotalInterspersed = "TOTAL_INTERSPERSED"
)

var (
	headerRe = regexp.MustCompile(`^\s*Class\s+Count\s+bpMasked\s+%masked\s*$`)
	splitRe  = regexp.MustCompile(`\s{2,}`)
	pctRe    = regexp.MustCompile(`^(\d+(?:\.\d+)?)%?$`)
)

// parser states; the only carried context inside the table is currentClass.
type state int

const (
	beforeHeader state = iota
	inTable
)

// Parse reads one TEanno.sum report and recovers its repeat-class table.
// Malformed rows degrade to fewer recovered keys; the only error returned is a
// read failure on r. A report with no recognizable header yields an empty
// table.
func Parse(r io.Reader) (Table, error) {
	out := Table{}
	st := beforeHeader
	currentClass := ""

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for sc.Scan() {
		raw := strings.ToValidUTF8(sc.Text(), "�")

		if st == beforeHeader {
			if headerRe.MatchString(raw) {
				st = inTable
				currentClass = ""
			}
			continue
		}

		s := strings.TrimSpace(raw)
		if strings.HasPrefix(s, "Repeat Stats") {
			break
		}
		if s == "" {
			continue
		}
		if isSeparator(s) {
			continue
		}

		cols := splitRe.Split(s, -1)
		if len(cols) < 4 {
			continue
		}
		name, countCol, bpCol, pctCol := cols[0], cols[1], cols[2], cols[3]

		// A "--"/"--"/"--" row is a class heading, not data.
		if countCol == "--" && bpCol == "--" && pctCol == "--" {
			currentClass = strings.ToUpper(strings.TrimSpace(name))
			continue
		}

		pct, ok := parsePct(pctCol)
		if !ok {
			continue
		}
		e := Entry{Pct: pct}
		if bp, ok := parseBP(bpCol); ok {
			e.BP = bp
			e.HasBP = true
		}

		switch strings.ToLower(name) {
		case "total":
			out[KeyTotal] = e
			// A grand total terminates the preceding class context.
			currentClass = ""
			continue
		case "total interspersed":
			out[KeyTotalInterspersed] = e
			continue
		}

		indented := strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t")
		if indented && currentClass != "" {
			out[currentClass+"/"+strings.TrimSpace(name)] = e
		} else {
			out[strings.ToUpper(strings.TrimSpace(name))] = e
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sumparse: read: %w", err)
	}
	return out, nil
}

// isSeparator reports whether s is a horizontal rule of '-' / '=' characters.
func isSeparator(s string) bool {
	if len(s) < 5 {
		return false
	}
	for _, r := range s {
		if r != '-' && r != '=' {
			return false
		}
	}
	return true
}

// parsePct accepts "12.34" or "12.34%".
func parsePct(s string) (float64, bool) {
	m := pctRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseBP accepts integers with optional thousands separators ("1,234").
func parseBP(s string) (float64, bool) {
	v, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(v), true
}
