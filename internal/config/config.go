// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"teaudit-core/classify"
	"teaudit-core/techcheck"
)

// File is the optional YAML configuration. Every field is a pointer so that a
// partial file overrides only the keys it names; flags still win over the
// file for the knobs they share.
type File struct {
	SampleRegex *string  `yaml:"sample_regex"`
	Require     *Require `yaml:"require"`
	Plant       *Plant   `yaml:"plant"`
	Animal      *Animal  `yaml:"animal"`
	Fungi       *Fungi   `yaml:"fungi"`
}

type Require struct {
	Sum     *bool `yaml:"teanno_sum"`
	GFF3    *bool `yaml:"teanno_gff3"`
	Lib     *bool `yaml:"telib_fa"`
	AnnoDir *bool `yaml:"anno_dir"`
}

type Plant struct {
	TotalPass           *float64 `yaml:"total_pass"`
	TotalSuspect        *float64 `yaml:"total_suspect"`
	LTRPass             *float64 `yaml:"ltr_pass"`
	LTRSuspect          *float64 `yaml:"ltr_suspect"`
	TIRPass             *float64 `yaml:"tir_pass"`
	TIRSuspect          *float64 `yaml:"tir_suspect"`
	HeliWarnLow         *float64 `yaml:"heli_warn_low"`
	HeliWarnMid         *float64 `yaml:"heli_warn_mid"`
	LTRKnownHintLow     *float64 `yaml:"ltr_known_hint_low"`
	LTRUnknownPctHint   *float64 `yaml:"ltr_unknown_pct_hint"`
	LTRUnknownRatioHint *float64 `yaml:"ltr_unknown_ratio_hint"`
}

type Animal struct {
	TotalPass    *float64 `yaml:"total_pass"`
	TotalSuspect *float64 `yaml:"total_suspect"`
	MinLTR       *float64 `yaml:"min_ltr"`
	MinTIR       *float64 `yaml:"min_tir"`
	MinNonLTR    *float64 `yaml:"min_nonltr"`
}

type Fungi struct {
	TotalPass    *float64 `yaml:"total_pass"`
	TotalSuspect *float64 `yaml:"total_suspect"`
	MinLTR       *float64 `yaml:"min_ltr"`
	MinTIR       *float64 `yaml:"min_tir"`
}

// Load reads and decodes a config file. Unknown keys are rejected so typos in
// threshold names do not silently keep defaults.
func Load(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Apply layers the file over compiled defaults.
func (f File) Apply(thr *classify.Thresholds, tech *techcheck.Config, sampleRegex *string) {
	if f.SampleRegex != nil {
		*sampleRegex = *f.SampleRegex
	}
	if r := f.Require; r != nil {
		setBool(&tech.RequireSum, r.Sum)
		setBool(&tech.RequireGFF3, r.GFF3)
		setBool(&tech.RequireLib, r.Lib)
		setBool(&tech.RequireAnnoDir, r.AnnoDir)
	}
	if p := f.Plant; p != nil {
		set(&thr.Plant.TotalPass, p.TotalPass)
		set(&thr.Plant.TotalSuspect, p.TotalSuspect)
		set(&thr.Plant.LTRPass, p.LTRPass)
		set(&thr.Plant.LTRSuspect, p.LTRSuspect)
		set(&thr.Plant.TIRPass, p.TIRPass)
		set(&thr.Plant.TIRSuspect, p.TIRSuspect)
		set(&thr.Plant.HeliWarnLow, p.HeliWarnLow)
		set(&thr.Plant.HeliWarnMid, p.HeliWarnMid)
		set(&thr.Plant.LTRKnownHintLow, p.LTRKnownHintLow)
		set(&thr.Plant.LTRUnknownPctHint, p.LTRUnknownPctHint)
		set(&thr.Plant.LTRUnknownRatioHint, p.LTRUnknownRatioHint)
	}
	if a := f.Animal; a != nil {
		set(&thr.Animal.TotalPass, a.TotalPass)
		set(&thr.Animal.TotalSuspect, a.TotalSuspect)
		set(&thr.Animal.MinLTR, a.MinLTR)
		set(&thr.Animal.MinTIR, a.MinTIR)
		set(&thr.Animal.MinNonLTR, a.MinNonLTR)
	}
	if g := f.Fungi; g != nil {
		set(&thr.Fungi.TotalPass, g.TotalPass)
		set(&thr.Fungi.TotalSuspect, g.TotalSuspect)
		set(&thr.Fungi.MinLTR, g.MinLTR)
		set(&thr.Fungi.MinTIR, g.MinTIR)
	}
}

func set(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
