package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// settings are the knobs shared by the config file and the command line.
type settings struct {
	FailFast      bool   `yaml:"fail_fast" toml:"fail_fast"`
	StrictChoice  bool   `yaml:"strict_choice" toml:"strict_choice"`
	MaxIssues     int    `yaml:"max_issues" toml:"max_issues"`
	RejectUnknown bool   `yaml:"reject_unknown" toml:"reject_unknown"`
	Lang          string `yaml:"lang" toml:"lang"`
	DuplicateKeys string `yaml:"duplicate_keys" toml:"duplicate_keys"`
	MaxDepth      int    `yaml:"max_depth" toml:"max_depth"`
	Output        string `yaml:"output" toml:"output"`
	Verbose       bool   `yaml:"verbose" toml:"verbose"`
}

func defaultSettings() settings {
	return settings{Lang: "en", DuplicateKeys: "ignore", Output: "text"}
}

// fileConfig is a parsed config file together with the keys it sets.
type fileConfig struct {
	values  settings
	defined map[string]bool
}

// overlays maps config keys to the flag that overrides them.
var overlays = []struct {
	key   string
	flag  string
	apply func(dst *settings, src settings)
}{
	{"fail_fast", "fail-fast", func(d *settings, s settings) { d.FailFast = s.FailFast }},
	{"strict_choice", "strict-choice", func(d *settings, s settings) { d.StrictChoice = s.StrictChoice }},
	{"max_issues", "max-issues", func(d *settings, s settings) { d.MaxIssues = s.MaxIssues }},
	{"reject_unknown", "reject-unknown", func(d *settings, s settings) { d.RejectUnknown = s.RejectUnknown }},
	{"lang", "lang", func(d *settings, s settings) { d.Lang = s.Lang }},
	{"duplicate_keys", "duplicate-keys", func(d *settings, s settings) { d.DuplicateKeys = s.DuplicateKeys }},
	{"max_depth", "max-depth", func(d *settings, s settings) { d.MaxDepth = s.MaxDepth }},
	{"output", "output", func(d *settings, s settings) { d.Output = s.Output }},
	{"verbose", "verbose", func(d *settings, s settings) { d.Verbose = s.Verbose }},
}

// loadConfig reads a YAML or TOML file, chosen by extension.
func loadConfig(path string) (*fileConfig, error) {
	fc := &fileConfig{defined: map[string]bool{}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &fc.values)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
		}
		for _, o := range overlays {
			if meta.IsDefined(o.key) {
				fc.defined[o.key] = true
			}
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc.values); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		for k := range raw {
			fc.defined[k] = true
		}
	default:
		return nil, fmt.Errorf("load config: unsupported file type %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	return fc, nil
}

// overlay copies the keys present in the file into dst, except where the
// matching flag was set on the command line.
func (fc *fileConfig) overlay(dst *settings, changed func(flag string) bool) {
	for _, o := range overlays {
		if fc.defined[o.key] && !changed(o.flag) {
			o.apply(dst, fc.values)
		}
	}
}
