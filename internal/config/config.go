// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

// Package config loads rule scopes for the command line tool from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/gitfilter"
	"github.com/woozymasta/gitfilter/internal/logging"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is an ordered list of rule scopes.
type Config struct {
	// Scopes are evaluated in declaration order; later scopes win.
	Scopes []Scope `yaml:"scopes" toml:"scopes"`
	// dir is the directory relative rules files are resolved from.
	dir string
}

// Scope is a group of rules sharing one anchor directory.
type Scope struct {
	// Root is the "/"-separated anchor directory of every rule in the scope.
	Root string `yaml:"root,omitempty" toml:"root,omitempty"`
	// Rules are inline rules in ignore-file syntax.
	Rules []string `yaml:"rules,omitempty" toml:"rules,omitempty"`
	// Files are ignore files loaded after Rules, in order.
	Files []string `yaml:"files,omitempty" toml:"files,omitempty"`
	// Extensions are turned into "*.ext" rules loaded after Files.
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// Load reads a config file from fsys; the format is chosen by extension.
func Load(fsys afero.Fs, path string) (*Config, error) {
	logger := logging.Get("config").With().Str("path", path).Logger()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	cfg.dir = filepath.Dir(path)
	logger.Debug().Int("scopes", len(cfg.Scopes)).Msg("config loaded")
	return cfg, nil
}

// Patterns compiles every scope in declaration order.
//
// Relative rules files are resolved against the config file directory.
func (c *Config) Patterns(fsys afero.Fs) ([]gitfilter.Pattern, error) {
	if c == nil {
		return nil, nil
	}

	var out []gitfilter.Pattern
	for i, scope := range c.Scopes {
		patterns, err := scope.patterns(fsys, c.dir)
		if err != nil {
			return nil, fmt.Errorf("scope %d (%q): %w", i, scope.Root, err)
		}

		out = append(out, patterns...)
	}

	return out, nil
}

// PatternSet returns a set holding every compiled scope rule.
func (c *Config) PatternSet(fsys afero.Fs) (*gitfilter.PatternSet, error) {
	patterns, err := c.Patterns(fsys)
	if err != nil {
		return nil, err
	}

	return gitfilter.NewPatternSet(patterns...), nil
}

// patterns compiles inline rules, then files, then extensions.
func (s Scope) patterns(fsys afero.Fs, dir string) ([]gitfilter.Pattern, error) {
	inline, err := gitfilter.ParsePatternsString(strings.Join(s.Rules, "\n"), s.Root)
	if err != nil {
		return nil, fmt.Errorf("inline rules: %w", err)
	}

	files := make([]string, len(s.Files))
	for i, f := range s.Files {
		if dir != "" && !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}

		files[i] = f
	}

	loaded, err := gitfilter.LoadPatternsFiles(fsys, s.Root, files...)
	if err != nil {
		return nil, err
	}

	exts, err := gitfilter.ExtensionPatterns(s.Extensions, s.Root)
	if err != nil {
		return nil, fmt.Errorf("extensions: %w", err)
	}

	return gitfilter.MergePatterns(inline, loaded, exts), nil
}
