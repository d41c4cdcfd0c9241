// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/gitfilter"
)

const yamlConfig = `scopes:
  - rules:
      - "*.log"
      - "!keep.log"
  - root: sub
    rules:
      - /build/
    files:
      - sub.ignore
    extensions:
      - .TMP
`

const tomlConfig = `[[scopes]]
rules = ["*.log", "!keep.log"]

[[scopes]]
root = "sub"
rules = ["/build/"]
files = ["sub.ignore"]
extensions = [".TMP"]
`

func writeFile(t *testing.T, fs afero.Fs, path string, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"yaml", "/cfg/gitfilter.yaml", yamlConfig},
		{"yml", "/cfg/gitfilter.yml", yamlConfig},
		{"toml", "/cfg/gitfilter.toml", tomlConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, tt.path, tt.content)
			writeFile(t, fs, "/cfg/sub.ignore", "# comment\ncache\n")

			cfg, err := Load(fs, tt.path)
			require.NoError(t, err)
			require.Len(t, cfg.Scopes, 2)
			assert.Equal(t, "sub", cfg.Scopes[1].Root)

			patterns, err := cfg.Patterns(fs)
			require.NoError(t, err)

			texts := make([]string, len(patterns))
			for i := range patterns {
				texts[i] = patterns[i].String()
			}

			assert.Equal(t, []string{
				"**/*.log",
				"!**/keep.log",
				"/sub/build/",
				"sub/**/cache",
				"sub/**/*.tmp",
			}, texts)
		})
	}
}

func TestPatternSetDecisions(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/cfg/gitfilter.yaml", yamlConfig)
	writeFile(t, fs, "/cfg/sub.ignore", "cache\n")

	cfg, err := Load(fs, "/cfg/gitfilter.yaml")
	require.NoError(t, err)

	set, err := cfg.PatternSet(fs)
	require.NoError(t, err)

	m, err := set.Build()
	require.NoError(t, err)

	assert.True(t, m.Matches("a/b.log", false))
	assert.False(t, m.Matches("a/keep.log", false))
	assert.True(t, m.Matches("sub/build", true))
	assert.False(t, m.Matches("sub/build", false))
	assert.False(t, m.Matches("build", true))
	assert.True(t, m.Matches("sub/x/cache", false))
	assert.True(t, m.Matches("sub/x.tmp", false))
	assert.False(t, m.Matches("x.tmp", false))
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/cfg/gitfilter.json", "{}")
	writeFile(t, fs, "/cfg/broken.yaml", "scopes: [")

	_, err := Load(fs, "/cfg/gitfilter.json")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(fs, "/cfg/broken.yaml")
	require.Error(t, err)

	_, err = Load(fs, "/cfg/missing.toml")
	require.Error(t, err)
}

func TestPatternsInvalidRule(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/cfg/gitfilter.yaml", "scopes:\n  - root: a\n    rules: [\"ok\", \"[z-a]\"]\n")

	cfg, err := Load(fs, "/cfg/gitfilter.yaml")
	require.NoError(t, err)

	_, err = cfg.Patterns(fs)
	require.ErrorIs(t, err, gitfilter.ErrInvalidPattern)
	assert.Contains(t, err.Error(), "line 2")
}

func TestPatternsMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/cfg/gitfilter.yaml", "scopes:\n  - files: [nope.ignore]\n")

	cfg, err := Load(fs, "/cfg/gitfilter.yaml")
	require.NoError(t, err)

	_, err = cfg.Patterns(fs)
	require.Error(t, err)
}

func TestNilConfig(t *testing.T) {
	var cfg *Config
	patterns, err := cfg.Patterns(afero.NewMemMapFs())
	require.NoError(t, err)
	assert.Empty(t, patterns)
}
