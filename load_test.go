// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadPatternsFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/w/.gitignore", []byte("*.tmp\n!keep.tmp\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsFile(fsys, "/w/.gitignore", "w")
	if err != nil {
		t.Fatalf("LoadPatternsFile: %v", err)
	}

	if len(patterns) != 2 {
		t.Fatalf("len(patterns)=%d, want 2", len(patterns))
	}

	if patterns[0].IsException() || !patterns[1].IsException() {
		t.Fatalf("unexpected negation: %v", patterns)
	}

	if patterns[0].Glob() != "w/**/*.tmp" {
		t.Fatalf("pattern[0].Glob()=%q", patterns[0].Glob())
	}
}

func TestLoadPatternsFiles(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/a.rules", []byte("*.tmp\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := afero.WriteFile(fsys, "/b.rules", []byte("!keep.tmp\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsFiles(fsys, "", "/a.rules", "/b.rules")
	if err != nil {
		t.Fatalf("LoadPatternsFiles: %v", err)
	}

	if len(patterns) != 2 || patterns[0].String() != "**/*.tmp" || patterns[1].String() != "!**/keep.tmp" {
		t.Fatalf("unexpected merged rules: %v", patterns)
	}
}

func TestLoadPatternsFileErrors(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if _, err := LoadPatternsFile(fsys, "/missing", ""); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v, want fs.ErrNotExist", err)
	}

	if err := afero.WriteFile(fsys, "/bad", []byte("ok\n{a\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadPatternsFile(fsys, "/bad", ""); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}
}

func TestLoadPatternsFileOsFs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gitignore")
	if err := os.WriteFile(path, []byte("build/\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsFile(nil, path, "")
	if err != nil {
		t.Fatalf("LoadPatternsFile: %v", err)
	}

	if len(patterns) != 1 || !patterns[0].IsDirOnly() {
		t.Fatalf("unexpected rules: %v", patterns)
	}
}
