// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"fmt"

	"github.com/spf13/afero"
)

// LoadPatternsFile reads and compiles rules from a file anchored at root.
//
// A nil fsys reads from the operating system filesystem.
func LoadPatternsFile(fsys afero.Fs, path string, root string) ([]Pattern, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParsePatterns(f, root)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	return patterns, nil
}

// LoadPatternsFiles reads and merges rules from files in the given order.
//
// Returned rules preserve file order and rule order inside each file.
func LoadPatternsFiles(fsys afero.Fs, root string, paths ...string) ([]Pattern, error) {
	out := make([]Pattern, 0, len(paths)*8)
	for _, path := range paths {
		patterns, err := LoadPatternsFile(fsys, path, root)
		if err != nil {
			return nil, err
		}

		out = append(out, patterns...)
	}

	return out, nil
}
