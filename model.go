// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

// MatchResult is a deterministic decision produced by Matcher.
type MatchResult struct {
	// Excluded reports final exclusion.
	Excluded bool `json:"excluded" yaml:"excluded"`
	// Matched reports whether at least one evaluated rule truly matched.
	Matched bool `json:"matched" yaml:"matched"`
	// RuleIndex is the last evaluated true-match rule index, -1 when none.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

// DirEntry is one directory entry input for Provider batch APIs.
type DirEntry struct {
	// Name is one entry name relative to target directory (without path separators).
	Name string `json:"name" yaml:"name"`
	// IsDir reports whether entry path is a directory.
	IsDir bool `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
}
