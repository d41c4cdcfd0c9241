// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

// MergePatterns merges rule slices preserving input order.
//
// Later slices take precedence over earlier ones once built into a Matcher,
// so pass parent directory scopes before child scopes.
func MergePatterns(sets ...[]Pattern) []Pattern {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]Pattern, 0, total)
	for _, set := range sets {
		out = append(out, set...)
	}

	return out
}
