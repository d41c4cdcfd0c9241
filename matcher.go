// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import "github.com/woozymasta/gitfilter/internal/glob"

// Matcher evaluates ordered rules against candidate paths.
//
// A Matcher is never modified after Build and is safe for concurrent use.
type Matcher struct {
	// set is one automaton over every rule glob, in rule order.
	set *glob.Set
	// patterns are rules in precedence order.
	patterns []Pattern
}

// Decide evaluates rules for one path.
//
// Decision policy:
//   - the last rule that truly matches wins
//   - a true match needs the glob to match and, for dir-only rules, isDir
//   - ordinary rules only set exclusion, exception rules only clear it
//
// Once a path is excluded, further ordinary rules cannot change the outcome
// and are skipped; only exception rules are still evaluated.
func (m *Matcher) Decide(path string, isDir bool) MatchResult {
	res := MatchResult{RuleIndex: -1}
	if m == nil || len(m.patterns) == 0 {
		return res
	}

	raw := m.set.Matches(NormalizePath(path))
	next := 0

	for i := range m.patterns {
		// raw is ascending, so one cursor walks it alongside the rules.
		matched := next < len(raw) && raw[next] == i
		if matched {
			next++
		}

		p := &m.patterns[i]
		if res.Excluded && !p.exception {
			continue
		}

		trueMatch := matched && (!p.dirOnly || isDir)
		if !trueMatch {
			continue
		}

		res.Excluded = trueMatch && !p.exception
		res.Matched = true
		res.RuleIndex = i
	}

	return res
}

// Matches reports whether path is excluded.
func (m *Matcher) Matches(path string, isDir bool) bool {
	return m.Decide(path, isDir).Excluded
}

// Included reports whether path is not excluded.
func (m *Matcher) Included(path string, isDir bool) bool {
	return !m.Matches(path, isDir)
}

// Len returns the number of rules.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}

	return len(m.patterns)
}

// Patterns returns a copy of the rules in precedence order.
func (m *Matcher) Patterns() []Pattern {
	if m == nil {
		return nil
	}

	out := make([]Pattern, len(m.patterns))
	copy(out, m.patterns)
	return out
}

// String renders canonical rule texts as "[a, b]".
func (m *Matcher) String() string {
	if m == nil {
		return "[]"
	}

	return formatPatterns(m.patterns)
}
