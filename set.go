// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"errors"
	"strings"

	"github.com/woozymasta/gitfilter/internal/glob"
)

// PatternSet is an ordered rule collection used to build a Matcher.
//
// Insertion order defines precedence. A set is consumed by a successful
// Build; further Build calls fail with ErrSetConsumed.
type PatternSet struct {
	patterns []Pattern
	built    bool
}

// NewPatternSet returns a set holding patterns in order.
func NewPatternSet(patterns ...Pattern) *PatternSet {
	s := &PatternSet{}
	return s.Extend(patterns)
}

// Add appends one rule.
func (s *PatternSet) Add(p Pattern) *PatternSet {
	s.patterns = append(s.patterns, p)
	return s
}

// Extend appends rules in order.
func (s *PatternSet) Extend(patterns []Pattern) *PatternSet {
	s.patterns = append(s.patterns, patterns...)
	return s
}

// Len returns the number of rules.
func (s *PatternSet) Len() int {
	return len(s.patterns)
}

// Patterns returns a copy of the rules in precedence order.
func (s *PatternSet) Patterns() []Pattern {
	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Build batch-compiles every rule into one Matcher.
//
// Build fails on the first rule whose glob cannot be compiled and leaves the
// set untouched in that case. On success the rules move into the Matcher
// and the set becomes empty.
func (s *PatternSet) Build() (*Matcher, error) {
	if s.built {
		return nil, ErrSetConsumed
	}

	b := glob.NewSetBuilder()
	for i := range s.patterns {
		if s.patterns[i].glob == nil {
			return nil, &CompileError{Pattern: "", Err: errZeroPattern}
		}

		b.Add(s.patterns[i].glob)
	}

	set, err := b.Build()
	if err != nil {
		return nil, s.buildError(err)
	}

	m := &Matcher{
		patterns: s.patterns,
		set:      set,
	}

	s.patterns = nil
	s.built = true
	return m, nil
}

// String renders canonical rule texts as "[a, b]".
func (s *PatternSet) String() string {
	return formatPatterns(s.patterns)
}

// buildError maps a glob set failure to the first rule carrying that glob.
func (s *PatternSet) buildError(err error) error {
	var gerr *glob.Error
	if errors.As(err, &gerr) {
		for i := range s.patterns {
			if s.patterns[i].Glob() == gerr.Glob {
				return &CompileError{Pattern: s.patterns[i].String(), Err: err}
			}
		}
	}

	return &CompileError{Err: err}
}

// formatPatterns renders canonical rule texts as "[a, b]".
func formatPatterns(patterns []Pattern) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range patterns {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(patterns[i].String())
	}

	b.WriteByte(']')
	return b.String()
}
