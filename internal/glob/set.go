// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package glob

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrNilGlob is returned by SetBuilder.Build for a nil glob.
var ErrNilGlob = errors.New("nil glob")

// SetBuilder collects globs for a Set in index order.
type SetBuilder struct {
	globs []*Glob
}

// NewSetBuilder returns an empty builder.
func NewSetBuilder() *SetBuilder {
	return &SetBuilder{}
}

// Add appends g; its index in the built set is the number of globs added before it.
func (b *SetBuilder) Add(g *Glob) *SetBuilder {
	b.globs = append(b.globs, g)
	return b
}

// Set matches a path against many globs at once.
//
// Every glob is assigned the cheapest strategy that keeps its semantics:
// exact literal, basename literal ("**/name"), extension ("**/*.ext"),
// or a regexp fallback.
type Set struct {
	// literals maps whole-path literals to glob indices.
	literals map[string][]int
	// basenames maps final path components to glob indices.
	basenames map[string][]int
	// extensions maps ".ext" suffixes of the final component to glob indices.
	extensions map[string][]int
	// regexps are fallback matchers in index order.
	regexps []indexedRegexp
	// len is the number of globs in the set.
	len int
}

// indexedRegexp is one fallback matcher.
type indexedRegexp struct {
	re    *regexp.Regexp
	index int
}

// Build compiles the collected globs into a Set.
func (b *SetBuilder) Build() (*Set, error) {
	s := &Set{len: len(b.globs)}

	for i, g := range b.globs {
		if g == nil {
			return nil, fmt.Errorf("glob %d: %w", i, ErrNilGlob)
		}

		if key, ok := literalKey(g.tokens); ok {
			s.literals = appendIndex(s.literals, key, i)
			continue
		}

		if key, ok := basenameKey(g.tokens); ok {
			s.basenames = appendIndex(s.basenames, key, i)
			continue
		}

		if key, ok := extensionKey(g.tokens, g.opts); ok {
			s.extensions = appendIndex(s.extensions, key, i)
			continue
		}

		s.regexps = append(s.regexps, indexedRegexp{re: g.re, index: i})
	}

	return s, nil
}

// Len returns the number of globs in the set.
func (s *Set) Len() int {
	return s.len
}

// Matches returns indices of all globs matching path in ascending order.
func (s *Set) Matches(path string) []int {
	return s.MatchesInto(path, nil)
}

// MatchesInto is Matches reusing dst storage.
func (s *Set) MatchesInto(path string, dst []int) []int {
	dst = dst[:0]
	if s.len == 0 {
		return dst
	}

	if idx, ok := s.literals[path]; ok {
		dst = append(dst, idx...)
	}

	if len(s.basenames) > 0 || len(s.extensions) > 0 {
		base := pathBase(path)
		if idx, ok := s.basenames[base]; ok && base != "" {
			dst = append(dst, idx...)
		}

		if ext := pathExt(base); ext != "" {
			if idx, ok := s.extensions[ext]; ok {
				dst = append(dst, idx...)
			}
		}
	}

	for i := range s.regexps {
		if s.regexps[i].re.MatchString(path) {
			dst = append(dst, s.regexps[i].index)
		}
	}

	// Each glob lives in exactly one strategy, so sorting alone yields a set.
	slices.Sort(dst)
	return dst
}

// appendIndex adds index i under key, allocating m on first use.
func appendIndex(m map[string][]int, key string, i int) map[string][]int {
	if m == nil {
		m = make(map[string][]int)
	}

	m[key] = append(m[key], i)
	return m
}

// literalKey returns the text of an all-literal glob.
func literalKey(tokens []token) (string, bool) {
	var b strings.Builder
	for i := range tokens {
		if tokens[i].kind != tokenLiteral {
			return "", false
		}

		b.WriteRune(tokens[i].lit)
	}

	return b.String(), true
}

// basenameKey recognizes "**/literal" without further separators.
func basenameKey(tokens []token) (string, bool) {
	if len(tokens) < 2 || tokens[0].kind != tokenRecursivePrefix {
		return "", false
	}

	key, ok := literalKey(tokens[1:])
	if !ok || strings.ContainsRune(key, '/') {
		return "", false
	}

	return key, true
}

// extensionKey recognizes "**/*.ext" where ext has no "." or "/".
func extensionKey(tokens []token, opts Options) (string, bool) {
	if !opts.LiteralSeparator || len(tokens) < 4 {
		return "", false
	}

	if tokens[0].kind != tokenRecursivePrefix ||
		tokens[1].kind != tokenZeroOrMore ||
		tokens[2].kind != tokenLiteral || tokens[2].lit != '.' {
		return "", false
	}

	ext, ok := literalKey(tokens[3:])
	if !ok || strings.ContainsAny(ext, "./") {
		return "", false
	}

	return "." + ext, true
}

// pathBase returns the final "/"-separated component.
func pathBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}

	return path
}

// pathExt returns the suffix of base starting at its last ".".
func pathExt(base string) string {
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i:]
	}

	return ""
}
