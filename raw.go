// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import "strings"

// rawPrefix is the leading marker class of one rule.
type rawPrefix uint8

const (
	prefixNone rawPrefix = iota
	// prefixRoot is "/...".
	prefixRoot
	// prefixNegation is "!..." not followed by "/".
	prefixNegation
	// prefixNegationRoot is "!/...".
	prefixNegationRoot
)

// rawPattern is rule text being classified before compilation.
type rawPattern string

// prefix classifies the leading bytes.
func (r rawPattern) prefix() rawPrefix {
	switch {
	case len(r) > 0 && r[0] == '/':
		return prefixRoot
	case len(r) > 1 && r[0] == '!' && r[1] == '/':
		return prefixNegationRoot
	case len(r) > 0 && r[0] == '!':
		return prefixNegation
	default:
		return prefixNone
	}
}

// body returns rule text without prefix markers and one trailing "/".
func (r rawPattern) body() string {
	s := string(r)
	switch r.prefix() {
	case prefixRoot, prefixNegation:
		s = s[1:]
	case prefixNegationRoot:
		s = s[2:]
	}

	return strings.TrimSuffix(s, "/")
}

// rooted reports anchoring: an explicit "/" marker or any "/" inside the body.
func (r rawPattern) rooted() bool {
	switch r.prefix() {
	case prefixRoot, prefixNegationRoot:
		return true
	default:
		return strings.Contains(r.body(), "/")
	}
}

// exception reports a "!" negation rule.
func (r rawPattern) exception() bool {
	p := r.prefix()
	return p == prefixNegation || p == prefixNegationRoot
}

// dirOnly reports a trailing "/".
func (r rawPattern) dirOnly() bool {
	return strings.HasSuffix(string(r), "/")
}
