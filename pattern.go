// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"strings"

	"github.com/woozymasta/gitfilter/internal/glob"
)

// globOptions keeps "*" and "?" inside one path component; "**" still spans separators.
var globOptions = glob.Options{LiteralSeparator: true}

// anyDepthPrefix lets an unanchored rule match below any number of directories.
const anyDepthPrefix = "**/"

// Pattern is one compiled ignore rule.
//
// Pattern values are immutable: every transform returns a new Pattern.
// The zero value is not a valid rule.
type Pattern struct {
	// glob is the compiled rule; its source always includes root and, for
	// unanchored rules, the any-depth prefix.
	glob *glob.Glob
	// root is the "/"-separated anchor directory, possibly empty.
	root string
	// exception means the rule was negated with "!".
	exception bool
	// dirOnly means the rule ended with "/".
	dirOnly bool
	// rooted means the rule is anchored at root instead of matching at any depth.
	rooted bool
}

// NewPattern compiles one rule anchored at root.
//
// Rule syntax:
//   - "!" prefix negates the rule
//   - "/" prefix (also "!/") anchors the rule at root
//   - a "/" inside the body anchors the rule too
//   - a trailing "/" restricts the rule to directories
//
// Unanchored rules match at any depth below root.
func NewPattern(raw string, root string) (Pattern, error) {
	rp := rawPattern(raw)

	body := rp.body()
	rooted := rp.rooted()
	if !rooted && !strings.HasPrefix(body, anyDepthPrefix) {
		body = anyDepthPrefix + body
	}

	normRoot := NormalizePath(root)
	g, err := glob.Compile(joinRoot(normRoot, body), globOptions)
	if err != nil {
		return Pattern{}, &CompileError{Pattern: raw, Err: err}
	}

	return Pattern{
		glob:      g,
		root:      normRoot,
		exception: rp.exception(),
		dirOnly:   rp.dirOnly(),
		rooted:    rooted,
	}, nil
}

// ParsePattern compiles one rule with an empty root.
func ParsePattern(raw string) (Pattern, error) {
	return NewPattern(raw, "")
}

// MustPattern is like NewPattern but panics on error.
func MustPattern(raw string, root string) Pattern {
	p, err := NewPattern(raw, root)
	if err != nil {
		panic(err)
	}

	return p
}

// Glob returns the compiled glob text, root included.
func (p Pattern) Glob() string {
	if p.glob == nil {
		return ""
	}

	return p.glob.Source()
}

// Root returns the normalized anchor directory.
func (p Pattern) Root() string {
	return p.root
}

// IsException reports whether the rule is negated.
func (p Pattern) IsException() bool {
	return p.exception
}

// IsDirOnly reports whether the rule applies to directories only.
func (p Pattern) IsDirOnly() bool {
	return p.dirOnly
}

// IsRooted reports whether the rule is anchored at its root.
func (p Pattern) IsRooted() bool {
	return p.rooted
}

// Invert returns the rule with negation flipped.
func (p Pattern) Invert() Pattern {
	p.exception = !p.exception
	return p
}

// WithRoot recompiles the canonical text of p anchored at root.
func (p Pattern) WithRoot(root string) (Pattern, error) {
	return NewPattern(p.String(), root)
}

// RootfulDedotted resolves "." and ".." across the whole glob text, root included.
//
// A ".." may climb out of root; use Dedotted to keep root verbatim.
func (p Pattern) RootfulDedotted() (Pattern, error) {
	g, err := glob.Compile(NormalizePath(Dedot(p.Glob())), globOptions)
	if err != nil {
		return Pattern{}, &CompileError{Pattern: p.String(), Err: err}
	}

	p.glob = g
	return p, nil
}

// Dedotted resolves "." and ".." in the glob text below root, keeping root verbatim.
func (p Pattern) Dedotted() (Pattern, error) {
	src := p.Glob()
	rest, ok := StripPrefix(src, p.root)
	if !ok {
		rest = src
	} else if p.root != "" && !strings.HasSuffix(p.root, "/") {
		rest = strings.TrimPrefix(rest, "/")
	}

	rest = NormalizePath(Dedot(rest))
	if p.rooted {
		// Keep the anchor even when dot resolution removed every inner "/".
		rest = "/" + rest
	}

	q, err := NewPattern(rest, p.root)
	if err != nil {
		return Pattern{}, &CompileError{Pattern: p.String(), Err: err}
	}

	p.glob = q.glob
	return p, nil
}

// Matches reports whether p alone excludes path.
//
// It equals a one-rule Matcher: exception rules never exclude.
func (p Pattern) Matches(path string, isDir bool) bool {
	if p.glob == nil || p.exception {
		return false
	}

	if p.dirOnly && !isDir {
		return false
	}

	return p.glob.Match(NormalizePath(path))
}

// Set returns a PatternSet holding only p.
func (p Pattern) Set() *PatternSet {
	return NewPatternSet(p)
}

// Matcher builds a Matcher holding only p.
func (p Pattern) Matcher() (*Matcher, error) {
	return p.Set().Build()
}

// String returns canonical rule text.
//
// Canonical text carries the full glob, root included, so parsing it with an
// empty root reproduces the same glob.
func (p Pattern) String() string {
	var b strings.Builder
	if p.exception {
		b.WriteByte('!')
	}

	if p.rooted && !strings.HasPrefix(p.root, "/") {
		b.WriteByte('/')
	}

	b.WriteString(p.Glob())
	if p.dirOnly {
		b.WriteByte('/')
	}

	return b.String()
}

// joinRoot prefixes glob body with root.
func joinRoot(root string, body string) string {
	switch {
	case root == "":
		return body
	case body == "":
		return root
	case strings.HasSuffix(root, "/"):
		return root + body
	default:
		return root + "/" + body
	}
}
