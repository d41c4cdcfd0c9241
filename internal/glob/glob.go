// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

// Package glob compiles shell-style globs into matchers and groups them into
// ordered sets that report every matching member for one path.
//
// Supported syntax:
//   - "?" matches any single character
//   - "*" matches any run of characters
//   - "**/" at the start matches any leading directories, including none
//   - "/**" at the end matches everything below
//   - "/**/" in the middle matches zero or more directories
//   - any other "**" behaves like "*"
//   - "[ab]", "[a-z]", "[!a]" and "[^a]" are character classes
//   - "{a,b}" is an alternation (not nested)
//   - "\" escapes the next character
//
// With Options.LiteralSeparator, "*" and "?" never match "/".
package glob

import (
	"regexp"
	"strings"
)

// Options controls glob compilation.
type Options struct {
	// LiteralSeparator keeps "*", "?" from matching the "/" separator.
	LiteralSeparator bool `json:"literal_separator,omitempty" yaml:"literal_separator,omitempty"`
}

// Glob is one compiled glob pattern.
type Glob struct {
	// re matches full candidate paths.
	re *regexp.Regexp
	// source is the glob text as given.
	source string
	// expr is regexp source produced from tokens.
	expr string
	// tokens is the parsed glob.
	tokens []token
	// opts are options used for compilation.
	opts Options
}

// Compile parses and compiles one glob.
func Compile(pattern string, opts Options) (*Glob, error) {
	tokens, err := parse(pattern)
	if err != nil {
		return nil, err
	}

	expr := toRegexp(tokens, opts)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &Error{Glob: pattern, Kind: KindRegexp, Err: err}
	}

	return &Glob{
		re:     re,
		source: pattern,
		expr:   expr,
		tokens: tokens,
		opts:   opts,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string, opts Options) *Glob {
	g, err := Compile(pattern, opts)
	if err != nil {
		panic(err)
	}

	return g
}

// Source returns the glob text the matcher was compiled from.
func (g *Glob) Source() string {
	return g.source
}

// Regexp returns regexp source equivalent to the glob.
func (g *Glob) Regexp() string {
	return g.expr
}

// Match reports whether path matches the glob.
func (g *Glob) Match(path string) bool {
	return g.re.MatchString(path)
}

// String returns the glob source.
func (g *Glob) String() string {
	return g.source
}

// toRegexp renders tokens as an anchored regexp.
func toRegexp(tokens []token, opts Options) string {
	var b strings.Builder
	b.WriteString(`(?s)^`)

	// A lone "**" matches everything, separators included.
	if len(tokens) == 1 && tokens[0].kind == tokenRecursivePrefix {
		b.WriteString(`.*$`)
		return b.String()
	}

	writeTokens(&b, tokens, opts)
	b.WriteByte('$')
	return b.String()
}

// writeTokens appends regexp for a token list.
func writeTokens(b *strings.Builder, tokens []token, opts Options) {
	for i := range tokens {
		tok := &tokens[i]
		switch tok.kind {
		case tokenLiteral:
			b.WriteString(regexp.QuoteMeta(string(tok.lit)))
		case tokenAny:
			if opts.LiteralSeparator {
				b.WriteString(`[^/]`)
			} else {
				b.WriteByte('.')
			}
		case tokenZeroOrMore:
			if opts.LiteralSeparator {
				b.WriteString(`[^/]*`)
			} else {
				b.WriteString(`.*`)
			}
		case tokenRecursivePrefix:
			b.WriteString(`(?:/?|.*/)`)
		case tokenRecursiveSuffix:
			b.WriteString(`/.*`)
		case tokenRecursiveZeroOrMore:
			b.WriteString(`(?:/|/.*/)`)
		case tokenClass:
			writeClass(b, tok)
		case tokenAlternates:
			parts := make([]string, 0, len(tok.alts))
			for _, alt := range tok.alts {
				var ab strings.Builder
				writeTokens(&ab, alt, opts)
				if ab.Len() > 0 {
					parts = append(parts, ab.String())
				}
			}

			// "{}" renders to nothing; "(?:)" would still be valid but noisy.
			if len(parts) > 0 {
				b.WriteString(`(?:`)
				b.WriteString(strings.Join(parts, "|"))
				b.WriteByte(')')
			}
		}
	}
}

// writeClass appends a character class.
func writeClass(b *strings.Builder, tok *token) {
	b.WriteByte('[')
	if tok.negated {
		b.WriteByte('^')
	}

	for _, r := range tok.ranges {
		writeClassChar(b, r.lo)
		if r.lo != r.hi {
			b.WriteByte('-')
			writeClassChar(b, r.hi)
		}
	}

	b.WriteByte(']')
}

// writeClassChar writes one class member, escaping ASCII punctuation.
func writeClassChar(b *strings.Builder, c rune) {
	if c < 0x80 && !isASCIIAlnum(byte(c)) && c > ' ' {
		b.WriteByte('\\')
	}

	b.WriteRune(c)
}

// isASCIIAlnum reports whether c is an ASCII letter or digit.
func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
