// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package glob

import "fmt"

// ErrorKind classifies glob compilation failures.
type ErrorKind uint8

const (
	// KindUnclosedClass is "[" without matching "]".
	KindUnclosedClass ErrorKind = iota + 1
	// KindInvalidRange is a class range with start greater than end.
	KindInvalidRange
	// KindUnopenedAlternates is "}" without matching "{".
	KindUnopenedAlternates
	// KindUnclosedAlternates is "{" without matching "}".
	KindUnclosedAlternates
	// KindNestedAlternates is "{" inside another "{...}".
	KindNestedAlternates
	// KindDanglingEscape is a trailing "\".
	KindDanglingEscape
	// KindRegexp is a failure of the underlying regexp compiler.
	KindRegexp
)

// Error describes why a glob could not be compiled.
type Error struct {
	// Err is the regexp error for KindRegexp.
	Err error
	// Glob is the offending glob text.
	Glob string
	// Range is the offending range for KindInvalidRange.
	Range [2]rune
	// Kind is the failure kind.
	Kind ErrorKind
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("error parsing glob %q: %s", e.Glob, e.Description())
}

// Description returns the failure reason without the glob text.
func (e *Error) Description() string {
	switch e.Kind {
	case KindUnclosedClass:
		return "unclosed character class; missing ']'"
	case KindInvalidRange:
		return fmt.Sprintf("invalid range; '%c' > '%c'", e.Range[0], e.Range[1])
	case KindUnopenedAlternates:
		return "unopened alternate group; missing '{' (maybe escape '}' with '[}]'?)"
	case KindUnclosedAlternates:
		return "unclosed alternate group; missing '}' (maybe escape '{' with '[{]'?)"
	case KindNestedAlternates:
		return "nested alternate groups are not allowed"
	case KindDanglingEscape:
		return `dangling '\'`
	case KindRegexp:
		if e.Err != nil {
			return e.Err.Error()
		}

		return "invalid regexp"
	default:
		return "unknown error"
	}
}

// Unwrap returns the regexp error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
