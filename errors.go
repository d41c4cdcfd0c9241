// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"errors"
	"fmt"
)

// Sentinel errors for gitfilter operations.
var (
	// ErrInvalidPattern indicates rule text whose glob is not valid glob syntax.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrSetConsumed indicates Build on a PatternSet that was already built.
	ErrSetConsumed = errors.New("pattern set already built")
	// ErrInvalidRulesFileName indicates invalid provider rules file name.
	ErrInvalidRulesFileName = errors.New("invalid rules file name")
	// ErrInvalidEntryName indicates invalid directory entry input for batch APIs.
	ErrInvalidEntryName = errors.New("invalid entry name")
	// ErrNilProvider indicates a nil Provider receiver.
	ErrNilProvider = errors.New("provider is nil")
	// ErrPathOutsideRoot indicates path traversal or non-relative input path.
	ErrPathOutsideRoot = errors.New("path is outside provider root")
)

// errZeroPattern is reported when a zero Pattern value reaches Build.
var errZeroPattern = errors.New("zero Pattern value")

// CompileError reports a rule whose derived glob text failed to compile.
//
// errors.Is(err, ErrInvalidPattern) reports true for every CompileError.
type CompileError struct {
	// Err is the glob engine diagnostic.
	Err error
	// Pattern is the offending rule text.
	Pattern string
}

// Error implements error.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

// Unwrap returns the glob engine diagnostic.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidPattern.
func (e *CompileError) Is(target error) bool {
	return target == ErrInvalidPattern
}
