// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePatterns compiles ignore-file rules from reader, all anchored at root.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - trailing spaces are trimmed unless escaped with "\"
// - "\#" and "\!" stay escaped and match a literal "#" or "!"
// - every other line is one rule in NewPattern syntax
func ParsePatterns(r io.Reader, root string) ([]Pattern, error) {
	s := bufio.NewScanner(r)
	patterns := make([]Pattern, 0, 16)

	lineNo := 0
	for s.Scan() {
		lineNo++

		line := strings.TrimRight(s.Text(), "\r")
		line = trimTrailingSpaces(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := NewPattern(line, root)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		patterns = append(patterns, p)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return patterns, nil
}

// ParsePatternsString parses rules from string input.
func ParsePatternsString(src string, root string) ([]Pattern, error) {
	return ParsePatterns(strings.NewReader(src), root)
}

// trimTrailingSpaces removes trailing spaces and tabs unless escaped by "\".
//
// The escape is kept so the glob engine reads "\ " as a literal space.
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
