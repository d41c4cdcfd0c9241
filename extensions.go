// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import "strings"

// ExtensionPatterns converts extension list to "*.ext" rules anchored at root.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//   - "!txt" (exception rule)
//
// Empty values are skipped. Extensions are lower-cased and keep input order.
func ExtensionPatterns(exts []string, root string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)

		negate := ""
		if rest, ok := strings.CutPrefix(ext, "!"); ok {
			negate = "!"
			ext = rest
		}

		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = asciiLower(ext)
		if ext == "" {
			continue
		}

		p, err := NewPattern(negate+"*."+ext, root)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, p)
	}

	return patterns, nil
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
