// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using canonical rule text.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; the rule gets an empty root.
func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler using canonical rule text.
func (p Pattern) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; the rule gets an empty root.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected string rule", ErrInvalidPattern, value.Line)
	}

	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}

	return p.UnmarshalText([]byte(text))
}
