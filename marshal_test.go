// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type rulesDoc struct {
	Rules []Pattern `json:"rules" yaml:"rules" toml:"rules"`
}

func TestPatternTextMarshal(t *testing.T) {
	t.Parallel()

	p := MustPattern("!/build/", "")
	text, err := p.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	if string(text) != "!/build/" {
		t.Fatalf("MarshalText=%q", text)
	}

	var q Pattern
	if err := q.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}

	if q.String() != p.String() {
		t.Fatalf("text round trip %q -> %q", p, q)
	}

	if err := q.UnmarshalText([]byte("[")); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("UnmarshalText err=%v, want ErrInvalidPattern", err)
	}
}

func TestPatternYAML(t *testing.T) {
	t.Parallel()

	doc := rulesDoc{Rules: []Pattern{MustPattern("*.log", ""), MustPattern("!/keep/", "")}}
	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}

	var back rulesDoc
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal(%s): %v", out, err)
	}

	if len(back.Rules) != 2 {
		t.Fatalf("YAML round trip: %v", back.Rules)
	}

	assertSameRules(t, doc.Rules, back.Rules)

	// "**/*.log" has a "/" in its body, so it reads back rooted.
	if !back.Rules[0].IsRooted() || back.Rules[0].String() != "/**/*.log" || back.Rules[1].String() != "!/keep/" {
		t.Fatalf("YAML round trip: %v", back.Rules)
	}

	err = yaml.Unmarshal([]byte("rules:\n  - {a: b}\n"), &back)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("mapping rule err=%v, want ErrInvalidPattern", err)
	}
}

func TestPatternJSONAndTOML(t *testing.T) {
	t.Parallel()

	doc := rulesDoc{Rules: []Pattern{MustPattern("a/b", ""), MustPattern("!c", "")}}

	js, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	if string(js) != `{"rules":["/a/b","!**/c"]}` {
		t.Fatalf("json.Marshal=%s", js)
	}

	tm, err := toml.Marshal(doc)
	if err != nil {
		t.Fatalf("toml.Marshal: %v", err)
	}

	var back rulesDoc
	if err := toml.Unmarshal(tm, &back); err != nil {
		t.Fatalf("toml.Unmarshal(%s): %v", tm, err)
	}

	if len(back.Rules) != 2 || back.Rules[1].String() != "!/**/c" {
		t.Fatalf("TOML round trip: %v", back.Rules)
	}

	assertSameRules(t, doc.Rules, back.Rules)

	if !strings.Contains(string(tm), "a/b") {
		t.Fatalf("TOML output %q lacks rule text", tm)
	}
}

func assertSameRules(t *testing.T, want, got []Pattern) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d rules, want %d", len(got), len(want))
	}

	for i := range want {
		w, g := want[i], got[i]
		if g.Glob() != w.Glob() || g.IsException() != w.IsException() || g.IsDirOnly() != w.IsDirOnly() {
			t.Fatalf("rule %d: got %q (glob %q), want %q (glob %q)", i, g, g.Glob(), w, w.Glob())
		}
	}
}
