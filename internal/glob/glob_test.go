// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package glob

import (
	"errors"
	"slices"
	"testing"
)

var literalSep = Options{LiteralSeparator: true}

func TestCompileMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		glob string
		good []string
		bad  []string
	}{
		{
			glob: "**/*.rs",
			good: []string{".rs", "foo.rs", "a/foo.rs", "/a/b/foo.rs", "/a///b/foo.rs"},
			bad:  []string{"", "rs", "foo.rs/bar", "foo.html"},
		},
		{
			glob: "*.rs",
			good: []string{"foo.rs", ".rs"},
			bad:  []string{"a/foo.rs", "/foo.rs"},
		},
		{
			glob: "a/b/c/**",
			good: []string{"a/b/c/d", "a/b/c/foo/bar/baz", "a/b/c/"},
			bad:  []string{"a/b/c", "a/b", "x/a/b/c/d"},
		},
		{
			glob: "a/**/b",
			good: []string{"a/b", "a/x/b", "a/x/y/b"},
			bad:  []string{"ab", "a/x/bc"},
		},
		{
			glob: "/bar/**/*.rs",
			good: []string{"/bar/foo.rs", "/bar/baz/foo.rs", "/bar/baz/.rs"},
			bad:  []string{"bar/foo.rs", "/foo.rs", "/barfoo.rs"},
		},
		{
			glob: "**",
			good: []string{"", "a", "a/b/c", "/"},
		},
		{
			glob: "**.rs",
			good: []string{"foo.rs"},
			bad:  []string{"a/foo.rs"},
		},
		{
			glob: "file[0-2].txt",
			good: []string{"file0.txt", "file2.txt"},
			bad:  []string{"file9.txt", "file.txt"},
		},
		{
			glob: "file[!0-2].txt",
			good: []string{"file9.txt"},
			bad:  []string{"file1.txt"},
		},
		{
			glob: "[]-]x",
			good: []string{"]x", "-x"},
			bad:  []string{"ax"},
		},
		{
			glob: "[a-]",
			good: []string{"a", "-"},
			bad:  []string{"b"},
		},
		{
			glob: "*.{rs,go}",
			good: []string{"main.rs", "main.go"},
			bad:  []string{"main.py", "main.{rs,go}"},
		},
		{
			glob: "a,b",
			good: []string{"a,b"},
		},
		{
			glob: `\*.rs`,
			good: []string{"*.rs"},
			bad:  []string{"foo.rs"},
		},
		{
			glob: "f?o",
			good: []string{"foo", "f.o"},
			bad:  []string{"f/o", "fo"},
		},
		{
			glob: "a.b(c)+$",
			good: []string{"a.b(c)+$"},
			bad:  []string{"axb(c)+$"},
		},
	}

	for _, tt := range tests {
		g, err := Compile(tt.glob, literalSep)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.glob, err)
		}

		for _, path := range tt.good {
			if !g.Match(path) {
				t.Fatalf("%q (%s) must match %q", tt.glob, g.Regexp(), path)
			}
		}

		for _, path := range tt.bad {
			if g.Match(path) {
				t.Fatalf("%q (%s) must not match %q", tt.glob, g.Regexp(), path)
			}
		}
	}
}

func TestCompileWithoutLiteralSeparator(t *testing.T) {
	t.Parallel()

	g := MustCompile("*.rs", Options{})
	if !g.Match("a/b/foo.rs") {
		t.Fatalf("star must cross separators without LiteralSeparator")
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		glob string
		kind ErrorKind
	}{
		{glob: "[abc", kind: KindUnclosedClass},
		{glob: "[z-a]", kind: KindInvalidRange},
		{glob: "foo}", kind: KindUnopenedAlternates},
		{glob: "{foo", kind: KindUnclosedAlternates},
		{glob: "{a,{b}}", kind: KindNestedAlternates},
		{glob: `foo\`, kind: KindDanglingEscape},
	}

	for _, tt := range tests {
		_, err := Compile(tt.glob, literalSep)
		if err == nil {
			t.Fatalf("Compile(%q) must fail", tt.glob)
		}

		var gerr *Error
		if !errors.As(err, &gerr) {
			t.Fatalf("Compile(%q) error type %T", tt.glob, err)
		}

		if gerr.Kind != tt.kind {
			t.Fatalf("Compile(%q) kind=%d, want %d (%v)", tt.glob, gerr.Kind, tt.kind, err)
		}

		if gerr.Glob != tt.glob {
			t.Fatalf("Compile(%q) error glob=%q", tt.glob, gerr.Glob)
		}
	}
}

func TestSource(t *testing.T) {
	t.Parallel()

	g := MustCompile("/root/**/foo*", literalSep)
	if g.Source() != "/root/**/foo*" || g.String() != g.Source() {
		t.Fatalf("Source()=%q String()=%q", g.Source(), g.String())
	}
}

func TestSetMatches(t *testing.T) {
	t.Parallel()

	sources := []string{
		"**/*.rs",      // extension
		"**/foo.rs",    // basename
		"a/b/c",        // literal
		"a/b/c/**",     // regexp
		"**/*.tar.gz",  // regexp
		"**/foo.rs",    // basename duplicate
		"/root/**/x*",  // regexp
		"**/important", // basename
	}

	b := NewSetBuilder()
	for _, src := range sources {
		b.Add(MustCompile(src, literalSep))
	}

	set, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if set.Len() != len(sources) {
		t.Fatalf("set len=%d", set.Len())
	}

	tests := []struct {
		path string
		want []int
	}{
		{path: "foo.rs", want: []int{0, 1, 5}},
		{path: "x/y/foo.rs", want: []int{0, 1, 5}},
		{path: "bar.rs", want: []int{0}},
		{path: "a/b/c", want: []int{2}},
		{path: "a/b/c/d.rs", want: []int{0, 3}},
		{path: "a/b/c/important", want: []int{3, 7}},
		{path: "pkg.tar.gz", want: []int{4}},
		{path: "/root/q/xy", want: []int{6}},
		{path: "nothing", want: []int{}},
		{path: "", want: []int{}},
	}

	for _, tt := range tests {
		got := set.Matches(tt.path)
		if !slices.Equal(got, tt.want) {
			t.Fatalf("Matches(%q)=%v, want %v", tt.path, got, tt.want)
		}

		// Every reported index must agree with the individual glob.
		for i, src := range sources {
			single := MustCompile(src, literalSep).Match(tt.path)
			if single != slices.Contains(got, i) {
				t.Fatalf("Matches(%q): glob %d %q single=%v set=%v", tt.path, i, src, single, got)
			}
		}
	}
}

func TestEmptySet(t *testing.T) {
	t.Parallel()

	set, err := NewSetBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if set.Len() != 0 || len(set.Matches("a")) != 0 || len(set.Matches("")) != 0 {
		t.Fatalf("empty set must not match")
	}
}

func TestSetRejectsNilGlob(t *testing.T) {
	t.Parallel()

	_, err := NewSetBuilder().Add(MustCompile("a", literalSep)).Add(nil).Build()
	if !errors.Is(err, ErrNilGlob) {
		t.Fatalf("Build err=%v, want ErrNilGlob", err)
	}
}
