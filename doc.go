// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

/*
Package gitfilter implements gitignore-style path filtering with ordered, anchored rules.

A rule is compiled together with the directory it is anchored at, so rules
from many scopes can be combined into one precedence order and evaluated
against paths with a single batch match.

Basic flow:
  - compile rules (`NewPattern`, `ParsePatterns`, `LoadPatternsFile`)
  - collect them in order (`PatternSet`, `MergePatterns`)
  - build one matcher (`PatternSet.Build`)
  - ask for decision (`Decide` / `Matches` / `Included`)

Rule syntax follows gitignore: "!" negates, a leading or inner "/" anchors
the rule at its root, a trailing "/" restricts it to directories, "*" and
"?" stay inside one path component and "**" spans directories. The last rule
that truly matches wins.

Paths are matched lexically. Use `Dedot` or `DedotFrom` to resolve "." and
".." before matching, and pass isDir for directory candidates.

For hierarchical rules files, use `Provider`:
  - create provider with root directory and rules file name (".gitignore")
  - evaluate paths relative to that root
  - provider caches compiled rules per directory and matchers per chain
  - for one-directory batches use `DecideInDir` / `ExcludedInDir`
*/
package gitfilter
