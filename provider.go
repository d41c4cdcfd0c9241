// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package gitfilter

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const defaultRulesFileName = ".gitignore"

// ProviderOptions configures recursive rules provider behavior.
type ProviderOptions struct {
	// Fs is the filesystem rules files are read from. Nil defaults to the OS filesystem.
	Fs afero.Fs `json:"-" yaml:"-"`
	// Logger receives debug events for rules file loads. Nil disables logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// RulesFileName is the rules file loaded in each directory in the path chain.
	// Empty value defaults to ".gitignore".
	RulesFileName string `json:"rules_file_name,omitempty" yaml:"rules_file_name,omitempty"`
	// BasePatterns are in-memory rules anchored at provider root and evaluated
	// before directory-loaded rules.
	BasePatterns []string `json:"base_patterns,omitempty" yaml:"base_patterns,omitempty"`
}

// Provider loads rules files along path hierarchy and evaluates final decisions.
//
// All rules along one directory chain form one precedence order: base rules
// first, then each rules file from root down to the deepest directory.
type Provider struct {
	// fs is the rules source filesystem.
	fs afero.Fs
	// log receives rules file load events.
	log zerolog.Logger
	// base are compiled base rules anchored at "".
	base []Pattern
	// files stores directory-local compiled rules by relative directory path.
	files map[string]*cachedDirPatterns
	// chains stores built matchers by relative directory path.
	chains map[string]*Matcher
	// root is cleaned provider root directory path.
	root string
	// rulesFileName is per-directory rules file name.
	rulesFileName string

	// mu guards files and chains access.
	mu sync.Mutex
}

// cachedDirPatterns stores one directory rules file or a cached load error.
type cachedDirPatterns struct {
	// patterns is empty when directory has no rules file.
	patterns []Pattern
	// err stores parse/compile error for deterministic repeated calls.
	err error
	// loading reports whether patterns are currently being loaded by another goroutine.
	loading bool
	// wg coordinates concurrent waiters for one load attempt.
	wg sync.WaitGroup
}

// NewProvider creates a recursive rules provider rooted at rootDir.
func NewProvider(rootDir string, opts ProviderOptions) (*Provider, error) {
	rulesFileName, err := cleanRulesFileName(opts.RulesFileName)
	if err != nil {
		return nil, err
	}

	base := make([]Pattern, 0, len(opts.BasePatterns))
	for i, raw := range opts.BasePatterns {
		p, err := NewPattern(raw, "")
		if err != nil {
			return nil, fmt.Errorf("compile base rule %d: %w", i, err)
		}

		base = append(base, p)
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "provider").Logger()
	}

	return &Provider{
		fs:            fsys,
		log:           log,
		base:          base,
		root:          filepath.Clean(rootDir),
		rulesFileName: rulesFileName,
		files:         make(map[string]*cachedDirPatterns),
		chains:        make(map[string]*Matcher),
	}, nil
}

// Root returns the cleaned provider root directory.
func (p *Provider) Root() string {
	if p == nil {
		return ""
	}

	return p.root
}

// Matcher returns the matcher for entries directly inside relDir.
//
// The matcher holds base rules followed by every rules file from provider
// root down to relDir. Rules from "a/b/.gitignore" are anchored at "a/b".
func (p *Provider) Matcher(relDir string) (*Matcher, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	normalizedDir, err := cleanRelDir(relDir)
	if err != nil {
		return nil, err
	}

	return p.chainMatcher(normalizedDir)
}

// Decide returns the final decision for a path relative to provider root.
//
// Rules files inside a directory never apply to that directory itself, so
// the chain ends at the parent of relPath.
func (p *Provider) Decide(relPath string, isDir bool) (MatchResult, error) {
	if p == nil {
		return MatchResult{}, ErrNilProvider
	}

	normalized, err := cleanRelPath(relPath)
	if err != nil {
		return MatchResult{}, err
	}

	m, err := p.chainMatcher(parentDir(normalized))
	if err != nil {
		return MatchResult{}, err
	}

	return m.Decide(normalized, isDir), nil
}

// Excluded reports whether path is excluded by provider decision.
func (p *Provider) Excluded(relPath string, isDir bool) (bool, error) {
	res, err := p.Decide(relPath, isDir)
	if err != nil {
		return false, err
	}

	return res.Excluded, nil
}

// Included reports whether path is not excluded by the directory chain.
func (p *Provider) Included(relPath string, isDir bool) (bool, error) {
	excluded, err := p.Excluded(relPath, isDir)
	if err != nil {
		return false, err
	}

	return !excluded, nil
}

// DecideInDir returns decisions for multiple entries from one directory.
//
// The same directory matcher is loaded once and reused for every entry.
func (p *Provider) DecideInDir(relDir string, entries []DirEntry) ([]MatchResult, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	normalizedDir, err := cleanRelDir(relDir)
	if err != nil {
		return nil, err
	}

	m, err := p.chainMatcher(normalizedDir)
	if err != nil {
		return nil, err
	}

	results := make([]MatchResult, len(entries))
	for i := range entries {
		entryName, err := cleanEntryName(entries[i].Name)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, entries[i].Name, err)
		}

		fullPath := entryName
		if normalizedDir != "" {
			fullPath = normalizedDir + "/" + entryName
		}

		results[i] = m.Decide(fullPath, entries[i].IsDir)
	}

	return results, nil
}

// ExcludedInDir reports exclude decisions for multiple entries from one directory.
func (p *Provider) ExcludedInDir(relDir string, entries []DirEntry) ([]bool, error) {
	results, err := p.DecideInDir(relDir, entries)
	if err != nil {
		return nil, err
	}

	excluded := make([]bool, len(results))
	for i := range results {
		excluded[i] = results[i].Excluded
	}

	return excluded, nil
}

// IncludedInDir reports include decisions for multiple entries from one directory.
func (p *Provider) IncludedInDir(relDir string, entries []DirEntry) ([]bool, error) {
	results, err := p.DecideInDir(relDir, entries)
	if err != nil {
		return nil, err
	}

	included := make([]bool, len(results))
	for i := range results {
		included[i] = !results[i].Excluded
	}

	return included, nil
}

// chainMatcher returns cached or newly built matcher for one normalized directory.
func (p *Provider) chainMatcher(relDir string) (*Matcher, error) {
	p.mu.Lock()
	m, ok := p.chains[relDir]
	p.mu.Unlock()
	if ok {
		return m, nil
	}

	set := NewPatternSet(p.base...)
	if err := p.extendDirPatterns(set, ""); err != nil {
		return nil, err
	}

	for i := 0; i < len(relDir); i++ {
		if relDir[i] != '/' {
			continue
		}

		if err := p.extendDirPatterns(set, relDir[:i]); err != nil {
			return nil, err
		}
	}

	if relDir != "" {
		if err := p.extendDirPatterns(set, relDir); err != nil {
			return nil, err
		}
	}

	m, err := set.Build()
	if err != nil {
		return nil, fmt.Errorf("build matcher for %q: %w", relDir, err)
	}

	p.mu.Lock()
	if cached, ok := p.chains[relDir]; ok {
		m = cached
	} else {
		p.chains[relDir] = m
	}
	p.mu.Unlock()

	return m, nil
}

// extendDirPatterns appends one directory rules file to set.
func (p *Provider) extendDirPatterns(set *PatternSet, relDir string) error {
	patterns, err := p.loadDirPatterns(relDir)
	if err != nil {
		return err
	}

	set.Extend(patterns)
	return nil
}

// loadDirPatterns returns cached or newly loaded rules for one relative directory.
func (p *Provider) loadDirPatterns(relDir string) ([]Pattern, error) {
	p.mu.Lock()
	cached, ok := p.files[relDir]
	if ok {
		loading := cached.loading
		p.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return cached.patterns, cached.err
	}

	cached = &cachedDirPatterns{
		loading: true,
	}
	cached.wg.Add(1)
	p.files[relDir] = cached
	p.mu.Unlock()

	patterns, loadErr := p.readDirPatterns(relDir)

	p.mu.Lock()
	cached.patterns = patterns
	cached.err = loadErr
	cached.loading = false
	cached.wg.Done()
	p.mu.Unlock()

	return patterns, loadErr
}

// readDirPatterns loads and compiles one directory rules file.
func (p *Provider) readDirPatterns(relDir string) ([]Pattern, error) {
	rulesPath := filepath.Join(p.root, filepath.FromSlash(relDir), p.rulesFileName)

	patterns, err := LoadPatternsFile(p.fs, rulesPath, relDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		p.log.Debug().Err(err).Str("file", rulesPath).Msg("rules file rejected")
		return nil, err
	}

	p.log.Debug().
		Str("file", rulesPath).
		Str("dir", relDir).
		Int("rules", len(patterns)).
		Msg("rules file loaded")

	return patterns, nil
}

// cleanRulesFileName validates and normalizes provider rules file name.
func cleanRulesFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = defaultRulesFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidRulesFileName
	}

	name = NormalizePath(name)
	if strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidRulesFileName
	}

	return name, nil
}

// cleanRelDir normalizes and validates provider-relative directory path.
func cleanRelDir(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	return cleanRel(raw)
}

// cleanEntryName normalizes and validates one directory entry name.
func cleanEntryName(raw string) (string, error) {
	name := NormalizePath(strings.TrimSpace(raw))
	if name == "" || strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidEntryName
	}

	return name, nil
}

// cleanRelPath normalizes and validates one provider-relative path.
//
// The root itself is not a valid entry path.
func cleanRelPath(raw string) (string, error) {
	rel, err := cleanRel(raw)
	if err != nil {
		return "", err
	}

	if rel == "" {
		return "", ErrPathOutsideRoot
	}

	return rel, nil
}

// cleanRel returns raw as a "/"-separated dot-free path below the root; the root is "".
func cleanRel(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || filepath.IsAbs(trimmed) || filepath.VolumeName(trimmed) != "" {
		return "", ErrPathOutsideRoot
	}

	rel := NormalizePath(trimmed)
	if strings.HasPrefix(rel, "/") {
		return "", ErrPathOutsideRoot
	}

	depth := 0
	for _, name := range strings.Split(rel, "/") {
		switch name {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return "", ErrPathOutsideRoot
			}
		default:
			depth++
		}
	}

	rel = path.Clean(rel)
	if rel == "." {
		return "", nil
	}

	return rel, nil
}

// parentDir returns slash-separated parent directory of a relative path.
func parentDir(relPath string) string {
	if i := strings.LastIndexByte(relPath, '/'); i >= 0 {
		return relPath[:i]
	}

	return ""
}
