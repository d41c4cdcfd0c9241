// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package main

import (
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/gitfilter"
	"github.com/woozymasta/gitfilter/internal/config"
	"github.com/woozymasta/gitfilter/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// options holds flags shared by every subcommand.
type options struct {
	fs         afero.Fs
	configPath string
	root       string
	rules      []string
	files      []string
	verbosity  int
}

// NewRootCmd builds the command tree reading every file through fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "gitfilter",
		Short: "Evaluate gitignore-style rules against paths",
		Long: `gitfilter compiles gitignore-style rules from config files, ignore files and
flags into one ordered rule list and reports which paths it excludes.

Rules are loaded in this order: config scopes, --file, --rule. The last
rule that matches a path wins.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&opts.configPath, "config", "", "YAML or TOML file with rule scopes")
	flags.StringVar(&opts.root, "root", "", "anchor directory for --rule and --file rules")
	flags.StringArrayVarP(&opts.rules, "rule", "r", nil, "inline rule (repeatable)")
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "ignore file (repeatable)")

	rootCmd.AddCommand(
		newCheckCmd(opts),
		newCanonCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// patterns collects rules from config, files and flags in precedence order.
func (o *options) patterns() ([]gitfilter.Pattern, error) {
	var fromConfig []gitfilter.Pattern
	if o.configPath != "" {
		cfg, err := config.Load(o.fs, o.configPath)
		if err != nil {
			return nil, err
		}

		fromConfig, err = cfg.Patterns(o.fs)
		if err != nil {
			return nil, fmt.Errorf("compile config rules: %w", err)
		}
	}

	fromFiles, err := gitfilter.LoadPatternsFiles(o.fs, o.root, o.files...)
	if err != nil {
		return nil, err
	}

	fromFlags, err := gitfilter.ParsePatternsString(strings.Join(o.rules, "\n"), o.root)
	if err != nil {
		return nil, fmt.Errorf("compile --rule: %w", err)
	}

	return gitfilter.MergePatterns(fromConfig, fromFiles, fromFlags), nil
}

func newCheckCmd(opts *options) *cobra.Command {
	var (
		quiet bool
		dedot bool
	)

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report whether each path is excluded",
		Long: `check prints "excluded" or "included" for every path argument.

A trailing separator marks the path as a directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := opts.patterns()
			if err != nil {
				return err
			}

			m, err := gitfilter.NewPatternSet(patterns...).Build()
			if err != nil {
				return err
			}

			logger := logging.Get("check")
			logger.Debug().Int("rules", m.Len()).Msg("matcher built")

			out := cmd.OutOrStdout()
			for _, arg := range args {
				path, isDir := splitDirMarker(arg)
				if dedot {
					path = gitfilter.Dedot(path)
				}

				res := m.Decide(path, isDir)
				logger.Trace().
					Str("path", path).
					Bool("dir", isDir).
					Int("rule", res.RuleIndex).
					Bool("excluded", res.Excluded).
					Msg("decided")

				if err := writeDecision(out, arg, res.Excluded, quiet); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only excluded paths")
	cmd.Flags().BoolVar(&dedot, "dedot", false, `resolve "." and ".." before matching`)
	return cmd
}

func newCanonCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "canon",
		Short: "Print canonical text of every compiled rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := opts.patterns()
			if err != nil {
				return err
			}

			return writePatterns(cmd.OutOrStdout(), patterns, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, yaml or toml")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gitfilter %s\n", version)
		},
	}
}

// rulesDocument is the canon output shape for structured formats.
type rulesDocument struct {
	Rules []gitfilter.Pattern `yaml:"rules" toml:"rules"`
}

// writePatterns renders canonical rule texts in format.
func writePatterns(w io.Writer, patterns []gitfilter.Pattern, format string) error {
	switch format {
	case "text", "":
		for i := range patterns {
			if _, err := fmt.Fprintln(w, patterns[i].String()); err != nil {
				return err
			}
		}

		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rulesDocument{Rules: patterns}); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}

		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(rulesDocument{Rules: patterns}); err != nil {
			return fmt.Errorf("encode TOML: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeDecision prints one check result line.
func writeDecision(w io.Writer, path string, excluded bool, quiet bool) error {
	if quiet {
		if !excluded {
			return nil
		}

		_, err := fmt.Fprintln(w, path)
		return err
	}

	verdict := "included"
	if excluded {
		verdict = "excluded"
	}

	_, err := fmt.Fprintf(w, "%s\t%s\n", verdict, path)
	return err
}

// splitDirMarker strips trailing separators and reports whether any were present.
func splitDirMarker(arg string) (string, bool) {
	isDir := false
	for len(arg) > 1 && (gitfilter.HasTrailingSeparator(arg) || strings.HasSuffix(arg, "/")) {
		arg = arg[:len(arg)-1]
		isDir = true
	}

	return arg, isDir
}
