package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fuzip/internal/config"
)

type zipFlags struct {
	fullOnly bool
	format   string
	color    string
	keyUnit  string
	foldCase bool
	verbose  bool
	dryRun   bool
	missing  string
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags zipFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "fuzip [flags] <dir> <dir> [-- command [args...]]",
		Short: "Fuzzy zip the files of two directories",
		Long: `Pair the files of two directories by the edit distance of their names.

Without a command each record is printed. With a command after "--" it is run
once per record, with {1} and {2} replaced by the left and right file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          validateInputs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, command := splitArgs(cmd, args)
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err = applyFlags(cmd, cfg, flags)
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return runZip(cmd, cfg, logger, zipRequest{
				dirs:    dirs,
				command: command,
				verbose: flags.verbose,
				dryRun:  flags.dryRun,
			})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	f := rootCmd.Flags()
	f.BoolVarP(&flags.fullOnly, "full-only", "f", false, "Only output records where both sides matched")
	f.BoolVar(&flags.fullOnly, "complete-only", false, "Alias for --full-only")
	f.StringVar(&flags.format, "format", "", "Output format: plain, table, json or yaml")
	f.StringVar(&flags.color, "color", "", "Colorize output: auto, always or never")
	f.StringVar(&flags.keyUnit, "key-unit", "", "Unit of one edit: byte, rune or grapheme")
	f.BoolVar(&flags.foldCase, "fold-case", false, "Compare names case-insensitively")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Log each command and debug timings")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Print commands without running them")
	f.StringVar(&flags.missing, "missing", "", "Template slot with no match: error, skip or empty")
	_ = f.MarkHidden("complete-only")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func validateInputs(cmd *cobra.Command, args []string) error {
	dirs, _ := splitArgs(cmd, args)
	switch {
	case len(dirs) < 2:
		return errors.New("two input directories are required")
	case len(dirs) > 2:
		return errors.New("currently only 2 inputs are supported")
	}
	return nil
}

// splitArgs separates the input directories from the command after "--".
func splitArgs(cmd *cobra.Command, args []string) (dirs, command []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

// applyFlags overlays explicitly set flags on a copy of cfg.
func applyFlags(cmd *cobra.Command, base *config.Config, flags zipFlags) (*config.Config, error) {
	cfg := *base
	changed := cmd.Flags().Changed

	if changed("full-only") || changed("complete-only") {
		cfg.Output.CompleteOnly = flags.fullOnly
	}
	if changed("format") {
		cfg.Output.Format = flags.format
	}
	if changed("color") {
		cfg.Output.Color = flags.color
	}
	if changed("key-unit") {
		cfg.Match.KeyUnit = flags.keyUnit
	}
	if changed("fold-case") {
		cfg.Match.FoldCase = flags.foldCase
	}
	if changed("missing") {
		cfg.Exec.Missing = flags.missing
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return &cfg, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the fuzip version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "fuzip %s\n", strings.TrimSpace(version))
			return nil
		},
	}
}

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"
