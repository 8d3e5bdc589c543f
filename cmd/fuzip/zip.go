package main

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/spf13/cobra"

	"fuzip/internal/config"
	"fuzip/internal/execute"
	"fuzip/internal/fuzip"
	"fuzip/internal/inputs"
	"fuzip/internal/logging"
)

type zipRequest struct {
	dirs    []string
	command []string
	verbose bool
	dryRun  bool
}

func runZip(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, req zipRequest) error {
	opts, err := inputs.KeyOptionsFromConfig(cfg.Match)
	if err != nil {
		return err
	}

	sides := make([][]*inputs.Path, 0, len(req.dirs))
	for _, dir := range req.dirs {
		paths, err := inputs.List(dir, opts)
		if err != nil {
			return err
		}
		logger.Debug("listed input",
			logging.String("dir", dir),
			logging.Int("files", len(paths)),
			logging.String("key_unit", opts.Unit.String()),
		)
		sides = append(sides, paths)
	}

	seq := fuzip.Zip[string](sides[0], sides[1], fuzip.WithLogger(logger))
	records := selectRecords(seq.All(), cfg.Output.CompleteOnly)

	if len(req.command) > 0 {
		return runExec(cmd, cfg, logger, records, req)
	}
	return renderRecords(cmd.OutOrStdout(), records, renderOptions{
		format:   cfg.Output.Format,
		colorize: resolveColor(cfg.Output.Color, cmd.OutOrStdout()),
	})
}

func selectRecords[T any](records iter.Seq[fuzip.Record[T]], completeOnly bool) iter.Seq[fuzip.Record[T]] {
	if !completeOnly {
		return records
	}
	return func(yield func(fuzip.Record[T]) bool) {
		for rec := range records {
			if !rec.Complete() {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

func runExec(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, records iter.Seq[fuzip.Record[*inputs.Path]], req zipRequest) error {
	policy, err := execute.ParseMissingPolicy(cfg.Exec.Missing)
	if err != nil {
		return err
	}
	tmpl, err := execute.ParseTemplate(req.command, policy)
	if err != nil {
		return fmt.Errorf("parse command: %w", err)
	}
	if !req.dryRun {
		if err := execute.CheckProgram(tmpl); err != nil {
			return err
		}
	}

	if cfg.Exec.Lock && !req.dryRun {
		lock, err := execute.AcquireLock(cfg.Exec.LockPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("release exec lock failed", logging.Error(err))
			}
		}()
	}

	runner := &execute.Runner{
		Logger:        logging.NewComponentLogger(logger, "exec"),
		DryRun:        req.dryRun,
		Verbose:       req.verbose,
		StopOnFailure: cfg.Exec.StopOnFailure,
		Stdin:         cmd.InOrStdin(),
		Stdout:        cmd.OutOrStdout(),
		Stderr:        cmd.ErrOrStderr(),
	}
	summary, err := execute.Each(cmd.Context(), records, tmpl, runner)
	logger.Debug("exec finished",
		logging.Int("ran", summary.Ran),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped", summary.Skipped),
	)
	return err
}
