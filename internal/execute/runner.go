package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"fuzip/internal/fuzip"
	"fuzip/internal/logging"
)

// ErrCommandFailed is returned when StopOnFailure is set and a command
// exits non-zero.
var ErrCommandFailed = errors.New("command failed")

// Summary counts the outcome of an exec run.
type Summary struct {
	Ran     int
	Failed  int
	Skipped int
}

// Runner forks rendered command lines.
type Runner struct {
	Logger        *slog.Logger
	DryRun        bool
	Verbose       bool
	StopOnFailure bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	summary Summary
}

// Summary returns the counts accumulated so far.
func (r *Runner) Summary() Summary {
	return r.summary
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.NewNop()
	}
	return r.Logger
}

// Run executes argv, or prints it to Stdout in dry-run mode. A command that
// cannot be started is an error; a non-zero exit is logged and only returned
// when StopOnFailure is set.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("run: empty command")
	}
	logger := r.logger()
	if r.Verbose || r.DryRun {
		logger.Info("running",
			logging.String("command", commandLine(argv)),
			logging.Bool("dry_run", r.DryRun),
		)
	}
	if r.DryRun {
		fmt.Fprintln(r.stdout(), commandLine(argv))
		r.summary.Ran++
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, r.stdout(), os.Stderr
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}

	err := cmd.Run()
	if err == nil {
		r.summary.Ran++
		return nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("run %s: %w", argv[0], err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	r.summary.Ran++
	r.summary.Failed++
	logger.Error("command exited with non-zero status",
		logging.String("command", argv[0]),
		logging.Int("exit_code", exitErr.ExitCode()),
	)
	if r.StopOnFailure {
		return fmt.Errorf("%s: exit code %d: %w", argv[0], exitErr.ExitCode(), ErrCommandFailed)
	}
	return nil
}

// Each renders tmpl against every record and runs the result. Records the
// template skips are counted, not run.
func Each[T displayer](ctx context.Context, records iter.Seq[fuzip.Record[T]], tmpl *Template, r *Runner) (Summary, error) {
	logger := r.logger()
	for rec := range records {
		if err := ctx.Err(); err != nil {
			return r.summary, err
		}
		argv, err := Render(tmpl, rec)
		if errors.Is(err, ErrSkipped) {
			r.summary.Skipped++
			logger.Debug("skipping incomplete record", logging.String("record", rec.String()))
			continue
		}
		if err != nil {
			return r.summary, fmt.Errorf("render %q: %w", rec.String(), err)
		}
		if err := r.Run(ctx, argv); err != nil {
			return r.summary, err
		}
	}
	return r.summary, nil
}

// commandLine renders argv for display, Go-quoting any argument that would
// not read back as a single word.
func commandLine(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		if needsQuotes(arg) {
			arg = strconv.Quote(arg)
		}
		parts[i] = arg
	}
	return strings.Join(parts, " ")
}

func needsQuotes(arg string) bool {
	if arg == "" {
		return true
	}
	for _, r := range arg {
		if r <= ' ' || r == '"' || r == '\'' || r == '\\' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}
