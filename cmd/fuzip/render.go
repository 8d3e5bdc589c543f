package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"fuzip/internal/config"
	"fuzip/internal/fuzip"
)

type displayer interface {
	Display() string
}

type renderOptions struct {
	format   string
	colorize bool
}

// recordView is the serialized form of a record. Absent sides are null.
type recordView struct {
	Left     *string `json:"left" yaml:"left"`
	Right    *string `json:"right" yaml:"right"`
	Distance *int64  `json:"distance" yaml:"distance"`
}

func renderRecords[T displayer](w io.Writer, records iter.Seq[fuzip.Record[T]], opts renderOptions) error {
	switch opts.format {
	case config.OutputPlain, "":
		return writePlain(w, records, opts.colorize)
	case config.OutputTable:
		return writeRecordTable(w, records)
	case config.OutputJSON:
		return writeJSON(w, recordViews(records))
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recordViews(records)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", opts.format)
	}
}

func writePlain[T displayer](w io.Writer, records iter.Seq[fuzip.Record[T]], colorize bool) error {
	straggler := text.Colors{text.FgYellow}
	for rec := range records {
		line := rec.String()
		if colorize && !rec.Complete() {
			line = straggler.Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeRecordTable[T displayer](w io.Writer, records iter.Seq[fuzip.Record[T]]) error {
	var rows [][]string
	for rec := range records {
		view := newRecordView(rec)
		distance := "-"
		if view.Distance != nil {
			distance = strconv.FormatInt(*view.Distance, 10)
		}
		rows = append(rows, []string{
			strconv.Itoa(len(rows) + 1),
			deref(view.Left),
			deref(view.Right),
			distance,
		})
	}
	table := renderTable(
		[]string{"#", "Left", "Right", "Distance"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	)
	_, err := fmt.Fprintln(w, table)
	return err
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func recordViews[T displayer](records iter.Seq[fuzip.Record[T]]) []recordView {
	views := make([]recordView, 0)
	for rec := range records {
		views = append(views, newRecordView(rec))
	}
	return views
}

func newRecordView[T displayer](rec fuzip.Record[T]) recordView {
	var view recordView
	if left, ok := rec.Left(); ok {
		s := left.Display()
		view.Left = &s
	}
	if right, ok := rec.Right(); ok {
		s := right.Display()
		view.Right = &s
	}
	if rec.Complete() {
		d := rec.Distance()
		view.Distance = &d
	}
	return view
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func resolveColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return shouldColorize(w)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
