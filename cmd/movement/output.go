package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
)

// checkFormat rejects a format outside valid.
func checkFormat(format string, valid []string) error {
	if !slices.Contains(valid, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, valid)
	}
	return nil
}

// writeData encodes v as JSON or YAML using the configured vocabulary.
func writeData(w io.Writer, v any, format string, vocab parsers.Vocabulary) error {
	f, err := parsers.ForFormat(format)
	if err != nil {
		return err
	}
	return parsers.Encode(w, v, f, vocab)
}

// withOutput calls fn with the file at path, or with stdout when path is empty.
func withOutput(stdout io.Writer, path string, fn func(io.Writer) error) (err error) {
	if path == "" {
		return fn(stdout)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()
	return fn(f)
}

// table writes aligned columns.
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, header ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	t.row(header...)
	return t
}

func (t *table) row(cols ...string) {
	fmt.Fprintln(t.tw, strings.Join(cols, "\t"))
}

func (t *table) flush() error {
	return t.tw.Flush()
}

// deref returns *s, or "-" for nil.
func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
