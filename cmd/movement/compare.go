package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/application/handlers"
	"github.com/ersonp/movement-core/internal/domain/services"
	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare movements along the dimensions of a comparison schema",
	}

	cmd.AddCommand(
		newCompareMatrixCmd(),
		newCompareBlankCmd(),
		newCompareSetCmd(),
	)

	return cmd
}

func newCompareMatrixCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "matrix <binding-id>",
		Short: "Evaluate a binding against its schema",
		Long:  "Prints one row per schema dimension and one column per bound movement. Explicit values win; missing ones are derived from the snapshot.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, validMatrixFormats); err != nil {
				return err
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				matrix, err := d.Comparisons.HandleMatrix(cmd.Context(), d.Snapshot, args[0])
				if err != nil {
					return err
				}
				return withOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
					return writeMatrix(w, matrix, format, d.Vocabulary)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format (json, yaml, table, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func writeMatrix(w io.Writer, m *services.ComparisonMatrix, format string, vocab parsers.Vocabulary) error {
	switch format {
	case formatCSV:
		return parsers.EncodeMatrixCSV(w, m)
	case formatTable:
		header := []string{"DIMENSION"}
		for _, mov := range m.Movements {
			header = append(header, mov.ShortName)
		}
		t := newTable(w, header...)
		for _, row := range m.Rows {
			cols := []string{row.Label}
			for _, cell := range row.Cells {
				cols = append(cols, displayValue(cell.Value))
			}
			t.row(cols...)
		}
		return t.flush()
	default:
		return writeData(w, m, format, vocab)
	}
}

// displayValue renders a matrix value for the table form.
func displayValue(v any) string {
	if v == nil {
		return "-"
	}
	return parsers.FormatCellValue(v)
}

func newCompareBlankCmd() *cobra.Command {
	var (
		req    handlers.BlankRequest
		format string
	)

	cmd := &cobra.Command{
		Use:   "blank",
		Short: "Create an empty binding for a schema",
		Long:  "Creates a binding with one empty cell per (dimension, movement) pair. Without --movement every movement of the snapshot is bound.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, validDataFormats); err != nil {
				return err
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				binding, err := d.Comparisons.HandleBlank(cmd.Context(), d.Snapshot, req)
				if err != nil {
					return fmt.Errorf("creating binding: %w", err)
				}
				return writeData(cmd.OutOrStdout(), binding, format, d.Vocabulary)
			})
		},
	}

	cmd.Flags().StringVar(&req.SchemaID, "schema", "", "Comparison schema ID")
	cmd.Flags().StringSliceVarP(&req.MovementIDs, "movement", "m", nil, "Movement IDs to bind (default: all)")
	cmd.Flags().StringVar(&req.Options.ID, "id", "", "Binding ID (generated when empty)")
	cmd.Flags().StringVar(&req.Options.Name, "name", "", "Binding name (default: schema name)")
	cmd.Flags().StringSliceVarP(&req.Options.Tags, "tag", "t", nil, "Tags (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format (json, yaml)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

type setFlags struct {
	file        string
	dimensionID string
	movementID  string
	value       string
	notes       string
}

func newCompareSetCmd() *cobra.Command {
	var flags setFlags

	cmd := &cobra.Command{
		Use:   "set <binding-id>",
		Short: "Set explicit binding values",
		Long: `Sets explicit values on a binding, either one value from flags or many from a CSV file
with the columns dimensionId, movementId, value and optionally notes. An empty value clears
the explicit value so the matrix derives it again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompareSet(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.file, "file", "", "CSV file of values")
	cmd.Flags().StringVar(&flags.dimensionID, "dimension", "", "Dimension ID")
	cmd.Flags().StringVarP(&flags.movementID, "movement", "m", "", "Movement ID")
	cmd.Flags().StringVar(&flags.value, "value", "", "Value; JSON literals keep their type")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "Cell notes")

	return cmd
}

func runCompareSet(cmd *cobra.Command, bindingID string, flags setFlags) error {
	cells, err := cellsFromFlags(cmd, flags)
	if err != nil {
		return err
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		binding, err := d.Comparisons.HandleSet(cmd.Context(), d.Snapshot, bindingID, cells)
		if err != nil {
			return fmt.Errorf("setting values: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %d value(s) on binding %s\n", len(cells), binding.ID)
		return nil
	})
}

// cellsFromFlags reads the CSV file, or builds the single cell the flags describe.
func cellsFromFlags(cmd *cobra.Command, flags setFlags) ([]parsers.CellValue, error) {
	if flags.file != "" {
		f, err := os.Open(flags.file)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		defer f.Close()
		cells, err := parsers.ParseBindingCSV(f)
		if err != nil {
			return nil, fmt.Errorf("parsing file: %w", err)
		}
		return cells, nil
	}

	if flags.dimensionID == "" || flags.movementID == "" {
		return nil, errors.New("specify --file, or --dimension and --movement")
	}
	cell := parsers.CellValue{
		DimensionID: flags.dimensionID,
		MovementID:  flags.movementID,
		Value:       parsers.ParseCellValue(flags.value),
	}
	if cmd.Flags().Changed("notes") {
		cell.HasNotes = true
		if flags.notes != "" {
			notes := flags.notes
			cell.Notes = &notes
		}
	}
	return []parsers.CellValue{cell}, nil
}
