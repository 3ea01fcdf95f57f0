package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/application/handlers"
	"github.com/ersonp/movement-core/internal/domain/entities"
)

type importFlags struct {
	format string
	dryRun bool
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a snapshot from JSON or YAML",
		Long:  "Validates a snapshot file and replaces the stored snapshot with its contents.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, yaml, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Importing %s...\n", filePath)

		result, err := d.Snapshots.HandleImport(cmd.Context(), d.Snapshot, filePath, handlers.ImportOptions{
			Format: flags.format,
			DryRun: flags.dryRun,
		})
		if err != nil {
			return fmt.Errorf("importing file: %w", err)
		}

		fmt.Fprintln(out)
		if result.DryRun {
			fmt.Fprintf(out, "Dry run: snapshot %q would be replaced with:\n", result.Snapshot)
		} else {
			fmt.Fprintf(out, "Imported into snapshot %q:\n", result.Snapshot)
		}
		return printCounts(out, result.Records, d.Vocabulary.External)
	})
}

// printCounts lists the non-empty collections of a count map in dataset order.
func printCounts(w io.Writer, counts map[entities.Collection]int, name func(string) string) error {
	t := newTable(w, "COLLECTION", "RECORDS")
	for _, c := range entities.AllCollections {
		if counts[c] == 0 {
			continue
		}
		t.row(name(string(c)), fmt.Sprint(counts[c]))
	}
	return t.flush()
}
