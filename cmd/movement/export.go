package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
)

type exportFlags struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the snapshot to a file",
		Long:  "Writes the stored snapshot as JSON or YAML. Without --format the output file extension decides, defaulting to JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format (json, yaml)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	format, err := exportFormat(flags)
	if err != nil {
		return err
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		err := withOutput(cmd.OutOrStdout(), flags.output, func(w io.Writer) error {
			return d.Snapshots.HandleExport(cmd.Context(), d.Snapshot, w, format)
		})
		if err != nil {
			return err
		}

		if flags.output != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot %q to %s\n", d.Snapshot, flags.output)
		}
		return nil
	})
}

// exportFormat resolves the explicit format or the output file extension.
func exportFormat(flags exportFlags) (string, error) {
	if flags.format != "" {
		if err := checkFormat(flags.format, validDataFormats); err != nil {
			return "", err
		}
		return flags.format, nil
	}
	if flags.output == "" {
		return formatJSON, nil
	}
	f, err := parsers.ForFile(flags.output)
	if err != nil {
		return "", err
	}
	return string(f), nil
}
