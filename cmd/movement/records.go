package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/infrastructure/parsers"
)

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Create, replace and delete individual records",
	}

	cmd.AddCommand(
		newRecordsNewCmd(),
		newRecordsPutCmd(),
		newRecordsDeleteCmd(),
	)

	return cmd
}

func newRecordsNewCmd() *cobra.Command {
	var (
		owner  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "new <collection>",
		Short: "Add a default record to a movement-scoped collection",
		Long:  "Adds a record with default values and a fresh id. Without --owner the record is shared by every movement.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, validDataFormats); err != nil {
				return err
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				c, err := d.Vocabulary.Collection(args[0])
				if err != nil {
					return err
				}
				rec, err := d.Records.HandleNewRecord(cmd.Context(), d.Snapshot, c, owner)
				if err != nil {
					return fmt.Errorf("creating record: %w", err)
				}
				return writeData(cmd.OutOrStdout(), rec, format, d.Vocabulary)
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owning movement ID")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format (json, yaml)")

	return cmd
}

func newRecordsPutCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "put <collection> <file|->",
		Short: "Store a record from a file, replacing any record with the same id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordsPut(cmd, args[0], args[1], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Input format (json, yaml, auto)")

	return cmd
}

func runRecordsPut(cmd *cobra.Command, collection, path, format string) error {
	f, err := recordFormat(path, format)
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		defer file.Close()
		r = file
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		c, err := d.Vocabulary.Collection(collection)
		if err != nil {
			return err
		}
		rec, err := d.Records.HandlePutRecord(cmd.Context(), d.Snapshot, c, r, f)
		if err != nil {
			return fmt.Errorf("storing record: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stored %s %s\n", d.Vocabulary.External(string(c)), rec.GetID())
		return nil
	})
}

// recordFormat resolves the input format. Standard input defaults to JSON.
func recordFormat(path, format string) (parsers.Format, error) {
	if format != "" && format != "auto" {
		return parsers.ForFormat(format)
	}
	if path == "-" {
		return parsers.FormatJSON, nil
	}
	return parsers.ForFile(path)
}

func newRecordsDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete a record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !force && !confirmAction(cmd, fmt.Sprintf("Delete %s %s?", args[0], args[1])) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				c, err := d.Vocabulary.Collection(args[0])
				if err != nil {
					return err
				}
				removed, err := d.Records.HandleDeleteRecord(cmd.Context(), d.Snapshot, c, args[1])
				if err != nil {
					return fmt.Errorf("deleting record: %w", err)
				}
				fmt.Fprintf(out, "Deleted %d record(s) with id %s\n", removed, args[1])
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func confirmAction(cmd *cobra.Command, prompt string) bool {
	reader := bufio.NewReader(cmd.InOrStdin())
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n') // Error ignored: EOF/error treated as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
