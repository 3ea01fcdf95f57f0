package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/application/handlers"
	"github.com/ersonp/movement-core/internal/domain/entities"
)

type historyFlags struct {
	action string
	all    bool
	limit  int
	format string
}

func newHistoryCmd() *cobra.Command {
	var flags historyFlags

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the audit log of snapshot changes",
		Long:  "Lists recorded mutations, newest first. --all searches every snapshot and requires --action.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.action, "action", "a", "", "Keep only this action (e.g. template.apply)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Search every snapshot")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", DefaultHistoryLimit, "Maximum number of entries (0 for all)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatTable, "Output format (json, yaml, table)")

	return cmd
}

func runHistory(cmd *cobra.Command, flags historyFlags) error {
	if err := checkFormat(flags.format, validViewFormats); err != nil {
		return err
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		entries, err := d.Snapshots.HandleHistory(cmd.Context(), handlers.HistoryRequest{
			Snapshot:     d.Snapshot,
			Action:       flags.action,
			AllSnapshots: flags.all,
			Limit:        flags.limit,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flags.format != formatTable {
			return writeData(out, entries, flags.format, d.Vocabulary)
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No history found.")
			return nil
		}
		return historyTable(out, entries)
	})
}

func historyTable(w io.Writer, entries []entities.AuditEntry) error {
	t := newTable(w, "TIME", "SNAPSHOT", "ACTION", "RECORD", "DETAILS")
	for _, e := range entries {
		details := "-"
		if len(e.Details) > 0 {
			if data, err := json.Marshal(e.Details); err == nil {
				details = string(data)
			}
		}
		record := e.RecordID
		if record == "" {
			record = "-"
		}
		t.row(e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Snapshot, e.Action, record, details)
	}
	return t.flush()
}
