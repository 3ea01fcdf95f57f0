package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/infrastructure/config"
)

func newSnapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Manage stored snapshots",
		RunE:  runSnapshotsList,
	}

	cmd.AddCommand(
		newSnapshotsListCmd(),
		newSnapshotsDeleteCmd(),
	)

	return cmd
}

func newSnapshotsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored snapshots",
		RunE:  runSnapshotsList,
	}
}

func runSnapshotsList(cmd *cobra.Command, args []string) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		infos, err := d.Snapshots.HandleList(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(infos) == 0 {
			fmt.Fprintln(out, "No snapshots stored.")
			fmt.Fprintln(out, "Use 'movement import FILE' to create one.")
			return nil
		}

		t := newTable(out, "NAME", "MOVEMENTS", "REVISION", "UPDATED")
		for _, info := range infos {
			t.row(info.Name, strconv.Itoa(info.Movements), strconv.Itoa(info.Revision),
				info.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return t.flush()
	})
}

func newSnapshotsDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !force && !confirmAction(cmd, fmt.Sprintf("Delete snapshot %s?", args[0])) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				if err := d.Snapshots.HandleDelete(cmd.Context(), config.SanitizeSnapshotName(args[0])); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted snapshot %s\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
