package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/application/handlers"
	"github.com/ersonp/movement-core/internal/domain/entities"
)

func newMovementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "movements",
		Aliases: []string{"religions"},
		Short:   "Manage movements",
		RunE:    runMovementsList,
	}

	cmd.AddCommand(
		newMovementsListCmd(),
		newMovementsAddCmd(),
		newMovementsDeleteCmd(),
	)

	return cmd
}

func newMovementsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all movements",
		RunE:  runMovementsList,
	}
}

func runMovementsList(cmd *cobra.Command, args []string) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		movements, err := d.Records.HandleListMovements(cmd.Context(), d.Snapshot)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(movements) == 0 {
			fmt.Fprintln(out, "No movements in this snapshot.")
			fmt.Fprintln(out, "Use 'movement movements add --name NAME' to add one.")
			return nil
		}

		t := newTable(out, "ID", "NAME", "SHORT NAME", "TAGS")
		for _, m := range movements {
			t.row(m.ID, m.Name, m.ShortName, joinOrDash(m.Tags))
		}
		return t.flush()
	})
}

func newMovementsAddCmd() *cobra.Command {
	var in handlers.MovementInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movement",
		Long:  "Adds a movement to the snapshot, creating the snapshot when it does not exist yet.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMovementsAdd(cmd, in)
		},
	}

	cmd.Flags().StringVar(&in.ID, "id", "", "Movement ID (generated when empty)")
	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "Movement name")
	cmd.Flags().StringVar(&in.ShortName, "short-name", "", "Short name used in comparison headers")
	cmd.Flags().StringVar(&in.Summary, "summary", "", "One-paragraph summary")
	cmd.Flags().StringSliceVarP(&in.Tags, "tag", "t", nil, "Tags (repeatable)")

	return cmd
}

func runMovementsAdd(cmd *cobra.Command, in handlers.MovementInput) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		m, err := d.Records.HandleAddMovement(cmd.Context(), d.Snapshot, in)
		if err != nil {
			return fmt.Errorf("adding movement: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added movement %s (%s)\n", m.ID, m.Name)
		return nil
	})
}

func newMovementsDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <movement-id>",
		Short: "Delete a movement and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMovementsDelete(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runMovementsDelete(cmd *cobra.Command, movementID string, force bool) error {
	out := cmd.OutOrStdout()
	if !force && !confirmAction(cmd, fmt.Sprintf("Delete movement %s and all of its records?", movementID)) {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		removed, err := d.Records.HandleDeleteMovement(cmd.Context(), d.Snapshot, movementID)
		if err != nil {
			return fmt.Errorf("deleting movement: %w", err)
		}

		fmt.Fprintf(out, "Deleted movement %s\n", movementID)
		delete(removed, entities.CollectionMovements)
		return printCounts(out, removed, d.Vocabulary.External)
	})
}
