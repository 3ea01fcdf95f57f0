package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new movement workspace",
		Long:  "Creates a .movement directory with default configuration, the snapshot database and an empty default snapshot.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler(openStore).Handle(cmd.Context(), cwd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	fmt.Fprintf(out, "Snapshot database: %s\n", result.DatabasePath)
	fmt.Fprintf(out, "Default snapshot: %s\n", result.Snapshot)
	fmt.Fprintln(out, "Movement workspace initialized successfully!")
	return nil
}
