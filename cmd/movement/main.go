// Package main provides the entry point for the movement CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version        = "0.1.0-dev"
	globalSnapshot string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "movement",
		Short:         "Explore, compare and template datasets describing religious and cultural movements",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalSnapshot, "snapshot", "s", DefaultSnapshot, "Stored snapshot to operate on")

	rootCmd.AddCommand(
		newInitCmd(),
		newImportCmd(),
		newExportCmd(),
		newMovementsCmd(),
		newRecordsCmd(),
		newViewCmd(),
		newCompareCmd(),
		newTemplateCmd(),
		newHistoryCmd(),
		newSnapshotsCmd(),
	)

	return rootCmd
}
