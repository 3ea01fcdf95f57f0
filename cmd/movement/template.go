package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/domain/services"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Work with movement templates",
	}

	cmd.AddCommand(newTemplateApplyCmd())

	return cmd
}

func newTemplateApplyCmd() *cobra.Command {
	var opts services.TemplateOptions

	cmd := &cobra.Command{
		Use:   "apply <template-id>",
		Short: "Create a new movement from a template",
		Long: `Creates a new movement modelled on the template's source movement and clones the
records its rules select. Records copied with copy_structure_only keep their shape but
lose their descriptive text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				result, err := d.Templates.HandleApply(cmd.Context(), d.Snapshot, args[0], opts)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Created movement %s from template %s\n", result.MovementID, args[0])
				if err := printCounts(out, result.Cloned, d.Vocabulary.External); err != nil {
					return err
				}
				for _, c := range result.Skipped {
					fmt.Fprintf(out, "Skipped rule for %s (not movement-scoped)\n", c)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.SourceMovementID, "source", "", "Source movement ID (default: the template's)")
	cmd.Flags().StringVar(&opts.NewMovementID, "id", "", "New movement ID (generated when empty)")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "New movement name (default: the source's)")
	cmd.Flags().StringVar(&opts.ShortName, "short-name", "", "New movement short name")
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "New movement summary")
	cmd.Flags().StringSliceVarP(&opts.ExtraTags, "tag", "t", nil, "Extra tags for the new movement (repeatable)")

	return cmd
}
