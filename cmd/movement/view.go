package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/services"
)

// viewDef describes one `movement view` subcommand.
type viewDef struct {
	use   string
	short string
	args  cobra.PositionalArgs
	// flags registers the view's own flags.
	flags func(cmd *cobra.Command)
	build func(cmd *cobra.Command, args []string, d *Deps) (any, error)
	// table renders the view as a table. Nil means the view has no table form.
	table func(w io.Writer, v any) error
}

type viewFlags struct {
	movementID string
	format     string

	collectionID   string
	centerEntityID string
	depth          int
	relationTypes  []string
	recurrences    []string
	categories     []string
	entityID       string
	kinds          []string
	domains        []string
	practiceID     string
	eventID        string
	textID         string
	targetType     string
	targetID       string
}

func newViewCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Render a read-only view of the snapshot",
	}

	for _, def := range viewDefs(&flags) {
		cmd.AddCommand(newViewSubCmd(def, &flags))
	}

	return cmd
}

func newViewSubCmd(def viewDef, flags *viewFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   def.use,
		Short: def.short,
		Args:  def.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(flags.format, validViewFormats); err != nil {
				return err
			}
			if flags.format == formatTable && def.table == nil {
				return fmt.Errorf("view %s has no table form, use json or yaml", cmd.Name())
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				v, err := def.build(cmd, args, d)
				if err != nil {
					return err
				}
				if flags.format == formatTable {
					return def.table(cmd.OutOrStdout(), v)
				}
				return writeData(cmd.OutOrStdout(), v, flags.format, d.Vocabulary)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", formatJSON, "Output format (json, yaml, table)")
	if def.flags != nil {
		def.flags(cmd)
	}
	return cmd
}

func movementFlag(flags *viewFlags, required bool) func(cmd *cobra.Command) {
	return func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&flags.movementID, "movement", "m", "", "Movement ID")
		if required {
			_ = cmd.MarkFlagRequired("movement")
		}
	}
}

func viewDefs(flags *viewFlags) []viewDef {
	withMovement := func(extra func(cmd *cobra.Command)) func(cmd *cobra.Command) {
		return func(cmd *cobra.Command) {
			movementFlag(flags, true)(cmd)
			if extra != nil {
				extra(cmd)
			}
		}
	}

	return []viewDef{
		{
			use:   "dashboard",
			short: "Counts and highlights of one movement",
			flags: withMovement(nil),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleDashboard(cmd.Context(), d.Snapshot, flags.movementID)
			},
			table: tableFor(dashboardTable),
		},
		{
			use:   "tree",
			short: "Text hierarchy of one movement",
			flags: withMovement(func(cmd *cobra.Command) {
				cmd.Flags().StringVar(&flags.collectionID, "collection", "", "Text collection ID (default: every root text)")
			}),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleTextTree(cmd.Context(), d.Snapshot, services.TextTreeRequest{
					MovementID:       flags.movementID,
					TextCollectionID: flags.collectionID,
				})
			},
		},
		{
			use:   "entity <entity-id>",
			short: "Everything that refers to one entity",
			args:  cobra.ExactArgs(1),
			build: func(cmd *cobra.Command, args []string, d *Deps) (any, error) {
				return d.Views.HandleEntity(cmd.Context(), d.Snapshot, args[0])
			},
		},
		{
			use:   "graph",
			short: "Entity relation graph of one movement",
			flags: withMovement(func(cmd *cobra.Command) {
				cmd.Flags().StringVar(&flags.centerEntityID, "center", "", "Entity to expand from")
				cmd.Flags().IntVar(&flags.depth, "depth", -1, "Expansion depth around --center (default from config)")
				cmd.Flags().StringSliceVar(&flags.relationTypes, "type", nil, "Relation types to keep")
			}),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleGraph(cmd.Context(), d.Snapshot, graphRequest(flags, d.Config.Views.GraphDepth))
			},
			table: tableFor(graphTable),
		},
		{
			use:   "practice <practice-id>",
			short: "Everything attached to one practice",
			args:  cobra.ExactArgs(1),
			build: func(cmd *cobra.Command, args []string, d *Deps) (any, error) {
				return d.Views.HandlePractice(cmd.Context(), d.Snapshot, args[0])
			},
		},
		{
			use:   "calendar",
			short: "Events of one movement",
			flags: withMovement(func(cmd *cobra.Command) {
				cmd.Flags().StringSliceVar(&flags.recurrences, "recurrence", nil, "Recurrences to keep")
			}),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleCalendar(cmd.Context(), d.Snapshot, services.CalendarRequest{
					MovementID:       flags.movementID,
					RecurrenceFilter: flags.recurrences,
				})
			},
			table: tableFor(calendarTable),
		},
		{
			use:   "claims",
			short: "Claims of one movement",
			flags: withMovement(func(cmd *cobra.Command) {
				cmd.Flags().StringSliceVar(&flags.categories, "category", nil, "Categories to keep")
				cmd.Flags().StringVar(&flags.entityID, "entity", "", "Keep claims about this entity")
			}),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleClaims(cmd.Context(), d.Snapshot, services.ClaimsRequest{
					MovementID:     flags.movementID,
					CategoryFilter: flags.categories,
					EntityIDFilter: flags.entityID,
				})
			},
			table: tableFor(claimsTable),
		},
		{
			use:   "rules",
			short: "Rules of one movement",
			flags: withMovement(func(cmd *cobra.Command) {
				cmd.Flags().StringSliceVar(&flags.kinds, "kind", nil, "Rule kinds to keep")
				cmd.Flags().StringSliceVar(&flags.domains, "domain", nil, "Keep rules sharing one of these domains")
			}),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleRules(cmd.Context(), d.Snapshot, services.RulesRequest{
					MovementID:   flags.movementID,
					KindFilter:   flags.kinds,
					DomainFilter: flags.domains,
				})
			},
			table: tableFor(rulesTable),
		},
		{
			use:   "authority",
			short: "Sources of truth cited by one movement",
			flags: withMovement(nil),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleAuthority(cmd.Context(), d.Snapshot, flags.movementID)
			},
		},
		{
			use:   "media",
			short: "Media assets of one movement",
			flags: withMovement(func(cmd *cobra.Command) {
				cmd.Flags().StringVar(&flags.entityID, "entity", "", "Keep media linked to this entity")
				cmd.Flags().StringVar(&flags.practiceID, "practice", "", "Keep media linked to this practice")
				cmd.Flags().StringVar(&flags.eventID, "event", "", "Keep media linked to this event")
				cmd.Flags().StringVar(&flags.textID, "text", "", "Keep media linked to this text")
			}),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleMedia(cmd.Context(), d.Snapshot, services.MediaRequest{
					MovementID:       flags.movementID,
					EntityIDFilter:   flags.entityID,
					PracticeIDFilter: flags.practiceID,
					EventIDFilter:    flags.eventID,
					TextIDFilter:     flags.textID,
				})
			},
		},
		{
			use:   "relations",
			short: "Entity relations of one movement",
			flags: withMovement(func(cmd *cobra.Command) {
				cmd.Flags().StringSliceVar(&flags.relationTypes, "type", nil, "Relation types to keep")
				cmd.Flags().StringVar(&flags.entityID, "entity", "", "Keep relations touching this entity")
			}),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleRelations(cmd.Context(), d.Snapshot, services.RelationsRequest{
					MovementID:         flags.movementID,
					RelationTypeFilter: flags.relationTypes,
					EntityIDFilter:     flags.entityID,
				})
			},
			table: tableFor(relationsTable),
		},
		{
			use:   "notes",
			short: "Notes of one movement",
			flags: withMovement(func(cmd *cobra.Command) {
				cmd.Flags().StringVar(&flags.targetType, "target-type", "", "Keep notes on this record type (e.g. Entity)")
				cmd.Flags().StringVar(&flags.targetID, "target-id", "", "Keep notes on this record")
			}),
			build: func(cmd *cobra.Command, _ []string, d *Deps) (any, error) {
				return d.Views.HandleNotes(cmd.Context(), d.Snapshot, services.NotesRequest{
					MovementID:       flags.movementID,
					TargetTypeFilter: entities.TargetKind(flags.targetType),
					TargetIDFilter:   flags.targetID,
				})
			},
			table: tableFor(notesTable),
		},
		{
			use:   "overview [movement-id...]",
			short: "Side-by-side counts of several movements (default: all)",
			build: func(cmd *cobra.Command, args []string, d *Deps) (any, error) {
				return d.Views.HandleOverview(cmd.Context(), d.Snapshot, args)
			},
			table: tableFor(overviewTable),
		},
	}
}

// graphRequest applies the configured depth when a center is given without --depth.
func graphRequest(flags *viewFlags, defaultDepth int) services.GraphRequest {
	req := services.GraphRequest{
		MovementID:         flags.movementID,
		RelationTypeFilter: flags.relationTypes,
		CenterEntityID:     flags.centerEntityID,
	}
	if flags.centerEntityID == "" {
		return req
	}
	depth := flags.depth
	if depth < 0 {
		depth = defaultDepth
	}
	req.Depth = &depth
	return req
}

// tableFor adapts a typed table renderer to viewDef.table.
func tableFor[T any](render func(io.Writer, *T) error) func(io.Writer, any) error {
	return func(w io.Writer, v any) error {
		typed, ok := v.(*T)
		if !ok {
			return fmt.Errorf("unexpected view type %T", v)
		}
		return render(w, typed)
	}
}

func dashboardTable(w io.Writer, d *services.Dashboard) error {
	name := "(unknown movement)"
	if d.Movement != nil {
		name = d.Movement.Name
	}
	t := newTable(w, "MOVEMENT", name)
	t.row("texts", strconv.Itoa(d.TextStats.TotalTexts))
	t.row("entities", strconv.Itoa(d.EntityStats.TotalEntities))
	t.row("practices", strconv.Itoa(d.PracticeStats.TotalPractices))
	t.row("events", strconv.Itoa(d.EventStats.TotalEvents))
	t.row("rules", strconv.Itoa(d.RuleCount))
	t.row("claims", strconv.Itoa(d.ClaimCount))
	t.row("media", strconv.Itoa(d.MediaCount))
	return t.flush()
}

func graphTable(w io.Writer, g *services.EntityGraph) error {
	t := newTable(w, "FROM", "RELATION", "TO")
	for _, e := range g.Edges {
		t.row(e.FromID, e.RelationType, e.ToID)
	}
	return t.flush()
}

func calendarTable(w io.Writer, c *services.Calendar) error {
	t := newTable(w, "ID", "NAME", "RECURRENCE", "TIMING")
	for _, e := range c.Events {
		t.row(e.ID, e.Name, deref(e.Recurrence), e.TimingRule)
	}
	return t.flush()
}

func claimsTable(w io.Writer, c *services.ClaimsExplorer) error {
	t := newTable(w, "ID", "CATEGORY", "TEXT")
	for _, row := range c.Claims {
		t.row(row.ID, deref(row.Category), row.Text)
	}
	return t.flush()
}

func rulesTable(w io.Writer, r *services.RuleExplorer) error {
	t := newTable(w, "ID", "KIND", "DOMAIN", "TEXT")
	for _, row := range r.Rules {
		t.row(row.ID, row.Kind, joinOrDash(row.Domain), row.ShortText)
	}
	return t.flush()
}

func relationsTable(w io.Writer, r *services.RelationExplorer) error {
	t := newTable(w, "ID", "FROM", "RELATION", "TO")
	for _, row := range r.Relations {
		t.row(row.ID, row.From.Name, row.RelationType, row.To.Name)
	}
	return t.flush()
}

func notesTable(w io.Writer, n *services.NotesView) error {
	t := newTable(w, "ID", "TARGET", "BODY")
	for _, row := range n.Notes {
		t.row(row.ID, fmt.Sprintf("%s %s", row.TargetType, row.TargetLabel), row.Body)
	}
	return t.flush()
}

func overviewTable(w io.Writer, o *services.ComparisonOverview) error {
	t := newTable(w, "MOVEMENT", "TEXTS", "ENTITIES", "PRACTICES", "EVENTS", "RULES", "CLAIMS")
	for _, row := range o.Rows {
		name := "-"
		if row.Movement != nil {
			name = row.Movement.Name
		}
		t.row(name,
			strconv.Itoa(row.TextCounts.TotalTexts),
			strconv.Itoa(row.EntityCounts.Total),
			strconv.Itoa(row.PracticeCounts.Total),
			strconv.Itoa(row.EventCounts.Total),
			strconv.Itoa(row.RuleCount),
			strconv.Itoa(row.ClaimCount),
		)
	}
	return t.flush()
}
