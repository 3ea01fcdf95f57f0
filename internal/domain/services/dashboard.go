package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// DashboardRequest selects the movement to summarise.
type DashboardRequest struct {
	MovementID string
	// TopLimit caps each highlight list. Zero selects DefaultTopLimit.
	TopLimit int
}

// TextStats counts a movement's texts per level.
type TextStats struct {
	TotalTexts int `json:"totalTexts"`
	Works      int `json:"works"`
	Sections   int `json:"sections"`
	Passages   int `json:"passages"`
	Lines      int `json:"lines"`
}

// EntityStats is the entity count with a per-kind histogram.
type EntityStats struct {
	TotalEntities int            `json:"totalEntities"`
	ByKind        map[string]int `json:"byKind"`
}

// PracticeStats is the practice count with a per-kind histogram.
type PracticeStats struct {
	TotalPractices int            `json:"totalPractices"`
	ByKind         map[string]int `json:"byKind"`
}

// EventStats is the event count with a per-recurrence histogram.
type EventStats struct {
	TotalEvents  int            `json:"totalEvents"`
	ByRecurrence map[string]int `json:"byRecurrence"`
}

// ExampleNodes are the most-tagged records of a movement.
type ExampleNodes struct {
	KeyEntities  []entities.Entity   `json:"keyEntities"`
	KeyPractices []entities.Practice `json:"keyPractices"`
	KeyEvents    []entities.Event    `json:"keyEvents"`
}

// Dashboard is the summary view of one movement.
type Dashboard struct {
	Movement        *entities.Movement        `json:"movement"`
	TextCollections []entities.TextCollection `json:"textCollections"`
	TextStats       TextStats                 `json:"textStats"`
	EntityStats     EntityStats               `json:"entityStats"`
	PracticeStats   PracticeStats             `json:"practiceStats"`
	EventStats      EventStats                `json:"eventStats"`
	RuleCount       int                       `json:"ruleCount"`
	ClaimCount      int                       `json:"claimCount"`
	MediaCount      int                       `json:"mediaCount"`
	ExampleNodes    ExampleNodes              `json:"exampleNodes"`
}

// BuildDashboard summarises a movement. Claims and media count shared records
// too; every other collection counts only what the movement owns. An unknown
// movement leaves Movement nil and still reports the (empty) counts.
func BuildDashboard(ds *entities.Dataset, req DashboardRequest) *Dashboard {
	var movement *entities.Movement
	if m, ok := ds.FindMovement(req.MovementID); ok {
		movement = &m
	}

	texts := ScopedTo(ds.Texts, req.MovementID, false)
	ents := ScopedTo(ds.Entities, req.MovementID, false)
	practices := ScopedTo(ds.Practices, req.MovementID, false)
	events := ScopedTo(ds.Events, req.MovementID, false)
	rules := ScopedTo(ds.Rules, req.MovementID, false)
	claims := ScopedTo(ds.Claims, req.MovementID, true)
	media := ScopedTo(ds.Media, req.MovementID, true)

	return &Dashboard{
		Movement:        movement,
		TextCollections: ScopedTo(ds.TextCollections, req.MovementID, false),
		TextStats:       countTexts(texts),
		EntityStats: EntityStats{
			TotalEntities: len(ents),
			ByKind:        Histogram(ents, func(e entities.Entity) *string { return e.Kind }),
		},
		PracticeStats: PracticeStats{
			TotalPractices: len(practices),
			ByKind:         Histogram(practices, func(p entities.Practice) *string { return p.Kind }),
		},
		EventStats: EventStats{
			TotalEvents:  len(events),
			ByRecurrence: Histogram(events, func(e entities.Event) *string { return e.Recurrence }),
		},
		RuleCount:  len(rules),
		ClaimCount: len(claims),
		MediaCount: len(media),
		ExampleNodes: ExampleNodes{
			KeyEntities:  TopByTagCount(ents, req.TopLimit),
			KeyPractices: TopByTagCount(practices, req.TopLimit),
			KeyEvents:    TopByTagCount(events, req.TopLimit),
		},
	}
}

func countTexts(texts []entities.TextNode) TextStats {
	stats := TextStats{TotalTexts: len(texts)}
	for _, t := range texts {
		switch t.Level {
		case entities.LevelWork:
			stats.Works++
		case entities.LevelSection:
			stats.Sections++
		case entities.LevelPassage:
			stats.Passages++
		case entities.LevelLine:
			stats.Lines++
		}
	}
	return stats
}
