package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// TextCounts is the text summary of one overview row.
type TextCounts struct {
	Works      int `json:"works"`
	TotalTexts int `json:"totalTexts"`
}

// KindCounts is a total with a per-kind histogram.
type KindCounts struct {
	Total  int            `json:"total"`
	ByKind map[string]int `json:"byKind"`
}

// RecurrenceCounts is a total with a per-recurrence histogram.
type RecurrenceCounts struct {
	Total        int            `json:"total"`
	ByRecurrence map[string]int `json:"byRecurrence"`
}

// OverviewRow compares one movement against the others.
type OverviewRow struct {
	Movement       *entities.Movement `json:"movement"`
	TextCounts     TextCounts         `json:"textCounts"`
	EntityCounts   KindCounts         `json:"entityCounts"`
	PracticeCounts KindCounts         `json:"practiceCounts"`
	EventCounts    RecurrenceCounts   `json:"eventCounts"`
	RuleCount      int                `json:"ruleCount"`
	ClaimCount     int                `json:"claimCount"`
}

// ComparisonOverview is one row per requested movement, in request order.
type ComparisonOverview struct {
	Rows []OverviewRow `json:"rows"`
}

// BuildComparisonOverview reduces each movement's dashboard to its counts.
func BuildComparisonOverview(ds *entities.Dataset, movementIDs []string) *ComparisonOverview {
	rows := make([]OverviewRow, 0, len(movementIDs))
	for _, id := range movementIDs {
		d := BuildDashboard(ds, DashboardRequest{MovementID: id})
		rows = append(rows, OverviewRow{
			Movement:       d.Movement,
			TextCounts:     TextCounts{Works: d.TextStats.Works, TotalTexts: d.TextStats.TotalTexts},
			EntityCounts:   KindCounts{Total: d.EntityStats.TotalEntities, ByKind: d.EntityStats.ByKind},
			PracticeCounts: KindCounts{Total: d.PracticeStats.TotalPractices, ByKind: d.PracticeStats.ByKind},
			EventCounts:    RecurrenceCounts{Total: d.EventStats.TotalEvents, ByRecurrence: d.EventStats.ByRecurrence},
			RuleCount:      d.RuleCount,
			ClaimCount:     d.ClaimCount,
		})
	}
	return &ComparisonOverview{Rows: rows}
}
