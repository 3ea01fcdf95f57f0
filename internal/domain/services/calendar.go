package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// CalendarRequest selects a movement's events, optionally by recurrence.
type CalendarRequest struct {
	MovementID string
	// RecurrenceFilter keeps events whose recurrence is listed. Empty keeps all.
	RecurrenceFilter []string
}

// EventCard is an event with its practices, entities, readings and claims.
type EventCard struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Recurrence       *string       `json:"recurrence"`
	TimingRule       string        `json:"timingRule"`
	Tags             []string      `json:"tags"`
	MainPractices    []PracticeRef `json:"mainPractices"`
	MainEntities     []EntityRef   `json:"mainEntities"`
	Readings         []TextRef     `json:"readings"`
	SupportingClaims []ClaimRef    `json:"supportingClaims"`
}

// Calendar is the event list of one movement.
type Calendar struct {
	MovementID string      `json:"movementId"`
	Events     []EventCard `json:"events"`
}

// BuildCalendar lists a movement's own events as cards.
func BuildCalendar(ds *entities.Dataset, req CalendarRequest) *Calendar {
	practiceIndex := BuildIndex(ds.Practices)
	entityIndex := BuildIndex(ds.Entities)
	textIndex := BuildIndex(ds.Texts)
	claimIndex := BuildIndex(ds.Claims)

	cards := make([]EventCard, 0)
	for _, e := range ScopedTo(ds.Events, req.MovementID, false) {
		if len(req.RecurrenceFilter) > 0 && (e.Recurrence == nil || !contains(req.RecurrenceFilter, *e.Recurrence)) {
			continue
		}
		cards = append(cards, EventCard{
			ID:               e.ID,
			Name:             e.Name,
			Description:      e.Description,
			Recurrence:       e.Recurrence,
			TimingRule:       e.TimingRule,
			Tags:             orEmpty(e.Tags),
			MainPractices:    resolve(e.MainPracticeIDs, practiceIndex, practiceRef),
			MainEntities:     resolve(e.MainEntityIDs, entityIndex, entityRef),
			Readings:         resolve(e.ReadingTextIDs, textIndex, textRef),
			SupportingClaims: resolve(e.SupportingClaimIDs, claimIndex, claimRef),
		})
	}

	return &Calendar{MovementID: req.MovementID, Events: cards}
}
