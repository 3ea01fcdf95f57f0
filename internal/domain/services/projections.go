package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// The projections below are the only shapes a view exposes for a referenced
// record. They never embed further references, so views stay acyclic.

// EntityRef is an entity as seen from another record.
type EntityRef struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kind *string `json:"kind"`
}

// NamedRef is the smallest projection: id and display name.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TextLink is a text reduced to its title.
type TextLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// TextRef is a text with its level.
type TextRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level string `json:"level"`
}

// TextSummary is a text with level and main function.
type TextSummary struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Level        string  `json:"level"`
	MainFunction *string `json:"mainFunction"`
}

// ClaimRef is a claim with its category.
type ClaimRef struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Category *string `json:"category"`
}

// ClaimLink is a claim reduced to its text.
type ClaimLink struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// PracticeRef is a practice with its kind.
type PracticeRef struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kind *string `json:"kind"`
}

// PracticeSummary adds the frequency to PracticeRef.
type PracticeSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Kind      *string `json:"kind"`
	Frequency string  `json:"frequency"`
}

// EventRef is an event with its recurrence.
type EventRef struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Recurrence *string `json:"recurrence"`
}

// RuleRef is a rule with its kind.
type RuleRef struct {
	ID        string `json:"id"`
	ShortText string `json:"shortText"`
	Kind      string `json:"kind"`
}

// MediaRef is a media asset without its links.
type MediaRef struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	URI   string `json:"uri"`
	Title string `json:"title"`
}

func entityRef(e entities.Entity) EntityRef {
	return EntityRef{ID: e.ID, Name: e.Name, Kind: e.Kind}
}

// entityRefOrPlaceholder keeps an edge renderable when its endpoint is missing.
func entityRefOrPlaceholder(index map[string]entities.Entity, id string) EntityRef {
	if e, ok := index[id]; ok {
		return entityRef(e)
	}
	return EntityRef{ID: id, Name: id}
}

func entityNamed(e entities.Entity) NamedRef     { return NamedRef{ID: e.ID, Name: e.Name} }
func practiceNamed(p entities.Practice) NamedRef { return NamedRef{ID: p.ID, Name: p.Name} }
func eventNamed(e entities.Event) NamedRef       { return NamedRef{ID: e.ID, Name: e.Name} }

func textLink(t entities.TextNode) TextLink { return TextLink{ID: t.ID, Title: t.Title} }
func textRef(t entities.TextNode) TextRef   { return TextRef{ID: t.ID, Title: t.Title, Level: t.Level} }

func textSummary(t entities.TextNode) TextSummary {
	return TextSummary{ID: t.ID, Title: t.Title, Level: t.Level, MainFunction: t.MainFunction}
}

func claimRef(c entities.Claim) ClaimRef   { return ClaimRef{ID: c.ID, Text: c.Text, Category: c.Category} }
func claimLink(c entities.Claim) ClaimLink { return ClaimLink{ID: c.ID, Text: c.Text} }

func practiceRef(p entities.Practice) PracticeRef {
	return PracticeRef{ID: p.ID, Name: p.Name, Kind: p.Kind}
}

func practiceSummary(p entities.Practice) PracticeSummary {
	return PracticeSummary{ID: p.ID, Name: p.Name, Kind: p.Kind, Frequency: p.Frequency}
}

func eventRef(e entities.Event) EventRef { return EventRef{ID: e.ID, Name: e.Name, Recurrence: e.Recurrence} }

func ruleRef(r entities.Rule) RuleRef { return RuleRef{ID: r.ID, ShortText: r.ShortText, Kind: r.Kind} }

func mediaRef(m entities.MediaAsset) MediaRef {
	return MediaRef{ID: m.ID, Kind: m.Kind, URI: m.URI, Title: m.Title}
}
