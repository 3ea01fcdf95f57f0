package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// EntityClaim is a claim about the entity together with its source texts.
type EntityClaim struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Category    *string    `json:"category"`
	SourceTexts []TextLink `json:"sourceTexts"`
}

// RelationOut is an edge leaving the entity.
type RelationOut struct {
	ID           string    `json:"id"`
	RelationType string    `json:"relationType"`
	To           EntityRef `json:"to"`
}

// RelationIn is an edge arriving at the entity.
type RelationIn struct {
	ID           string    `json:"id"`
	RelationType string    `json:"relationType"`
	From         EntityRef `json:"from"`
}

// EntityDetail gathers everything that points at one entity.
type EntityDetail struct {
	Entity          *entities.Entity  `json:"entity"`
	Claims          []EntityClaim     `json:"claims"`
	MentioningTexts []TextSummary     `json:"mentioningTexts"`
	Practices       []PracticeSummary `json:"practices"`
	Events          []EventRef        `json:"events"`
	Media           []MediaRef        `json:"media"`
	RelationsOut    []RelationOut     `json:"relationsOut"`
	RelationsIn     []RelationIn      `json:"relationsIn"`
}

// BuildEntityDetail inverts every one-way reference to the entity. It scans
// whole collections, so references from any movement are found. An unknown
// entity yields nil.
func BuildEntityDetail(ds *entities.Dataset, entityID string) *EntityDetail {
	entityIndex := BuildIndex(ds.Entities)
	entity, ok := entityIndex[entityID]
	if !ok {
		return nil
	}
	textIndex := BuildIndex(ds.Texts)

	claims := referencing(ds.Claims, entityID,
		func(c entities.Claim) []string { return c.AboutEntityIDs },
		func(c entities.Claim) EntityClaim {
			return EntityClaim{
				ID:          c.ID,
				Text:        c.Text,
				Category:    c.Category,
				SourceTexts: resolve(c.SourceTextIDs, textIndex, textLink),
			}
		})

	out := make([]RelationOut, 0)
	in := make([]RelationIn, 0)
	for _, r := range ds.Relations {
		if r.FromEntityID == entityID {
			out = append(out, RelationOut{
				ID:           r.ID,
				RelationType: r.RelationType,
				To:           entityRefOrPlaceholder(entityIndex, r.ToEntityID),
			})
		}
		if r.ToEntityID == entityID {
			in = append(in, RelationIn{
				ID:           r.ID,
				RelationType: r.RelationType,
				From:         entityRefOrPlaceholder(entityIndex, r.FromEntityID),
			})
		}
	}

	return &EntityDetail{
		Entity:          &entity,
		Claims:          claims,
		MentioningTexts: referencing(ds.Texts, entityID, func(t entities.TextNode) []string { return t.MentionsEntityIDs }, textSummary),
		Practices:       referencing(ds.Practices, entityID, func(p entities.Practice) []string { return p.InvolvedEntityIDs }, practiceSummary),
		Events:          referencing(ds.Events, entityID, func(e entities.Event) []string { return e.MainEntityIDs }, eventRef),
		Media:           referencing(ds.Media, entityID, func(m entities.MediaAsset) []string { return m.LinkedEntityIDs }, mediaRef),
		RelationsOut:    out,
		RelationsIn:     in,
	}
}
