package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// ClaimsRequest selects a movement's claims, shared ones included.
type ClaimsRequest struct {
	MovementID     string
	CategoryFilter []string
	EntityIDFilter string
}

// ClaimRow is one claim in the explorer.
type ClaimRow struct {
	ID             string      `json:"id"`
	Text           string      `json:"text"`
	Category       *string     `json:"category"`
	Tags           []string    `json:"tags"`
	AboutEntities  []EntityRef `json:"aboutEntities"`
	SourceTexts    []TextRef   `json:"sourceTexts"`
	SourcesOfTruth []string    `json:"sourcesOfTruth"`
}

// ClaimsExplorer is the claim listing of a movement.
type ClaimsExplorer struct {
	Claims []ClaimRow `json:"claims"`
}

// BuildClaimsExplorer lists claims owned by the movement or shared. A
// category filter drops claims without a category.
func BuildClaimsExplorer(ds *entities.Dataset, req ClaimsRequest) *ClaimsExplorer {
	entityIndex := BuildIndex(ds.Entities)
	textIndex := BuildIndex(ds.Texts)

	rows := make([]ClaimRow, 0)
	for _, c := range ScopedTo(ds.Claims, req.MovementID, true) {
		if len(req.CategoryFilter) > 0 && (c.Category == nil || !contains(req.CategoryFilter, *c.Category)) {
			continue
		}
		if req.EntityIDFilter != "" && !contains(c.AboutEntityIDs, req.EntityIDFilter) {
			continue
		}
		rows = append(rows, ClaimRow{
			ID:             c.ID,
			Text:           c.Text,
			Category:       c.Category,
			Tags:           orEmpty(c.Tags),
			AboutEntities:  resolve(c.AboutEntityIDs, entityIndex, entityRef),
			SourceTexts:    resolve(c.SourceTextIDs, textIndex, textRef),
			SourcesOfTruth: orEmpty(c.SourcesOfTruth),
		})
	}

	return &ClaimsExplorer{Claims: rows}
}
