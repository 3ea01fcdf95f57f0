package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// RelationsRequest selects a movement's relations, shared ones included.
type RelationsRequest struct {
	MovementID         string
	RelationTypeFilter []string
	// EntityIDFilter keeps relations with this entity at either end.
	EntityIDFilter string
}

// RelationRow is one relation with both endpoints resolved.
type RelationRow struct {
	ID               string      `json:"id"`
	RelationType     string      `json:"relationType"`
	From             EntityRef   `json:"from"`
	To               EntityRef   `json:"to"`
	Tags             []string    `json:"tags"`
	SupportingClaims []ClaimLink `json:"supportingClaims"`
	SourcesOfTruth   []string    `json:"sourcesOfTruth"`
}

// RelationExplorer is the relation listing of a movement.
type RelationExplorer struct {
	Relations []RelationRow `json:"relations"`
}

// BuildRelationExplorer lists relations. Endpoints that do not resolve are
// shown as placeholders carrying the raw id.
func BuildRelationExplorer(ds *entities.Dataset, req RelationsRequest) *RelationExplorer {
	entityIndex := BuildIndex(ds.Entities)
	claimIndex := BuildIndex(ds.Claims)

	rows := make([]RelationRow, 0)
	for _, r := range filterRelationTypes(ScopedTo(ds.Relations, req.MovementID, true), req.RelationTypeFilter) {
		if req.EntityIDFilter != "" && r.FromEntityID != req.EntityIDFilter && r.ToEntityID != req.EntityIDFilter {
			continue
		}
		rows = append(rows, RelationRow{
			ID:               r.ID,
			RelationType:     r.RelationType,
			From:             entityRefOrPlaceholder(entityIndex, r.FromEntityID),
			To:               entityRefOrPlaceholder(entityIndex, r.ToEntityID),
			Tags:             orEmpty(r.Tags),
			SupportingClaims: resolve(r.SupportingClaimIDs, claimIndex, claimLink),
			SourcesOfTruth:   orEmpty(r.SourcesOfTruth),
		})
	}

	return &RelationExplorer{Relations: rows}
}

func filterRelationTypes(relations []entities.Relation, types []string) []entities.Relation {
	if len(types) == 0 {
		return relations
	}
	out := make([]entities.Relation, 0, len(relations))
	for _, r := range relations {
		if contains(types, r.RelationType) {
			out = append(out, r)
		}
	}
	return out
}
