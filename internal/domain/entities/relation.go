package entities

// Relation is a directed, typed edge between two entities.
// Endpoints are not required to resolve.
type Relation struct {
	ID                 string   `json:"id"`
	MovementID         OwnerID  `json:"movementId"`
	FromEntityID       string   `json:"fromEntityId"`
	ToEntityID         string   `json:"toEntityId"`
	RelationType       string   `json:"relationType"`
	Tags               []string `json:"tags"`
	SupportingClaimIDs []string `json:"supportingClaimIds"`
	SourcesOfTruth     []string `json:"sourcesOfTruth"`
	SourceEntityIDs    []string `json:"sourceEntityIds"`
	Notes              *string  `json:"notes"`
}

func (r Relation) GetID() string     { return r.ID }
func (r Relation) GetOwner() OwnerID { return r.MovementID }
func (r Relation) GetTags() []string { return r.Tags }
