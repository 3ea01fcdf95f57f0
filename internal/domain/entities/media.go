package entities

// MediaAsset is an image, audio or video resource linked to other records.
type MediaAsset struct {
	ID                string   `json:"id"`
	MovementID        OwnerID  `json:"movementId"`
	Kind              string   `json:"kind"`
	URI               string   `json:"uri"`
	Title             string   `json:"title"`
	Description       *string  `json:"description"`
	Tags              []string `json:"tags"`
	LinkedEntityIDs   []string `json:"linkedEntityIds"`
	LinkedPracticeIDs []string `json:"linkedPracticeIds"`
	LinkedEventIDs    []string `json:"linkedEventIds"`
	LinkedTextIDs     []string `json:"linkedTextIds"`
}

func (m MediaAsset) GetID() string     { return m.ID }
func (m MediaAsset) GetOwner() OwnerID { return m.MovementID }
func (m MediaAsset) GetTags() []string { return m.Tags }
