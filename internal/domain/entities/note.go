package entities

// TargetKind names the collection a note is attached to.
type TargetKind string

const (
	TargetTextNode   TargetKind = "TextNode"
	TargetEntity     TargetKind = "Entity"
	TargetPractice   TargetKind = "Practice"
	TargetEvent      TargetKind = "Event"
	TargetRule       TargetKind = "Rule"
	TargetClaim      TargetKind = "Claim"
	TargetMediaAsset TargetKind = "MediaAsset"
	TargetRelation   TargetKind = "Relation"
)

// NoteTarget is the polymorphic reference held by a Note.
type NoteTarget struct {
	Kind TargetKind
	ID   string
}

// Note is free-form commentary attached to any other record.
type Note struct {
	ID         string     `json:"id"`
	MovementID OwnerID    `json:"movementId"`
	TargetType TargetKind `json:"targetType"`
	TargetID   string     `json:"targetId"`
	Author     *string    `json:"author"`
	Body       string     `json:"body"`
	Context    *string    `json:"context"`
	Tags       []string   `json:"tags"`
}

func (n Note) GetID() string     { return n.ID }
func (n Note) GetOwner() OwnerID { return n.MovementID }
func (n Note) GetTags() []string { return n.Tags }

// Target returns the note's reference as a tagged variant.
func (n Note) Target() NoteTarget {
	return NoteTarget{Kind: n.TargetType, ID: n.TargetID}
}
