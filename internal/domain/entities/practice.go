package entities

// Practice is a ritual, devotion or discipline.
type Practice struct {
	ID                  string   `json:"id"`
	MovementID          OwnerID  `json:"movementId"`
	Name                string   `json:"name"`
	Kind                *string  `json:"kind"`
	Description         string   `json:"description"`
	Frequency           string   `json:"frequency"`
	IsPublic            bool     `json:"isPublic"`
	Notes               *string  `json:"notes"`
	Tags                []string `json:"tags"`
	InvolvedEntityIDs   []string `json:"involvedEntityIds"`
	InstructionsTextIDs []string `json:"instructionsTextIds"`
	SupportingClaimIDs  []string `json:"supportingClaimIds"`
	SourcesOfTruth      []string `json:"sourcesOfTruth"`
	SourceEntityIDs     []string `json:"sourceEntityIds"`
}

func (p Practice) GetID() string     { return p.ID }
func (p Practice) GetOwner() OwnerID { return p.MovementID }
func (p Practice) GetTags() []string { return p.Tags }

// Event is a recurring or one-off observance.
type Event struct {
	ID                 string   `json:"id"`
	MovementID         OwnerID  `json:"movementId"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Recurrence         *string  `json:"recurrence"`
	TimingRule         string   `json:"timingRule"`
	Notes              *string  `json:"notes"`
	Tags               []string `json:"tags"`
	MainPracticeIDs    []string `json:"mainPracticeIds"`
	MainEntityIDs      []string `json:"mainEntityIds"`
	ReadingTextIDs     []string `json:"readingTextIds"`
	SupportingClaimIDs []string `json:"supportingClaimIds"`
}

func (e Event) GetID() string     { return e.ID }
func (e Event) GetOwner() OwnerID { return e.MovementID }
func (e Event) GetTags() []string { return e.Tags }

// Rule is a norm: something that must, should or must not be done.
type Rule struct {
	ID                 string   `json:"id"`
	MovementID         OwnerID  `json:"movementId"`
	ShortText          string   `json:"shortText"`
	Kind               string   `json:"kind"`
	Details            *string  `json:"details"`
	AppliesTo          []string `json:"appliesTo"`
	Domain             []string `json:"domain"`
	Tags               []string `json:"tags"`
	SupportingTextIDs  []string `json:"supportingTextIds"`
	SupportingClaimIDs []string `json:"supportingClaimIds"`
	RelatedPracticeIDs []string `json:"relatedPracticeIds"`
	SourcesOfTruth     []string `json:"sourcesOfTruth"`
	SourceEntityIDs    []string `json:"sourceEntityIds"`
}

func (r Rule) GetID() string     { return r.ID }
func (r Rule) GetOwner() OwnerID { return r.MovementID }
func (r Rule) GetTags() []string { return r.Tags }

// Claim is an atomic statement, optionally sourced from texts.
type Claim struct {
	ID              string   `json:"id"`
	MovementID      OwnerID  `json:"movementId"`
	Text            string   `json:"text"`
	Category        *string  `json:"category"`
	Tags            []string `json:"tags"`
	SourceTextIDs   []string `json:"sourceTextIds"`
	AboutEntityIDs  []string `json:"aboutEntityIds"`
	SourcesOfTruth  []string `json:"sourcesOfTruth"`
	SourceEntityIDs []string `json:"sourceEntityIds"`
	Notes           *string  `json:"notes"`
}

func (c Claim) GetID() string     { return c.ID }
func (c Claim) GetOwner() OwnerID { return c.MovementID }
func (c Claim) GetTags() []string { return c.Tags }
