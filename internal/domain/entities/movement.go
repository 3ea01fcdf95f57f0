package entities

// Movement is the root scoping unit of a snapshot.
type Movement struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ShortName string   `json:"shortName"`
	Summary   string   `json:"summary"`
	Notes     *string  `json:"notes"`
	Tags      []string `json:"tags"`
}

func (m Movement) GetID() string { return m.ID }

// TextCollection groups texts under an ordered list of root text ids.
type TextCollection struct {
	ID          string   `json:"id"`
	MovementID  OwnerID  `json:"movementId"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	RootTextIDs []string `json:"rootTextIds"`
}

func (c TextCollection) GetID() string     { return c.ID }
func (c TextCollection) GetOwner() OwnerID { return c.MovementID }
func (c TextCollection) GetTags() []string { return c.Tags }

// Text levels.
const (
	LevelWork    = "work"
	LevelSection = "section"
	LevelPassage = "passage"
	LevelLine    = "line"
)

// TextNode is one node of a text forest linked through ParentID.
type TextNode struct {
	ID                string   `json:"id"`
	MovementID        OwnerID  `json:"movementId"`
	ParentID          *string  `json:"parentId"`
	Level             string   `json:"level"`
	Title             string   `json:"title"`
	Label             string   `json:"label"`
	Content           string   `json:"content"`
	MainFunction      *string  `json:"mainFunction"`
	Tags              []string `json:"tags"`
	MentionsEntityIDs []string `json:"mentionsEntityIds"`
}

func (t TextNode) GetID() string     { return t.ID }
func (t TextNode) GetOwner() OwnerID { return t.MovementID }
func (t TextNode) GetTags() []string { return t.Tags }

// Entity is a being, place, object or principle referenced by the movement.
type Entity struct {
	ID              string   `json:"id"`
	MovementID      OwnerID  `json:"movementId"`
	Name            string   `json:"name"`
	Kind            *string  `json:"kind"`
	Summary         string   `json:"summary"`
	Notes           *string  `json:"notes"`
	Tags            []string `json:"tags"`
	SourcesOfTruth  []string `json:"sourcesOfTruth"`
	SourceEntityIDs []string `json:"sourceEntityIds"`
}

func (e Entity) GetID() string     { return e.ID }
func (e Entity) GetOwner() OwnerID { return e.MovementID }
func (e Entity) GetTags() []string { return e.Tags }
