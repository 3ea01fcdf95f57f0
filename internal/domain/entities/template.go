package entities

// CopyMode says how a template rule copies matching records.
type CopyMode string

const (
	CopyAllFields     CopyMode = "copy_all_fields"
	CopyStructureOnly CopyMode = "copy_structure_only"
	CopyReferenceOnly CopyMode = "reference_only"
	CopyIgnore        CopyMode = "ignore"
)

// DefaultFieldsToClear are blanked by every copy_structure_only rule.
var DefaultFieldsToClear = []string{
	"summary",
	"notes",
	"content",
	"sourcesOfTruth",
	"sourceEntityIds",
}

// TemplateRule selects records of one collection by tag and says how to copy them.
type TemplateRule struct {
	ID            string   `json:"id,omitempty"`
	Collection    string   `json:"collection"`
	MatchTags     []string `json:"matchTags"`
	CopyMode      CopyMode `json:"copyMode"`
	FieldsToClear []string `json:"fieldsToClear"`
}

// MovementTemplate derives a skeleton movement from an existing one.
type MovementTemplate struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      *string        `json:"description"`
	Tags             []string       `json:"tags"`
	SourceMovementID *string        `json:"sourceMovementId"`
	Rules            []TemplateRule `json:"rules"`
}

func (t MovementTemplate) GetID() string { return t.ID }
