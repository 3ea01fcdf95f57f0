package entities

// Dataset is a complete snapshot: one array per collection.
// Collections are never nil once Normalize has run.
type Dataset struct {
	Movements          []Movement          `json:"movements"`
	TextCollections    []TextCollection    `json:"textCollections"`
	Texts              []TextNode          `json:"texts"`
	Entities           []Entity            `json:"entities"`
	Practices          []Practice          `json:"practices"`
	Events             []Event             `json:"events"`
	Rules              []Rule              `json:"rules"`
	Claims             []Claim             `json:"claims"`
	Media              []MediaAsset        `json:"media"`
	Notes              []Note              `json:"notes"`
	Relations          []Relation          `json:"relations"`
	ComparisonSchemas  []ComparisonSchema  `json:"comparisonSchemas"`
	ComparisonBindings []ComparisonBinding `json:"comparisonBindings"`
	MovementTemplates  []MovementTemplate  `json:"movementTemplates"`
}

// NewDataset returns an empty, normalized dataset.
func NewDataset() *Dataset {
	return (&Dataset{}).Normalize()
}

// Normalize replaces nil collections with empty ones, in place, and returns d.
func (d *Dataset) Normalize() *Dataset {
	d.Movements = orEmpty(d.Movements)
	d.TextCollections = orEmpty(d.TextCollections)
	d.Texts = orEmpty(d.Texts)
	d.Entities = orEmpty(d.Entities)
	d.Practices = orEmpty(d.Practices)
	d.Events = orEmpty(d.Events)
	d.Rules = orEmpty(d.Rules)
	d.Claims = orEmpty(d.Claims)
	d.Media = orEmpty(d.Media)
	d.Notes = orEmpty(d.Notes)
	d.Relations = orEmpty(d.Relations)
	d.ComparisonSchemas = orEmpty(d.ComparisonSchemas)
	d.ComparisonBindings = orEmpty(d.ComparisonBindings)
	d.MovementTemplates = orEmpty(d.MovementTemplates)
	return d
}

// Clone returns a dataset whose collections are fresh slices holding the same
// records. Appending to or reassigning elements of the clone never touches d.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return NewDataset()
	}
	return &Dataset{
		Movements:          copyOf(d.Movements),
		TextCollections:    copyOf(d.TextCollections),
		Texts:              copyOf(d.Texts),
		Entities:           copyOf(d.Entities),
		Practices:          copyOf(d.Practices),
		Events:             copyOf(d.Events),
		Rules:              copyOf(d.Rules),
		Claims:             copyOf(d.Claims),
		Media:              copyOf(d.Media),
		Notes:              copyOf(d.Notes),
		Relations:          copyOf(d.Relations),
		ComparisonSchemas:  copyOf(d.ComparisonSchemas),
		ComparisonBindings: copyOf(d.ComparisonBindings),
		MovementTemplates:  copyOf(d.MovementTemplates),
	}
}

// Records returns a movement-scoped collection as generic records.
// The boolean is false for unknown or unscoped collection names.
func (d *Dataset) Records(c Collection) ([]Record, bool) {
	if d == nil {
		return nil, false
	}
	switch c {
	case CollectionTextCollections:
		return asRecords(d.TextCollections), true
	case CollectionTexts:
		return asRecords(d.Texts), true
	case CollectionEntities:
		return asRecords(d.Entities), true
	case CollectionPractices:
		return asRecords(d.Practices), true
	case CollectionEvents:
		return asRecords(d.Events), true
	case CollectionRules:
		return asRecords(d.Rules), true
	case CollectionClaims:
		return asRecords(d.Claims), true
	case CollectionMedia:
		return asRecords(d.Media), true
	case CollectionNotes:
		return asRecords(d.Notes), true
	case CollectionRelations:
		return asRecords(d.Relations), true
	default:
		return nil, false
	}
}

// Counts returns the number of records per collection.
func (d *Dataset) Counts() map[Collection]int {
	if d == nil {
		return map[Collection]int{}
	}
	return map[Collection]int{
		CollectionMovements:          len(d.Movements),
		CollectionTextCollections:    len(d.TextCollections),
		CollectionTexts:              len(d.Texts),
		CollectionEntities:           len(d.Entities),
		CollectionPractices:          len(d.Practices),
		CollectionEvents:             len(d.Events),
		CollectionRules:              len(d.Rules),
		CollectionClaims:             len(d.Claims),
		CollectionMedia:              len(d.Media),
		CollectionNotes:              len(d.Notes),
		CollectionRelations:          len(d.Relations),
		CollectionComparisonSchemas:  len(d.ComparisonSchemas),
		CollectionComparisonBindings: len(d.ComparisonBindings),
		CollectionMovementTemplates:  len(d.MovementTemplates),
	}
}

// FindMovement returns the first movement with the given id.
func (d *Dataset) FindMovement(id string) (Movement, bool) {
	if d == nil {
		return Movement{}, false
	}
	for _, m := range d.Movements {
		if m.ID == id {
			return m, true
		}
	}
	return Movement{}, false
}

func asRecords[T Record](in []T) []Record {
	out := make([]Record, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func copyOf[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
