package services

import "github.com/ersonp/movement-core/internal/domain/entities"

const untitledBinding = "Untitled Binding"

// BlankBindingOptions override the defaults of CreateBlankBinding.
type BlankBindingOptions struct {
	ID          string
	Name        string
	Description *string
	Tags        []string
}

// CreateBlankBinding returns a binding with one empty cell per
// (dimension, movement) pair, ordered by dimension then movement. Dimensions
// without an id and empty movement ids are skipped.
func CreateBlankBinding(schema entities.ComparisonSchema, movementIDs []string, opts BlankBindingOptions) entities.ComparisonBinding {
	ids := make([]string, 0, len(movementIDs))
	for _, id := range movementIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}

	binding := entities.ComparisonBinding{
		ID:          opts.ID,
		SchemaID:    schema.ID,
		Name:        opts.Name,
		Description: opts.Description,
		Tags:        append([]string{}, opts.Tags...),
		MovementIDs: ids,
		Cells:       make([]entities.BindingCell, 0, len(schema.Dimensions)*len(ids)),
	}
	if binding.ID == "" {
		binding.ID = entities.NewID("cmp-binding-")
	}
	if binding.Name == "" {
		binding.Name = schema.Name
	}
	if binding.Name == "" {
		binding.Name = untitledBinding
	}
	if binding.Description == nil && schema.Description != nil && *schema.Description != "" {
		binding.Description = schema.Description
	}

	for _, dim := range schema.Dimensions {
		if dim.ID == "" {
			continue
		}
		for _, id := range ids {
			binding.Cells = append(binding.Cells, entities.BindingCell{DimensionID: dim.ID, MovementID: id})
		}
	}
	return binding
}

// GetBindingCell returns the cell for a (dimension, movement) pair.
func GetBindingCell(binding *entities.ComparisonBinding, dimensionID, movementID string) (entities.BindingCell, bool) {
	if binding == nil {
		return entities.BindingCell{}, false
	}
	for _, c := range binding.Cells {
		if c.DimensionID == dimensionID && c.MovementID == movementID {
			return c, true
		}
	}
	return entities.BindingCell{}, false
}

type cellUpdate struct {
	notes    *string
	notesSet bool
}

// CellOption adjusts a SetBindingValue call.
type CellOption func(*cellUpdate)

// WithNotes sets the cell notes. Passing nil clears them; leaving the option
// out keeps whatever notes the cell already had.
func WithNotes(notes *string) CellOption {
	return func(u *cellUpdate) {
		u.notes = notes
		u.notesSet = true
	}
}

// SetBindingValue returns a copy of binding with the (dimension, movement)
// cell set to value, creating the cell and tracking the movement if needed.
// The input binding is left untouched.
func SetBindingValue(binding *entities.ComparisonBinding, dimensionID, movementID string, value any, opts ...CellOption) entities.ComparisonBinding {
	var u cellUpdate
	for _, opt := range opts {
		opt(&u)
	}

	var out entities.ComparisonBinding
	if binding != nil {
		out = *binding
	}
	out.MovementIDs = append([]string{}, out.MovementIDs...)
	if !contains(out.MovementIDs, movementID) {
		out.MovementIDs = append(out.MovementIDs, movementID)
	}
	out.Cells = append([]entities.BindingCell{}, out.Cells...)
	if out.Tags != nil {
		out.Tags = append([]string{}, out.Tags...)
	}

	for i, c := range out.Cells {
		if c.DimensionID == dimensionID && c.MovementID == movementID {
			out.Cells[i].Value = value
			if u.notesSet {
				out.Cells[i].Notes = u.notes
			}
			return out
		}
	}

	out.Cells = append(out.Cells, entities.BindingCell{
		DimensionID: dimensionID,
		MovementID:  movementID,
		Value:       value,
		Notes:       u.notes,
	})
	return out
}

// DeriveAutoValue computes the value a dimension implies for a movement, or
// nil when the dimension is not derivable: source kind none, or a source
// collection that is missing or not movement-scoped.
func DeriveAutoValue(ds *entities.Dataset, dim entities.Dimension, movementID string) any {
	kind := dim.SourceKind
	if kind == "" {
		kind = entities.SourceNone
	}
	if kind != entities.SourceCollectionCount && kind != entities.SourceTaggedCollectionCount {
		return nil
	}

	collection, ok := entities.ParseCollection(dim.SourceCollection)
	if !ok {
		return nil
	}
	records, ok := ds.Records(collection)
	if !ok {
		return nil
	}

	count := 0
	for _, rec := range ScopedTo(records, movementID, dim.IncludeShared) {
		if kind == entities.SourceTaggedCollectionCount && len(dim.SourceFilterTags) > 0 &&
			!entities.HasAnyTag(rec.GetTags(), dim.SourceFilterTags) {
			continue
		}
		count++
	}
	return count
}

// MatrixMovement is a column header of the comparison matrix.
type MatrixMovement struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// MatrixCell is one resolved value.
type MatrixCell struct {
	MovementID string `json:"movementId"`
	Value      any    `json:"value"`
}

// MatrixRow holds every movement's value for one dimension.
type MatrixRow struct {
	DimensionID string             `json:"dimensionId"`
	Label       string             `json:"label"`
	Description *string            `json:"description"`
	ValueKind   entities.ValueKind `json:"valueKind"`
	Cells       []MatrixCell       `json:"cells"`
}

// ComparisonMatrix is a schema evaluated over a binding's movements.
type ComparisonMatrix struct {
	SchemaID   *string          `json:"schemaId"`
	SchemaName *string          `json:"schemaName"`
	Movements  []MatrixMovement `json:"movements"`
	Rows       []MatrixRow      `json:"rows"`
}

// BuildComparisonMatrix resolves every (dimension, movement) value of the
// binding. A non-nil explicit cell value always wins, zero and false
// included; otherwise the value is derived from the dataset. A nil schema
// gives no rows and a nil binding gives no columns.
func BuildComparisonMatrix(ds *entities.Dataset, schema *entities.ComparisonSchema, binding *entities.ComparisonBinding) *ComparisonMatrix {
	var ids []string
	if binding != nil {
		ids = binding.MovementIDs
	}
	var dims []entities.Dimension
	matrix := &ComparisonMatrix{}
	if schema != nil {
		dims = schema.Dimensions
		matrix.SchemaID = nonEmpty(schema.ID)
		matrix.SchemaName = nonEmpty(schema.Name)
	}

	movementIndex := BuildIndex(ds.Movements)
	matrix.Movements = make([]MatrixMovement, 0, len(ids))
	for _, id := range ids {
		m, ok := movementIndex[id]
		if !ok {
			matrix.Movements = append(matrix.Movements, MatrixMovement{ID: id, Name: id, ShortName: id})
			continue
		}
		short := m.ShortName
		if short == "" {
			short = m.Name
		}
		if short == "" {
			short = m.ID
		}
		matrix.Movements = append(matrix.Movements, MatrixMovement{ID: m.ID, Name: m.Name, ShortName: short})
	}

	matrix.Rows = make([]MatrixRow, 0, len(dims))
	for _, dim := range dims {
		row := MatrixRow{
			DimensionID: dim.ID,
			Label:       dim.Label,
			ValueKind:   dim.ValueKind,
			Cells:       make([]MatrixCell, 0, len(ids)),
		}
		if row.Label == "" {
			row.Label = dim.ID
		}
		if row.ValueKind == "" {
			row.ValueKind = entities.ValueText
		}
		if dim.Description != nil && *dim.Description != "" {
			row.Description = dim.Description
		}
		for _, id := range ids {
			var value any
			if cell, ok := GetBindingCell(binding, dim.ID, id); ok {
				value = cell.Value
			}
			if value == nil {
				value = DeriveAutoValue(ds, dim, id)
			}
			row.Cells = append(row.Cells, MatrixCell{MovementID: id, Value: value})
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
