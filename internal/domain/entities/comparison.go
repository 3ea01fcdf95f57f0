package entities

// SourceKind says how a comparison value can be derived from a dataset.
type SourceKind string

const (
	SourceNone                  SourceKind = "none"
	SourceCollectionCount       SourceKind = "collection_count"
	SourceTaggedCollectionCount SourceKind = "tagged_collection_count"
)

// ValueKind describes the shape of a comparison cell value.
type ValueKind string

const (
	ValueText         ValueKind = "text"
	ValueNumber       ValueKind = "number"
	ValueBoolean      ValueKind = "boolean"
	ValueTagList      ValueKind = "tag_list"
	ValueEntityRef    ValueKind = "entity_ref"
	ValueEntityList   ValueKind = "entity_list"
	ValuePracticeRef  ValueKind = "practice_ref"
	ValuePracticeList ValueKind = "practice_list"
	ValueEventRef     ValueKind = "event_ref"
	ValueRuleRef      ValueKind = "rule_ref"
	ValueClaimRef     ValueKind = "claim_ref"
	ValueCustomJSON   ValueKind = "custom_json"
)

// Dimension is one aspect along which movements are compared.
// The Source* fields are declarative hints; derivation lives in the comparison service.
type Dimension struct {
	ID               string     `json:"id"`
	Label            string     `json:"label,omitempty"`
	Description      *string    `json:"description,omitempty"`
	ValueKind        ValueKind  `json:"valueKind,omitempty"`
	SourceKind       SourceKind `json:"sourceKind,omitempty"`
	SourceCollection string     `json:"sourceCollection,omitempty"`
	SourceFilterTags []string   `json:"sourceFilterTags,omitempty"`
	IncludeShared    bool       `json:"includeShared,omitempty"`
}

// ComparisonSchema is a named set of dimensions.
type ComparisonSchema struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Tags        []string    `json:"tags"`
	Dimensions  []Dimension `json:"dimensions"`
}

func (s ComparisonSchema) GetID() string { return s.ID }

// BindingCell holds an explicit value for one (dimension, movement) pair.
// A nil Value means "derive automatically".
type BindingCell struct {
	DimensionID string  `json:"dimensionId"`
	MovementID  string  `json:"movementId"`
	Value       any     `json:"value"`
	Notes       *string `json:"notes"`
}

// ComparisonBinding is the explicit value matrix of a schema over a set of movements.
type ComparisonBinding struct {
	ID          string        `json:"id"`
	SchemaID    string        `json:"schemaId"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Tags        []string      `json:"tags"`
	MovementIDs []string      `json:"movementIds"`
	Cells       []BindingCell `json:"cells"`
}

func (b ComparisonBinding) GetID() string { return b.ID }
