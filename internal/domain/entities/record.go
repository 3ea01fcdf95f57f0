// Package entities contains core domain data structures.
package entities

import (
	"encoding/json"
	"fmt"
)

// OwnerID references the movement that owns a record.
// The zero value marks the record as shared across all movements.
type OwnerID string

// IsShared reports whether the record has no owning movement.
func (o OwnerID) IsShared() bool {
	return o == ""
}

// MarshalJSON encodes a shared owner as null.
func (o OwnerID) MarshalJSON() ([]byte, error) {
	if o == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(o))
}

// UnmarshalJSON accepts a string or null.
func (o *OwnerID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding owner id: %w", err)
	}
	*o = OwnerID(s)
	return nil
}

// Identified is anything with a record id.
type Identified interface {
	GetID() string
}

// Record is implemented by every member of a movement-scoped collection.
type Record interface {
	Identified
	GetOwner() OwnerID
	GetTags() []string
}

// HasAnyTag reports whether tags contains at least one of want.
// An empty want matches nothing; callers decide what an empty filter means.
func HasAnyTag(tags, want []string) bool {
	for _, w := range want {
		for _, t := range tags {
			if t == w {
				return true
			}
		}
	}
	return false
}
