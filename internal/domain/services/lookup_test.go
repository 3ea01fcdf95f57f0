package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

func TestBuildIndex(t *testing.T) {
	records := []entities.Entity{
		{ID: "e1", Name: "first"},
		{ID: "", Name: "no id"},
		{ID: "e2", Name: "second"},
		{ID: "e1", Name: "duplicate"},
	}

	index := BuildIndex(records)

	assert.Len(t, index, 2)
	assert.Equal(t, "first", index["e1"].Name)
	assert.Equal(t, "second", index["e2"].Name)
	assert.NotContains(t, index, "")
}

func TestBuildIndex_Empty(t *testing.T) {
	assert.Empty(t, BuildIndex[entities.Entity](nil))
}

func TestScopedTo(t *testing.T) {
	ds := fixtureDataset()

	tests := []struct {
		name          string
		ownerID       string
		includeShared bool
		want          []string
	}{
		{name: "owned only", ownerID: "m1", want: []string{"e1", "e2", "e3", "e4", "e5"}},
		{name: "owned and shared", ownerID: "m1", includeShared: true, want: []string{"e1", "e2", "e3", "e4", "e5", "e6"}},
		{name: "other movement", ownerID: "m2", want: []string{"e7"}},
		{name: "unknown movement", ownerID: "nope", want: []string{}},
		{name: "empty owner with shared", ownerID: "", includeShared: true, want: []string{"e6"}},
		{name: "empty owner without shared", ownerID: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScopedTo(ds.Entities, tt.ownerID, tt.includeShared)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestScopedTo_SharedIsSuperset(t *testing.T) {
	ds := fixtureDataset()

	owned := ScopedTo(ds.Claims, "m1", false)
	withShared := ScopedTo(ds.Claims, "m1", true)

	for _, c := range owned {
		assert.Equal(t, entities.OwnerID("m1"), c.MovementID)
		assert.Contains(t, withShared, c)
	}
	for _, c := range withShared {
		assert.True(t, c.MovementID == "m1" || c.MovementID.IsShared())
	}
	assert.Len(t, withShared, len(owned)+1)
}
