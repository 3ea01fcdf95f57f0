package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_Normalize(t *testing.T) {
	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(`{"movements":[{"id":"m1"}]}`), &ds))
	ds.Normalize()

	assert.Len(t, ds.Movements, 1)
	assert.NotNil(t, ds.Entities)
	assert.NotNil(t, ds.MovementTemplates)

	data, err := json.Marshal(&ds)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"relations":[]`)
}

func TestDataset_CloneDoesNotAlias(t *testing.T) {
	ds := NewDataset()
	ds.Entities = append(ds.Entities, Entity{ID: "e1", Name: "One"})

	clone := ds.Clone()
	clone.Entities[0].Name = "Changed"
	clone.Entities = append(clone.Entities, Entity{ID: "e2"})

	assert.Equal(t, "One", ds.Entities[0].Name)
	assert.Len(t, ds.Entities, 1)
}

func TestDataset_CloneNil(t *testing.T) {
	var ds *Dataset
	clone := ds.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone.Movements)
}

func TestDataset_Records(t *testing.T) {
	ds := NewDataset()
	ds.Claims = []Claim{{ID: "c1", MovementID: "m1", Tags: []string{"x"}}}

	tests := []struct {
		name       string
		collection Collection
		wantOK     bool
		wantLen    int
	}{
		{name: "scoped collection", collection: CollectionClaims, wantOK: true, wantLen: 1},
		{name: "empty scoped collection", collection: CollectionEntities, wantOK: true, wantLen: 0},
		{name: "movements are not scoped", collection: CollectionMovements, wantOK: false},
		{name: "unknown", collection: Collection("bogus"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, ok := ds.Records(tt.collection)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, records, tt.wantLen)
		})
	}
}

func TestDataset_FindMovement(t *testing.T) {
	ds := NewDataset()
	ds.Movements = []Movement{{ID: "m1", Name: "First"}, {ID: "m1", Name: "Second"}}

	m, ok := ds.FindMovement("m1")
	require.True(t, ok)
	assert.Equal(t, "First", m.Name)

	_, ok = ds.FindMovement("missing")
	assert.False(t, ok)
}

func TestParseCollection(t *testing.T) {
	c, ok := ParseCollection("textCollections")
	assert.True(t, ok)
	assert.Equal(t, CollectionTextCollections, c)
	assert.True(t, c.IsMovementScoped())

	c, ok = ParseCollection("comparisonSchemas")
	assert.True(t, ok)
	assert.False(t, c.IsMovementScoped())

	_, ok = ParseCollection("religions")
	assert.False(t, ok)
}

func TestNewID(t *testing.T) {
	a := NewID("ent-")
	b := NewID("ent-")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^ent-[0-9a-f-]{36}$`, a)
	assert.Regexp(t, `^id-`, NewID(""))
}

func TestDataset_Counts(t *testing.T) {
	ds := NewDataset()
	ds.Movements = []Movement{{ID: "m1"}}
	ds.Entities = []Entity{{ID: "e1"}, {ID: "e2"}}

	counts := ds.Counts()
	assert.Len(t, counts, len(AllCollections))
	assert.Equal(t, 1, counts[CollectionMovements])
	assert.Equal(t, 2, counts[CollectionEntities])
	assert.Equal(t, 0, counts[CollectionMovementTemplates])

	var nilDS *Dataset
	assert.Empty(t, nilDS.Counts())
}
