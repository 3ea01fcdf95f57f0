package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

func TestBuildAuthority(t *testing.T) {
	a := BuildAuthority(fixtureDataset(), "m1")

	require.Len(t, a.SourcesByLabel, 2)
	assert.Equal(t, SourceUsage{
		Label:           "Book",
		UsedByClaims:    []string{"c1"},
		UsedByRules:     []string{"r1"},
		UsedByPractices: []string{},
		UsedByEntities:  []string{"e5"},
		UsedByRelations: []string{},
	}, a.SourcesByLabel[0])
	assert.Equal(t, SourceUsage{
		Label:           "Tradition",
		UsedByClaims:    []string{"c1", "c2"},
		UsedByRules:     []string{},
		UsedByPractices: []string{"p1"},
		UsedByEntities:  []string{},
		UsedByRelations: []string{"rel4"},
	}, a.SourcesByLabel[1])

	require.Len(t, a.AuthorityEntities, 2)
	prophet := a.AuthorityEntities[0]
	assert.Equal(t, "e5", prophet.ID)
	assert.Equal(t, "Prophet", prophet.Name)
	assert.Nil(t, prophet.Kind)
	assert.Equal(t, []string{"c1"}, prophet.UsedAsSourceIn.Claims)
	assert.Equal(t, []string{"r1"}, prophet.UsedAsSourceIn.Rules)

	ghost := a.AuthorityEntities[1]
	assert.Equal(t, "ghost", ghost.ID)
	assert.Equal(t, "ghost", ghost.Name)
	assert.Equal(t, []string{"c1"}, ghost.UsedAsSourceIn.Claims)
	assert.Equal(t, []string{}, ghost.UsedAsSourceIn.Relations)
}

func TestBuildAuthority_GroupsCanonicallyEquivalentLabels(t *testing.T) {
	ds := entities.NewDataset()
	ds.Claims = []entities.Claim{
		{ID: "c1", MovementID: "m1", SourcesOfTruth: []string{"Café Scrolls"}},
		{ID: "c2", MovementID: "m1", SourcesOfTruth: []string{"Cafe\u0301 Scrolls"}},
		{ID: "c3", MovementID: "m1", SourcesOfTruth: []string{""}},
	}

	a := BuildAuthority(ds, "m1")

	require.Len(t, a.SourcesByLabel, 1)
	assert.Equal(t, "Café Scrolls", a.SourcesByLabel[0].Label)
	assert.Equal(t, []string{"c1", "c2"}, a.SourcesByLabel[0].UsedByClaims)
}

func TestBuildAuthority_Empty(t *testing.T) {
	a := BuildAuthority(entities.NewDataset(), "m1")

	assert.NotNil(t, a.SourcesByLabel)
	assert.Empty(t, a.SourcesByLabel)
	assert.Empty(t, a.AuthorityEntities)
}
