package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

func skeletonTemplate() entities.MovementTemplate {
	return entities.MovementTemplate{
		ID:               "tmpl1",
		Name:             "Skeleton",
		SourceMovementID: strPtr("m1"),
		Rules: []entities.TemplateRule{
			{Collection: "entities", CopyMode: entities.CopyStructureOnly},
			{Collection: "practices", MatchTags: []string{"daily"}},
			{Collection: "claims", CopyMode: entities.CopyReferenceOnly},
			{Collection: "rules", CopyMode: entities.CopyIgnore},
			{Collection: "bogus", CopyMode: entities.CopyAllFields},
		},
	}
}

func TestApplyTemplate(t *testing.T) {
	fixedIDs(t)
	ds := fixtureDataset()

	res, err := ApplyTemplate(ds, skeletonTemplate(), TemplateOptions{ExtraTags: []string{"draft", "demo"}})
	require.NoError(t, err)

	assert.Equal(t, fixtureDataset(), ds, "input must not change")
	assert.Equal(t, "mov-template-1", res.MovementID)
	assert.Equal(t, []string{"bogus"}, res.Skipped)
	assert.Equal(t, map[entities.Collection]int{entities.CollectionEntities: 5, entities.CollectionPractices: 1}, res.Cloned)

	out := res.Dataset
	require.Len(t, out.Movements, 3)
	movement := out.Movements[2]
	assert.Equal(t, entities.Movement{
		ID:        "mov-template-1",
		Name:      "Test Movement",
		ShortName: "TM",
		Summary:   "A test",
		Tags:      []string{"demo", "draft"},
	}, movement)

	require.Len(t, out.Entities, len(ds.Entities)+5)
	for i, clone := range out.Entities[len(ds.Entities):] {
		source := ds.Entities[i]
		assert.NotEqual(t, source.ID, clone.ID)
		assert.Regexp(t, `^ent-tmpl-`, clone.ID)
		assert.Equal(t, entities.OwnerID("mov-template-1"), clone.MovementID)
		assert.Equal(t, source.Name, clone.Name)
		assert.Equal(t, "", clone.Summary)
		assert.Equal(t, []string{}, clone.SourcesOfTruth)
		assert.Equal(t, []string{}, clone.SourceEntityIDs)
		if source.Notes == nil {
			assert.Nil(t, clone.Notes)
		} else {
			require.NotNil(t, clone.Notes)
			assert.Equal(t, "", *clone.Notes)
		}
	}
	assert.Equal(t, []string{"Book"}, ds.Entities[4].SourcesOfTruth)

	require.Len(t, out.Practices, 3)
	practice := out.Practices[2]
	assert.Equal(t, "pra-tmpl-7", practice.ID)
	assert.Equal(t, "Prayer", practice.Name)
	assert.Equal(t, []string{"Tradition"}, practice.SourcesOfTruth, "copy_all_fields keeps everything")

	assert.Len(t, out.Claims, len(ds.Claims))
	assert.Len(t, out.Rules, len(ds.Rules))
	assert.Equal(t, ds.Relations, out.Relations)
}

func TestApplyTemplate_Options(t *testing.T) {
	ds := fixtureDataset()
	tmpl := entities.MovementTemplate{Rules: []entities.TemplateRule{{
		Collection:    "texts",
		CopyMode:      entities.CopyStructureOnly,
		MatchTags:     []string{"none-match"},
		FieldsToClear: []string{"title", "mentionsEntityIds", "notAField"},
	}, {
		Collection:    "texts",
		CopyMode:      entities.CopyStructureOnly,
		FieldsToClear: []string{"title", "mentionsEntityIds", "parentId"},
	}}}

	res, err := ApplyTemplate(ds, tmpl, TemplateOptions{
		SourceMovementID: "m1",
		NewMovementID:    "new",
		Name:             "Fresh",
		ShortName:        "F",
		Summary:          "Copied",
	})
	require.NoError(t, err)

	movement := res.Dataset.Movements[len(res.Dataset.Movements)-1]
	assert.Equal(t, "new", movement.ID)
	assert.Equal(t, "Fresh", movement.Name)
	assert.Equal(t, "F", movement.ShortName)
	assert.Equal(t, "Copied", movement.Summary)

	clones := res.Dataset.Texts[len(ds.Texts):]
	require.Len(t, clones, 3)
	for _, c := range clones {
		assert.Equal(t, entities.OwnerID("new"), c.MovementID)
		assert.Equal(t, "", c.Title)
		assert.Equal(t, "", c.Content)
		assert.Nil(t, c.ParentID)
		assert.Equal(t, []string{}, c.MentionsEntityIDs)
		assert.NotEmpty(t, c.Level)
	}
}

func TestApplyTemplate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    entities.MovementTemplate
		opts    TemplateOptions
		wantErr error
	}{
		{name: "no source", tmpl: entities.MovementTemplate{}, wantErr: ErrSourceMovementRequired},
		{name: "unknown source from template", tmpl: entities.MovementTemplate{SourceMovementID: strPtr("nope")}, wantErr: ErrSourceMovementNotFound},
		{
			name:    "option overrides template",
			tmpl:    entities.MovementTemplate{SourceMovementID: strPtr("m1")},
			opts:    TemplateOptions{SourceMovementID: "nope"},
			wantErr: ErrSourceMovementNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := fixtureDataset()
			res, err := ApplyTemplate(ds, tt.tmpl, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
			assert.Equal(t, fixtureDataset(), ds)
		})
	}
}

func TestCloneRecord(t *testing.T) {
	src := entities.Claim{
		ID: "c1", MovementID: "m1", Text: "x", Category: strPtr("cat"),
		Notes: strPtr("n"), SourcesOfTruth: []string{"a"}, Tags: []string{"t"},
	}

	clone := cloneRecord(src, "c2", "m2", []string{"notes", "category", "sourcesOfTruth", "text", "missing"})

	assert.Equal(t, entities.Claim{
		ID: "c2", MovementID: "m2", Category: strPtr(""), Notes: strPtr(""),
		SourcesOfTruth: []string{}, Tags: []string{"t"},
	}, clone)
	assert.Equal(t, "c1", src.ID)
	assert.Equal(t, []string{"a"}, src.SourcesOfTruth)
	assert.Equal(t, "n", *src.Notes, "source notes are not shared with the clone")
}

func TestCloneRecord_OptionalStrings(t *testing.T) {
	tests := []struct {
		name      string
		notes     *string
		wantNotes *string
	}{
		{name: "set notes become empty", notes: strPtr("secret"), wantNotes: strPtr("")},
		{name: "empty notes stay empty", notes: strPtr(""), wantNotes: strPtr("")},
		{name: "unset notes stay unset", notes: nil, wantNotes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := entities.Entity{ID: "e1", MovementID: "m1", Name: "Sun", Notes: tt.notes}

			clone := cloneRecord(src, "e2", "m2", []string{"notes"})

			assert.Equal(t, tt.wantNotes, clone.Notes)
			assert.Equal(t, "Sun", clone.Name)
		})
	}
}

func TestUnion(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, union([]string{"a", "b", "a"}, nil, []string{"c", "b"}))
	assert.Equal(t, []string{}, union())
}
