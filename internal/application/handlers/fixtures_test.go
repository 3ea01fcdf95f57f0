package handlers

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ersonp/movement-core/internal/domain/entities"
	"github.com/ersonp/movement-core/internal/domain/mocks"
	"github.com/ersonp/movement-core/internal/infrastructure/logger"
)

func strPtr(s string) *string { return &s }

// observedLogger returns a debug-level logger whose entries can be inspected.
func observedLogger(t *testing.T) (*logger.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

// seededStore returns a mock store holding handlerDataset under the default name.
func seededStore() *mocks.SnapshotStore {
	store := mocks.NewSnapshotStore()
	store.Snapshots[DefaultSnapshot] = handlerDataset()
	return store
}

func handlerDataset() *entities.Dataset {
	ds := entities.NewDataset()
	ds.Movements = []entities.Movement{
		{ID: "m1", Name: "Alpha", ShortName: "A", Tags: []string{"solar"}},
		{ID: "m2", Name: "Beta", Tags: []string{}},
	}
	ds.TextCollections = []entities.TextCollection{
		{ID: "tc1", MovementID: "m1", Name: "Canon", RootTextIDs: []string{"t1"}},
	}
	ds.Texts = []entities.TextNode{
		{ID: "t1", MovementID: "m1", Level: entities.LevelWork, Title: "Book of Dawn"},
		{ID: "t2", MovementID: "m1", ParentID: strPtr("t1"), Level: entities.LevelSection, Title: "Morning",
			MentionsEntityIDs: []string{"e1"}},
	}
	ds.Entities = []entities.Entity{
		{ID: "e1", MovementID: "m1", Name: "Sun", Kind: strPtr("deity"), Tags: []string{"deity"}},
		{ID: "e2", MovementID: "m1", Name: "Moon", Kind: strPtr("deity"), Tags: []string{"deity"}},
		{ID: "e3", MovementID: "m2", Name: "Sea", Kind: strPtr("place")},
	}
	ds.Practices = []entities.Practice{
		{ID: "p1", MovementID: "m1", Name: "Dawn Prayer", Kind: strPtr("ritual"), Frequency: "daily",
			InvolvedEntityIDs: []string{"e1"}},
	}
	ds.Events = []entities.Event{
		{ID: "ev1", MovementID: "m1", Name: "Solstice", Recurrence: strPtr("yearly"),
			MainPracticeIDs: []string{"p1"}},
	}
	ds.Rules = []entities.Rule{
		{ID: "r1", MovementID: "m1", ShortText: "Greet the sun", Kind: "must_do", Domain: []string{"daily"},
			RelatedPracticeIDs: []string{"p1"}},
	}
	ds.Claims = []entities.Claim{
		{ID: "c1", MovementID: "m1", Text: "The sun rises", Category: strPtr("cosmology"),
			AboutEntityIDs: []string{"e1"}, SourcesOfTruth: []string{"Scripture"}},
	}
	ds.Media = []entities.MediaAsset{
		{ID: "md1", MovementID: "m1", Kind: "image", Title: "Sunrise", LinkedEntityIDs: []string{"e1"}},
	}
	ds.Notes = []entities.Note{
		{ID: "n1", MovementID: "m1", TargetType: entities.TargetEntity, TargetID: "e1", Body: "bright"},
	}
	ds.Relations = []entities.Relation{
		{ID: "rel1", MovementID: "m1", FromEntityID: "e1", ToEntityID: "e2", RelationType: "sibling_of"},
	}
	ds.ComparisonSchemas = []entities.ComparisonSchema{{
		ID: "s1", Name: "Basics",
		Dimensions: []entities.Dimension{
			{ID: "d-ent", Label: "Entities", ValueKind: entities.ValueNumber,
				SourceKind: entities.SourceCollectionCount, SourceCollection: "entities"},
			{ID: "d-core", Label: "Core idea"},
			{ID: "d-bad", SourceKind: entities.SourceCollectionCount, SourceCollection: "movements"},
		},
	}}
	ds.ComparisonBindings = []entities.ComparisonBinding{{
		ID: "b1", SchemaID: "s1", Name: "Alpha vs Beta",
		MovementIDs: []string{"m1", "m2"},
		Cells:       []entities.BindingCell{},
	}}
	ds.MovementTemplates = []entities.MovementTemplate{{
		ID: "tpl1", Name: "Skeleton", SourceMovementID: strPtr("m1"),
		Rules: []entities.TemplateRule{
			{Collection: "entities", MatchTags: []string{"deity"}, CopyMode: entities.CopyStructureOnly},
			{Collection: "comparisonSchemas", CopyMode: entities.CopyAllFields},
		},
	}}
	return ds
}
