package services

import (
	"strconv"
	"testing"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

// fixtureDataset is a small movement with one of everything, a second
// movement and a few shared records.
func fixtureDataset() *entities.Dataset {
	ds := entities.NewDataset()
	ds.Movements = []entities.Movement{
		{ID: "m1", Name: "Test Movement", ShortName: "TM", Summary: "A test", Tags: []string{"demo"}},
		{ID: "m2", Name: "Other"},
	}
	ds.TextCollections = []entities.TextCollection{
		{ID: "tc1", MovementID: "m1", Name: "Canon", RootTextIDs: []string{"t2", "t1"}},
		{ID: "tc2", MovementID: "m1", Name: "Loose"},
	}
	ds.Texts = []entities.TextNode{
		{ID: "t1", MovementID: "m1", Level: entities.LevelWork, Title: "Book", Label: "1"},
		{ID: "t2", MovementID: "m1", ParentID: strPtr("t1"), Level: entities.LevelSection, Title: "Chapter", Label: "1.1",
			Content: "In the beginning", MentionsEntityIDs: []string{"e1", "ghost"}},
		{ID: "t3", MovementID: "m1", ParentID: strPtr("t2"), Level: entities.LevelPassage, Title: "Verse", Label: "1.1.1",
			Content: "   ", MentionsEntityIDs: []string{"e2"}},
		{ID: "t4", MovementID: "m2", Level: entities.LevelWork, Title: "Other book"},
	}
	ds.Entities = []entities.Entity{
		{ID: "e1", MovementID: "m1", Name: "Sun God", Kind: strPtr("deity"), Tags: []string{"deity", "sky"}},
		{ID: "e2", MovementID: "m1", Name: "Moon", Kind: strPtr("deity"), Tags: []string{"deity"}},
		{ID: "e3", MovementID: "m1", Name: "River", Kind: strPtr("deity"), Tags: []string{"deity", "water", "sacred"}},
		{ID: "e4", MovementID: "m1", Name: "Temple", Kind: strPtr("place")},
		{ID: "e5", MovementID: "m1", Name: "Prophet", Tags: []string{"person"}, SourcesOfTruth: []string{"Book"}},
		{ID: "e6", Name: "Universal Spirit", Kind: strPtr("deity"), Tags: []string{"deity"}},
		{ID: "e7", MovementID: "m2", Name: "Stranger"},
	}
	ds.Practices = []entities.Practice{
		{ID: "p1", MovementID: "m1", Name: "Prayer", Kind: strPtr("ritual"), Frequency: "daily", Tags: []string{"daily"},
			InvolvedEntityIDs: []string{"e1", "ghost"}, InstructionsTextIDs: []string{"t2"}, SupportingClaimIDs: []string{"c1"},
			SourcesOfTruth: []string{"Tradition"}},
		{ID: "p2", MovementID: "m1", Name: "Fast", Frequency: "yearly"},
	}
	ds.Events = []entities.Event{
		{ID: "ev1", MovementID: "m1", Name: "Festival", Recurrence: strPtr("yearly"), TimingRule: "Solstice",
			MainPracticeIDs: []string{"p1"}, MainEntityIDs: []string{"e1"}, ReadingTextIDs: []string{"t2"},
			SupportingClaimIDs: []string{"c1"}, Tags: []string{"sun"}},
		{ID: "ev2", MovementID: "m1", Name: "Gathering", Recurrence: strPtr("weekly")},
		{ID: "ev3", MovementID: "m1", Name: "Someday"},
	}
	ds.Rules = []entities.Rule{
		{ID: "r1", MovementID: "m1", ShortText: "Pray daily", Kind: "must_do", Domain: []string{"ritual", "ethics"},
			SupportingTextIDs: []string{"t2"}, SupportingClaimIDs: []string{"c1"}, RelatedPracticeIDs: []string{"p1"},
			SourcesOfTruth: []string{"Book"}, SourceEntityIDs: []string{"e5"}},
		{ID: "r2", MovementID: "m1", ShortText: "No lying", Kind: "must_not_do", Domain: []string{"ethics"}},
	}
	ds.Claims = []entities.Claim{
		{ID: "c1", MovementID: "m1", Text: "The sun rises", Category: strPtr("cosmology"),
			AboutEntityIDs: []string{"e1"}, SourceTextIDs: []string{"t2"},
			SourcesOfTruth: []string{"Book", "Tradition", "Book"}, SourceEntityIDs: []string{"e5", "ghost"}},
		{ID: "c2", Text: "All is one", AboutEntityIDs: []string{"e6"}, SourcesOfTruth: []string{"Tradition"}},
		{ID: "c3", MovementID: "m2", Text: "Elsewhere"},
	}
	ds.Media = []entities.MediaAsset{
		{ID: "md1", MovementID: "m1", Kind: "image", URI: "sun.png", Title: "Sun icon",
			LinkedEntityIDs: []string{"e1"}, LinkedPracticeIDs: []string{"p1"}, LinkedTextIDs: []string{"t2"}},
		{ID: "md2", Kind: "audio", URI: "chant.mp3", Title: "Chant", LinkedEntityIDs: []string{"e6"}},
	}
	ds.Notes = []entities.Note{
		{ID: "n1", MovementID: "m1", TargetType: entities.TargetEntity, TargetID: "e1", Body: "Check name"},
		{ID: "n2", MovementID: "m1", TargetType: entities.TargetClaim, TargetID: "c1", Body: "Source?"},
		{ID: "n3", TargetType: entities.TargetRule, TargetID: "r1", Body: "Shared note"},
		{ID: "n4", MovementID: "m1", TargetType: entities.TargetEntity, TargetID: "ghost", Body: "Dangling"},
	}
	ds.Relations = []entities.Relation{
		{ID: "rel1", MovementID: "m1", FromEntityID: "e1", ToEntityID: "e2", RelationType: "sibling_of"},
		{ID: "rel2", MovementID: "m1", FromEntityID: "e1", ToEntityID: "e3", RelationType: "parent_of",
			SupportingClaimIDs: []string{"c1"}},
		{ID: "rel3", MovementID: "m1", FromEntityID: "e4", ToEntityID: "e1", RelationType: "houses"},
		{ID: "rel4", MovementID: "m1", FromEntityID: "e3", ToEntityID: "e5", RelationType: "guards",
			SourcesOfTruth: []string{"Tradition"}},
		{ID: "rel5", MovementID: "m1", FromEntityID: "e5", ToEntityID: "ghost", RelationType: "knows"},
	}
	return ds
}

// fixedIDs makes entities.NewID deterministic for the duration of a test.
func fixedIDs(t *testing.T) {
	t.Helper()
	prev := entities.NewID
	n := 0
	entities.NewID = func(prefix string) string {
		n++
		return prefix + strconv.Itoa(n)
	}
	t.Cleanup(func() { entities.NewID = prev })
}
