package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

func TestBuildCalendar(t *testing.T) {
	tests := []struct {
		name   string
		filter []string
		want   []string
	}{
		{name: "no filter", want: []string{"ev1", "ev2", "ev3"}},
		{name: "yearly", filter: []string{"yearly"}, want: []string{"ev1"}},
		{name: "several recurrences", filter: []string{"weekly", "monthly"}, want: []string{"ev2"}},
		{name: "no match", filter: []string{"daily"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := BuildCalendar(fixtureDataset(), CalendarRequest{MovementID: "m1", RecurrenceFilter: tt.filter})
			ids := make([]string, 0)
			for _, e := range cal.Events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestBuildCalendar_Card(t *testing.T) {
	cal := BuildCalendar(fixtureDataset(), CalendarRequest{MovementID: "m1", RecurrenceFilter: []string{"yearly"}})
	require.Len(t, cal.Events, 1)

	card := cal.Events[0]
	assert.Equal(t, "Solstice", card.TimingRule)
	assert.Equal(t, []PracticeRef{{ID: "p1", Name: "Prayer", Kind: strPtr("ritual")}}, card.MainPractices)
	assert.Equal(t, []EntityRef{{ID: "e1", Name: "Sun God", Kind: strPtr("deity")}}, card.MainEntities)
	assert.Equal(t, []TextRef{{ID: "t2", Title: "Chapter", Level: "section"}}, card.Readings)
	assert.Len(t, card.SupportingClaims, 1)
}

func TestBuildClaimsExplorer(t *testing.T) {
	tests := []struct {
		name string
		req  ClaimsRequest
		want []string
	}{
		{name: "owned and shared", req: ClaimsRequest{MovementID: "m1"}, want: []string{"c1", "c2"}},
		{name: "category drops uncategorised", req: ClaimsRequest{MovementID: "m1", CategoryFilter: []string{"cosmology"}}, want: []string{"c1"}},
		{name: "about entity", req: ClaimsRequest{MovementID: "m1", EntityIDFilter: "e6"}, want: []string{"c2"}},
		{name: "other movement", req: ClaimsRequest{MovementID: "m2"}, want: []string{"c2", "c3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := BuildClaimsExplorer(fixtureDataset(), tt.req)
			ids := make([]string, 0)
			for _, c := range ex.Claims {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestBuildClaimsExplorer_Row(t *testing.T) {
	ex := BuildClaimsExplorer(fixtureDataset(), ClaimsRequest{MovementID: "m1", CategoryFilter: []string{"cosmology"}})
	require.Len(t, ex.Claims, 1)

	row := ex.Claims[0]
	assert.Equal(t, []EntityRef{{ID: "e1", Name: "Sun God", Kind: strPtr("deity")}}, row.AboutEntities)
	assert.Equal(t, []TextRef{{ID: "t2", Title: "Chapter", Level: "section"}}, row.SourceTexts)
	assert.Equal(t, []string{"Book", "Tradition", "Book"}, row.SourcesOfTruth)
	assert.Equal(t, []string{}, row.Tags)
}

func TestBuildRuleExplorer(t *testing.T) {
	tests := []struct {
		name string
		req  RulesRequest
		want []string
	}{
		{name: "all", req: RulesRequest{MovementID: "m1"}, want: []string{"r1", "r2"}},
		{name: "kind", req: RulesRequest{MovementID: "m1", KindFilter: []string{"must_do"}}, want: []string{"r1"}},
		{name: "domain overlap", req: RulesRequest{MovementID: "m1", DomainFilter: []string{"ethics", "diet"}}, want: []string{"r1", "r2"}},
		{name: "narrow domain", req: RulesRequest{MovementID: "m1", DomainFilter: []string{"ritual"}}, want: []string{"r1"}},
		{name: "no rules elsewhere", req: RulesRequest{MovementID: "m2"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := BuildRuleExplorer(fixtureDataset(), tt.req)
			ids := make([]string, 0)
			for _, r := range ex.Rules {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestBuildRuleExplorer_Row(t *testing.T) {
	ex := BuildRuleExplorer(fixtureDataset(), RulesRequest{MovementID: "m1", KindFilter: []string{"must_do"}})
	require.Len(t, ex.Rules, 1)

	row := ex.Rules[0]
	assert.Equal(t, []TextRef{{ID: "t2", Title: "Chapter", Level: "section"}}, row.SupportingTexts)
	assert.Equal(t, []PracticeRef{{ID: "p1", Name: "Prayer", Kind: strPtr("ritual")}}, row.RelatedPractices)
	assert.Equal(t, []string{}, row.AppliesTo)
}

func TestBuildMediaGallery(t *testing.T) {
	tests := []struct {
		name string
		req  MediaRequest
		want []string
	}{
		{name: "owned and shared", req: MediaRequest{MovementID: "m1"}, want: []string{"md1", "md2"}},
		{name: "entity", req: MediaRequest{MovementID: "m1", EntityIDFilter: "e1"}, want: []string{"md1"}},
		{name: "entity and practice", req: MediaRequest{MovementID: "m1", EntityIDFilter: "e1", PracticeIDFilter: "p1"}, want: []string{"md1"}},
		{name: "filters must all hold", req: MediaRequest{MovementID: "m1", EntityIDFilter: "e1", EventIDFilter: "ev1"}, want: []string{}},
		{name: "text", req: MediaRequest{MovementID: "m1", TextIDFilter: "t2"}, want: []string{"md1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildMediaGallery(fixtureDataset(), tt.req)
			ids := make([]string, 0)
			for _, m := range g.Items {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestBuildMediaGallery_Item(t *testing.T) {
	g := BuildMediaGallery(fixtureDataset(), MediaRequest{MovementID: "m1", EntityIDFilter: "e1"})
	require.Len(t, g.Items, 1)

	item := g.Items[0]
	assert.Equal(t, []NamedRef{{ID: "e1", Name: "Sun God"}}, item.Entities)
	assert.Equal(t, []NamedRef{{ID: "p1", Name: "Prayer"}}, item.Practices)
	assert.Equal(t, []NamedRef{}, item.Events)
	assert.Equal(t, []TextLink{{ID: "t2", Title: "Chapter"}}, item.Texts)
}

func TestBuildRelationExplorer(t *testing.T) {
	ds := fixtureDataset()

	all := BuildRelationExplorer(ds, RelationsRequest{MovementID: "m1"})
	assert.Len(t, all.Relations, 5)

	byType := BuildRelationExplorer(ds, RelationsRequest{MovementID: "m1", RelationTypeFilter: []string{"knows"}})
	require.Len(t, byType.Relations, 1)
	assert.Equal(t, EntityRef{ID: "e5", Name: "Prophet"}, byType.Relations[0].From)
	assert.Equal(t, EntityRef{ID: "ghost", Name: "ghost"}, byType.Relations[0].To)

	byEntity := BuildRelationExplorer(ds, RelationsRequest{MovementID: "m1", EntityIDFilter: "e3"})
	require.Len(t, byEntity.Relations, 2)
	assert.Equal(t, "rel2", byEntity.Relations[0].ID)
	assert.Equal(t, []ClaimLink{{ID: "c1", Text: "The sun rises"}}, byEntity.Relations[0].SupportingClaims)
	assert.Equal(t, "rel4", byEntity.Relations[1].ID)
	assert.Equal(t, []string{"Tradition"}, byEntity.Relations[1].SourcesOfTruth)
}

func TestBuildNotes(t *testing.T) {
	ds := fixtureDataset()

	view := BuildNotes(ds, NotesRequest{MovementID: "m1"})
	labels := make(map[string]string)
	for _, n := range view.Notes {
		labels[n.ID] = n.TargetLabel
	}
	assert.Equal(t, map[string]string{
		"n1": "Sun God",
		"n2": "c1",
		"n3": "Pray daily",
		"n4": "ghost",
	}, labels)

	byType := BuildNotes(ds, NotesRequest{MovementID: "m1", TargetTypeFilter: entities.TargetEntity})
	require.Len(t, byType.Notes, 2)
	assert.Equal(t, "n1", byType.Notes[0].ID)
	assert.Equal(t, "n4", byType.Notes[1].ID)

	byID := BuildNotes(ds, NotesRequest{MovementID: "m1", TargetIDFilter: "c1"})
	require.Len(t, byID.Notes, 1)
	assert.Equal(t, "n2", byID.Notes[0].ID)
}

func TestTargetLabel_UnknownKind(t *testing.T) {
	resolvers := targetResolvers(fixtureDataset())

	assert.Equal(t, "x1", targetLabel(resolvers, entities.NoteTarget{Kind: "Bogus", ID: "x1"}))
	assert.Equal(t, "Chapter", targetLabel(resolvers, entities.NoteTarget{Kind: entities.TargetTextNode, ID: "t2"}))
	assert.Equal(t, "Sun icon", targetLabel(resolvers, entities.NoteTarget{Kind: entities.TargetMediaAsset, ID: "md1"}))
}
