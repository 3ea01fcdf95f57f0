package services

import (
	"golang.org/x/text/unicode/norm"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// SourceUsage lists the records citing one source-of-truth label.
type SourceUsage struct {
	Label           string   `json:"label"`
	UsedByClaims    []string `json:"usedByClaims"`
	UsedByRules     []string `json:"usedByRules"`
	UsedByPractices []string `json:"usedByPractices"`
	UsedByEntities  []string `json:"usedByEntities"`
	UsedByRelations []string `json:"usedByRelations"`
}

// SourceRecords groups citing record ids by collection.
type SourceRecords struct {
	Claims    []string `json:"claims"`
	Rules     []string `json:"rules"`
	Practices []string `json:"practices"`
	Entities  []string `json:"entities"`
	Relations []string `json:"relations"`
}

// AuthorityEntity is an entity cited as an authority.
type AuthorityEntity struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Kind           *string       `json:"kind"`
	UsedAsSourceIn SourceRecords `json:"usedAsSourceIn"`
}

// Authority is the inverted source-of-truth index of a movement.
type Authority struct {
	SourcesByLabel    []SourceUsage     `json:"sourcesByLabel"`
	AuthorityEntities []AuthorityEntity `json:"authorityEntities"`
}

// sourced is the part of a record that cites authorities.
type sourced struct {
	id       string
	labels   []string
	entities []string
}

// BuildAuthority inverts sourcesOfTruth and sourceEntityIds across claims,
// rules, practices, entities and relations. Claims and relations include
// shared records. Labels are grouped by their NFC form and displayed with the
// first spelling seen. Both lists keep first-use order.
func BuildAuthority(ds *entities.Dataset, movementID string) *Authority {
	claims := project(ScopedTo(ds.Claims, movementID, true), func(c entities.Claim) sourced {
		return sourced{c.ID, c.SourcesOfTruth, c.SourceEntityIDs}
	})
	rules := project(ScopedTo(ds.Rules, movementID, false), func(r entities.Rule) sourced {
		return sourced{r.ID, r.SourcesOfTruth, r.SourceEntityIDs}
	})
	practices := project(ScopedTo(ds.Practices, movementID, false), func(p entities.Practice) sourced {
		return sourced{p.ID, p.SourcesOfTruth, p.SourceEntityIDs}
	})
	ents := project(ScopedTo(ds.Entities, movementID, false), func(e entities.Entity) sourced {
		return sourced{e.ID, e.SourcesOfTruth, e.SourceEntityIDs}
	})
	relations := project(ScopedTo(ds.Relations, movementID, true), func(r entities.Relation) sourced {
		return sourced{r.ID, r.SourcesOfTruth, r.SourceEntityIDs}
	})

	labels := newUsageIndex()
	cited := newUsageIndex()
	for _, group := range []struct {
		records []sourced
		pick    func(*SourceRecords) *[]string
	}{
		{claims, func(s *SourceRecords) *[]string { return &s.Claims }},
		{rules, func(s *SourceRecords) *[]string { return &s.Rules }},
		{practices, func(s *SourceRecords) *[]string { return &s.Practices }},
		{ents, func(s *SourceRecords) *[]string { return &s.Entities }},
		{relations, func(s *SourceRecords) *[]string { return &s.Relations }},
	} {
		for _, rec := range group.records {
			for _, label := range rec.labels {
				if label == "" {
					continue
				}
				labels.add(norm.NFC.String(label), label, rec.id, group.pick)
			}
			for _, entityID := range rec.entities {
				if entityID == "" {
					continue
				}
				cited.add(entityID, entityID, rec.id, group.pick)
			}
		}
	}

	out := &Authority{
		SourcesByLabel:    make([]SourceUsage, 0, len(labels.order)),
		AuthorityEntities: make([]AuthorityEntity, 0, len(cited.order)),
	}
	for _, u := range labels.entries() {
		out.SourcesByLabel = append(out.SourcesByLabel, SourceUsage{
			Label:           u.display,
			UsedByClaims:    u.records.Claims,
			UsedByRules:     u.records.Rules,
			UsedByPractices: u.records.Practices,
			UsedByEntities:  u.records.Entities,
			UsedByRelations: u.records.Relations,
		})
	}
	entityIndex := BuildIndex(ds.Entities)
	for _, u := range cited.entries() {
		ae := AuthorityEntity{ID: u.display, Name: u.display, UsedAsSourceIn: u.records}
		if e, ok := entityIndex[u.display]; ok {
			if e.Name != "" {
				ae.Name = e.Name
			}
			ae.Kind = e.Kind
		}
		out.AuthorityEntities = append(out.AuthorityEntities, ae)
	}
	return out
}

type usage struct {
	display string
	records SourceRecords
}

// usageIndex is an insertion-ordered map from a grouping key to its usage.
type usageIndex struct {
	order []string
	byKey map[string]*usage
}

func newUsageIndex() *usageIndex {
	return &usageIndex{byKey: make(map[string]*usage)}
}

func (u *usageIndex) add(key, display, recordID string, pick func(*SourceRecords) *[]string) {
	entry, ok := u.byKey[key]
	if !ok {
		entry = &usage{display: display, records: SourceRecords{
			Claims:    []string{},
			Rules:     []string{},
			Practices: []string{},
			Entities:  []string{},
			Relations: []string{},
		}}
		u.byKey[key] = entry
		u.order = append(u.order, key)
	}
	ids := pick(&entry.records)
	if !contains(*ids, recordID) {
		*ids = append(*ids, recordID)
	}
}

func (u *usageIndex) entries() []*usage {
	out := make([]*usage, 0, len(u.order))
	for _, key := range u.order {
		out = append(out, u.byKey[key])
	}
	return out
}

func project[T any, P any](records []T, fn func(T) P) []P {
	out := make([]P, 0, len(records))
	for _, rec := range records {
		out = append(out, fn(rec))
	}
	return out
}
