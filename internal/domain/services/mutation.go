package services

import (
	"fmt"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// Default values of freshly created records.
const (
	DefaultMovementName   = "New Movement"
	DefaultFrequency      = "weekly"
	DefaultRecurrence     = "yearly"
	DefaultTimingRule     = "TBD"
	DefaultRuleKind       = "must_do"
	DefaultTextLabel      = "1"
	DefaultMediaKind      = "image"
	DefaultRelationType   = "related_to"
	DefaultNoteTargetKind = entities.TargetEntity
)

// AddMovement returns a copy of ds with m appended. An empty id is generated.
func AddMovement(ds *entities.Dataset, m entities.Movement) (*entities.Dataset, entities.Movement) {
	if m.ID == "" {
		m.ID = entities.NewID("mov-")
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	out := ds.Clone()
	out.Movements = append(out.Movements, m)
	return out, m
}

// DeleteMovement returns a copy of ds without the movement and without every
// record it owns in the movement-scoped collections. The map counts the
// removed records per collection, the movement itself included.
func DeleteMovement(ds *entities.Dataset, movementID string) (*entities.Dataset, map[entities.Collection]int) {
	out := ds.Clone()
	removed := make(map[entities.Collection]int)

	var n int
	out.Movements, n = removeWhere(out.Movements, func(m entities.Movement) bool { return m.ID == movementID })
	removed[entities.CollectionMovements] = n

	owned := func(owner entities.OwnerID) bool { return !owner.IsShared() && string(owner) == movementID }
	out.TextCollections, removed[entities.CollectionTextCollections] = removeOwned(out.TextCollections, owned)
	out.Texts, removed[entities.CollectionTexts] = removeOwned(out.Texts, owned)
	out.Entities, removed[entities.CollectionEntities] = removeOwned(out.Entities, owned)
	out.Practices, removed[entities.CollectionPractices] = removeOwned(out.Practices, owned)
	out.Events, removed[entities.CollectionEvents] = removeOwned(out.Events, owned)
	out.Rules, removed[entities.CollectionRules] = removeOwned(out.Rules, owned)
	out.Claims, removed[entities.CollectionClaims] = removeOwned(out.Claims, owned)
	out.Media, removed[entities.CollectionMedia] = removeOwned(out.Media, owned)
	out.Notes, removed[entities.CollectionNotes] = removeOwned(out.Notes, owned)
	out.Relations, removed[entities.CollectionRelations] = removeOwned(out.Relations, owned)

	return out, removed
}

// PutRecord returns a copy of ds in which rec replaces the record with the
// same id in its collection, or is appended when no such record exists.
func PutRecord(ds *entities.Dataset, rec entities.Identified) (*entities.Dataset, error) {
	if rec.GetID() == "" {
		return nil, ErrRecordIDRequired
	}
	out := ds.Clone()
	switch r := rec.(type) {
	case entities.Movement:
		out.Movements = replaceOrAppend(out.Movements, r)
	case entities.TextCollection:
		out.TextCollections = replaceOrAppend(out.TextCollections, r)
	case entities.TextNode:
		out.Texts = replaceOrAppend(out.Texts, r)
	case entities.Entity:
		out.Entities = replaceOrAppend(out.Entities, r)
	case entities.Practice:
		out.Practices = replaceOrAppend(out.Practices, r)
	case entities.Event:
		out.Events = replaceOrAppend(out.Events, r)
	case entities.Rule:
		out.Rules = replaceOrAppend(out.Rules, r)
	case entities.Claim:
		out.Claims = replaceOrAppend(out.Claims, r)
	case entities.MediaAsset:
		out.Media = replaceOrAppend(out.Media, r)
	case entities.Note:
		out.Notes = replaceOrAppend(out.Notes, r)
	case entities.Relation:
		out.Relations = replaceOrAppend(out.Relations, r)
	case entities.ComparisonSchema:
		out.ComparisonSchemas = replaceOrAppend(out.ComparisonSchemas, r)
	case entities.ComparisonBinding:
		out.ComparisonBindings = replaceOrAppend(out.ComparisonBindings, r)
	case entities.MovementTemplate:
		out.MovementTemplates = replaceOrAppend(out.MovementTemplates, r)
	default:
		return nil, fmt.Errorf("%w: record type %T", ErrUnknownCollection, rec)
	}
	return out, nil
}

// RemoveRecord returns a copy of ds without the records of collection c that
// have the given id, and how many were removed. Removing a movement cascades
// like DeleteMovement.
func RemoveRecord(ds *entities.Dataset, c entities.Collection, id string) (*entities.Dataset, int, error) {
	if c == entities.CollectionMovements {
		out, removed := DeleteMovement(ds, id)
		return out, removed[entities.CollectionMovements], nil
	}

	out := ds.Clone()
	var n int
	switch c {
	case entities.CollectionTextCollections:
		out.TextCollections, n = removeByID(out.TextCollections, id)
	case entities.CollectionTexts:
		out.Texts, n = removeByID(out.Texts, id)
	case entities.CollectionEntities:
		out.Entities, n = removeByID(out.Entities, id)
	case entities.CollectionPractices:
		out.Practices, n = removeByID(out.Practices, id)
	case entities.CollectionEvents:
		out.Events, n = removeByID(out.Events, id)
	case entities.CollectionRules:
		out.Rules, n = removeByID(out.Rules, id)
	case entities.CollectionClaims:
		out.Claims, n = removeByID(out.Claims, id)
	case entities.CollectionMedia:
		out.Media, n = removeByID(out.Media, id)
	case entities.CollectionNotes:
		out.Notes, n = removeByID(out.Notes, id)
	case entities.CollectionRelations:
		out.Relations, n = removeByID(out.Relations, id)
	case entities.CollectionComparisonSchemas:
		out.ComparisonSchemas, n = removeByID(out.ComparisonSchemas, id)
	case entities.CollectionComparisonBindings:
		out.ComparisonBindings, n = removeByID(out.ComparisonBindings, id)
	case entities.CollectionMovementTemplates:
		out.MovementTemplates, n = removeByID(out.MovementTemplates, id)
	default:
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownCollection, c)
	}
	return out, n, nil
}

// NewSkeleton returns the default record for a movement-scoped collection,
// owned by ownerID (shared when empty), with a fresh id.
func NewSkeleton(c entities.Collection, ownerID string) (entities.Record, error) {
	owner := entities.OwnerID(ownerID)
	switch c {
	case entities.CollectionEntities:
		return entities.Entity{
			ID: entities.NewID("ent-"), MovementID: owner, Name: "New entity",
			Tags: []string{}, SourcesOfTruth: []string{}, SourceEntityIDs: []string{},
		}, nil
	case entities.CollectionPractices:
		return entities.Practice{
			ID: entities.NewID("prc-"), MovementID: owner, Name: "New practice",
			Frequency: DefaultFrequency, IsPublic: true,
			Tags: []string{}, InvolvedEntityIDs: []string{}, InstructionsTextIDs: []string{},
			SupportingClaimIDs: []string{}, SourcesOfTruth: []string{}, SourceEntityIDs: []string{},
		}, nil
	case entities.CollectionEvents:
		recurrence := DefaultRecurrence
		return entities.Event{
			ID: entities.NewID("evt-"), MovementID: owner, Name: "New event",
			Recurrence: &recurrence, TimingRule: DefaultTimingRule,
			Tags: []string{}, MainPracticeIDs: []string{}, MainEntityIDs: []string{},
			ReadingTextIDs: []string{}, SupportingClaimIDs: []string{},
		}, nil
	case entities.CollectionRules:
		return entities.Rule{
			ID: entities.NewID("rul-"), MovementID: owner, ShortText: "New rule", Kind: DefaultRuleKind,
			AppliesTo: []string{}, Domain: []string{}, Tags: []string{},
			SupportingTextIDs: []string{}, SupportingClaimIDs: []string{}, RelatedPracticeIDs: []string{},
			SourcesOfTruth: []string{}, SourceEntityIDs: []string{},
		}, nil
	case entities.CollectionClaims:
		return entities.Claim{
			ID: entities.NewID("clm-"), MovementID: owner, Text: "New claim",
			Tags: []string{}, SourceTextIDs: []string{}, AboutEntityIDs: []string{},
			SourcesOfTruth: []string{}, SourceEntityIDs: []string{},
		}, nil
	case entities.CollectionTextCollections:
		return entities.TextCollection{
			ID: entities.NewID("tc-"), MovementID: owner, Name: "New text collection",
			Tags: []string{}, RootTextIDs: []string{},
		}, nil
	case entities.CollectionTexts:
		return entities.TextNode{
			ID: entities.NewID("txt-"), MovementID: owner, Level: entities.LevelWork,
			Title: "New text", Label: DefaultTextLabel, Tags: []string{}, MentionsEntityIDs: []string{},
		}, nil
	case entities.CollectionMedia:
		return entities.MediaAsset{
			ID: entities.NewID("med-"), MovementID: owner, Kind: DefaultMediaKind, Title: "New media asset",
			Tags: []string{}, LinkedEntityIDs: []string{}, LinkedPracticeIDs: []string{},
			LinkedEventIDs: []string{}, LinkedTextIDs: []string{},
		}, nil
	case entities.CollectionNotes:
		return entities.Note{
			ID: entities.NewID("note-"), MovementID: owner, TargetType: DefaultNoteTargetKind, Tags: []string{},
		}, nil
	case entities.CollectionRelations:
		return entities.Relation{
			ID: entities.NewID("rel-"), MovementID: owner, RelationType: DefaultRelationType,
			Tags: []string{}, SupportingClaimIDs: []string{}, SourcesOfTruth: []string{}, SourceEntityIDs: []string{},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, c)
	}
}

func replaceOrAppend[T entities.Identified](records []T, rec T) []T {
	for i, r := range records {
		if r.GetID() == rec.GetID() {
			records[i] = rec
			return records
		}
	}
	return append(records, rec)
}

func removeByID[T entities.Identified](records []T, id string) ([]T, int) {
	return removeWhere(records, func(r T) bool { return r.GetID() == id })
}

func removeOwned[T entities.Record](records []T, owned func(entities.OwnerID) bool) ([]T, int) {
	return removeWhere(records, func(r T) bool { return owned(r.GetOwner()) })
}

func removeWhere[T any](records []T, drop func(T) bool) ([]T, int) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !drop(r) {
			out = append(out, r)
		}
	}
	return out, len(records) - len(out)
}
