package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// NotesRequest selects a movement's notes, shared ones included.
type NotesRequest struct {
	MovementID       string
	TargetTypeFilter entities.TargetKind
	TargetIDFilter   string
}

// NoteRow is one note with a display label for its target.
type NoteRow struct {
	ID          string              `json:"id"`
	TargetType  entities.TargetKind `json:"targetType"`
	TargetID    string              `json:"targetId"`
	TargetLabel string              `json:"targetLabel"`
	Author      *string             `json:"author"`
	Body        string              `json:"body"`
	Context     *string             `json:"context"`
	Tags        []string            `json:"tags"`
}

// NotesView is the note listing of a movement.
type NotesView struct {
	Notes []NoteRow `json:"notes"`
}

// labelResolver maps a target id to its display label.
type labelResolver func(id string) (string, bool)

func labelsOf[T entities.Identified](records []T, label func(T) string) labelResolver {
	index := BuildIndex(records)
	return func(id string) (string, bool) {
		rec, ok := index[id]
		if !ok {
			return "", false
		}
		return label(rec), true
	}
}

// noLabel is used for kinds without a name, title or short text.
func noLabel[T any](T) string { return "" }

func targetResolvers(ds *entities.Dataset) map[entities.TargetKind]labelResolver {
	return map[entities.TargetKind]labelResolver{
		entities.TargetTextNode:   labelsOf(ds.Texts, func(t entities.TextNode) string { return t.Title }),
		entities.TargetEntity:     labelsOf(ds.Entities, func(e entities.Entity) string { return e.Name }),
		entities.TargetPractice:   labelsOf(ds.Practices, func(p entities.Practice) string { return p.Name }),
		entities.TargetEvent:      labelsOf(ds.Events, func(e entities.Event) string { return e.Name }),
		entities.TargetRule:       labelsOf(ds.Rules, func(r entities.Rule) string { return r.ShortText }),
		entities.TargetClaim:      labelsOf(ds.Claims, noLabel[entities.Claim]),
		entities.TargetMediaAsset: labelsOf(ds.Media, func(m entities.MediaAsset) string { return m.Title }),
		entities.TargetRelation:   labelsOf(ds.Relations, noLabel[entities.Relation]),
	}
}

// targetLabel echoes the target id when the kind is unknown, the record is
// missing or it has no label.
func targetLabel(resolvers map[entities.TargetKind]labelResolver, target entities.NoteTarget) string {
	if lookup, ok := resolvers[target.Kind]; ok {
		if label, found := lookup(target.ID); found && label != "" {
			return label
		}
	}
	return target.ID
}

// BuildNotes lists notes with their targets labelled.
func BuildNotes(ds *entities.Dataset, req NotesRequest) *NotesView {
	resolvers := targetResolvers(ds)

	rows := make([]NoteRow, 0)
	for _, n := range ScopedTo(ds.Notes, req.MovementID, true) {
		if req.TargetTypeFilter != "" && n.TargetType != req.TargetTypeFilter {
			continue
		}
		if req.TargetIDFilter != "" && n.TargetID != req.TargetIDFilter {
			continue
		}
		rows = append(rows, NoteRow{
			ID:          n.ID,
			TargetType:  n.TargetType,
			TargetID:    n.TargetID,
			TargetLabel: targetLabel(resolvers, n.Target()),
			Author:      n.Author,
			Body:        n.Body,
			Context:     n.Context,
			Tags:        orEmpty(n.Tags),
		})
	}

	return &NotesView{Notes: rows}
}
