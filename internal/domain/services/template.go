package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// TemplateOptions override the template's defaults when applying it.
type TemplateOptions struct {
	// SourceMovementID replaces the template's source movement.
	SourceMovementID string
	// NewMovementID is generated when empty.
	NewMovementID string
	Name          string
	ShortName     string
	Summary       string
	ExtraTags     []string
}

// TemplateResult is the dataset after a template was applied.
type TemplateResult struct {
	Dataset    *entities.Dataset
	MovementID string
	// Cloned counts the new records per collection.
	Cloned map[entities.Collection]int
	// Skipped lists rule collections that are not movement-scoped.
	Skipped []string
}

// ApplyTemplate clones a source movement into a new one following the
// template's rules and returns the extended dataset. The input dataset is
// never modified; on error nothing is returned.
//
// Each rule selects the records of its collection owned by the source
// movement (shared records never qualify) whose tags overlap MatchTags, or
// all of them when MatchTags is empty. Selected records are cloned with a new
// id and the new owner. copy_structure_only additionally blanks the default
// fields plus the rule's FieldsToClear. ignore and reference_only rules copy
// nothing.
func ApplyTemplate(ds *entities.Dataset, tmpl entities.MovementTemplate, opts TemplateOptions) (*TemplateResult, error) {
	sourceID := opts.SourceMovementID
	if sourceID == "" && tmpl.SourceMovementID != nil {
		sourceID = *tmpl.SourceMovementID
	}
	if sourceID == "" {
		return nil, ErrSourceMovementRequired
	}
	source, ok := ds.FindMovement(sourceID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceMovementNotFound, sourceID)
	}

	movement := entities.Movement{
		ID:        opts.NewMovementID,
		Name:      firstNonEmpty(opts.Name, source.Name),
		ShortName: firstNonEmpty(opts.ShortName, source.ShortName, source.Name),
		Summary:   firstNonEmpty(opts.Summary, source.Summary),
		Tags:      union(source.Tags, opts.ExtraTags),
	}
	if movement.ID == "" {
		movement.ID = entities.NewID("mov-template-")
	}
	if source.Notes != nil && *source.Notes != "" {
		notes := *source.Notes
		movement.Notes = &notes
	}

	out := ds.Clone()
	out.Movements = append(out.Movements, movement)
	res := &TemplateResult{Dataset: out, MovementID: movement.ID, Cloned: make(map[entities.Collection]int)}

	for _, rule := range tmpl.Rules {
		mode := rule.CopyMode
		if mode == "" {
			mode = entities.CopyAllFields
		}
		collection, ok := entities.ParseCollection(rule.Collection)
		if !ok || !collection.IsMovementScoped() {
			res.Skipped = append(res.Skipped, rule.Collection)
			continue
		}
		if mode == entities.CopyIgnore || mode == entities.CopyReferenceOnly {
			continue
		}

		var clear []string
		if mode == entities.CopyStructureOnly {
			clear = union(entities.DefaultFieldsToClear, rule.FieldsToClear)
		}
		c := cloner{
			sourceID: sourceID,
			owner:    entities.OwnerID(movement.ID),
			prefix:   idPrefix(collection),
			match:    rule.MatchTags,
			clear:    clear,
		}

		var n int
		switch collection {
		case entities.CollectionTextCollections:
			n = cloneMatching(c, ds.TextCollections, &out.TextCollections)
		case entities.CollectionTexts:
			n = cloneMatching(c, ds.Texts, &out.Texts)
		case entities.CollectionEntities:
			n = cloneMatching(c, ds.Entities, &out.Entities)
		case entities.CollectionPractices:
			n = cloneMatching(c, ds.Practices, &out.Practices)
		case entities.CollectionEvents:
			n = cloneMatching(c, ds.Events, &out.Events)
		case entities.CollectionRules:
			n = cloneMatching(c, ds.Rules, &out.Rules)
		case entities.CollectionClaims:
			n = cloneMatching(c, ds.Claims, &out.Claims)
		case entities.CollectionMedia:
			n = cloneMatching(c, ds.Media, &out.Media)
		case entities.CollectionNotes:
			n = cloneMatching(c, ds.Notes, &out.Notes)
		case entities.CollectionRelations:
			n = cloneMatching(c, ds.Relations, &out.Relations)
		}
		res.Cloned[collection] += n
	}

	return res, nil
}

type cloner struct {
	sourceID string
	owner    entities.OwnerID
	prefix   string
	match    []string
	clear    []string
}

// cloneMatching appends clones of the selected records of src to dst and
// returns how many were added.
func cloneMatching[T entities.Record](c cloner, src []T, dst *[]T) int {
	added := 0
	for _, rec := range src {
		if string(rec.GetOwner()) != c.sourceID {
			continue
		}
		if len(c.match) > 0 && !entities.HasAnyTag(rec.GetTags(), c.match) {
			continue
		}
		*dst = append(*dst, cloneRecord(rec, entities.NewID(c.prefix), c.owner, c.clear))
		added++
	}
	return added
}

// cloneRecord copies rec, sets its id and owner, and blanks the fields whose
// JSON names are listed in clear: lists become empty, strings become "" and
// everything else its zero value. Optional strings that are set become "",
// unset ones stay unset. Names the record does not have are ignored.
func cloneRecord[T any](rec T, id string, owner entities.OwnerID, clear []string) T {
	clone := rec
	v := reflect.ValueOf(&clone).Elem()
	fields := jsonFields(v.Type())

	if i, ok := fields["id"]; ok {
		v.Field(i).SetString(id)
	}
	if i, ok := fields["movementId"]; ok {
		v.Field(i).Set(reflect.ValueOf(owner))
	}
	for _, name := range clear {
		i, ok := fields[name]
		if !ok {
			continue
		}
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Slice:
			f.Set(reflect.MakeSlice(f.Type(), 0, 0))
		case reflect.Pointer:
			if f.IsNil() || f.Type().Elem().Kind() != reflect.String {
				f.Set(reflect.Zero(f.Type()))
				continue
			}
			blank := reflect.New(f.Type().Elem())
			f.Set(blank)
		default:
			f.Set(reflect.Zero(f.Type()))
		}
	}
	return clone
}

// jsonFields maps JSON field names to struct field indexes.
func jsonFields(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			fields[name] = i
		}
	}
	return fields
}

// idPrefix is the first three letters of the collection plus "-tmpl-".
func idPrefix(c entities.Collection) string {
	name := string(c)
	if len(name) > 3 {
		name = name[:3]
	}
	return name + "-tmpl-"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// union concatenates lists, dropping repeats and keeping first occurrences.
func union(lists ...[]string) []string {
	out := make([]string, 0)
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
