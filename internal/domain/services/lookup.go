// Package services holds the read-model derivations and the comparison and
// template engines. Every exported function here is pure: it reads the dataset
// it is given and returns freshly allocated results.
package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// BuildIndex maps record ids to records. Records with an empty id are skipped
// and, on duplicate ids, the first occurrence wins.
func BuildIndex[T entities.Identified](records []T) map[string]T {
	index := make(map[string]T, len(records))
	for _, rec := range records {
		id := rec.GetID()
		if id == "" {
			continue
		}
		if _, seen := index[id]; seen {
			continue
		}
		index[id] = rec
	}
	return index
}

// ScopedTo returns the records owned by ownerID, keeping input order. With
// includeShared, records without an owner are kept as well.
// An empty ownerID owns nothing: only shared records are returned, and only
// with includeShared.
func ScopedTo[T entities.Record](records []T, ownerID string, includeShared bool) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		owner := rec.GetOwner()
		owned := ownerID != "" && string(owner) == ownerID
		if owned || (includeShared && owner.IsShared()) {
			out = append(out, rec)
		}
	}
	return out
}

// resolve looks every id up in index and projects the hits, dropping misses.
func resolve[T any, P any](ids []string, index map[string]T, project func(T) P) []P {
	out := make([]P, 0, len(ids))
	for _, id := range ids {
		if rec, ok := index[id]; ok {
			out = append(out, project(rec))
		}
	}
	return out
}

// referencing returns projections of the records whose ids(rec) contains id.
func referencing[T any, P any](records []T, id string, ids func(T) []string, project func(T) P) []P {
	out := make([]P, 0)
	for _, rec := range records {
		if contains(ids(rec), id) {
			out = append(out, project(rec))
		}
	}
	return out
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// orEmpty keeps list-valued view fields from encoding as null.
func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
