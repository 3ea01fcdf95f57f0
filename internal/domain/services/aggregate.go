package services

import (
	"sort"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// UnknownKey is the histogram bucket for records without a key.
const UnknownKey = "unknown"

// DefaultTopLimit is the number of highlights TopByTagCount keeps by default.
const DefaultTopLimit = 5

// Histogram counts records by key(rec). A nil key is counted under UnknownKey.
// Only keys that occur appear in the result.
func Histogram[T any](records []T, key func(T) *string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		k := UnknownKey
		if v := key(rec); v != nil {
			k = *v
		}
		counts[k]++
	}
	return counts
}

// TopByTagCount returns up to limit records ordered by descending tag count.
// Ties keep their input order. A non-positive limit selects DefaultTopLimit.
func TopByTagCount[T entities.Record](records []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	sorted := make([]T, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].GetTags()) > len(sorted[j].GetTags())
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
