package entities

import "github.com/google/uuid"

// NewID returns a fresh record id with the given prefix (e.g. "ent-").
var NewID = func(prefix string) string {
	if prefix == "" {
		prefix = "id-"
	}
	return prefix + uuid.New().String()
}
