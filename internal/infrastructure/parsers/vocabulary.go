package parsers

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// Vocabulary names the owning record in external files.
// Records are always held under the movement vocabulary in memory.
type Vocabulary string

const (
	VocabularyMovement Vocabulary = "movement"
	VocabularyReligion Vocabulary = "religion"
)

// religionKeys maps religion-vocabulary keys to their canonical names.
var religionKeys = map[string]string{
	"religions":        "movements",
	"religionId":       "movementId",
	"religionIds":      "movementIds",
	"sourceReligionId": "sourceMovementId",
}

// ParseVocabulary validates a vocabulary name.
func ParseVocabulary(name string) (Vocabulary, error) {
	switch Vocabulary(name) {
	case VocabularyMovement, VocabularyReligion:
		return Vocabulary(name), nil
	case "":
		return VocabularyMovement, nil
	default:
		return "", fmt.Errorf("unknown vocabulary: %s", name)
	}
}

// Root returns the external name of the top-level movement collection.
func (v Vocabulary) Root() string {
	return v.External("movements")
}

// External translates a canonical key into this vocabulary.
func (v Vocabulary) External(key string) string {
	if v != VocabularyReligion {
		return key
	}
	for external, canonical := range religionKeys {
		if canonical == key {
			return external
		}
	}
	return key
}

// Collection resolves a collection name given in either vocabulary.
func (v Vocabulary) Collection(name string) (entities.Collection, error) {
	if canonical, ok := religionKeys[name]; ok {
		name = canonical
	}
	c, ok := entities.ParseCollection(name)
	if !ok {
		return "", fmt.Errorf("unknown collection: %s", name)
	}
	return c, nil
}

func (v Vocabulary) toCanonical() map[string]string {
	if v != VocabularyReligion {
		return nil
	}
	return religionKeys
}

func (v Vocabulary) toExternal() map[string]string {
	if v != VocabularyReligion {
		return nil
	}
	out := make(map[string]string, len(religionKeys))
	for external, canonical := range religionKeys {
		out[canonical] = external
	}
	return out
}

// renameKeys rewrites object keys at every depth of a decoded document.
func renameKeys(v any, keys map[string]string) any {
	if len(keys) == 0 {
		return v
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if renamed, ok := keys[k]; ok {
				k = renamed
			}
			out[k] = renameKeys(val, keys)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = renameKeys(val, keys)
		}
		return out
	default:
		return v
	}
}

// renameNodeKeys is renameKeys for an ordered YAML document.
func renameNodeKeys(n *yaml.Node, keys map[string]string) {
	if n == nil {
		return
	}
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if renamed, ok := keys[n.Content[i].Value]; ok {
				n.Content[i].Value = renamed
			}
		}
	}
	for _, child := range n.Content {
		renameNodeKeys(child, keys)
	}
}
