package entities

// Collection names a top-level array in a Dataset.
type Collection string

const (
	CollectionMovements          Collection = "movements"
	CollectionTextCollections    Collection = "textCollections"
	CollectionTexts              Collection = "texts"
	CollectionEntities           Collection = "entities"
	CollectionPractices          Collection = "practices"
	CollectionEvents             Collection = "events"
	CollectionRules              Collection = "rules"
	CollectionClaims             Collection = "claims"
	CollectionMedia              Collection = "media"
	CollectionNotes              Collection = "notes"
	CollectionRelations          Collection = "relations"
	CollectionComparisonSchemas  Collection = "comparisonSchemas"
	CollectionComparisonBindings Collection = "comparisonBindings"
	CollectionMovementTemplates  Collection = "movementTemplates"
)

// MovementScopedCollections are the collections whose records carry an owner
// reference. Deleting a movement cascades through exactly these.
var MovementScopedCollections = []Collection{
	CollectionTextCollections,
	CollectionTexts,
	CollectionEntities,
	CollectionPractices,
	CollectionEvents,
	CollectionRules,
	CollectionClaims,
	CollectionMedia,
	CollectionNotes,
	CollectionRelations,
}

// AllCollections lists every collection a snapshot may contain, in storage order.
var AllCollections = append(append([]Collection{CollectionMovements}, MovementScopedCollections...),
	CollectionComparisonSchemas,
	CollectionComparisonBindings,
	CollectionMovementTemplates,
)

// IsMovementScoped reports whether c is one of MovementScopedCollections.
func (c Collection) IsMovementScoped() bool {
	for _, s := range MovementScopedCollections {
		if s == c {
			return true
		}
	}
	return false
}

// ParseCollection validates a collection name.
func ParseCollection(name string) (Collection, bool) {
	for _, c := range AllCollections {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
