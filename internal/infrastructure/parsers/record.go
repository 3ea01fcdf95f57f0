package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// DecodeRecord reads a single record of collection c.
func DecodeRecord(r io.Reader, c entities.Collection, format Format, vocab Vocabulary) (entities.Identified, error) {
	doc, err := decodeDocument(r, format)
	if err != nil {
		return nil, err
	}
	path := vocab.External(string(c))

	obj, ok := renameKeys(doc, vocab.toCanonical()).(map[string]any)
	if !ok {
		return nil, &ImportError{Path: path, Message: "record must be an object"}
	}
	raw, err := marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	if err := validateRecord(raw, path); err != nil {
		return nil, err
	}

	switch c {
	case entities.CollectionMovements:
		return decodeAs[entities.Movement](raw)
	case entities.CollectionTextCollections:
		return decodeAs[entities.TextCollection](raw)
	case entities.CollectionTexts:
		return decodeAs[entities.TextNode](raw)
	case entities.CollectionEntities:
		return decodeAs[entities.Entity](raw)
	case entities.CollectionPractices:
		return decodeAs[entities.Practice](raw)
	case entities.CollectionEvents:
		return decodeAs[entities.Event](raw)
	case entities.CollectionRules:
		return decodeAs[entities.Rule](raw)
	case entities.CollectionClaims:
		return decodeAs[entities.Claim](raw)
	case entities.CollectionMedia:
		return decodeAs[entities.MediaAsset](raw)
	case entities.CollectionNotes:
		return decodeAs[entities.Note](raw)
	case entities.CollectionRelations:
		return decodeAs[entities.Relation](raw)
	case entities.CollectionComparisonSchemas:
		return decodeAs[entities.ComparisonSchema](raw)
	case entities.CollectionComparisonBindings:
		return decodeAs[entities.ComparisonBinding](raw)
	case entities.CollectionMovementTemplates:
		return decodeAs[entities.MovementTemplate](raw)
	default:
		return nil, fmt.Errorf("unknown collection: %s", c)
	}
}

func decodeAs[T entities.Identified](raw []byte) (entities.Identified, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}
