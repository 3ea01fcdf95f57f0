package services

import (
	"strings"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

// TextTreeRequest selects a movement and, optionally, one of its collections.
type TextTreeRequest struct {
	MovementID       string
	TextCollectionID string
}

// TextTreeNode is one text with its children ids and resolved references.
type TextTreeNode struct {
	ID                 string      `json:"id"`
	Level              string      `json:"level"`
	Title              string      `json:"title"`
	Label              string      `json:"label"`
	MainFunction       *string     `json:"mainFunction"`
	Tags               []string    `json:"tags"`
	HasContent         bool        `json:"hasContent"`
	ChildIDs           []string    `json:"childIds"`
	MentionsEntities   []EntityRef `json:"mentionsEntities"`
	ReferencedByClaims []ClaimRef  `json:"referencedByClaims"`
	UsedInEvents       []EventRef  `json:"usedInEvents"`
}

// TextTree is a movement's scripture forest.
type TextTree struct {
	Collection *entities.TextCollection `json:"collection"`
	Roots      []TextTreeNode           `json:"roots"`
	NodesByID  map[string]TextTreeNode  `json:"nodesById"`
}

// BuildTextTree assembles the text forest of a movement.
//
// Roots come from exactly one of two places. When TextCollectionID names an
// existing collection of any owner that carries a root list, its RootTextIDs are the roots
// in list order and parent pointers are ignored for root selection. Otherwise
// every text without a parent is a root, in input order.
func BuildTextTree(ds *entities.Dataset, req TextTreeRequest) *TextTree {
	texts := ScopedTo(ds.Texts, req.MovementID, false)
	textIndex := BuildIndex(texts)
	entityIndex := BuildIndex(ScopedTo(ds.Entities, req.MovementID, false))
	claims := ScopedTo(ds.Claims, req.MovementID, true)
	events := ScopedTo(ds.Events, req.MovementID, false)

	var collection *entities.TextCollection
	if req.TextCollectionID != "" {
		collections := BuildIndex(ds.TextCollections)
		if c, ok := collections[req.TextCollectionID]; ok {
			collection = &c
		}
	}

	children := make(map[string][]string)
	for _, t := range texts {
		parent := ""
		if t.ParentID != nil {
			parent = *t.ParentID
		}
		children[parent] = append(children[parent], t.ID)
	}

	nodes := make(map[string]TextTreeNode, len(texts))
	for _, t := range texts {
		if _, seen := nodes[t.ID]; seen || t.ID == "" {
			continue
		}
		nodes[t.ID] = TextTreeNode{
			ID:                 t.ID,
			Level:              t.Level,
			Title:              t.Title,
			Label:              t.Label,
			MainFunction:       t.MainFunction,
			Tags:               orEmpty(t.Tags),
			HasContent:         strings.TrimSpace(t.Content) != "",
			ChildIDs:           orEmpty(children[t.ID]),
			MentionsEntities:   resolve(t.MentionsEntityIDs, entityIndex, entityRef),
			ReferencedByClaims: referencing(claims, t.ID, func(c entities.Claim) []string { return c.SourceTextIDs }, claimRef),
			UsedInEvents:       referencing(events, t.ID, func(e entities.Event) []string { return e.ReadingTextIDs }, eventRef),
		}
	}

	var rootIDs []string
	if collection != nil && collection.RootTextIDs != nil {
		rootIDs = collection.RootTextIDs
	} else {
		rootIDs = children[""]
	}

	roots := make([]TextTreeNode, 0, len(rootIDs))
	for _, id := range rootIDs {
		if _, ok := textIndex[id]; !ok {
			continue
		}
		roots = append(roots, nodes[id])
	}

	return &TextTree{Collection: collection, Roots: roots, NodesByID: nodes}
}
