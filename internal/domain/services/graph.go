package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// Adjacency is an undirected neighbour list keyed by entity id.
type Adjacency map[string][]string

// NewAdjacency links both endpoints of every relation to each other.
func NewAdjacency(relations []entities.Relation) Adjacency {
	adj := make(Adjacency)
	for _, r := range relations {
		adj[r.FromEntityID] = append(adj[r.FromEntityID], r.ToEntityID)
		adj[r.ToEntityID] = append(adj[r.ToEntityID], r.FromEntityID)
	}
	return adj
}

// Expand runs a breadth-first search from center for at most depth rounds and
// returns the visited set, center included. It stops early once a frontier is
// empty. Cycles are harmless because a node is only expanded once.
func (a Adjacency) Expand(center string, depth int) map[string]bool {
	visited := map[string]bool{center: true}
	frontier := []string{center}
	for step := 0; step < depth && len(frontier) > 0; step++ {
		var next []string
		for _, id := range frontier {
			for _, n := range a[id] {
				if !visited[n] {
					visited[n] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return visited
}

// GraphRequest selects the relations to draw.
type GraphRequest struct {
	MovementID         string
	RelationTypeFilter []string
	CenterEntityID     string
	// Depth bounds the expansion around CenterEntityID. Nil disables it.
	Depth *int
}

// GraphNode is an entity drawn in the graph.
type GraphNode struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Kind *string  `json:"kind"`
	Tags []string `json:"tags"`
}

// GraphEdge is a directed relation drawn in the graph.
type GraphEdge struct {
	ID           string `json:"id"`
	FromID       string `json:"fromId"`
	ToID         string `json:"toId"`
	RelationType string `json:"relationType"`
}

// EntityGraph is a node and edge list ready for drawing.
type EntityGraph struct {
	Nodes          []GraphNode `json:"nodes"`
	Edges          []GraphEdge `json:"edges"`
	CenterEntityID string      `json:"centerEntityId"`
}

// BuildEntityGraph draws the movement's relations, shared ones included.
//
// With both a center and a depth, an edge survives when it touches a node
// within depth hops of the center, so the far endpoints of the outermost
// edges are drawn too. A depth of zero or less draws the center alone.
// Without a depth every selected relation is drawn. The center is always a
// node, even when isolated. Endpoints that do not resolve are drawn with
// their raw id.
func BuildEntityGraph(ds *entities.Dataset, req GraphRequest) *EntityGraph {
	relations := filterRelationTypes(ScopedTo(ds.Relations, req.MovementID, true), req.RelationTypeFilter)

	if req.CenterEntityID != "" && req.Depth != nil {
		kept := make([]entities.Relation, 0, len(relations))
		if *req.Depth > 0 {
			visited := NewAdjacency(relations).Expand(req.CenterEntityID, *req.Depth)
			for _, r := range relations {
				if visited[r.FromEntityID] || visited[r.ToEntityID] {
					kept = append(kept, r)
				}
			}
		}
		relations = kept
	}

	var nodeIDs []string
	seen := make(map[string]bool)
	addNode := func(id string) {
		if !seen[id] {
			seen[id] = true
			nodeIDs = append(nodeIDs, id)
		}
	}
	edges := make([]GraphEdge, 0, len(relations))
	for _, r := range relations {
		addNode(r.FromEntityID)
		addNode(r.ToEntityID)
		edges = append(edges, GraphEdge{
			ID:           r.ID,
			FromID:       r.FromEntityID,
			ToID:         r.ToEntityID,
			RelationType: r.RelationType,
		})
	}
	if req.CenterEntityID != "" {
		addNode(req.CenterEntityID)
	}

	entityIndex := BuildIndex(ds.Entities)
	nodes := make([]GraphNode, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		node := GraphNode{ID: id, Name: id, Tags: []string{}}
		if e, ok := entityIndex[id]; ok {
			node.Name = e.Name
			node.Kind = e.Kind
			node.Tags = orEmpty(e.Tags)
		}
		nodes = append(nodes, node)
	}

	return &EntityGraph{Nodes: nodes, Edges: edges, CenterEntityID: req.CenterEntityID}
}
