package services

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/movement-core/internal/domain/entities"
)

func intPtr(n int) *int { return &n }

// starDataset is center C linked to A, B and D, with E two hops out via D
// and an A-B edge closing a triangle.
func starDataset() *entities.Dataset {
	ds := entities.NewDataset()
	ds.Movements = []entities.Movement{{ID: "m1", Name: "Star"}}
	ds.Entities = []entities.Entity{
		{ID: "C", MovementID: "m1", Name: "Center"},
		{ID: "A", MovementID: "m1", Name: "Alpha", Kind: strPtr("deity"), Tags: []string{"x"}},
		{ID: "B", MovementID: "m1", Name: "Beta"},
		{ID: "D", MovementID: "m1", Name: "Delta"},
		{ID: "E", MovementID: "m1", Name: "Echo"},
	}
	ds.Relations = []entities.Relation{
		{ID: "r1", MovementID: "m1", FromEntityID: "C", ToEntityID: "A", RelationType: "parent_of"},
		{ID: "r2", MovementID: "m1", FromEntityID: "B", ToEntityID: "C", RelationType: "child_of"},
		{ID: "r3", MovementID: "m1", FromEntityID: "C", ToEntityID: "D", RelationType: "knows"},
		{ID: "r4", MovementID: "m1", FromEntityID: "D", ToEntityID: "E", RelationType: "knows"},
		{ID: "r6", MovementID: "m1", FromEntityID: "A", ToEntityID: "B", RelationType: "sibling_of"},
		{ID: "r7", MovementID: "m2", FromEntityID: "C", ToEntityID: "X", RelationType: "knows"},
	}
	return ds
}

func graphIDs(g *EntityGraph) (nodes, edges []string) {
	nodes, edges = []string{}, []string{}
	for _, n := range g.Nodes {
		nodes = append(nodes, n.ID)
	}
	for _, e := range g.Edges {
		edges = append(edges, e.ID)
	}
	return nodes, edges
}

func TestBuildEntityGraph(t *testing.T) {
	tests := []struct {
		name      string
		req       GraphRequest
		wantNodes []string
		wantEdges []string
	}{
		{
			name:      "depth one keeps edges touching the star",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "C", Depth: intPtr(1)},
			wantNodes: []string{"C", "A", "B", "D", "E"},
			wantEdges: []string{"r1", "r2", "r3", "r4", "r6"},
		},
		{
			name:      "edge leaving the visited set is kept",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "E", Depth: intPtr(1)},
			wantNodes: []string{"C", "D", "E"},
			wantEdges: []string{"r3", "r4"},
		},
		{
			name:      "depth zero is the center alone",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "C", Depth: intPtr(0)},
			wantNodes: []string{"C"},
			wantEdges: []string{},
		},
		{
			name:      "negative depth behaves like zero",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "C", Depth: intPtr(-3)},
			wantNodes: []string{"C"},
			wantEdges: []string{},
		},
		{
			name:      "depth two reaches everything",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "C", Depth: intPtr(2)},
			wantNodes: []string{"C", "A", "B", "D", "E"},
			wantEdges: []string{"r1", "r2", "r3", "r4", "r6"},
		},
		{
			name:      "large depth on a cycle terminates",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "A", Depth: intPtr(100)},
			wantNodes: []string{"C", "A", "B", "D", "E"},
			wantEdges: []string{"r1", "r2", "r3", "r4", "r6"},
		},
		{
			name:      "center without depth keeps every edge",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "E"},
			wantNodes: []string{"C", "A", "B", "D", "E"},
			wantEdges: []string{"r1", "r2", "r3", "r4", "r6"},
		},
		{
			name:      "isolated center",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "Z", Depth: intPtr(2)},
			wantNodes: []string{"Z"},
			wantEdges: []string{},
		},
		{
			name:      "type filter applies before expansion",
			req:       GraphRequest{MovementID: "m1", CenterEntityID: "C", Depth: intPtr(1), RelationTypeFilter: []string{"knows"}},
			wantNodes: []string{"C", "D", "E"},
			wantEdges: []string{"r3", "r4"},
		},
		{
			name:      "no center",
			req:       GraphRequest{MovementID: "m1", RelationTypeFilter: []string{"knows"}},
			wantNodes: []string{"C", "D", "E"},
			wantEdges: []string{"r3", "r4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildEntityGraph(starDataset(), tt.req)
			nodes, edges := graphIDs(g)
			assert.Equal(t, tt.wantNodes, nodes)
			assert.Equal(t, tt.wantEdges, edges)
			assert.Equal(t, tt.req.CenterEntityID, g.CenterEntityID)
		})
	}
}

func TestBuildEntityGraph_PlaceholderNode(t *testing.T) {
	g := BuildEntityGraph(fixtureDataset(), GraphRequest{MovementID: "m1", RelationTypeFilter: []string{"knows"}})

	require.Len(t, g.Nodes, 2)
	assert.Equal(t, GraphNode{ID: "ghost", Name: "ghost", Tags: []string{}}, g.Nodes[1])
}

func TestBuildEntityGraph_Golden(t *testing.T) {
	g := BuildEntityGraph(starDataset(), GraphRequest{MovementID: "m1", CenterEntityID: "C", Depth: intPtr(1)})

	data, err := json.MarshalIndent(g, "", "  ")
	require.NoError(t, err)

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "entity_graph_star", append(data, '\n'))
}

func TestBuildEntityGraph_PureStar(t *testing.T) {
	ds := starDataset()
	ds.Relations = ds.Relations[:3]

	nodes, edges := graphIDs(BuildEntityGraph(ds, GraphRequest{MovementID: "m1", CenterEntityID: "C", Depth: intPtr(1)}))
	assert.ElementsMatch(t, []string{"C", "A", "B", "D"}, nodes)
	assert.Len(t, edges, 3)

	nodes, edges = graphIDs(BuildEntityGraph(ds, GraphRequest{MovementID: "m1", CenterEntityID: "C", Depth: intPtr(0)}))
	assert.Equal(t, []string{"C"}, nodes)
	assert.Empty(t, edges)
}

func TestAdjacency_Expand(t *testing.T) {
	adj := NewAdjacency(starDataset().Relations)

	assert.Equal(t, map[string]bool{"C": true}, adj.Expand("C", 0))
	assert.Equal(t, map[string]bool{"D": true, "C": true, "E": true}, adj.Expand("D", 1))
	assert.Len(t, adj.Expand("E", 3), 6, "X is reachable through the m2 edge")
}
