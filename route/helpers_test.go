package route_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/campusnav/campus"
)

// lineGraph is the S–M–E scenario: S{0,0} –3– M{0,3} –5– E{0,8}.
// When walkableME is false the M–E edge exists but is closed.
func lineGraph(t *testing.T, walkableME bool) *campus.Graph {
	t.Helper()
	g, err := campus.NewGraph([]campus.Node{
		{ID: "S", Category: campus.CategoryGate, X: 0, Y: 0, Name: "South Gate"},
		{ID: "M", Category: campus.CategoryJunction, X: 0, Y: 3, Name: "Quad"},
		{ID: "E", Category: campus.CategoryBuilding, X: 0, Y: 8, Name: "Engineering"},
	}, []campus.Edge{
		{From: "S", To: "M", Length: 3, Walkable: true},
		{From: "M", To: "E", Length: 5, Walkable: walkableME},
	})
	require.NoError(t, err)

	return g
}

// randomCampus builds a deterministic pseudo-random campus: n nodes scattered
// on the map, each linked to a few nearby nodes with lengths equal to their
// Euclidean distance plus a detour factor. Roughly one edge in eight is
// closed, and the last node is an isolated building.
func randomCampus(t *testing.T, seed int64, n int) (*campus.Graph, []campus.Node, []campus.Edge) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	cats := []campus.Category{campus.CategoryBuilding, campus.CategoryGate, campus.CategoryJunction, campus.CategoryPath}
	nodes := make([]campus.Node, n)
	for i := range nodes {
		nodes[i] = campus.Node{
			ID:       fmt.Sprintf("n%02d", i),
			Category: cats[rng.Intn(len(cats))],
			X:        rng.Float64() * 100,
			Y:        rng.Float64() * 100,
			Name:     fmt.Sprintf("Node %d", i),
		}
	}
	nodes[n-1].Category = campus.CategoryBuilding
	nodes[n-1].Name = "Isolated Annex"

	var edges []campus.Edge
	for i := 0; i < n-1; i++ {
		for k := 0; k < 3; k++ {
			j := rng.Intn(n - 1)
			if j == i {
				continue
			}
			dx, dy := nodes[i].X-nodes[j].X, nodes[i].Y-nodes[j].Y
			edges = append(edges, campus.Edge{
				From:     nodes[i].ID,
				To:       nodes[j].ID,
				Length:   math.Sqrt(dx*dx+dy*dy) * (1 + rng.Float64()*0.3),
				Walkable: rng.Intn(8) != 0,
			})
		}
	}
	edges = append(edges, campus.Edge{From: nodes[n-1].ID, To: nodes[0].ID, Length: 1, Walkable: false})

	g, err := campus.NewGraph(nodes, edges)
	require.NoError(t, err)

	return g, nodes, edges
}

// referenceDistance computes the shortest planar distance with gonum's
// independent Dijkstra implementation, applying the same walkable filter and
// last-write-wins rule as campus.NewGraph.
func referenceDistance(nodes []campus.Node, edges []campus.Edge, from, to string) float64 {
	ids := make(map[string]int64, len(nodes))
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i, n := range nodes {
		ids[n.ID] = int64(i)
		wg.AddNode(simple.Node(i))
	}
	for _, e := range edges {
		if !e.Walkable || e.From == e.To {
			continue
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(ids[e.From]), simple.Node(ids[e.To]), e.Length))
	}
	_, w := path.DijkstraFrom(simple.Node(ids[from]), wg).To(ids[to])

	return w
}

// requireContiguous checks that consecutive path nodes are adjacent and that
// their edge lengths add up to want.
func requireContiguous(t *testing.T, g *campus.Graph, p []string, want float64) {
	t.Helper()
	sum := 0.0
	for i := 1; i < len(p); i++ {
		nbrs, err := g.Neighbors(p[i-1])
		require.NoError(t, err)
		w, ok := nbrs[p[i]]
		require.True(t, ok, "%s and %s are not adjacent", p[i-1], p[i])
		sum += w
	}
	require.InDelta(t, want, sum, 1e-9)
}
