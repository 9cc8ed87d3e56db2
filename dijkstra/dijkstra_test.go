// Package dijkstra_test contains unit tests for the shortest-path search.
// Every scenario runs under both strategies; tied paths are never asserted
// by identity, only by length.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// DijkstraSuite runs each test once per strategy.
type DijkstraSuite struct {
	suite.Suite
	strategy dijkstra.Strategy
}

func TestDijkstraHeap(t *testing.T) {
	suite.Run(t, &DijkstraSuite{strategy: dijkstra.StrategyHeap})
}

func TestDijkstraLinearScan(t *testing.T) {
	suite.Run(t, &DijkstraSuite{strategy: dijkstra.StrategyLinearScan})
}

func (s *DijkstraSuite) search(g *campus.Graph, from, to string, opts ...dijkstra.Option) dijkstra.Result {
	opts = append(opts, dijkstra.WithStrategy(s.strategy))
	res, err := dijkstra.ShortestPath(g, from, to, opts...)
	require.NoError(s.T(), err)

	return res
}

// build creates a graph whose nodes are the distinct endpoints of edges,
// all categorised as buildings.
func build(t require.TestingT, edges ...campus.Edge) *campus.Graph {
	seen := map[string]bool{}
	var nodes []campus.Node
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			nodes = append(nodes, campus.Node{ID: id, Category: campus.CategoryBuilding})
		}
	}
	for _, e := range edges {
		add(e.From)
		add(e.To)
	}
	g, err := campus.NewGraph(nodes, edges)
	require.NoError(t, err)

	return g
}

func walk(from, to string, length float64) campus.Edge {
	return campus.Edge{From: from, To: to, Length: length, Walkable: true}
}

// TestLine checks the S–M–E scenario: a straight two-hop path.
func (s *DijkstraSuite) TestLine() {
	g := build(s.T(), walk("S", "M", 3), walk("M", "E", 5))
	res := s.search(g, "S", "E")
	require.True(s.T(), res.Found())
	require.Equal(s.T(), []string{"S", "M", "E"}, res.Path)
	require.Equal(s.T(), 8.0, res.Length)
}

// TestTriangleShortcut verifies the two-hop path wins over a longer direct edge.
func (s *DijkstraSuite) TestTriangleShortcut() {
	g := build(s.T(), walk("A", "B", 1), walk("B", "C", 2), walk("A", "C", 5))
	res := s.search(g, "A", "C")
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
	require.Equal(s.T(), 3.0, res.Length)
}

// TestUndirected confirms the reverse query returns the reversed path.
func (s *DijkstraSuite) TestUndirected() {
	g := build(s.T(), walk("A", "B", 1.5), walk("B", "C", 2.25), walk("A", "C", 5))
	fwd := s.search(g, "A", "C")
	back := s.search(g, "C", "A")
	require.Equal(s.T(), fwd.Length, back.Length)
	require.Equal(s.T(), []string{"C", "B", "A"}, back.Path)
}

// TestSameSourceAndTarget returns a single-vertex, zero-length path.
func (s *DijkstraSuite) TestSameSourceAndTarget() {
	g := build(s.T(), walk("A", "B", 1))
	res := s.search(g, "A", "A")
	require.Equal(s.T(), []string{"A"}, res.Path)
	require.Zero(s.T(), res.Length)
	require.True(s.T(), res.Found())
}

// TestNonWalkableEdgeBlocks verifies the no-path sentinel.
func (s *DijkstraSuite) TestNonWalkableEdgeBlocks() {
	nodes := []campus.Node{
		{ID: "S", Category: campus.CategoryGate},
		{ID: "M", Category: campus.CategoryJunction, Y: 3},
		{ID: "E", Category: campus.CategoryBuilding, Y: 8},
	}
	g, err := campus.NewGraph(nodes, []campus.Edge{
		walk("S", "M", 3),
		{From: "M", To: "E", Length: 5, Walkable: false},
	})
	require.NoError(s.T(), err)

	res := s.search(g, "S", "E")
	require.False(s.T(), res.Found())
	require.Empty(s.T(), res.Path)
	require.True(s.T(), math.IsInf(res.Length, 1))
}

// TestZeroLengthEdges are legal and traversed like any other edge.
func (s *DijkstraSuite) TestZeroLengthEdges() {
	g := build(s.T(), walk("A", "B", 0), walk("B", "C", 0), walk("A", "C", 1))
	res := s.search(g, "A", "C")
	require.Zero(s.T(), res.Length)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
}

// TestEqualCostTie only checks length: which of the two paths wins is unspecified.
func (s *DijkstraSuite) TestEqualCostTie() {
	g := build(s.T(), walk("A", "B", 1), walk("B", "D", 1), walk("A", "C", 1), walk("C", "D", 1))
	res := s.search(g, "A", "D")
	require.Equal(s.T(), 2.0, res.Length)
	require.Len(s.T(), res.Path, 3)
	require.Equal(s.T(), "A", res.Path[0])
	require.Equal(s.T(), "D", res.Path[2])
}

// TestMaxDistance makes vertices beyond the cap unreachable.
func (s *DijkstraSuite) TestMaxDistance() {
	g := build(s.T(), walk("A", "B", 2), walk("B", "C", 2))
	require.True(s.T(), s.search(g, "A", "B", dijkstra.WithMaxDistance(3)).Found())
	require.False(s.T(), s.search(g, "A", "C", dijkstra.WithMaxDistance(3)).Found())
	require.True(s.T(), s.search(g, "A", "C", dijkstra.WithMaxDistance(4)).Found())
}

// TestDistances settles the full component and leaves the rest at +Inf.
func (s *DijkstraSuite) TestDistances() {
	g := build(s.T(), walk("A", "B", 1), walk("B", "C", 2), walk("X", "Y", 1))
	dist, prev, err := dijkstra.Distances(g, "A", dijkstra.WithStrategy(s.strategy))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, dist["A"])
	require.Equal(s.T(), 1.0, dist["B"])
	require.Equal(s.T(), 3.0, dist["C"])
	require.True(s.T(), math.IsInf(dist["X"], 1))
	require.Equal(s.T(), "B", prev["C"])
	require.NotContains(s.T(), prev, "A")
	require.NotContains(s.T(), prev, "Y")
}

func TestShortestPath_Errors(t *testing.T) {
	g := build(t, walk("A", "B", 1))

	_, err := dijkstra.ShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(g, "Z", "B")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Distances(g, "")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestWithMaxDistance_Panics(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	require.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

func TestStrategy_String(t *testing.T) {
	require.Equal(t, "heap", dijkstra.StrategyHeap.String())
	require.Equal(t, "linear-scan", dijkstra.StrategyLinearScan.String())
	require.Equal(t, "unknown", dijkstra.Strategy(42).String())
}

// TestStrategiesAgree compares every pair on a grid with irregular lengths.
func TestStrategiesAgree(t *testing.T) {
	var edges []campus.Edge
	id := func(r, c int) string { return string(rune('a'+r)) + string(rune('0'+c)) }
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if c+1 < 5 {
				edges = append(edges, walk(id(r, c), id(r, c+1), float64((r*7+c*3)%5)+0.5))
			}
			if r+1 < 5 {
				edges = append(edges, walk(id(r, c), id(r+1, c), float64((r*3+c*11)%7)+0.25))
			}
		}
	}
	g := build(t, edges...)

	for _, src := range g.Vertices() {
		heapDist, _, err := dijkstra.Distances(g, src)
		require.NoError(t, err)
		scanDist, _, err := dijkstra.Distances(g, src, dijkstra.WithStrategy(dijkstra.StrategyLinearScan))
		require.NoError(t, err)
		require.Equal(t, heapDist, scanDist, "source %s", src)
	}
}
