// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Immutable campus graph snapshot: construction, lookups, nearest node.
//
// Determinism:
//   - Nodes(), NodesByCategory() and Nearest() follow input order.
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - A Graph is never mutated after NewGraph returns, so every method is
//     safe for concurrent use without locks. Reloading means building a new Graph.

package campus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/btree"
)

// Graph is a validated, read-only view of the walkable campus network.
type Graph struct {
	nodes []Node         // input order
	index map[string]int // node ID → position in nodes

	// adjacency[u][v] = planar length of the walkable edge u-v.
	// Symmetric by construction; non-walkable edges are absent.
	adjacency map[string]map[string]float64
	order     map[string][]string // neighbour IDs sorted ascending, for deterministic walks
	edgeCount int

	keyCats map[Category]struct{}
	byName  *btree.BTreeG[nameEntry] // all nodes ordered by folded name, then ID
}

// nameEntry is the ordering key of the name index.
type nameEntry struct {
	fold string
	id   string
}

func nameLess(a, b nameEntry) bool {
	if a.fold != b.fold {
		return a.fold < b.fold
	}

	return a.id < b.id
}

// NewGraph validates nodes and edges and builds the adjacency structure.
//
// Construction is all-or-nothing: the first invalid record aborts and no Graph
// is returned. Every edge endpoint must name a loaded node, walkable or not.
// When several walkable records connect the same pair, the later record wins
// (last-write-wins, kept for compatibility with existing pathway files).
// Self-loops are accepted but never enter the adjacency; they cannot shorten a path.
//
// Complexity: O(V log V + E log E).
func NewGraph(nodes []Node, edges []Edge, opts ...Option) (*Graph, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	g := &Graph{
		nodes:     make([]Node, len(nodes)),
		index:     make(map[string]int, len(nodes)),
		adjacency: make(map[string]map[string]float64, len(nodes)),
		keyCats:   make(map[Category]struct{}, len(cfg.keyCategories)),
		byName:    btree.NewBTreeG(nameLess),
	}
	for _, c := range cfg.keyCategories {
		g.keyCats[c] = struct{}{}
	}

	for i, n := range nodes {
		if err := validateNode(i, n); err != nil {
			return nil, err
		}
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		g.nodes[i] = n
		g.index[n.ID] = i
		g.adjacency[n.ID] = make(map[string]float64)
		g.byName.Set(nameEntry{fold: strings.ToLower(n.Name), id: n.ID})
	}

	for i, e := range edges {
		if err := validateEdge(i, e); err != nil {
			return nil, err
		}
		if _, ok := g.index[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge #%d references %q", ErrUnknownEndpoint, i, e.From)
		}
		if _, ok := g.index[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge #%d references %q", ErrUnknownEndpoint, i, e.To)
		}
		if !e.Walkable || e.From == e.To {
			continue
		}
		if _, seen := g.adjacency[e.From][e.To]; !seen {
			g.edgeCount++
		}
		g.adjacency[e.From][e.To] = e.Length
		g.adjacency[e.To][e.From] = e.Length
	}

	g.order = make(map[string][]string, len(g.adjacency))
	for u, nbrs := range g.adjacency {
		ids := make([]string, 0, len(nbrs))
		for v := range nbrs {
			ids = append(ids, v)
		}
		sort.Strings(ids)
		g.order[u] = ids
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of distinct walkable node pairs.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasNode reports whether id is a loaded node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Nodes returns a copy of all nodes in input order.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// NodesByCategory returns the nodes of one category in input order.
// The result is empty (not nil-checked by callers) when nothing matches.
func (g *Graph) NodesByCategory(cat Category) []Node {
	out := make([]Node, 0)
	for _, n := range g.nodes {
		if n.Category == cat {
			out = append(out, n)
		}
	}

	return out
}

// Vertices returns all node IDs sorted ascending.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns a copy of the walkable neighbours of id with their edge lengths.
func (g *Graph) Neighbors(id string) (map[string]float64, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make(map[string]float64, len(adj))
	for v, w := range adj {
		out[v] = w
	}

	return out, nil
}

// EachNeighbor calls fn for every walkable neighbour of id in ascending ID
// order, without copying. Unknown IDs produce no calls.
func (g *Graph) EachNeighbor(id string, fn func(neighbor string, length float64)) {
	adj := g.adjacency[id]
	for _, v := range g.order[id] {
		fn(v, adj[v])
	}
}

// IsKey reports whether the node category is a key-location category.
func (g *Graph) IsKey(n Node) bool {
	_, ok := g.keyCats[n.Category]

	return ok
}

// KeyIDs returns the IDs of key locations in input order.
func (g *Graph) KeyIDs() []string {
	ids := make([]string, 0)
	for _, n := range g.nodes {
		if g.IsKey(n) {
			ids = append(ids, n.ID)
		}
	}

	return ids
}

// KeyLocations returns key locations ordered by display name
// (case-insensitive), ties broken by ID. This is the list offered to users
// when choosing a start or destination.
func (g *Graph) KeyLocations() []Node {
	out := make([]Node, 0)
	g.byName.Scan(func(e nameEntry) bool {
		n := g.nodes[g.index[e.id]]
		if g.IsKey(n) {
			out = append(out, n)
		}

		return true
	})

	return out
}

// FindByName returns the node whose display name equals name, ignoring case.
// When several nodes share the name, the smallest ID wins. Empty names never match.
func (g *Graph) FindByName(name string) (Node, bool) {
	if name == "" {
		return Node{}, false
	}
	fold := strings.ToLower(name)
	var (
		found Node
		ok    bool
	)
	g.byName.Ascend(nameEntry{fold: fold}, func(e nameEntry) bool {
		if e.fold == fold {
			found, ok = g.nodes[g.index[e.id]], true
		}

		return false
	})

	return found, ok
}

// Resolve maps a user-supplied reference to a node ID: an exact ID match
// first, then a case-insensitive display-name match.
func (g *Graph) Resolve(ref string) (string, bool) {
	if g.HasNode(ref) {
		return ref, true
	}
	if n, ok := g.FindByName(ref); ok {
		return n.ID, true
	}

	return "", false
}

// Nearest returns the ID of the node closest to (x, y) by Euclidean distance.
//
// When cats is non-empty only nodes of those categories are candidates.
// Equidistant candidates resolve to the one appearing first in input order.
// The boolean is false when no node qualifies.
//
// Complexity: O(V).
func (g *Graph) Nearest(x, y float64, cats ...Category) (string, bool) {
	var (
		bestID string
		bestD2 float64
		found  bool
	)
	for _, n := range g.nodes {
		if len(cats) > 0 && !hasCategory(cats, n.Category) {
			continue
		}
		dx, dy := n.X-x, n.Y-y
		d2 := dx*dx + dy*dy // squared distance orders identically to Euclidean
		if !found || d2 < bestD2 {
			bestID, bestD2, found = n.ID, d2, true
		}
	}

	return bestID, found
}

func hasCategory(cats []Category, c Category) bool {
	for _, want := range cats {
		if want == c {
			return true
		}
	}

	return false
}
