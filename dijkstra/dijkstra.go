package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/campusnav/campus"
)

// ShortestPath computes a minimum-length walkable path from source to target.
//
// Returns:
//
//   - Result{Path, Length}: Path is source…target inclusive. An unreachable
//     target yields Path == nil and Length == +Inf; this is a normal result,
//     not an error.
//   - err: ErrNilGraph, or ErrVertexNotFound wrapping the unknown ID.
//
// The search stops as soon as target is settled, when no reachable unvisited
// vertex remains, or when every vertex has been visited.
//
// Complexity:
//
//   - StrategyHeap:       O((V + E) log V)
//   - StrategyLinearScan: O(V² + E)
func ShortestPath(g *campus.Graph, source, target string, opts ...Option) (Result, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return Result{}, err
	}
	if !g.HasNode(target) {
		return Result{}, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	r.target = target
	r.run()

	return r.result(), nil
}

// Distances computes shortest distances from source to every vertex.
//
// Returns:
//
//   - dist: vertex ID → planar distance, +Inf when unreachable.
//   - prev: vertex ID → predecessor on one shortest path; absent for the
//     source and for unreachable vertices.
//   - err:  ErrNilGraph or ErrVertexNotFound.
func Distances(g *campus.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, nil, err
	}
	r.run()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *campus.Graph
	options Options
	source  string
	target  string             // "" means settle every reachable vertex
	dist    map[string]float64 // vertex ID → best known distance from source
	prev    map[string]string  // vertex ID → predecessor on the best known path
	visited map[string]bool    // vertex ID → distance is final
}

func newRunner(g *campus.Graph, source string, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
	}
	for _, v := range g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	return r, nil
}

func (r *runner) run() {
	switch r.options.Strategy {
	case StrategyLinearScan:
		r.linearScan()
	default:
		r.heap()
	}
}

// nodeItem is a (vertex, distance) pair stored in the priority queue.
type nodeItem struct {
	id   string
	dist float64
}

// byDist orders *nodeItem ascending by distance.
func byDist(a, b interface{}) int {
	da, db := a.(*nodeItem).dist, b.(*nodeItem).dist
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}

// heap runs the priority-queue variant. Stale queue entries (vertices already
// settled through a shorter entry) are skipped when popped.
func (r *runner) heap() {
	pq := priorityqueue.NewWith(byDist)
	pq.Enqueue(&nodeItem{id: r.source, dist: 0})

	for !pq.Empty() {
		v, _ := pq.Dequeue()
		item := v.(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u, func(v string, d float64) {
			pq.Enqueue(&nodeItem{id: v, dist: d})
		})
	}
}

// linearScan runs the O(V²) variant: on each step it picks the unvisited
// vertex with the smallest finite distance. Candidates are scanned in sorted
// ID order, so among equal distances the smallest ID is chosen.
func (r *runner) linearScan() {
	unvisited := r.g.Vertices()
	for len(unvisited) > 0 {
		best := -1
		smallest := math.Inf(1)
		for i, v := range unvisited {
			if r.dist[v] < smallest {
				smallest, best = r.dist[v], i
			}
		}
		if best < 0 || smallest > r.options.MaxDistance {
			return
		}
		u := unvisited[best]
		unvisited = append(unvisited[:best], unvisited[best+1:]...)
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u, nil)
	}
}

// relax tries to improve the distance of every unvisited neighbour of u.
// Only strictly shorter candidates replace the current distance. onImprove,
// when set, is told about every improvement.
func (r *runner) relax(u string, onImprove func(v string, d float64)) {
	base := r.dist[u]
	r.g.EachNeighbor(u, func(v string, w float64) {
		if r.visited[v] {
			return
		}
		nd := base + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			return
		}
		r.dist[v] = nd
		r.prev[v] = u
		if onImprove != nil {
			onImprove(v, nd)
		}
	})
}

// result reconstructs the path to r.target by walking predecessors backward.
func (r *runner) result() Result {
	if r.target == r.source {
		return Result{Path: []string{r.source}, Length: 0}
	}
	if _, ok := r.prev[r.target]; !ok || !r.visited[r.target] {
		return Result{Length: math.Inf(1)}
	}

	var path []string
	for cur := r.target; ; cur = r.prev[cur] {
		path = append(path, cur)
		if cur == r.source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Length: r.dist[r.target]}
}
