// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// walkable campus graph (package campus).
//
// Overview:
//
//   - ShortestPath answers a single (source, target) query and stops as soon
//     as the target is settled.
//   - Distances settles every vertex reachable from the source.
//   - Edge lengths are non-negative planar floats; campus.NewGraph rejects
//     anything else, so no negative-weight scan is needed here.
//
// Strategies:
//
//   - StrategyHeap (default): min-priority queue with lazy decrease-key.
//     Duplicates are pushed on improvement and stale entries are skipped when
//     popped. O((V + E) log V).
//   - StrategyLinearScan: the unvisited set is scanned for its minimum on every
//     step. O(V²). Kept because campus graphs are small and it needs no queue.
//
// Both strategies relax edges with the same strict "<" rule and produce the
// same distances. When several equal-length paths exist, which one is
// returned is unspecified; callers and tests must compare lengths, not paths.
//
// Unreachable targets:
//
//	An unreachable target is not an error. ShortestPath returns
//	Result{Path: nil, Length: +Inf}; check Result.Found().
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       a nil *campus.Graph was passed.
//   - ErrVertexNotFound: source or target is not in the graph.
//   - ErrBadMaxDistance: WithMaxDistance received a negative or NaN value (panic).
//
// API reference:
//
//	func ShortestPath(g *campus.Graph, source, target string, opts ...Option) (Result, error)
//	func Distances(g *campus.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error)
//
//	  - opts:
//	      • WithStrategy(StrategyHeap | StrategyLinearScan)
//	      • WithMaxDistance(float64): vertices farther than the cap stay unreachable.
package dijkstra
