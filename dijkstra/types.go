// Package dijkstra defines core types and configuration options
// for shortest-path search over the walkable campus graph.
//
// Options:
//
//	– Strategy:    StrategyHeap (default) or StrategyLinearScan.
//	– MaxDistance: optional cap on planar distance; nodes beyond it count as unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance is negative or NaN (raised via panic by the option).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath and Distances.
var (
	// ErrNilGraph indicates that a nil *campus.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Strategy selects how the next closest unvisited vertex is found.
//
// Both strategies settle vertices in non-decreasing distance order and
// relax edges identically, so they return the same distances. When several
// shortest paths tie, which one is reported is unspecified and may differ
// between strategies.
type Strategy int

const (
	// StrategyHeap keeps a min-priority queue with lazy decrease-key.
	// O((V + E) log V).
	StrategyHeap Strategy = iota

	// StrategyLinearScan scans the whole unvisited set for its minimum on
	// every step. O(V²), no auxiliary queue; fine for campus-sized graphs.
	StrategyLinearScan
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinearScan:
		return "linear-scan"
	default:
		return "unknown"
	}
}

// Options configures a search.
//
// Strategy    – vertex selection strategy (default StrategyHeap).
// MaxDistance – vertices whose distance would exceed this value are never
//
//	settled. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Strategy    Strategy
	MaxDistance float64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithStrategy selects the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDistance sets a maximum planar distance threshold.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: heap strategy, no distance cap.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyHeap,
		MaxDistance: math.Inf(1),
	}
}

// Result is the outcome of a single-pair search.
//
// Path lists vertex IDs from source to target inclusive. When the target is
// unreachable Path is nil and Length is +Inf. When source equals target Path
// holds that single vertex and Length is 0.
type Result struct {
	Path   []string
	Length float64
}

// Found reports whether a path exists.
func (r Result) Found() bool {
	return len(r.Path) > 0 && !math.IsInf(r.Length, 1)
}
