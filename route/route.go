// Package route turns shortest-path searches into walkable routes and keeps
// a precomputed table of routes between key locations.
//
// Overview:
//
//   - Engine.ComputeRoute runs a fresh search and annotates the result with
//     waypoints, metres and walking minutes.
//   - BuildCache computes every ordered pair of distinct key locations once;
//     Cache.Lookup is a plain map read afterwards.
//
// Routes handed out by a Cache are shared between callers and must be
// treated as read-only; use Route.Clone before modifying one.
package route

import (
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *campus.Graph was passed.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrUnknownNode indicates the start or end ID is not in the graph.
	// It is distinct from a no-path result, which is not an error.
	ErrUnknownNode = errors.New("route: unknown node")
)

// Waypoint is one drawable stop along a route.
type Waypoint struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Route is the complete answer to a path query.
//
// Path and Waypoints are parallel. A route that does not exist is
// represented by NoPath(): empty Path, +Inf PlanarLength and Distance, zero
// EstimatedTime. Check Found() before drawing.
type Route struct {
	Path          []string
	Waypoints     []Waypoint
	PlanarLength  float64 // map units
	Distance      float64 // metres
	EstimatedTime float64 // minutes, fractional
}

// NoPath returns the sentinel route for unreachable destinations.
func NoPath() Route {
	return Route{
		Path:         []string{},
		Waypoints:    []Waypoint{},
		PlanarLength: math.Inf(1),
		Distance:     math.Inf(1),
	}
}

// Found reports whether r is an actual route rather than the NoPath sentinel.
func (r Route) Found() bool {
	return len(r.Path) > 0 && !math.IsInf(r.Distance, 1)
}

// Start returns the first node ID, or "" for NoPath.
func (r Route) Start() string {
	if len(r.Path) == 0 {
		return ""
	}

	return r.Path[0]
}

// End returns the last node ID, or "" for NoPath.
func (r Route) End() string {
	if len(r.Path) == 0 {
		return ""
	}

	return r.Path[len(r.Path)-1]
}

// Clone returns a deep copy that the caller may modify.
func (r Route) Clone() Route {
	out := r
	out.Path = append([]string{}, r.Path...)
	out.Waypoints = append([]Waypoint{}, r.Waypoints...)

	return out
}

// Reverse returns the same route walked the other way. Lengths and time are unchanged.
func (r Route) Reverse() Route {
	out := r.Clone()
	for i, j := 0, len(out.Path)-1; i < j; i, j = i+1, j-1 {
		out.Path[i], out.Path[j] = out.Path[j], out.Path[i]
		out.Waypoints[i], out.Waypoints[j] = out.Waypoints[j], out.Waypoints[i]
	}

	return out
}
