// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Category records, sentinel errors and Graph options.
// Policy:
//   - Records are plain values; once handed to NewGraph they are copied and never mutated.
//   - Every error returned by this package wraps one of the sentinels below.

package campus

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyGraph indicates that NewGraph received no nodes at all.
	ErrEmptyGraph = errors.New("campus: graph has no nodes")

	// ErrInvalidRecord indicates a node or edge record failed field validation
	// (empty ID, coordinates outside [0,100], negative or non-finite length).
	ErrInvalidRecord = errors.New("campus: invalid record")

	// ErrDuplicateNode indicates two node records share the same ID.
	ErrDuplicateNode = errors.New("campus: duplicate node id")

	// ErrUnknownEndpoint indicates an edge references a node ID that was not loaded.
	ErrUnknownEndpoint = errors.New("campus: edge endpoint not found")

	// ErrNodeNotFound indicates a query referenced a node ID absent from the graph.
	ErrNodeNotFound = errors.New("campus: node not found")
)

// Category classifies a node. Buildings and gates are key locations; every
// other non-empty category is a generic waypoint.
type Category string

// Well-known categories found in campus pathway data.
const (
	CategoryBuilding Category = "building"
	CategoryGate     Category = "gate"
	CategoryJunction Category = "junction"
	CategoryPath     Category = "path"
	CategoryEntrance Category = "entrance"
)

// DefaultKeyCategories lists the categories precomputed by the route cache
// and offered to end users as start/end choices.
var DefaultKeyCategories = []Category{CategoryBuilding, CategoryGate}

// Node is a named location on the campus map.
//
// X and Y are percentages of the normalized map viewport, both in [0,100].
// The tags follow the pathways document layout ("type" and "name").
type Node struct {
	ID       string   `json:"id" yaml:"id" validate:"required"`
	Category Category `json:"type" yaml:"type" validate:"required"`
	X        float64  `json:"x" yaml:"x" validate:"gte=0,lte=100"`
	Y        float64  `json:"y" yaml:"y" validate:"gte=0,lte=100"`
	Name     string   `json:"name" yaml:"name"`
}

// Edge is an undirected connection between two nodes.
//
// Length is measured in planar map units. Only walkable edges are routable.
type Edge struct {
	From     string  `json:"start" yaml:"start" validate:"required"`
	To       string  `json:"end" yaml:"end" validate:"required"`
	Length   float64 `json:"distance" yaml:"distance" validate:"gte=0"`
	Walkable bool    `json:"walkable" yaml:"walkable"`
}

// Option configures a Graph at construction time.
type Option func(*options)

type options struct {
	keyCategories []Category
}

// WithKeyCategories overrides which categories count as key locations.
// Passing no categories panics; a graph without key locations cannot seed a cache.
func WithKeyCategories(cats ...Category) Option {
	if len(cats) == 0 {
		panic("campus: WithKeyCategories: at least one category is required")
	}
	own := append([]Category(nil), cats...)

	return func(o *options) { o.keyCategories = own }
}

func defaultOptions() options {
	return options{keyCategories: append([]Category(nil), DefaultKeyCategories...)}
}
