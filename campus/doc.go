// Package campus holds the walkable campus network: named locations (nodes)
// and the walkable connections between them (edges).
//
// Overview:
//
//   - NewGraph validates raw node/edge records and builds an undirected
//     adjacency map containing only walkable edges.
//   - A Graph is immutable once built. Reloading pathway data means building
//     a new Graph and swapping it in; there is no partial mutation.
//   - Queries: Node, NodesByCategory, Nearest, KeyLocations, Resolve,
//     Neighbors, Reachable, Components.
//
// Coordinates:
//
//	X and Y are percentages of a normalized map viewport in [0,100].
//	Edge lengths are planar units in the same space; package units converts
//	them to metres and walking minutes.
//
// Key locations:
//
//	Nodes whose category is "building" or "gate" (configurable through
//	WithKeyCategories). They seed the route cache and populate the
//	start/destination choices of the map UI.
//
// Errors (sentinel):
//
//   - ErrEmptyGraph:      no nodes supplied.
//   - ErrInvalidRecord:   a record failed field validation.
//   - ErrDuplicateNode:   two nodes share an ID.
//   - ErrUnknownEndpoint: an edge names a node that was not supplied.
//   - ErrNodeNotFound:    a query named an unknown node.
//
// Example:
//
//	g, err := campus.NewGraph(nodes, edges)
//	if err != nil {
//	    return err
//	}
//	id, ok := g.Nearest(42.0, 17.5, campus.CategoryBuilding)
package campus
