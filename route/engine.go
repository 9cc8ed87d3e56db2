package route

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/units"
)

// Engine computes routes on demand. It holds no graph of its own; every call
// receives the graph snapshot to search, so a reload never leaves an Engine stale.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	conv   units.Converter
	search []dijkstra.Option
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithConverter sets the unit converter used to annotate routes.
func WithConverter(c units.Converter) EngineOption {
	return func(e *Engine) { e.conv = c }
}

// WithSearchOptions forwards options to every dijkstra search (strategy, distance cap).
func WithSearchOptions(opts ...dijkstra.Option) EngineOption {
	own := append([]dijkstra.Option(nil), opts...)

	return func(e *Engine) { e.search = append(e.search, own...) }
}

// NewEngine returns an Engine using units.New() unless overridden.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{conv: units.New()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Converter returns the unit converter in use.
func (e *Engine) Converter() units.Converter { return e.conv }

// ComputeRoute runs a fresh shortest-path search from start to end.
//
// Returns:
//   - a found route: Path start…end, Waypoints, PlanarLength, Distance (m),
//     EstimatedTime (min). start == end yields a one-node, zero-length route.
//   - NoPath() with a nil error when end is unreachable.
//   - ErrUnknownNode when either ID is not in g; ErrNilGraph when g is nil.
func (e *Engine) ComputeRoute(g *campus.Graph, start, end string) (Route, error) {
	if g == nil {
		return Route{}, ErrNilGraph
	}
	for _, id := range [...]string{start, end} {
		if !g.HasNode(id) {
			return Route{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}

	res, err := dijkstra.ShortestPath(g, start, end, e.search...)
	if err != nil {
		return Route{}, fmt.Errorf("route: search %s→%s: %w", start, end, err)
	}
	if !res.Found() {
		return NoPath(), nil
	}

	return e.annotate(g, res), nil
}

// annotate attaches waypoints and real-world figures to a search result.
func (e *Engine) annotate(g *campus.Graph, res dijkstra.Result) Route {
	wps := make([]Waypoint, len(res.Path))
	for i, id := range res.Path {
		n, _ := g.Node(id)
		wps[i] = Waypoint{ID: n.ID, Name: n.Name, X: n.X, Y: n.Y}
	}
	metres := e.conv.ToRealDistance(res.Length)

	return Route{
		Path:          res.Path,
		Waypoints:     wps,
		PlanarLength:  res.Length,
		Distance:      metres,
		EstimatedTime: e.conv.ToWalkingTime(metres),
	}
}
