package httpapi

import (
	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/pathfinder"
	"github.com/katalvlaran/campusnav/route"
	"github.com/katalvlaran/campusnav/units"
)

// Service is the query surface the handlers need. *pathfinder.Finder
// satisfies it.
type Service interface {
	FindRoute(start, end string) (route.Route, error)
	NearestNode(x, y float64, cats ...campus.Category) (string, error)
	Node(id string) (campus.Node, error)
	NodesByCategory(cat campus.Category) ([]campus.Node, error)
	KeyLocations() ([]campus.Node, error)
	Resolve(ref string) (string, error)
	Stats() (pathfinder.Stats, error)
}

var _ Service = (*pathfinder.Finder)(nil)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// RouteResponse is the JSON form of a route.Route.
//
// JSON has no infinity, so an unreachable destination is reported with
// Found=false and null distances.
type RouteResponse struct {
	From          string           `json:"from"`
	To            string           `json:"to"`
	Found         bool             `json:"found"`
	Path          []string         `json:"path"`
	Waypoints     []route.Waypoint `json:"waypoints"`
	PlanarLength  *float64         `json:"planar_length"`
	Distance      *float64         `json:"distance"`
	EstimatedTime float64          `json:"estimated_time"`
	DistanceText  string           `json:"distance_text"`
	TimeText      string           `json:"time_text"`
}

// NewRouteResponse converts r, found between from and to, to its JSON form.
func NewRouteResponse(from, to string, r route.Route) RouteResponse {
	resp := RouteResponse{
		From:          from,
		To:            to,
		Found:         r.Found(),
		Path:          r.Path,
		Waypoints:     r.Waypoints,
		EstimatedTime: r.EstimatedTime,
		DistanceText:  units.FormatDistance(r.Distance),
		TimeText:      units.FormatDuration(r.EstimatedTime),
	}
	if resp.Path == nil {
		resp.Path = []string{}
	}
	if resp.Waypoints == nil {
		resp.Waypoints = []route.Waypoint{}
	}
	if resp.Found {
		planar, metres := r.PlanarLength, r.Distance
		resp.PlanarLength = &planar
		resp.Distance = &metres
	}

	return resp
}

// NodeResponse wraps a single node.
type NodeResponse struct {
	Node campus.Node `json:"node"`
}

// NearestResponse answers GET /v1/nearest.
type NearestResponse struct {
	X    float64     `json:"x"`
	Y    float64     `json:"y"`
	Node campus.Node `json:"node"`
}

// NodesResponse lists nodes.
type NodesResponse struct {
	Count int           `json:"count"`
	Nodes []campus.Node `json:"nodes"`
}

// HealthResponse answers GET /v1/health.
type HealthResponse struct {
	Status string            `json:"status"`
	Stats  *pathfinder.Stats `json:"stats,omitempty"`
}
