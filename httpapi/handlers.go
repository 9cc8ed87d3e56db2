// Package httpapi exposes the campus route finder over HTTP with gin.
//
// All endpoints are read-only JSON:
//
//	GET /v1/route?from=&to=          shortest walking route (IDs or names)
//	GET /v1/nearest?x=&y=&category=  node closest to a map coordinate
//	GET /v1/nodes/:id                one node
//	GET /v1/nodes?category=          nodes of a category
//	GET /v1/locations                key locations sorted by name
//	GET /v1/health                   readiness and graph statistics
//	GET /metrics                     Prometheus exposition
package httpapi

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/pathfinder"
)

// Handlers serves the v1 API from a Service.
type Handlers struct {
	svc    Service
	logger *slog.Logger
}

// NewHandlers returns handlers backed by svc. A nil logger means slog.Default().
func NewHandlers(svc Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handlers{svc: svc, logger: logger}
}

// RegisterRoutes mounts the v1 endpoints on g.
func RegisterRoutes(g *gin.RouterGroup, h *Handlers) {
	g.GET("/route", h.HandleRoute)
	g.GET("/nearest", h.HandleNearest)
	g.GET("/nodes", h.HandleNodes)
	g.GET("/nodes/:id", h.HandleNode)
	g.GET("/locations", h.HandleLocations)
	g.GET("/health", h.HandleHealth)
}

// HandleRoute handles GET /v1/route.
//
// Query Parameters:
//
//	from, to: node ID or case-insensitive node name (required)
//
// Response:
//
//	200 OK: RouteResponse (found=false when unreachable)
//	400 Bad Request: missing parameter
//	404 Not Found: unknown node
//	503 Service Unavailable: no graph loaded
func (h *Handlers) HandleRoute(c *gin.Context) {
	logger := h.requestLogger(c, "HandleRoute")

	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		h.badRequest(c, "from and to parameters are required")
		return
	}

	start, err := h.svc.Resolve(from)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	end, err := h.svc.Resolve(to)
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	r, err := h.svc.FindRoute(start, end)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	logger.Debug("route served", "from", start, "to", end, "found", r.Found())

	c.JSON(http.StatusOK, NewRouteResponse(start, end, r))
}

// HandleNearest handles GET /v1/nearest.
//
// Query Parameters:
//
//	x, y: map coordinates (required, finite)
//	category: restrict candidates; repeatable or comma separated (optional)
//
// Response:
//
//	200 OK: NearestResponse
//	400 Bad Request: missing or malformed coordinate
//	404 Not Found: no node matches the categories
//	503 Service Unavailable: no graph loaded
func (h *Handlers) HandleNearest(c *gin.Context) {
	logger := h.requestLogger(c, "HandleNearest")

	x, okX := parseCoord(c.Query("x"))
	y, okY := parseCoord(c.Query("y"))
	if !okX || !okY {
		h.badRequest(c, "x and y must be finite numbers")
		return
	}

	id, err := h.svc.NearestNode(x, y, categories(c)...)
	if err != nil {
		h.fail(c, logger, err)
		return
	}
	n, err := h.svc.Node(id)
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, NearestResponse{X: x, Y: y, Node: n})
}

// HandleNode handles GET /v1/nodes/:id.
func (h *Handlers) HandleNode(c *gin.Context) {
	logger := h.requestLogger(c, "HandleNode")

	n, err := h.svc.Node(c.Param("id"))
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, NodeResponse{Node: n})
}

// HandleNodes handles GET /v1/nodes?category=. The category is required.
func (h *Handlers) HandleNodes(c *gin.Context) {
	logger := h.requestLogger(c, "HandleNodes")

	cat := strings.TrimSpace(c.Query("category"))
	if cat == "" {
		h.badRequest(c, "category parameter is required")
		return
	}

	nodes, err := h.svc.NodesByCategory(campus.Category(cat))
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, NodesResponse{Count: len(nodes), Nodes: nodes})
}

// HandleLocations handles GET /v1/locations: the key locations a user can
// pick as start or destination, sorted by name.
func (h *Handlers) HandleLocations(c *gin.Context) {
	logger := h.requestLogger(c, "HandleLocations")

	nodes, err := h.svc.KeyLocations()
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, NodesResponse{Count: len(nodes), Nodes: nodes})
}

// HandleHealth handles GET /v1/health.
//
// Response:
//
//	200 OK: HealthResponse with graph statistics
//	503 Service Unavailable: no graph loaded yet
func (h *Handlers) HandleHealth(c *gin.Context) {
	st, err := h.svc.Stats()
	if err != nil {
		c.Header("Retry-After", "5")
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "loading"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Stats: &st})
}

func (h *Handlers) requestLogger(c *gin.Context, handler string) *slog.Logger {
	return h.logger.With("request_id", requestID(c), "handler", handler)
}

func (h *Handlers) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Code: "BAD_REQUEST"})
}

// fail maps service errors to status codes.
func (h *Handlers) fail(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, pathfinder.ErrNotLoaded):
		c.Header("Retry-After", "5")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error(), Code: "NOT_LOADED"})
	case errors.Is(err, pathfinder.ErrUnknownNode):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "UNKNOWN_NODE"})
	case errors.Is(err, pathfinder.ErrNoCandidate):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "NO_CANDIDATE"})
	default:
		logger.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "INTERNAL"})
	}
}

// requestID returns the caller's X-Request-ID or a fresh one, echoing it back.
func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Header("X-Request-ID", id)

	return id
}

func parseCoord(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// categories collects ?category= values, accepting both repeats and commas.
func categories(c *gin.Context) []campus.Category {
	var out []campus.Category
	for _, raw := range c.QueryArray("category") {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, campus.Category(s))
			}
		}
	}

	return out
}
