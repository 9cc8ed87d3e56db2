package pathfinder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "campusnav"
	subsystem = "pathfinder"
)

// Metrics holds the Prometheus collectors updated by a Finder.
// A nil *Metrics disables instrumentation.
type Metrics struct {
	// cacheHits counts FindRoute calls answered from the precomputed table.
	cacheHits prometheus.Counter

	// cacheMisses counts FindRoute calls that fell back to a fresh search.
	cacheMisses prometheus.Counter

	// computeSeconds measures fresh searches.
	computeSeconds prometheus.Histogram

	// loads counts Load attempts.
	// Labels: result (ok, error)
	loads *prometheus.CounterVec

	// loadSeconds measures Load including the cache build.
	loadSeconds prometheus.Histogram

	graphNodes   prometheus.Gauge
	graphEdges   prometheus.Gauge
	cachedRoutes prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_hits_total",
			Help:      "Route queries answered from the key-location cache",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_misses_total",
			Help:      "Route queries that required a fresh shortest-path search",
		}),
		computeSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "compute_duration_seconds",
			Help:      "Duration of on-demand shortest-path searches",
			Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}),
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "loads_total",
			Help:      "Graph load attempts by result",
		}, []string{"result"}),
		loadSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "load_duration_seconds",
			Help:      "Duration of graph loads including the route cache build",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		graphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "graph_nodes",
			Help:      "Nodes in the active campus graph",
		}),
		graphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "graph_walkable_edges",
			Help:      "Walkable edges in the active campus graph",
		}),
		cachedRoutes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cached_routes",
			Help:      "Precomputed routes between key locations",
		}),
	}
}

func (m *Metrics) hit() {
	if m != nil {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) miss(seconds float64) {
	if m != nil {
		m.cacheMisses.Inc()
		m.computeSeconds.Observe(seconds)
	}
}

func (m *Metrics) loadFailed(seconds float64) {
	if m != nil {
		m.loads.WithLabelValues("error").Inc()
		m.loadSeconds.Observe(seconds)
	}
}

func (m *Metrics) loaded(s *snapshot, seconds float64) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues("ok").Inc()
	m.loadSeconds.Observe(seconds)
	m.graphNodes.Set(float64(s.graph.Len()))
	m.graphEdges.Set(float64(s.graph.EdgeCount()))
	m.cachedRoutes.Set(float64(s.cache.Len()))
}
