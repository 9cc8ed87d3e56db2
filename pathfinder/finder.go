// SPDX-License-Identifier: MIT
//
// File: finder.go
// Role: Query facade over the active campus snapshot.
//
// Concurrency:
//   - Queries read one immutable snapshot through an atomic pointer and never lock.
//   - Load builds the graph and the full route cache off to the side, then
//     publishes them with a single Store. Concurrent Loads are serialized.
//   - A failed Load leaves the previous snapshot in service.

package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/route"
)

// Sentinel errors.
var (
	// ErrNotLoaded is returned by every query before the first successful Load.
	ErrNotLoaded = errors.New("pathfinder: no campus graph loaded")

	// ErrUnknownNode is returned when a query names a node ID that is not in
	// the active graph. It is the same value as route.ErrUnknownNode.
	ErrUnknownNode = route.ErrUnknownNode

	// ErrNoCandidate is returned by NearestNode when no node matches the
	// requested categories.
	ErrNoCandidate = errors.New("pathfinder: no node matches the requested categories")
)

// snapshot is everything a query needs. It is never mutated once published.
type snapshot struct {
	graph      *campus.Graph
	cache      *route.Cache
	generation uuid.UUID
	loadedAt   time.Time
}

// Option configures a Finder.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	engine    *route.Engine
	metrics   *Metrics
	graphOpts []campus.Option
	cacheOpts []route.CacheOption
	debounce  time.Duration
}

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pathfinder: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithEngine sets the route engine (unit converter and search options).
// Default: route.NewEngine().
func WithEngine(e *route.Engine) Option {
	if e == nil {
		panic("pathfinder: WithEngine: nil engine")
	}

	return func(o *options) { o.engine = e }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithGraphOptions forwards options to campus.NewGraph on every Load.
func WithGraphOptions(opts ...campus.Option) Option {
	own := append([]campus.Option(nil), opts...)

	return func(o *options) { o.graphOpts = append(o.graphOpts, own...) }
}

// WithCacheOptions forwards options to route.BuildCache on every Load.
func WithCacheOptions(opts ...route.CacheOption) Option {
	own := append([]route.CacheOption(nil), opts...)

	return func(o *options) { o.cacheOpts = append(o.cacheOpts, own...) }
}

// WithWatchDebounce sets the quiet period WatchFile waits before reloading.
// Default: loader.DefaultDebounce.
func WithWatchDebounce(d time.Duration) Option {
	if d <= 0 {
		panic("pathfinder: WithWatchDebounce: d must be > 0")
	}

	return func(o *options) { o.debounce = d }
}

// Finder answers route and location queries against the most recently
// loaded campus graph. The zero value is not usable; call New.
type Finder struct {
	opts options

	mu  sync.Mutex // serializes Load
	cur atomic.Pointer[snapshot]
}

// New returns an empty Finder. Every query fails with ErrNotLoaded until
// Load succeeds.
func New(opts ...Option) *Finder {
	cfg := options{
		logger:   slog.Default(),
		debounce: loader.DefaultDebounce,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.engine == nil {
		cfg.engine = route.NewEngine()
	}

	return &Finder{opts: cfg}
}

// Load validates nodes and edges, builds the graph and precomputes every
// route between key locations, then atomically replaces the active snapshot.
//
// On any error (invalid records, cancelled ctx) nothing is published and the
// previous snapshot, if any, keeps serving queries.
func (f *Finder) Load(ctx context.Context, nodes []campus.Node, edges []campus.Edge) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	start := time.Now()
	log := f.opts.logger

	g, err := campus.NewGraph(nodes, edges, f.opts.graphOpts...)
	if err != nil {
		f.opts.metrics.loadFailed(time.Since(start).Seconds())
		log.Error("campus graph rejected", "nodes", len(nodes), "paths", len(edges), "error", err)

		return fmt.Errorf("pathfinder: load: %w", err)
	}

	c, err := route.BuildCache(ctx, g, f.opts.engine, f.opts.cacheOpts...)
	if err != nil {
		f.opts.metrics.loadFailed(time.Since(start).Seconds())
		log.Error("route cache build failed", "error", err)

		return fmt.Errorf("pathfinder: load: %w", err)
	}

	s := &snapshot{
		graph:      g,
		cache:      c,
		generation: uuid.New(),
		loadedAt:   time.Now(),
	}
	f.cur.Store(s)

	elapsed := time.Since(start)
	f.opts.metrics.loaded(s, elapsed.Seconds())
	log.Info("campus graph loaded",
		"generation", s.generation,
		"nodes", g.Len(),
		"walkable_edges", g.EdgeCount(),
		"key_locations", len(c.Keys()),
		"cached_routes", c.Len(),
		"duration", elapsed,
	)
	if iso := g.IsolatedKeys(); len(iso) > 0 {
		log.Warn("key locations unreachable from the main campus", "generation", s.generation, "ids", iso)
	}

	return nil
}

// LoadDocument loads a decoded pathway document.
func (f *Finder) LoadDocument(ctx context.Context, doc loader.Document) error {
	return f.Load(ctx, doc.Nodes, doc.Paths)
}

// LoadFile reads the document at path and loads it.
func (f *Finder) LoadFile(ctx context.Context, path string) error {
	doc, err := loader.ReadFile(path)
	if err != nil {
		f.opts.metrics.loadFailed(0)
		f.opts.logger.Error("pathway document unreadable", "path", path, "error", err)

		return fmt.Errorf("pathfinder: load: %w", err)
	}

	return f.LoadDocument(ctx, doc)
}

// WatchFile reloads the document at path whenever it changes, until ctx is
// cancelled. Failed reloads are logged; the previous snapshot stays active.
func (f *Finder) WatchFile(ctx context.Context, path string) error {
	log := f.opts.logger.With("path", path)
	log.Info("watching pathway document")

	return loader.Watch(ctx, path, func(doc loader.Document, err error) {
		if err != nil {
			f.opts.metrics.loadFailed(0)
			log.Error("pathway reload skipped", "error", err)
			return
		}
		if err := f.LoadDocument(ctx, doc); err != nil {
			log.Warn("pathway reload rejected, keeping previous graph", "error", err)
		}
	}, loader.WatchOptions{Debounce: f.opts.debounce, Logger: f.opts.logger})
}

func (f *Finder) current() (*snapshot, error) {
	s := f.cur.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}

	return s, nil
}

// FindRoute returns the shortest walking route from start to end.
//
// Routes between two distinct key locations come from the precomputed cache;
// any other pair is searched on demand. Both give identical results.
// An unreachable end yields route.NoPath() with a nil error; unknown IDs
// yield ErrUnknownNode.
func (f *Finder) FindRoute(start, end string) (route.Route, error) {
	s, err := f.current()
	if err != nil {
		return route.Route{}, err
	}

	if r, ok := s.cache.Lookup(start, end); ok {
		f.opts.metrics.hit()

		return r.Clone(), nil
	}

	t0 := time.Now()
	r, err := f.opts.engine.ComputeRoute(s.graph, start, end)
	if err != nil {
		return route.Route{}, err
	}
	f.opts.metrics.miss(time.Since(t0).Seconds())

	return r, nil
}

// NearestNode returns the ID of the node closest to (x, y), optionally
// restricted to the given categories. Ties go to the node listed first in
// the loaded document.
func (f *Finder) NearestNode(x, y float64, cats ...campus.Category) (string, error) {
	s, err := f.current()
	if err != nil {
		return "", err
	}
	id, ok := s.graph.Nearest(x, y, cats...)
	if !ok {
		return "", ErrNoCandidate
	}

	return id, nil
}

// Node returns the node with the given ID.
func (f *Finder) Node(id string) (campus.Node, error) {
	s, err := f.current()
	if err != nil {
		return campus.Node{}, err
	}
	n, ok := s.graph.Node(id)
	if !ok {
		return campus.Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return n, nil
}

// NodesByCategory returns every node of category cat in document order.
// An unknown category yields an empty, non-nil slice.
func (f *Finder) NodesByCategory(cat campus.Category) ([]campus.Node, error) {
	s, err := f.current()
	if err != nil {
		return nil, err
	}

	return s.graph.NodesByCategory(cat), nil
}

// KeyLocations returns the key locations ordered by name, case-insensitively.
func (f *Finder) KeyLocations() ([]campus.Node, error) {
	s, err := f.current()
	if err != nil {
		return nil, err
	}

	return s.graph.KeyLocations(), nil
}

// Resolve maps a node ID or a case-insensitive node name to a node ID.
func (f *Finder) Resolve(ref string) (string, error) {
	s, err := f.current()
	if err != nil {
		return "", err
	}
	id, ok := s.graph.Resolve(ref)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNode, ref)
	}

	return id, nil
}

// Loaded reports whether a graph has been loaded.
func (f *Finder) Loaded() bool { return f.cur.Load() != nil }

// Generation identifies the active snapshot; it changes on every successful
// Load. uuid.Nil before the first load.
func (f *Finder) Generation() uuid.UUID {
	if s := f.cur.Load(); s != nil {
		return s.generation
	}

	return uuid.Nil
}
