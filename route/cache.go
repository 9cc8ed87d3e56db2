package route

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusnav/campus"
)

// pair is the cache key: an ordered (start, end) of distinct key locations.
type pair struct {
	from, to string
}

// Cache is a read-only table of routes between key locations.
// It is built once per graph snapshot and never updated; a reload builds a
// new Cache. A nil *Cache behaves as an empty cache.
type Cache struct {
	keys   []string
	routes map[pair]Route
}

// CacheOption configures BuildCache.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	workers int
}

// WithWorkers bounds how many source rows are computed concurrently.
// Values below 1 panic.
func WithWorkers(n int) CacheOption {
	if n < 1 {
		panic("route: WithWorkers: n must be >= 1")
	}

	return func(o *cacheOptions) { o.workers = n }
}

// BuildCache computes the route for every ordered pair of distinct key
// locations in g (K·(K-1) searches for K keys).
//
// Rows (one per source key) are computed concurrently, bounded by
// WithWorkers (default GOMAXPROCS). The call returns only once the whole
// table is complete. If ctx is cancelled first, the partial table is
// discarded and ctx's error is returned.
func BuildCache(ctx context.Context, g *campus.Graph, e *Engine, opts ...CacheOption) (*Cache, error) {
	cfg := cacheOptions{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	keys := g.KeyIDs()
	rows := make([]map[pair]Route, len(keys))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, from := range keys {
		i, from := i, from
		eg.Go(func() error {
			row := make(map[pair]Route, len(keys)-1)
			for j, to := range keys {
				if i == j {
					continue
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := e.ComputeRoute(g, from, to)
				if err != nil {
					return err
				}
				row[pair{from, to}] = r
			}
			rows[i] = row

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	c := &Cache{keys: keys, routes: make(map[pair]Route, len(keys)*len(keys))}
	for _, row := range rows {
		for k, r := range row {
			c.routes[k] = r
		}
	}

	return c, nil
}

// Lookup returns the precomputed route from start to end. It never searches;
// the boolean is false for any pair that was not precomputed, including
// start == end and pairs involving non-key nodes.
func (c *Cache) Lookup(start, end string) (Route, bool) {
	if c == nil {
		return Route{}, false
	}
	r, ok := c.routes[pair{start, end}]

	return r, ok
}

// Len returns the number of cached routes.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	return len(c.routes)
}

// Keys returns the key locations the cache was built over, in graph input order.
func (c *Cache) Keys() []string {
	if c == nil {
		return nil
	}

	return append([]string(nil), c.keys...)
}
