package config

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/pathfinder"
	"github.com/katalvlaran/campusnav/route"
	"github.com/katalvlaran/campusnav/units"
)

// The helpers below assume a Config that passed Validate; the option
// constructors they call panic on out-of-range values.

// Converter builds the unit converter.
func (c Config) Converter() units.Converter {
	return units.New(
		units.WithScale(c.Units.Scale),
		units.WithWalkingSpeed(c.Units.WalkingSpeed),
	)
}

// Strategy maps routing.strategy to a dijkstra.Strategy.
func (c Config) Strategy() dijkstra.Strategy {
	if c.Routing.Strategy == dijkstra.StrategyLinearScan.String() {
		return dijkstra.StrategyLinearScan
	}

	return dijkstra.StrategyHeap
}

// KeyCategories returns routing.key_categories as campus categories.
func (c Config) KeyCategories() []campus.Category {
	out := make([]campus.Category, len(c.Routing.KeyCategories))
	for i, s := range c.Routing.KeyCategories {
		out[i] = campus.Category(s)
	}

	return out
}

// Engine builds the route engine.
func (c Config) Engine() *route.Engine {
	return route.NewEngine(
		route.WithConverter(c.Converter()),
		route.WithSearchOptions(dijkstra.WithStrategy(c.Strategy())),
	)
}

// FinderOptions returns the pathfinder options derived from c. Callers add
// the logger and metrics.
func (c Config) FinderOptions() []pathfinder.Option {
	opts := []pathfinder.Option{
		pathfinder.WithEngine(c.Engine()),
		pathfinder.WithGraphOptions(campus.WithKeyCategories(c.KeyCategories()...)),
		pathfinder.WithWatchDebounce(c.Data.Debounce),
	}
	if c.Routing.CacheWorkers > 0 {
		opts = append(opts, pathfinder.WithCacheOptions(route.WithWorkers(c.Routing.CacheWorkers)))
	}

	return opts
}

// Level parses logging.level; unknown values fall back to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// Logger builds a slog.Logger writing to w in the configured format and level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
