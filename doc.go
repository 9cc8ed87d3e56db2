// Package campusnav finds shortest walking routes across a campus map and
// reports them in metres and minutes.
//
// A campus is a set of named points (buildings, gates, junctions) joined by
// paths that are either walkable or closed. Routes between key locations
// (buildings and gates) are precomputed whenever a map is loaded; any other
// pair is searched on demand. Both give identical answers.
//
// Packages:
//
//	campus/        validated, immutable campus graph; nearest-node and name lookups
//	dijkstra/      single-pair shortest path (binary heap or linear scan)
//	units/         map units → metres → walking minutes, human-readable durations
//	route/         annotated routes and the key-location route cache
//	pathfinder/    query facade with atomic snapshot reloads and Prometheus metrics
//	loader/        JSON/YAML pathway documents and file watching
//	config/        application configuration (defaults, file, CAMPUSNAV_* env)
//	httpapi/       gin JSON API
//	cmd/campusnav  CLI: route, nearest, locations, serve
//
// Quick start:
//
//	f := pathfinder.New()
//	if err := f.LoadFile(ctx, "data/pathways.json"); err != nil { … }
//	r, err := f.FindRoute("gate-south", "lib")
//	fmt.Println(r.Path, units.FormatDistance(r.Distance), units.FormatDuration(r.EstimatedTime))
//
// Determinism:
//
//	Neighbours are always visited in ascending ID order, so repeated queries,
//	cached routes and fresh searches return the same path even among ties.
package campusnav
