package pathfinder

import (
	"time"

	"github.com/google/uuid"
)

// Stats summarizes the active snapshot.
type Stats struct {
	Generation   uuid.UUID `json:"generation"`
	LoadedAt     time.Time `json:"loaded_at"`
	Nodes        int       `json:"nodes"`
	Edges        int       `json:"walkable_edges"`
	KeyLocations int       `json:"key_locations"`
	CachedRoutes int       `json:"cached_routes"`
	Components   int       `json:"components"`
	IsolatedKeys []string  `json:"isolated_keys"`
}

// Stats describes the active snapshot, or returns ErrNotLoaded.
func (f *Finder) Stats() (Stats, error) {
	s, err := f.current()
	if err != nil {
		return Stats{}, err
	}

	iso := s.graph.IsolatedKeys()
	if iso == nil {
		iso = []string{}
	}

	return Stats{
		Generation:   s.generation,
		LoadedAt:     s.loadedAt,
		Nodes:        s.graph.Len(),
		Edges:        s.graph.EdgeCount(),
		KeyLocations: len(s.cache.Keys()),
		CachedRoutes: s.cache.Len(),
		Components:   len(s.graph.Components()),
		IsolatedKeys: iso,
	}, nil
}
