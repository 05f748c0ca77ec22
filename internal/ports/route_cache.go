package ports

import "context"

// Cached shortest-route entry. Reachable is stored so that negative
// results (unreachable pairs) are cached too.
type CachedRoute struct {
	Route     []string
	Reachable bool
}

// Contract for caching shortest-route results between runs.
type RouteCache interface {
	// Get returns the cached route for a pair, if present.
	Get(ctx context.Context, from, to string) (CachedRoute, bool, error)

	// Put stores the route for a pair.
	Put(ctx context.Context, from, to string, r CachedRoute) error
}
