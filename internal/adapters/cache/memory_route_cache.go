package cache

import (
	"context"

	"courier-sim/internal/ports"
)

// In-process implementation of the RouteCache port. The default backend:
// a single simulation process re-queries the same origin/destination
// pairs constantly, so even a plain map pays for itself.
type MemoryRouteCache struct {
	entries map[string]ports.CachedRoute
}

func NewMemoryRouteCache() *MemoryRouteCache {
	return &MemoryRouteCache{entries: make(map[string]ports.CachedRoute, 256)}
}

func (m *MemoryRouteCache) Get(_ context.Context, from, to string) (ports.CachedRoute, bool, error) {
	r, ok := m.entries[routeKey(from, to)]
	return r, ok, nil
}

func (m *MemoryRouteCache) Put(_ context.Context, from, to string, r ports.CachedRoute) error {
	m.entries[routeKey(from, to)] = r
	return nil
}

func routeKey(from, to string) string { return from + "|" + to }
