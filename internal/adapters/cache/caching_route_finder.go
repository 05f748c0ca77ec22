package cache

import (
	"context"
	"fmt"
	"log"

	"courier-sim/internal/ports"
)

// CachingRouteFinder wraps a RouteFinder with a RouteCache. Route queries
// hit the cache first; misses are answered by the inner finder and stored
// back, including negative (unreachable) answers. Distance is derived
// from the route length, so one cache serves both queries.
//
// Cache failures are logged and fall through to the inner finder; a
// broken cache backend degrades performance, never correctness.
type CachingRouteFinder struct {
	inner ports.RouteFinder
	cache ports.RouteCache
}

func NewCachingRouteFinder(inner ports.RouteFinder, cache ports.RouteCache) *CachingRouteFinder {
	return &CachingRouteFinder{inner: inner, cache: cache}
}

func (c *CachingRouteFinder) ShortestRoute(ctx context.Context, from, to string) ([]string, bool, error) {
	if cached, hit, err := c.cache.Get(ctx, from, to); err != nil {
		log.Printf("op=route.cache.get from=%q to=%q err=%v", from, to, err)
	} else if hit {
		return cached.Route, cached.Reachable, nil
	}

	route, ok, err := c.inner.ShortestRoute(ctx, from, to)
	if err != nil {
		return nil, false, fmt.Errorf("caching route finder: %w", err)
	}

	if err := c.cache.Put(ctx, from, to, ports.CachedRoute{Route: route, Reachable: ok}); err != nil {
		log.Printf("op=route.cache.put from=%q to=%q err=%v", from, to, err)
	}

	return route, ok, nil
}

func (c *CachingRouteFinder) Distance(ctx context.Context, from, to string) (int, bool, error) {
	route, ok, err := c.ShortestRoute(ctx, from, to)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	return len(route), true, nil
}
