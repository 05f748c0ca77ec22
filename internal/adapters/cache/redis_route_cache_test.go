package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"courier-sim/internal/ports"
)

func redisFixture(t *testing.T) *RedisRouteCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRouteCache(client, time.Hour)
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c := redisFixture(t)
	ctx := context.Background()

	_, hit, err := c.Get(ctx, "A", "C")
	require.NoError(t, err)
	require.False(t, hit)

	want := ports.CachedRoute{Route: []string{"B", "C"}, Reachable: true}
	require.NoError(t, c.Put(ctx, "A", "C", want))

	got, hit, err := c.Get(ctx, "A", "C")
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, want, got)
}

func TestRedisRouteCacheStoresUnreachable(t *testing.T) {
	c := redisFixture(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "A", "Z", ports.CachedRoute{Reachable: false}))

	got, hit, err := c.Get(ctx, "A", "Z")
	require.NoError(t, err)
	require.True(t, hit)
	require.False(t, got.Reachable)
	require.Empty(t, got.Route)
}

func TestRedisRouteCachePairsAreIndependent(t *testing.T) {
	c := redisFixture(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "A", "B", ports.CachedRoute{Route: []string{"B"}, Reachable: true}))

	// The reverse direction is a distinct key.
	_, hit, err := c.Get(ctx, "B", "A")
	require.NoError(t, err)
	require.False(t, hit)
}
