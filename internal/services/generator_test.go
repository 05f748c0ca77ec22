package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"courier-sim/internal/domain"
)

func generatorGraph(t *testing.T) *domain.RoadGraph {
	t.Helper()
	g, err := domain.BuildRoadGraph([]string{"Hub-A", "A-B", "B-C", "C-Hub"})
	require.NoError(t, err)
	return g
}

func TestRandomWorldStateShape(t *testing.T) {
	g := generatorGraph(t)
	rng := rand.New(rand.NewSource(7))

	state, err := RandomWorldState(g, "Hub", 8, rng)
	require.NoError(t, err)

	require.Equal(t, "Hub", state.Place)
	require.Len(t, state.Parcels, 8)
	for _, p := range state.Parcels {
		require.True(t, g.Contains(p.Location))
		require.True(t, g.Contains(p.Destination))
		require.NotEqual(t, p.Location, p.Destination, "undelivered parcel must not sit at its destination")
	}
}

func TestRandomWorldStateDeterministicPerSeed(t *testing.T) {
	g := generatorGraph(t)

	first, err := RandomWorldState(g, "Hub", 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := RandomWorldState(g, "Hub", 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRandomWorldStateZeroParcels(t *testing.T) {
	g := generatorGraph(t)

	state, err := RandomWorldState(g, "Hub", 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.True(t, state.Solved())
}

func TestRandomWorldStateErrors(t *testing.T) {
	g := generatorGraph(t)
	rng := rand.New(rand.NewSource(1))

	_, err := RandomWorldState(nil, "Hub", 1, rng)
	require.Error(t, err)

	_, err = RandomWorldState(g, "Hub", 1, nil)
	require.Error(t, err)

	_, err = RandomWorldState(g, "Hub", -1, rng)
	require.Error(t, err)

	_, err = RandomWorldState(g, "Elsewhere", 1, rng)
	require.ErrorIs(t, err, domain.ErrUnknownLocation)
}
