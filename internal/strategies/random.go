package strategies

import (
	"context"
	"math/rand"

	"courier-sim/internal/domain"
)

// Random moves to a uniformly random neighbor each turn. It keeps no
// route memory and serves as the baseline every other strategy is
// measured against.
type Random struct {
	graph *domain.RoadGraph
	rng   *rand.Rand
}

func NewRandom(g *domain.RoadGraph, rng *rand.Rand) *Random {
	return &Random{graph: g, rng: rng}
}

func (r *Random) Name() string { return "random" }

func (r *Random) NextMove(_ context.Context, state domain.WorldState, _ RouteMemory) (string, RouteMemory) {
	neighbors, err := r.graph.Neighbors(state.Place)
	if err != nil || len(neighbors) == 0 {
		return "", RouteMemory{}
	}
	return neighbors[r.rng.Intn(len(neighbors))], RouteMemory{}
}
