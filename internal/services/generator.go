package services

import (
	"errors"
	"fmt"
	"math/rand"

	"courier-sim/internal/domain"
)

// DefaultParcelCount is the parcel count used by random tasks when the
// caller does not specify one.
const DefaultParcelCount = 5

// RandomWorldState generates a random delivery task: the robot at the
// hub and parcelCount parcels, each a pair of distinct random locations
// (the origin is resampled until it differs from the destination). The
// result is fully determined by the rng, so a seeded source reproduces
// the same task.
func RandomWorldState(g *domain.RoadGraph, hub string, parcelCount int, rng *rand.Rand) (domain.WorldState, error) {
	if g == nil {
		return domain.WorldState{}, errors.New("random world state: graph must be non-nil")
	}
	if rng == nil {
		return domain.WorldState{}, errors.New("random world state: rng must be non-nil")
	}
	if parcelCount < 0 {
		return domain.WorldState{}, fmt.Errorf("random world state: parcel count must be >= 0, got %d", parcelCount)
	}
	if !g.Contains(hub) {
		return domain.WorldState{}, fmt.Errorf("random world state: hub %q: %w", hub, domain.ErrUnknownLocation)
	}

	places := g.Places()
	if parcelCount > 0 && len(places) < 2 {
		return domain.WorldState{}, errors.New("random world state: need at least two places to generate parcels")
	}

	parcels := make([]domain.Parcel, 0, parcelCount)
	for i := 0; i < parcelCount; i++ {
		destination := places[rng.Intn(len(places))]
		origin := places[rng.Intn(len(places))]
		for origin == destination {
			origin = places[rng.Intn(len(places))]
		}
		parcels = append(parcels, domain.Parcel{Location: origin, Destination: destination})
	}

	return domain.NewWorldState(hub, parcels), nil
}
