package strategies

import (
	"context"

	"courier-sim/internal/domain"
	"courier-sim/internal/ports"
)

// NearestParcelFirst scores every undelivered parcel by the hop distance
// from the robot to its next relevant point (pickup location if not yet
// carried, destination otherwise) and routes to the closest one. Ties go
// to the first minimal parcel in list order, so the choice is
// deterministic for a given world state.
type NearestParcelFirst struct {
	finder ports.RouteFinder
}

func NewNearestParcelFirst(finder ports.RouteFinder) *NearestParcelFirst {
	return &NearestParcelFirst{finder: finder}
}

func (n *NearestParcelFirst) Name() string { return "nearest-parcel" }

func (n *NearestParcelFirst) NextMove(ctx context.Context, state domain.WorldState, mem RouteMemory) (string, RouteMemory) {
	if mem.Empty() {
		bestTarget := ""
		bestDist := -1

		for _, parcel := range state.Parcels {
			target := parcel.Location
			if parcel.Location == state.Place {
				target = parcel.Destination
			}

			dist, ok, err := n.finder.Distance(ctx, state.Place, target)
			if err != nil || !ok {
				continue
			}
			// Strict < keeps the first minimal parcel on ties.
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				bestTarget = target
			}
		}

		if bestDist < 0 {
			return "", mem
		}

		route, ok, err := n.finder.ShortestRoute(ctx, state.Place, bestTarget)
		if err != nil || !ok {
			return "", mem
		}
		mem = NewRouteMemory(route)
	}
	return mem.Next()
}
