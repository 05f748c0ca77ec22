package strategies

import (
	"context"

	"courier-sim/internal/domain"
	"courier-sim/internal/ports"
)

// NearestGoal works one parcel at a time: it takes the first parcel in
// the list, routes to its pickup point if the robot is not already
// carrying it, routes to its destination otherwise, and walks that route
// step by step before looking at the world again.
type NearestGoal struct {
	finder ports.RouteFinder
}

func NewNearestGoal(finder ports.RouteFinder) *NearestGoal {
	return &NearestGoal{finder: finder}
}

func (n *NearestGoal) Name() string { return "nearest-goal" }

func (n *NearestGoal) NextMove(ctx context.Context, state domain.WorldState, mem RouteMemory) (string, RouteMemory) {
	if mem.Empty() {
		parcel := state.Parcels[0]
		target := parcel.Location
		if parcel.Location == state.Place {
			// Already carried; head for its destination.
			target = parcel.Destination
		}

		route, ok, err := n.finder.ShortestRoute(ctx, state.Place, target)
		if err != nil || !ok {
			return "", mem
		}
		mem = NewRouteMemory(route)
	}
	return mem.Next()
}
