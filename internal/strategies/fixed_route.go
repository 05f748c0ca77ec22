package strategies

import (
	"context"

	"courier-sim/internal/domain"
)

// FixedRoute follows a precomputed closed tour that visits every place in
// town. When its memory runs out it reloads the full tour and starts
// over. Since every pickup point and every destination lies somewhere on
// the tour, all parcels are delivered within at most two traversals.
type FixedRoute struct {
	tour []string
}

// NewFixedRoute returns a strategy following tour. The tour must start
// adjacent to the robot's starting place and each consecutive pair of
// stops must share a road; dataset validation enforces this.
func NewFixedRoute(tour []string) *FixedRoute {
	t := make([]string, len(tour))
	copy(t, tour)
	return &FixedRoute{tour: t}
}

func (f *FixedRoute) Name() string { return "fixed-route" }

func (f *FixedRoute) NextMove(_ context.Context, _ domain.WorldState, mem RouteMemory) (string, RouteMemory) {
	if mem.Empty() {
		mem = NewRouteMemory(f.tour)
	}
	return mem.Next()
}
