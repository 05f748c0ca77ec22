package ports

import "context"

// Contract for shortest-route queries over the road network.
//
// Absence of a route (an unreachable target) is reported through the ok
// result, not an error; errors are reserved for locations that are not
// part of the graph at all.
type RouteFinder interface {
	// ShortestRoute returns the hop sequence from one location to another,
	// excluding from and including to. ok is false when to is unreachable.
	ShortestRoute(ctx context.Context, from, to string) (route []string, ok bool, err error)

	// Distance returns the hop count of the shortest route.
	// ok is false when to is unreachable.
	Distance(ctx context.Context, from, to string) (hops int, ok bool, err error)
}
