package services

import (
	"context"
	"fmt"

	"courier-sim/internal/domain"
)

// BFSRouteFinder answers shortest-route queries with an unweighted
// breadth-first search over the road graph. Because the graph's neighbor
// order is fixed at build time, ties between equal-length routes resolve
// the same way on every query.
type BFSRouteFinder struct {
	graph *domain.RoadGraph
}

func NewBFSRouteFinder(g *domain.RoadGraph) *BFSRouteFinder {
	return &BFSRouteFinder{graph: g}
}

// frontierItem pairs a reached location with the route that reached it.
type frontierItem struct {
	at    string
	route []string
}

// ShortestRoute returns the hop sequence from one location to another,
// excluding from and including to. The first route that reaches to is
// returned immediately; BFS explores by increasing hop count, so it is a
// shortest one. ok is false when to is unreachable (the frontier drains
// without finding it). Unknown endpoints wrap domain.ErrUnknownLocation.
func (f *BFSRouteFinder) ShortestRoute(ctx context.Context, from, to string) ([]string, bool, error) {
	if err := f.checkEndpoints(from, to); err != nil {
		return nil, false, fmt.Errorf("shortest route: %w", err)
	}
	if from == to {
		return []string{}, true, nil
	}

	queue := []frontierItem{{at: from}}
	enqueued := map[string]bool{from: true}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, false, fmt.Errorf("shortest route: %w", ctx.Err())
		default:
		}

		item := queue[0]
		queue = queue[1:]

		neighbors, err := f.graph.Neighbors(item.at)
		if err != nil {
			return nil, false, fmt.Errorf("shortest route: neighbors of %q: %w", item.at, err)
		}

		for _, n := range neighbors {
			if n == to {
				return extendRoute(item.route, n), true, nil
			}
			if !enqueued[n] {
				enqueued[n] = true
				queue = append(queue, frontierItem{at: n, route: extendRoute(item.route, n)})
			}
		}
	}

	return nil, false, nil
}

// Distance returns the hop count of the shortest route between two
// locations. ok is false when to is unreachable.
func (f *BFSRouteFinder) Distance(ctx context.Context, from, to string) (int, bool, error) {
	if err := f.checkEndpoints(from, to); err != nil {
		return 0, false, fmt.Errorf("distance: %w", err)
	}

	type depthItem struct {
		at    string
		depth int
	}

	queue := []depthItem{{at: from}}
	visited := map[string]bool{from: true}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return 0, false, fmt.Errorf("distance: %w", ctx.Err())
		default:
		}

		item := queue[0]
		queue = queue[1:]
		if item.at == to {
			return item.depth, true, nil
		}

		neighbors, err := f.graph.Neighbors(item.at)
		if err != nil {
			return 0, false, fmt.Errorf("distance: neighbors of %q: %w", item.at, err)
		}
		for _, n := range neighbors {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, depthItem{at: n, depth: item.depth + 1})
			}
		}
	}

	return 0, false, nil
}

func (f *BFSRouteFinder) checkEndpoints(from, to string) error {
	if !f.graph.Contains(from) {
		return fmt.Errorf("from %q: %w", from, domain.ErrUnknownLocation)
	}
	if !f.graph.Contains(to) {
		return fmt.Errorf("to %q: %w", to, domain.ErrUnknownLocation)
	}
	return nil
}

// extendRoute copies route and appends next, so queued routes never share
// backing arrays.
func extendRoute(route []string, next string) []string {
	out := make([]string, len(route), len(route)+1)
	copy(out, route)
	return append(out, next)
}
