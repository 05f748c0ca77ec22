package domain

import (
	"errors"
	"fmt"
	"strings"

	"courier-sim/internal/functional"
)

var (
	// ErrInvalidEdgeFormat is returned for a road descriptor that is not
	// of the form "A-B" with two non-empty endpoints.
	ErrInvalidEdgeFormat = errors.New("road graph: invalid edge format")

	// ErrUnknownLocation is returned when a location is not part of the graph.
	ErrUnknownLocation = errors.New("road graph: unknown location")
)

// RoadGraph is the undirected road network of the town.
//
// It is built once from a list of "A-B" road descriptors and is read-only
// afterwards; every component shares the same instance. Both place order
// and neighbor order are the insertion order of the edge list, so a graph
// built from the same descriptors always traverses identically.
type RoadGraph struct {
	adjacency map[string][]string
	places    []string
	known     functional.Set[string]
}

// BuildRoadGraph constructs the adjacency mapping from road descriptors.
// Each descriptor "A-B" registers the road in both directions. Duplicate
// roads are ignored. Returns ErrInvalidEdgeFormat for a descriptor without
// a separator or with an empty endpoint.
func BuildRoadGraph(edges []string) (*RoadGraph, error) {
	g := &RoadGraph{
		adjacency: make(map[string][]string, len(edges)),
		known:     functional.NewSet[string](),
	}

	for i, edge := range edges {
		from, to, ok := strings.Cut(edge, "-")
		if !ok {
			return nil, fmt.Errorf("%w: descriptor #%d %q has no separator", ErrInvalidEdgeFormat, i+1, edge)
		}

		from = strings.TrimSpace(from)
		to = strings.TrimSpace(to)
		if from == "" || to == "" {
			return nil, fmt.Errorf("%w: descriptor #%d %q has an empty endpoint", ErrInvalidEdgeFormat, i+1, edge)
		}

		g.addDirected(from, to)
		g.addDirected(to, from)
	}

	return g, nil
}

func (g *RoadGraph) addDirected(from, to string) {
	if !g.known.Has(from) {
		g.known = g.known.Add(from)
		g.places = append(g.places, from)
	}
	for _, n := range g.adjacency[from] {
		if n == to {
			return
		}
	}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Neighbors returns the places directly reachable from location, in the
// deterministic order the graph was built in. Returns ErrUnknownLocation
// if location is not a node of the graph.
func (g *RoadGraph) Neighbors(location string) ([]string, error) {
	if !g.known.Has(location) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}
	return g.adjacency[location], nil
}

// Contains reports whether location is a node of the graph.
func (g *RoadGraph) Contains(location string) bool {
	return g.known.Has(location)
}

// Places returns every location of the graph in deterministic build order.
// The returned slice is a copy and may be modified by the caller.
func (g *RoadGraph) Places() []string {
	out := make([]string, len(g.places))
	copy(out, g.places)
	return out
}
