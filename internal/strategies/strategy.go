// Package strategies contains the pluggable decision policies the robot
// can be driven by. A strategy is a pure decision function: given the
// current world state and its private route memory it produces the next
// direction and the memory to carry into the following turn. Strategies
// hold only read-only dependencies (graph, route finder, tour, rng
// source); all turn-to-turn state lives in the RouteMemory value.
package strategies

import (
	"context"

	"courier-sim/internal/domain"
)

// Strategy chooses the robot's next move.
//
// The simulator never invokes a strategy on a solved state; doing so is a
// contract violation. A strategy that cannot produce a move (unreachable
// target on a disconnected graph) returns an empty direction, which the
// world state absorbs as a no-op turn.
type Strategy interface {
	// Name identifies the strategy in CLI output and recorded runs.
	Name() string

	// NextMove returns the direction to travel and the memory for the
	// next turn.
	NextMove(ctx context.Context, state domain.WorldState, mem RouteMemory) (string, RouteMemory)
}

// RouteMemory is a strategy's pending route between turns: either empty
// (no route in progress) or an ordered list of locations still to visit.
// It is a value; Next returns the shortened remainder and leaves the
// receiver intact.
type RouteMemory struct {
	pending []string
}

// NewRouteMemory returns a memory holding a copy of route.
func NewRouteMemory(route []string) RouteMemory {
	if len(route) == 0 {
		return RouteMemory{}
	}
	pending := make([]string, len(route))
	copy(pending, route)
	return RouteMemory{pending: pending}
}

// Empty reports whether no route is in progress.
func (m RouteMemory) Empty() bool { return len(m.pending) == 0 }

// Next pops the next step. On an empty memory it returns an empty
// direction and the memory unchanged.
func (m RouteMemory) Next() (string, RouteMemory) {
	if len(m.pending) == 0 {
		return "", m
	}
	return m.pending[0], RouteMemory{pending: m.pending[1:]}
}

// Remaining returns a copy of the steps still to take.
func (m RouteMemory) Remaining() []string {
	out := make([]string, len(m.pending))
	copy(out, m.pending)
	return out
}
