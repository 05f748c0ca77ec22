package services

import (
	"context"
	"errors"
	"fmt"

	"courier-sim/internal/domain"
	"courier-sim/internal/strategies"
)

// ErrTurnCapExceeded is returned when a run is stopped by its turn cap.
var ErrTurnCapExceeded = errors.New("simulator: turn cap exceeded")

type RunRequest struct {
	Graph    *domain.RoadGraph
	State    domain.WorldState
	Strategy strategies.Strategy

	// TurnCap aborts runaway runs after this many turns; 0 disables the
	// cap. The core contract has no bound and relies on strategy
	// correctness; the cap is a safety valve for tests and CLI use.
	TurnCap int
}

// Run drives a strategy against a world state until every parcel is
// delivered and returns the number of turns taken. A state that is
// already solved returns 0 without consulting the strategy. Directions
// the world rejects still cost a turn (the move is absorbed as a no-op).
func Run(ctx context.Context, req RunRequest) (int, error) {
	if req.Graph == nil {
		return 0, errors.New("run: graph must be non-nil")
	}
	if req.Strategy == nil {
		return 0, errors.New("run: strategy must be non-nil")
	}

	state := req.State
	mem := strategies.RouteMemory{}

	for turns := 0; ; turns++ {
		if state.Solved() {
			return turns, nil
		}
		if req.TurnCap > 0 && turns >= req.TurnCap {
			return turns, fmt.Errorf("run: strategy %q stopped after %d turns: %w",
				req.Strategy.Name(), turns, ErrTurnCapExceeded)
		}
		select {
		case <-ctx.Done():
			return turns, fmt.Errorf("run: %w", ctx.Err())
		default:
		}

		var direction string
		direction, mem = req.Strategy.NextMove(ctx, state, mem)
		state = state.Move(req.Graph, direction)
	}
}
