package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"courier-sim/internal/domain"
	"courier-sim/internal/strategies"
)

// scriptedStrategy replays a fixed list of directions.
type scriptedStrategy struct {
	name  string
	moves []string
	next  int
}

func (s *scriptedStrategy) Name() string { return s.name }

func (s *scriptedStrategy) NextMove(_ context.Context, _ domain.WorldState, mem strategies.RouteMemory) (string, strategies.RouteMemory) {
	if s.next >= len(s.moves) {
		return "", mem
	}
	move := s.moves[s.next]
	s.next++
	return move, mem
}

// failingStrategy fails the test if it is ever consulted.
type failingStrategy struct{ t *testing.T }

func (f *failingStrategy) Name() string { return "failing" }

func (f *failingStrategy) NextMove(context.Context, domain.WorldState, strategies.RouteMemory) (string, strategies.RouteMemory) {
	f.t.Fatal("strategy must not be invoked on a solved state")
	return "", strategies.RouteMemory{}
}

func TestRunSolvedStateReturnsZeroWithoutStrategy(t *testing.T) {
	g, err := domain.BuildRoadGraph([]string{"A-B"})
	require.NoError(t, err)

	turns, err := Run(context.Background(), RunRequest{
		Graph:    g,
		State:    domain.NewWorldState("A", nil),
		Strategy: &failingStrategy{t: t},
	})
	require.NoError(t, err)
	require.Equal(t, 0, turns)
}

func TestRunCountsTurnsUntilDelivery(t *testing.T) {
	g, err := domain.BuildRoadGraph([]string{"A-B", "B-C"})
	require.NoError(t, err)

	state := domain.NewWorldState("A", []domain.Parcel{{Location: "A", Destination: "C"}})

	turns, err := Run(context.Background(), RunRequest{
		Graph:    g,
		State:    state,
		Strategy: &scriptedStrategy{name: "scripted", moves: []string{"B", "C"}},
	})
	require.NoError(t, err)
	require.Equal(t, 2, turns)
}

func TestRunAbsorbedMovesStillCostTurns(t *testing.T) {
	g, err := domain.BuildRoadGraph([]string{"A-B"})
	require.NoError(t, err)

	state := domain.NewWorldState("A", []domain.Parcel{{Location: "A", Destination: "B"}})

	// Two illegal directions before the real one.
	turns, err := Run(context.Background(), RunRequest{
		Graph:    g,
		State:    state,
		Strategy: &scriptedStrategy{name: "scripted", moves: []string{"C", "Nowhere", "B"}},
	})
	require.NoError(t, err)
	require.Equal(t, 3, turns)
}

func TestRunTurnCap(t *testing.T) {
	g, err := domain.BuildRoadGraph([]string{"A-B"})
	require.NoError(t, err)

	// Never delivers: keeps bouncing to an illegal place.
	state := domain.NewWorldState("A", []domain.Parcel{{Location: "B", Destination: "A"}})
	stuck := &scriptedStrategy{name: "stuck", moves: []string{}}

	turns, err := Run(context.Background(), RunRequest{
		Graph:    g,
		State:    state,
		Strategy: stuck,
		TurnCap:  25,
	})
	require.ErrorIs(t, err, ErrTurnCapExceeded)
	require.Equal(t, 25, turns)
}

func TestRunNilArguments(t *testing.T) {
	g, err := domain.BuildRoadGraph([]string{"A-B"})
	require.NoError(t, err)

	_, err = Run(context.Background(), RunRequest{Graph: nil, Strategy: &scriptedStrategy{}})
	require.Error(t, err)

	_, err = Run(context.Background(), RunRequest{Graph: g, Strategy: nil})
	require.Error(t, err)
}
