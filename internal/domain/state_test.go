package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func townGraph(t *testing.T) *RoadGraph {
	t.Helper()
	g, err := BuildRoadGraph([]string{"P-A", "A-B", "B-C"})
	require.NoError(t, err)
	return g
}

func TestMoveIllegalDestinationIsNoOp(t *testing.T) {
	g := townGraph(t)
	state := NewWorldState("P", []Parcel{{Location: "P", Destination: "B"}})

	// B is not adjacent to P; the move is absorbed, not an error.
	next := state.Move(g, "B")
	require.Equal(t, state, next)

	// Same for a location that is not on the map at all.
	next = state.Move(g, "Nowhere")
	require.Equal(t, state, next)
}

func TestMoveCarriesAndDelivers(t *testing.T) {
	g := townGraph(t)
	state := NewWorldState("P", []Parcel{{Location: "P", Destination: "A"}})

	next := state.Move(g, "A")
	require.Equal(t, "A", next.Place)
	require.Empty(t, next.Parcels, "parcel arriving at its destination must be dropped")
	require.True(t, next.Solved())
}

func TestMoveRelocatesColocatedParcelsOnly(t *testing.T) {
	g := townGraph(t)
	state := NewWorldState("A", []Parcel{
		{Location: "A", Destination: "C"}, // carried along
		{Location: "B", Destination: "P"}, // untouched
	})

	next := state.Move(g, "B")
	require.Equal(t, "B", next.Place)
	require.Equal(t, []Parcel{
		{Location: "B", Destination: "C"},
		{Location: "B", Destination: "P"},
	}, next.Parcels)
}

func TestMoveLeavesOriginalStateIntact(t *testing.T) {
	g := townGraph(t)
	parcels := []Parcel{{Location: "P", Destination: "B"}}
	state := NewWorldState("P", parcels)

	next := state.Move(g, "A")

	require.Equal(t, "P", state.Place)
	require.Equal(t, []Parcel{{Location: "P", Destination: "B"}}, state.Parcels)
	require.Equal(t, "A", next.Place)
	require.Equal(t, []Parcel{{Location: "A", Destination: "B"}}, next.Parcels)
}

func TestSolved(t *testing.T) {
	require.True(t, NewWorldState("P", nil).Solved())
	require.False(t, NewWorldState("P", []Parcel{{Location: "A", Destination: "B"}}).Solved())
}

func TestParcelDelivered(t *testing.T) {
	require.True(t, Parcel{Location: "A", Destination: "A"}.Delivered())
	require.False(t, Parcel{Location: "A", Destination: "B"}.Delivered())
}
