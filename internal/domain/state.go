package domain

// WorldState is an immutable snapshot of the simulation: the robot's
// current place and every undelivered parcel. Transitions never mutate a
// state; Move returns a fresh value and the old one stays valid.
type WorldState struct {
	Place   string
	Parcels []Parcel
}

// NewWorldState returns a snapshot with the robot at place carrying the
// given parcel list. The slice is used as-is; callers hand over ownership.
func NewWorldState(place string, parcels []Parcel) WorldState {
	return WorldState{Place: place, Parcels: parcels}
}

// Move returns the state after the robot travels to destination.
//
// If destination is not a direct neighbor of the current place, the move
// is absorbed as a no-op and the receiver is returned unchanged. This
// permissive policy is deliberate: strategies stay free of legality
// checks, and an invalid direction costs a turn instead of failing.
//
// On a legal move every parcel colocated with the robot travels with it
// (pickup is implicit), and any parcel that thereby arrives at its own
// destination is dropped from the list. Parcels elsewhere are reused
// structurally.
func (s WorldState) Move(g *RoadGraph, destination string) WorldState {
	neighbors, err := g.Neighbors(s.Place)
	if err != nil {
		return s
	}

	legal := false
	for _, n := range neighbors {
		if n == destination {
			legal = true
			break
		}
	}
	if !legal {
		return s
	}

	parcels := make([]Parcel, 0, len(s.Parcels))
	for _, p := range s.Parcels {
		if p.Location == s.Place {
			p = Parcel{Location: destination, Destination: p.Destination}
		}
		if p.Delivered() {
			continue
		}
		parcels = append(parcels, p)
	}

	return WorldState{Place: destination, Parcels: parcels}
}

// Solved reports whether every parcel has been delivered.
func (s WorldState) Solved() bool { return len(s.Parcels) == 0 }
