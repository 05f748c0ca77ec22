package domain

// Parcel is a single delivery unit tracked by the simulation.
// Location is where the parcel (or the robot carrying it) currently is;
// Destination is the place it must be dropped at. A parcel whose Location
// equals its Destination is delivered and is removed from the world state
// rather than retained.
type Parcel struct {
	Location    string
	Destination string
}

// Delivered reports whether the parcel has reached its destination.
func (p Parcel) Delivered() bool { return p.Location == p.Destination }
