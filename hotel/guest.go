// Package hotel holds the domain model shared by the simulation components:
// guests, rooms, staffing schedules and the run configuration.
package hotel

import (
	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

// A Guest is one arriving party. Guests are created when their arrival event
// fires and are never discarded afterwards. The pointer fields stay nil until
// the corresponding milestone happens, so an unserved guest is
// distinguishable from one served at time zero.
type Guest struct {
	ID          int
	ArrivalTime sim.VTimeInHours

	// FrontDeskStart is when an agent began serving the guest.
	FrontDeskStart *sim.VTimeInHours
	// FrontDeskEnd is when front-desk service completed.
	FrontDeskEnd *sim.VTimeInHours
	// CheckinTime is when the guest received a room.
	CheckinTime *sim.VTimeInHours

	// StayNights is drawn once when the guest arrives.
	StayNights int
	RoomID     *int
}
