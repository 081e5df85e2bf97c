package housekeeping

import (
	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
	"github.com/rosamundsoh/hotel-checkin-des/stochastic"
)

// Builder builds housekeeping components.
type Builder struct {
	engine   sim.Engine
	source   *stochastic.Source
	staffing hotel.StaffingFunc
	recorder CheckinRecorder

	numRooms         int
	cleanMeanMinutes float64
	cleanSigma       float64
	checkoutHour     float64
}

// MakeBuilder returns a new Builder with the baseline inventory and cleaning
// shift.
func MakeBuilder() Builder {
	return Builder{
		staffing:         hotel.ShiftStaffing(12, 9.0, 17.0),
		numRooms:         200,
		cleanMeanMinutes: 35,
		cleanSigma:       0.5,
		checkoutHour:     12.0,
	}
}

// WithEngine sets the engine the component schedules events on.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithSource sets the random stream cleaning durations are drawn from.
func (b Builder) WithSource(source *stochastic.Source) Builder {
	b.source = source
	return b
}

// WithStaffing sets the cleaner roster.
func (b Builder) WithStaffing(staffing hotel.StaffingFunc) Builder {
	b.staffing = staffing
	return b
}

// WithRecorder sets where completed check-ins are reported.
func (b Builder) WithRecorder(recorder CheckinRecorder) Builder {
	b.recorder = recorder
	return b
}

// WithNumRooms sets the size of the room inventory.
func (b Builder) WithNumRooms(numRooms int) Builder {
	b.numRooms = numRooms
	return b
}

// WithCleanMinutes sets the lognormal cleaning duration by its mean in
// minutes and its sigma.
func (b Builder) WithCleanMinutes(mean, sigma float64) Builder {
	b.cleanMeanMinutes = mean
	b.cleanSigma = sigma
	return b
}

// WithCheckoutHour sets the fixed hour of day guests leave at.
func (b Builder) WithCheckoutHour(checkoutHour float64) Builder {
	b.checkoutHour = checkoutHour
	return b
}

// Build builds a new Comp with every room vacant and clean.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		engine:   b.engine,
		source:   b.source,
		staffing: b.staffing,
		recorder: b.recorder,

		cleanMu: stochastic.LogNormalMuForMean(
			b.cleanMeanMinutes, b.cleanSigma),
		cleanSigma:   b.cleanSigma,
		checkoutHour: b.checkoutHour,
	}

	c.ComponentBase = sim.NewComponentBase(name)

	c.rooms = make([]*hotel.Room, 0, b.numRooms)
	c.cleanPool = make([]*hotel.Room, 0, b.numRooms)
	for i := 0; i < b.numRooms; i++ {
		room := &hotel.Room{ID: i, State: hotel.RoomVacantClean}
		c.rooms = append(c.rooms, room)
		c.cleanPool = append(c.cleanPool, room)
	}

	return c
}
