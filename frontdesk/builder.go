package frontdesk

import (
	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
	"github.com/rosamundsoh/hotel-checkin-des/stochastic"
)

// Builder builds front-desk components.
type Builder struct {
	engine   sim.Engine
	source   *stochastic.Source
	staffing hotel.StaffingFunc
	assigner RoomAssigner

	serviceMinMinutes  float64
	serviceModeMinutes float64
	serviceMaxMinutes  float64
	avgStayNights      float64
}

// MakeBuilder returns a new Builder with the baseline service times and desk
// roster.
func MakeBuilder() Builder {
	return Builder{
		staffing:           hotel.DefaultFrontDeskStaffing(),
		serviceMinMinutes:  3,
		serviceModeMinutes: 6,
		serviceMaxMinutes:  10,
		avgStayNights:      2.0,
	}
}

// WithEngine sets the engine the front desk schedules events on.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithSource sets the random stream service times and stay lengths are drawn
// from.
func (b Builder) WithSource(source *stochastic.Source) Builder {
	b.source = source
	return b
}

// WithStaffing sets the agent roster.
func (b Builder) WithStaffing(staffing hotel.StaffingFunc) Builder {
	b.staffing = staffing
	return b
}

// WithAssigner sets where guests go after front-desk service.
func (b Builder) WithAssigner(assigner RoomAssigner) Builder {
	b.assigner = assigner
	return b
}

// WithServiceMinutes sets the triangular service time parameters in minutes.
func (b Builder) WithServiceMinutes(min, mode, max float64) Builder {
	b.serviceMinMinutes = min
	b.serviceModeMinutes = mode
	b.serviceMaxMinutes = max
	return b
}

// WithAvgStayNights sets the mean of the stay length distribution.
func (b Builder) WithAvgStayNights(avgStayNights float64) Builder {
	b.avgStayNights = avgStayNights
	return b
}

// Build builds a new Comp.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		engine:   b.engine,
		source:   b.source,
		staffing: b.staffing,
		assigner: b.assigner,

		serviceMinMinutes:  b.serviceMinMinutes,
		serviceModeMinutes: b.serviceModeMinutes,
		serviceMaxMinutes:  b.serviceMaxMinutes,
		avgStayNights:      b.avgStayNights,
	}

	c.ComponentBase = sim.NewComponentBase(name)

	return c
}
