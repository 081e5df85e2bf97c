package arrivals

import (
	"github.com/rosamundsoh/hotel-checkin-des/sim"
	"github.com/rosamundsoh/hotel-checkin-des/stochastic"
)

// Builder builds arrival generators.
type Builder struct {
	engine    sim.EventScheduler
	source    *stochastic.Source
	frontDesk sim.Handler
	profile   DemandProfile
	meanDaily float64
	totalDays int
}

// MakeBuilder returns a new Builder with the default demand profile.
func MakeBuilder() Builder {
	return Builder{
		profile:   DefaultDemandProfile(),
		meanDaily: 80,
		totalDays: 14,
	}
}

// WithEngine sets the scheduler the arrival events go to.
func (b Builder) WithEngine(engine sim.EventScheduler) Builder {
	b.engine = engine
	return b
}

// WithSource sets the random stream the arrival counts are drawn from.
func (b Builder) WithSource(source *stochastic.Source) Builder {
	b.source = source
	return b
}

// WithFrontDesk sets the handler that receives the arrival events.
func (b Builder) WithFrontDesk(frontDesk sim.Handler) Builder {
	b.frontDesk = frontDesk
	return b
}

// WithProfile sets the hour-of-day demand profile.
func (b Builder) WithProfile(profile DemandProfile) Builder {
	b.profile = profile
	return b
}

// WithMeanDailyArrivals sets the expected arrivals per day.
func (b Builder) WithMeanDailyArrivals(meanDaily float64) Builder {
	b.meanDaily = meanDaily
	return b
}

// WithTotalDays sets how many days of arrivals to lay out.
func (b Builder) WithTotalDays(totalDays int) Builder {
	b.totalDays = totalDays
	return b
}

// Build builds a Generator.
func (b Builder) Build() *Generator {
	return &Generator{
		engine:    b.engine,
		source:    b.source,
		frontDesk: b.frontDesk,
		profile:   b.profile,
		meanDaily: b.meanDaily,
		totalDays: b.totalDays,
	}
}
