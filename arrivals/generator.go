package arrivals

import (
	"github.com/rosamundsoh/hotel-checkin-des/frontdesk"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
	"github.com/rosamundsoh/hotel-checkin-des/stochastic"
)

// A Generator draws the whole arrival stream up front and schedules one
// front-desk arrival event per guest. Nothing about the stream is lazy, so
// the event count is known before the first event runs.
type Generator struct {
	engine    sim.EventScheduler
	source    *stochastic.Source
	frontDesk sim.Handler

	profile   DemandProfile
	meanDaily float64
	totalDays int
}

// GenerateAll walks every hour of every day, draws that hour's arrival count
// from a Poisson distribution with the hour's share of the daily mean, and
// places each arrival uniformly inside the hour. It returns the number of
// arrivals scheduled.
func (g *Generator) GenerateAll() int {
	weights := g.profile.Normalized()

	n := 0
	for d := 0; d < g.totalDays; d++ {
		for h := 0; h < 24; h++ {
			lambda := g.meanDaily * weights[h]
			count := g.source.Poisson(lambda)
			for i := 0; i < count; i++ {
				t := sim.VTimeInHours(float64(d*24+h) + g.source.Float64())
				g.engine.Schedule(frontdesk.NewArrivalEvent(t, g.frontDesk))
				n++
			}
		}
	}

	return n
}
