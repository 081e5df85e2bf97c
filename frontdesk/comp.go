// Package frontdesk models the check-in counter: a FIFO guest queue served
// by a time-varying number of agents.
package frontdesk

import (
	"log"
	"math"
	"reflect"

	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
	"github.com/rosamundsoh/hotel-checkin-des/stochastic"
)

// An ArrivalEvent marks a guest walking up to the front desk. The arrival
// generator schedules one per guest before the run starts.
type ArrivalEvent struct {
	*sim.EventBase
}

// NewArrivalEvent creates an ArrivalEvent at time t for the given handler.
func NewArrivalEvent(t sim.VTimeInHours, handler sim.Handler) *ArrivalEvent {
	return &ArrivalEvent{sim.NewEventBase(t, handler)}
}

type serviceDoneEvent struct {
	*sim.EventBase
	guest *hotel.Guest
}

func newServiceDoneEvent(t sim.VTimeInHours, handler sim.Handler,
	guest *hotel.Guest,
) *serviceDoneEvent {
	return &serviceDoneEvent{sim.NewEventBase(t, handler), guest}
}

// A RoomAssigner receives guests who finished front-desk service and either
// checks them into a room right away or queues them for the next one.
type RoomAssigner interface {
	AssignOrQueue(g *hotel.Guest)
}

// A Comp is the front desk. Guests queue in arrival order and are served by
// however many agents the staffing schedule grants at the moment service
// could start.
type Comp struct {
	*sim.ComponentBase

	engine   sim.Engine
	source   *stochastic.Source
	staffing hotel.StaffingFunc
	assigner RoomAssigner

	serviceMinMinutes  float64
	serviceModeMinutes float64
	serviceMaxMinutes  float64
	avgStayNights      float64

	queue  []*hotel.Guest
	busy   int
	guests []*hotel.Guest
}

// Handle processes arrival and service completion events.
func (c *Comp) Handle(e sim.Event) error {
	switch e := e.(type) {
	case *ArrivalEvent:
		c.handleArrival(e)
	case *serviceDoneEvent:
		c.handleServiceDone(e)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}
	return nil
}

func (c *Comp) handleArrival(_ *ArrivalEvent) {
	g := &hotel.Guest{
		ID:          len(c.guests),
		ArrivalTime: c.engine.CurrentTime(),
		StayNights:  c.drawStayNights(),
	}
	c.guests = append(c.guests, g)
	c.queue = append(c.queue, g)

	c.TryStartService()
}

func (c *Comp) handleServiceDone(evt *serviceDoneEvent) {
	c.busy--

	g := evt.guest
	end := c.engine.CurrentTime()
	g.FrontDeskEnd = &end

	c.assigner.AssignOrQueue(g)
	c.TryStartService()
}

// TryStartService moves guests from the queue into service while agents are
// free. Staffing is read only here, at the instants something happens, so a
// shift change takes effect at the next event after it.
func (c *Comp) TryStartService() {
	now := c.engine.CurrentTime()
	for c.busy < c.staffing(hotel.HourOfDay(now)) && len(c.queue) > 0 {
		g := c.queue[0]
		c.queue = c.queue[1:]

		start := now
		g.FrontDeskStart = &start

		dur := sim.VTimeInHours(c.drawServiceHours())
		c.busy++
		c.engine.Schedule(newServiceDoneEvent(now+dur, c, g))
	}
}

// drawStayNights samples the length of stay once per guest: exponential with
// the configured mean, rounded up to at least one night.
func (c *Comp) drawStayNights() int {
	nights := int(math.Ceil(c.source.Exponential(c.avgStayNights)))
	if nights < 1 {
		return 1
	}
	return nights
}

func (c *Comp) drawServiceHours() float64 {
	return c.source.Triangular(
		c.serviceMinMinutes, c.serviceModeMinutes, c.serviceMaxMinutes) / 60.0
}

// AgentsBusy returns how many agents are serving right now.
func (c *Comp) AgentsBusy() int {
	return c.busy
}

// QueueLen returns how many guests wait for an agent.
func (c *Comp) QueueLen() int {
	return len(c.queue)
}

// Guests returns every guest that has arrived so far, in arrival order. The
// slice is the live ledger, not a copy.
func (c *Comp) Guests() []*hotel.Guest {
	return c.guests
}
