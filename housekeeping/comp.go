// Package housekeeping owns the room inventory: the clean pool guests draw
// from, the dirty queue cleaners work through, and the hand-off of freshly
// cleaned rooms to guests already waiting for one.
package housekeeping

import (
	"log"
	"reflect"

	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
	"github.com/rosamundsoh/hotel-checkin-des/stochastic"
)

type checkoutEvent struct {
	*sim.EventBase
	room *hotel.Room
}

func newCheckoutEvent(t sim.VTimeInHours, handler sim.Handler,
	room *hotel.Room,
) *checkoutEvent {
	return &checkoutEvent{sim.NewEventBase(t, handler), room}
}

type cleaningDoneEvent struct {
	*sim.EventBase
	room *hotel.Room
}

func newCleaningDoneEvent(t sim.VTimeInHours, handler sim.Handler,
	room *hotel.Room,
) *cleaningDoneEvent {
	return &cleaningDoneEvent{sim.NewEventBase(t, handler), room}
}

// A CheckinRecorder is told about every completed check-in.
type CheckinRecorder interface {
	RecordCheckin(g *hotel.Guest)
}

// A Comp is the housekeeping department together with the room inventory it
// keeps. Every room is in exactly one place: the clean pool, occupied, the
// dirty queue, or under a cleaner.
type Comp struct {
	*sim.ComponentBase

	engine   sim.Engine
	source   *stochastic.Source
	staffing hotel.StaffingFunc
	recorder CheckinRecorder

	cleanMu      float64
	cleanSigma   float64
	checkoutHour float64

	rooms []*hotel.Room

	cleanPool  []*hotel.Room
	dirtyQueue []*hotel.Room
	waiting    []*hotel.Guest
	busy       int
}

// Handle processes checkout and cleaning completion events.
func (c *Comp) Handle(e sim.Event) error {
	switch e := e.(type) {
	case *checkoutEvent:
		c.handleCheckout(e)
	case *cleaningDoneEvent:
		c.handleCleaningDone(e)
	default:
		log.Panicf("cannot handle event of type %s", reflect.TypeOf(e))
	}
	return nil
}

// AssignOrQueue checks the guest into a vacant clean room if one exists,
// otherwise queues the guest for the next freshly cleaned one. Which clean
// room a guest gets is not specified; the pool hands out its most recently
// returned room.
func (c *Comp) AssignOrQueue(g *hotel.Guest) {
	if len(c.cleanPool) == 0 {
		c.waiting = append(c.waiting, g)
		return
	}

	room := c.cleanPool[len(c.cleanPool)-1]
	c.cleanPool = c.cleanPool[:len(c.cleanPool)-1]
	c.assign(g, room)
}

// assign checks g into room, schedules the checkout and reports the
// check-in. Both the clean-pool path and the fresh-from-cleaning path end
// here, so their side effects are identical.
func (c *Comp) assign(g *hotel.Guest, room *hotel.Room) {
	now := c.engine.CurrentTime()

	room.State = hotel.RoomOccupied
	roomID := room.ID
	g.RoomID = &roomID
	checkin := now
	g.CheckinTime = &checkin

	checkout := hotel.CheckoutTime(now, g.StayNights, c.checkoutHour)
	c.engine.Schedule(newCheckoutEvent(checkout, c, room))

	c.recorder.RecordCheckin(g)
}

func (c *Comp) handleCheckout(evt *checkoutEvent) {
	room := evt.room
	room.State = hotel.RoomVacantDirty
	c.dirtyQueue = append(c.dirtyQueue, room)

	c.TryStartCleaning()
}

func (c *Comp) handleCleaningDone(evt *cleaningDoneEvent) {
	c.busy--

	room := evt.room
	if len(c.waiting) > 0 {
		// A waiting guest takes the room directly; it never returns to the
		// clean pool.
		g := c.waiting[0]
		c.waiting = c.waiting[1:]
		c.assign(g, room)
	} else {
		room.State = hotel.RoomVacantClean
		c.cleanPool = append(c.cleanPool, room)
	}

	c.TryStartCleaning()
}

// TryStartCleaning puts free cleaners onto dirty rooms. Like the front desk,
// cleaner capacity is read only at the instants something happens.
func (c *Comp) TryStartCleaning() {
	now := c.engine.CurrentTime()
	for c.busy < c.staffing(hotel.HourOfDay(now)) && len(c.dirtyQueue) > 0 {
		room := c.dirtyQueue[0]
		c.dirtyQueue = c.dirtyQueue[1:]

		room.State = hotel.RoomBeingCleaned
		dur := sim.VTimeInHours(c.drawCleaningHours())
		c.busy++
		c.engine.Schedule(newCleaningDoneEvent(now+dur, c, room))
	}
}

func (c *Comp) drawCleaningHours() float64 {
	return c.source.LogNormal(c.cleanMu, c.cleanSigma) / 60.0
}

// CleanersBusy returns how many cleaners are working right now.
func (c *Comp) CleanersBusy() int {
	return c.busy
}

// DirtyQueueLen returns how many rooms wait for a cleaner.
func (c *Comp) DirtyQueueLen() int {
	return len(c.dirtyQueue)
}

// OccupiedCount returns how many rooms currently host a guest.
func (c *Comp) OccupiedCount() int {
	n := 0
	for _, r := range c.rooms {
		if r.State == hotel.RoomOccupied {
			n++
		}
	}
	return n
}

// CleanRoomCount returns how many rooms sit ready in the clean pool.
func (c *Comp) CleanRoomCount() int {
	return len(c.cleanPool)
}

// WaitingGuests returns how many guests finished front-desk service but
// still wait for a room.
func (c *Comp) WaitingGuests() int {
	return len(c.waiting)
}

// Rooms returns the full inventory. The slice is live, not a copy.
func (c *Comp) Rooms() []*hotel.Room {
	return c.rooms
}

// StateCounts returns how many rooms are in each state.
func (c *Comp) StateCounts() map[hotel.RoomState]int {
	counts := make(map[hotel.RoomState]int)
	for _, r := range c.rooms {
		counts[r.State]++
	}
	return counts
}
