package metrics

import (
	"sort"

	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

// FrontDeskState is the view of the front desk the accumulator samples.
type FrontDeskState interface {
	AgentsBusy() int
	QueueLen() int
}

// HousekeepingState is the view of the room inventory the accumulator
// samples.
type HousekeepingState interface {
	CleanersBusy() int
	DirtyQueueLen() int
	OccupiedCount() int
}

// An Accumulator observes a run through the engine's before-advance hook and
// through check-in notifications from the room inventory. Busy-time integrals
// cover the whole horizon; state samples and wait times only count once the
// warm-up period has passed.
type Accumulator struct {
	timeTeller sim.TimeTeller

	frontDesk    FrontDeskState
	housekeeping HousekeepingState

	fdStaffing hotel.StaffingFunc
	hkStaffing hotel.StaffingFunc

	warmupEnd   sim.VTimeInHours
	endTime     sim.VTimeInHours
	checkinHour float64
	numRooms    int
	assumptions Assumptions

	fdBusyTime float64
	hkBusyTime float64

	occupancy []Sample
	fdQueue   []Sample
	hkQueue   []Sample

	fdWaits    []float64
	roomWaits  []float64
	totalWaits []float64

	earlyCheckins int
	eligibleEarly int
}

// ObserveFrontDesk attaches the front desk whose state gets sampled. Call it
// before the run starts.
func (a *Accumulator) ObserveFrontDesk(frontDesk FrontDeskState) {
	a.frontDesk = frontDesk
}

// ObserveHousekeeping attaches the room inventory whose state gets sampled.
// Call it before the run starts.
func (a *Accumulator) ObserveHousekeeping(housekeeping HousekeepingState) {
	a.housekeeping = housekeeping
}

// Func integrates busy time over the interval that ends at the event the
// engine is about to advance to, and past warm-up snapshots queue lengths and
// occupancy. It must be hooked at sim.HookPosBeforeAdvance, where the clock
// still reads the interval start.
func (a *Accumulator) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosBeforeAdvance {
		return
	}

	now := a.timeTeller.CurrentTime()
	next := ctx.Item.(sim.Event).Time()
	dt := float64(next - now)
	if dt <= 0 {
		return
	}

	a.fdBusyTime += float64(a.frontDesk.AgentsBusy()) * dt
	a.hkBusyTime += float64(a.housekeeping.CleanersBusy()) * dt

	if now < a.warmupEnd {
		return
	}

	a.hkQueue = append(a.hkQueue,
		Sample{Time: now, Value: float64(a.housekeeping.DirtyQueueLen())})
	a.fdQueue = append(a.fdQueue,
		Sample{Time: now, Value: float64(a.frontDesk.QueueLen())})
	a.occupancy = append(a.occupancy,
		Sample{Time: now, Value: float64(a.housekeeping.OccupiedCount())})
}

// RecordCheckin takes the wait-time samples for a guest who just received a
// room. Housekeeping calls it at the assignment instant, so the current time
// equals the guest's check-in time.
func (a *Accumulator) RecordCheckin(g *hotel.Guest) {
	now := a.timeTeller.CurrentTime()
	if now < a.warmupEnd {
		return
	}

	a.fdWaits = append(a.fdWaits, float64(*g.FrontDeskStart-g.ArrivalTime))
	a.roomWaits = append(a.roomWaits, float64(*g.CheckinTime-*g.FrontDeskEnd))
	a.totalWaits = append(a.totalWaits, float64(*g.CheckinTime-g.ArrivalTime))

	if hotel.HourOfDay(*g.FrontDeskEnd) < a.checkinHour {
		a.eligibleEarly++
		if hotel.HourOfDay(*g.CheckinTime) < a.checkinHour {
			a.earlyCheckins++
		}
	}
}

// FrontDeskBusyTime returns the agent-hours integral accumulated so far.
func (a *Accumulator) FrontDeskBusyTime() float64 {
	return a.fdBusyTime
}

// HousekeepingBusyTime returns the cleaner-hours integral accumulated so far.
func (a *Accumulator) HousekeepingBusyTime() float64 {
	return a.hkBusyTime
}

// OccupancySeries returns the occupied-room samples in observation order.
func (a *Accumulator) OccupancySeries() []Sample {
	return a.occupancy
}

// FrontDeskQueueSeries returns the desk-queue-length samples in observation
// order.
func (a *Accumulator) FrontDeskQueueSeries() []Sample {
	return a.fdQueue
}

// HousekeepingQueueSeries returns the dirty-room-queue samples in observation
// order.
func (a *Accumulator) HousekeepingQueueSeries() []Sample {
	return a.hkQueue
}

// FrontDeskWaits returns the per-guest waits from arrival to service start,
// in hours.
func (a *Accumulator) FrontDeskWaits() []float64 {
	return a.fdWaits
}

// RoomWaits returns the per-guest waits from service end to room assignment,
// in hours.
func (a *Accumulator) RoomWaits() []float64 {
	return a.roomWaits
}

// TotalWaits returns the per-guest waits from arrival to room assignment, in
// hours.
func (a *Accumulator) TotalWaits() []float64 {
	return a.totalWaits
}

// Summarize reduces everything observed so far to a Report.
func (a *Accumulator) Summarize(runID string) *Report {
	earlyRate := 0.0
	if a.eligibleEarly > 0 {
		earlyRate = float64(a.earlyCheckins) / float64(a.eligibleEarly)
	}

	occupancyRate := 0.0
	if a.numRooms > 0 {
		occupancyRate = meanValue(a.occupancy) / float64(a.numRooms)
	}

	fdUtil, hkUtil := a.utilization()

	return &Report{
		RunID:       runID,
		Assumptions: a.assumptions,
		Results: Results{
			AvgFrontDeskWaitMinutes: mean(a.fdWaits) * 60.0,
			AvgRoomWaitMinutes:      mean(a.roomWaits) * 60.0,
			AvgTotalWaitMinutes:     mean(a.totalWaits) * 60.0,
			FrontDeskUtilization:    fdUtil,
			HousekeepingUtilization: hkUtil,
			AvgFrontDeskQueueLen:    meanValue(a.fdQueue),
			AvgHousekeepingQueueLen: meanValue(a.hkQueue),
			AvgOccupancyRate:        occupancyRate,
			EarlyCheckinSuccessRate: earlyRate,
			GuestsMeasured:          len(a.totalWaits),
		},
	}
}

// utilization divides each busy-time integral by the matching availability
// integral. Availability is integrated by sampling the roster at the midpoint
// between consecutive distinct observation times, with the measured window
// boundaries added so the integral spans the window fully. A run with no
// observations reports zero for both.
func (a *Accumulator) utilization() (fd, hk float64) {
	if len(a.fdQueue) == 0 {
		return 0, 0
	}

	times := make([]float64, 0, len(a.fdQueue)+2)
	for _, s := range a.fdQueue {
		times = append(times, float64(s.Time))
	}
	times = append(times, float64(a.warmupEnd), float64(a.endTime))
	sort.Float64s(times)

	fdAvail := 0.0
	hkAvail := 0.0
	prev := times[0]
	for _, t := range times[1:] {
		if t == prev {
			continue
		}

		mid := hotel.HourOfDay(sim.VTimeInHours(0.5 * (prev + t)))
		fdAvail += float64(a.fdStaffing(mid)) * (t - prev)
		hkAvail += float64(a.hkStaffing(mid)) * (t - prev)
		prev = t
	}

	if fdAvail > 0 {
		fd = a.fdBusyTime / fdAvail
	}
	if hkAvail > 0 {
		hk = a.hkBusyTime / hkAvail
	}

	return fd, hk
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

func meanValue(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range samples {
		sum += s.Value
	}

	return sum / float64(len(samples))
}
