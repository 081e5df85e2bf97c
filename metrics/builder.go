package metrics

import (
	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

// Builder builds accumulators.
type Builder struct {
	timeTeller sim.TimeTeller
	config     hotel.Config
	fdStaffing hotel.StaffingFunc
	hkStaffing hotel.StaffingFunc
	fdLabel    string
	hkLabel    string
}

// MakeBuilder returns a Builder for the default scenario with the default
// rosters.
func MakeBuilder() Builder {
	return Builder{
		config:  hotel.DefaultConfig(),
		fdLabel: "default",
		hkLabel: "default",
	}
}

// WithTimeTeller sets where the accumulator reads the clock from.
func (b Builder) WithTimeTeller(timeTeller sim.TimeTeller) Builder {
	b.timeTeller = timeTeller
	return b
}

// WithConfig sets the scenario the accumulator measures against and echoes in
// the report.
func (b Builder) WithConfig(config hotel.Config) Builder {
	b.config = config
	return b
}

// WithFrontDeskStaffing replaces the desk roster used for the availability
// integral. The report labels the schedule as custom.
func (b Builder) WithFrontDeskStaffing(staffing hotel.StaffingFunc) Builder {
	b.fdStaffing = staffing
	b.fdLabel = "custom"
	return b
}

// WithHousekeepingStaffing replaces the cleaner roster used for the
// availability integral. The report labels the schedule as custom.
func (b Builder) WithHousekeepingStaffing(staffing hotel.StaffingFunc) Builder {
	b.hkStaffing = staffing
	b.hkLabel = "custom"
	return b
}

// Build creates the Accumulator.
func (b Builder) Build() *Accumulator {
	if b.fdStaffing == nil {
		b.fdStaffing = hotel.DefaultFrontDeskStaffing()
	}

	if b.hkStaffing == nil {
		b.hkStaffing = hotel.ShiftStaffing(
			b.config.Cleaners, b.config.ShiftStartHour, b.config.ShiftEndHour)
	}

	return &Accumulator{
		timeTeller:  b.timeTeller,
		fdStaffing:  b.fdStaffing,
		hkStaffing:  b.hkStaffing,
		warmupEnd:   b.config.WarmupEnd(),
		endTime:     b.config.EndTime(),
		checkinHour: b.config.CheckinHour,
		numRooms:    b.config.NumRooms,
		assumptions: Assumptions{
			Rooms:             b.config.NumRooms,
			MeanDailyArrivals: b.config.MeanDailyArrivals,
			AvgStayNights:     b.config.AvgStayNights,
			CheckinHour:       b.config.CheckinHour,
			CheckoutHour:      b.config.CheckoutHour,
			FrontDeskSchedule: b.fdLabel,
			CleanersSchedule:  b.hkLabel,
			SimDays:           b.config.SimDays,
			WarmupDays:        b.config.WarmupDays,
			Seed:              b.config.Seed,
		},
	}
}
