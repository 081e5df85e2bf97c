package hotel

// A StaffingFunc reports how many staff are on duty at the given hour of day.
// The engine consults it only when something happens, never on a timer, so a
// staffing change takes effect at the next event after it.
type StaffingFunc func(hourOfDay float64) int

// A StaffingBand sets a staff count for the hours in [From, To).
type StaffingBand struct {
	From  float64
	To    float64
	Count int
}

// StepStaffing builds a StaffingFunc from bands. The first band containing
// the hour wins. Hours covered by no band get the fallback count.
func StepStaffing(fallback int, bands ...StaffingBand) StaffingFunc {
	return func(hourOfDay float64) int {
		for _, b := range bands {
			if hourOfDay >= b.From && hourOfDay < b.To {
				return b.Count
			}
		}
		return fallback
	}
}

// ConstantStaffing staffs the same count around the clock.
func ConstantStaffing(count int) StaffingFunc {
	return func(float64) int {
		return count
	}
}

// ShiftStaffing staffs count people inside [start, end) hours and none
// outside.
func ShiftStaffing(count int, start, end float64) StaffingFunc {
	return StepStaffing(0, StaffingBand{From: start, To: end, Count: count})
}

// DefaultFrontDeskStaffing is the baseline desk roster: a small night crew,
// more agents through the morning, and the largest shift across the
// afternoon check-in peak.
func DefaultFrontDeskStaffing() StaffingFunc {
	return StepStaffing(3,
		StaffingBand{From: 0, To: 8, Count: 2},
		StaffingBand{From: 8, To: 12, Count: 3},
		StaffingBand{From: 12, To: 20, Count: 6},
	)
}
