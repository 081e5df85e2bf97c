package hotel

import (
	"math"

	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

// HourOfDay maps an absolute simulation time to the hour within its day.
func HourOfDay(t sim.VTimeInHours) float64 {
	return math.Mod(float64(t), 24.0)
}

// DayIndex returns the zero-based day an absolute time falls in.
func DayIndex(t sim.VTimeInHours) int {
	return int(float64(t) / 24.0)
}

// CheckoutTime returns the checkout instant for a guest who checks in at
// checkin and stays nights nights: the fixed checkout hour of the day that
// many days after the check-in day.
func CheckoutTime(
	checkin sim.VTimeInHours,
	nights int,
	checkoutHour float64,
) sim.VTimeInHours {
	return sim.VTimeInHours(
		float64((DayIndex(checkin)+nights)*24) + checkoutHour)
}
