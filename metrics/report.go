// Package metrics collects observations while a simulation runs and reduces
// them to the final report. The Accumulator rides the engine as a hook and
// never schedules events of its own.
package metrics

import (
	"math"
	"sort"

	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

// A Sample is one (time, value) observation of a state variable.
type Sample struct {
	Time  sim.VTimeInHours `json:"time"`
	Value float64          `json:"value"`
}

// Assumptions echoes the scenario a report was produced under.
type Assumptions struct {
	Rooms             int     `json:"rooms"`
	MeanDailyArrivals float64 `json:"mean_daily_arrivals"`
	AvgStayNights     float64 `json:"avg_los_nights"`
	CheckinHour       float64 `json:"checkin_hour"`
	CheckoutHour      float64 `json:"checkout_hour"`
	FrontDeskSchedule string  `json:"front_desk_schedule"`
	CleanersSchedule  string  `json:"housekeeping_cleaners_schedule"`
	SimDays           int     `json:"sim_days"`
	WarmupDays        int     `json:"warmup_days"`
	Seed              int64   `json:"random_seed"`
}

// Results holds the averaged outcomes over the measured window. Waits are in
// minutes, utilizations and rates are ratios.
type Results struct {
	AvgFrontDeskWaitMinutes float64 `json:"avg_front_desk_wait_minutes"`
	AvgRoomWaitMinutes      float64 `json:"avg_wait_for_room_after_fd_minutes"`
	AvgTotalWaitMinutes     float64 `json:"avg_total_arrival_to_room_minutes"`
	FrontDeskUtilization    float64 `json:"front_desk_utilization"`
	HousekeepingUtilization float64 `json:"housekeeping_utilization"`
	AvgFrontDeskQueueLen    float64 `json:"avg_front_desk_queue_len"`
	AvgHousekeepingQueueLen float64 `json:"avg_housekeeping_queue_len"`
	AvgOccupancyRate        float64 `json:"avg_occupancy_rate"`
	EarlyCheckinSuccessRate float64 `json:"early_checkin_success_rate_given_eligible"`
	GuestsMeasured          int     `json:"num_guests_measured"`
}

// A Report is the complete output of one run. The results key carries the
// measurement-window qualifier so downstream consumers of the JSON cannot
// mistake the averages for whole-horizon numbers.
type Report struct {
	RunID       string      `json:"run_id,omitempty"`
	Assumptions Assumptions `json:"assumptions"`
	Results     Results     `json:"results (averages over measured window)"`
}

// Percentile returns the p-th percentile (0 to 100) of samples, linearly
// interpolating between the two closest ranks. An empty slice yields 0.
func Percentile(samples []float64, p float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100.0 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	frac := rank - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
