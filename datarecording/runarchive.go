package datarecording

import (
	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/metrics"
)

// RunEntry is one row of the runs table, the scenario echo plus the
// headline results of a finished run.
type RunEntry struct {
	RunID string

	Rooms             int
	MeanDailyArrivals float64
	AvgStayNights     float64
	CheckinHour       float64
	CheckoutHour      float64
	FrontDeskSchedule string
	CleanersSchedule  string
	SimDays           int
	WarmupDays        int
	Seed              int64

	AvgFrontDeskWaitMinutes float64
	AvgRoomWaitMinutes      float64
	AvgTotalWaitMinutes     float64
	FrontDeskUtilization    float64
	HousekeepingUtilization float64
	AvgFrontDeskQueueLen    float64
	AvgHousekeepingQueueLen float64
	AvgOccupancyRate        float64
	EarlyCheckinSuccessRate float64
	GuestsMeasured          int
}

// SampleEntry is one (time, value) observation of a named state series.
type SampleEntry struct {
	RunID  string
	Series string
	TimeH  float64
	Value  float64
}

// WaitEntry is one guest wait observation, converted to minutes.
type WaitEntry struct {
	RunID   string
	Kind    string
	Minutes float64
}

// GuestEntry is one row of the guest ledger. Milestones a guest never
// reached are stored as -1, including stranded guests at the end of a run.
type GuestEntry struct {
	RunID   string
	GuestID int

	ArrivalTimeH    float64
	FrontDeskStartH float64
	FrontDeskEndH   float64
	CheckinTimeH    float64

	StayNights int
	RoomID     int
}

// RecordRun writes a finished run into the recorder: the report row, the
// sampled state series, the per-guest waits and the full guest ledger.
// Tables are created on first use so several runs can share one database.
func RecordRun(
	recorder DataRecorder,
	report *metrics.Report,
	acc *metrics.Accumulator,
	guests []*hotel.Guest,
) {
	ensureTable(recorder, "runs", RunEntry{})
	ensureTable(recorder, "series_samples", SampleEntry{})
	ensureTable(recorder, "wait_samples", WaitEntry{})
	ensureTable(recorder, "guests", GuestEntry{})

	recorder.InsertData("runs", runEntryFromReport(report))

	recordSeries(recorder, report.RunID, "occupancy", acc.OccupancySeries())
	recordSeries(recorder, report.RunID,
		"front_desk_queue", acc.FrontDeskQueueSeries())
	recordSeries(recorder, report.RunID,
		"housekeeping_queue", acc.HousekeepingQueueSeries())

	recordWaits(recorder, report.RunID, "front_desk", acc.FrontDeskWaits())
	recordWaits(recorder, report.RunID, "room", acc.RoomWaits())
	recordWaits(recorder, report.RunID, "total", acc.TotalWaits())

	for _, g := range guests {
		recorder.InsertData("guests", guestEntry(report.RunID, g))
	}
}

func ensureTable(recorder DataRecorder, name string, sampleEntry any) {
	for _, t := range recorder.ListTables() {
		if t == name {
			return
		}
	}

	recorder.CreateTable(name, sampleEntry)
}

func runEntryFromReport(report *metrics.Report) RunEntry {
	a := report.Assumptions
	r := report.Results

	return RunEntry{
		RunID: report.RunID,

		Rooms:             a.Rooms,
		MeanDailyArrivals: a.MeanDailyArrivals,
		AvgStayNights:     a.AvgStayNights,
		CheckinHour:       a.CheckinHour,
		CheckoutHour:      a.CheckoutHour,
		FrontDeskSchedule: a.FrontDeskSchedule,
		CleanersSchedule:  a.CleanersSchedule,
		SimDays:           a.SimDays,
		WarmupDays:        a.WarmupDays,
		Seed:              a.Seed,

		AvgFrontDeskWaitMinutes: r.AvgFrontDeskWaitMinutes,
		AvgRoomWaitMinutes:      r.AvgRoomWaitMinutes,
		AvgTotalWaitMinutes:     r.AvgTotalWaitMinutes,
		FrontDeskUtilization:    r.FrontDeskUtilization,
		HousekeepingUtilization: r.HousekeepingUtilization,
		AvgFrontDeskQueueLen:    r.AvgFrontDeskQueueLen,
		AvgHousekeepingQueueLen: r.AvgHousekeepingQueueLen,
		AvgOccupancyRate:        r.AvgOccupancyRate,
		EarlyCheckinSuccessRate: r.EarlyCheckinSuccessRate,
		GuestsMeasured:          r.GuestsMeasured,
	}
}

func recordSeries(
	recorder DataRecorder,
	runID, name string,
	samples []metrics.Sample,
) {
	for _, s := range samples {
		recorder.InsertData("series_samples", SampleEntry{
			RunID:  runID,
			Series: name,
			TimeH:  float64(s.Time),
			Value:  s.Value,
		})
	}
}

func recordWaits(
	recorder DataRecorder,
	runID, kind string,
	hours []float64,
) {
	for _, h := range hours {
		recorder.InsertData("wait_samples", WaitEntry{
			RunID:   runID,
			Kind:    kind,
			Minutes: h * 60.0,
		})
	}
}

func guestEntry(runID string, g *hotel.Guest) GuestEntry {
	e := GuestEntry{
		RunID:   runID,
		GuestID: g.ID,

		ArrivalTimeH:    float64(g.ArrivalTime),
		FrontDeskStartH: -1,
		FrontDeskEndH:   -1,
		CheckinTimeH:    -1,

		StayNights: g.StayNights,
		RoomID:     -1,
	}

	if g.FrontDeskStart != nil {
		e.FrontDeskStartH = float64(*g.FrontDeskStart)
	}

	if g.FrontDeskEnd != nil {
		e.FrontDeskEndH = float64(*g.FrontDeskEnd)
	}

	if g.CheckinTime != nil {
		e.CheckinTimeH = float64(*g.CheckinTime)
	}

	if g.RoomID != nil {
		e.RoomID = *g.RoomID
	}

	return e
}
