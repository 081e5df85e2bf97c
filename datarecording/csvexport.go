package datarecording

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/xid"

	"github.com/rosamundsoh/hotel-checkin-des/metrics"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

// CSVSeriesWriter stores the sampled state series of a run into a CSV file,
// one row per occupancy observation.
type CSVSeriesWriter struct {
	path string
	file *os.File
}

// NewCSVSeriesWriter creates a CSVSeriesWriter that writes to path + ".csv".
func NewCSVSeriesWriter(path string) *CSVSeriesWriter {
	return &CSVSeriesWriter{path: path}
}

// Init creates the CSV file and writes the header.
func (t *CSVSeriesWriter) Init() {
	if t.path == "" {
		t.path = "hotelsim_series_" + xid.New().String()
	}

	filename := t.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	t.file = file

	fmt.Fprintf(file, "time_h,time,occupancy,fd_queue,vd_queue,occ_rate\n")
}

// WriteRun writes the accumulated series of one run. The queue series are
// aligned with the occupancy series by index; a shorter series repeats its
// last value.
func (t *CSVSeriesWriter) WriteRun(acc *metrics.Accumulator, numRooms int) {
	occ := acc.OccupancySeries()
	fdQueue := acc.FrontDeskQueueSeries()
	hkQueue := acc.HousekeepingQueueSeries()

	for i, s := range occ {
		occRate := 0.0
		if numRooms > 0 {
			occRate = s.Value / float64(numRooms)
		}

		fmt.Fprintf(t.file, "%.10f,%s,%d,%d,%d,%.6f\n",
			float64(s.Time),
			formatDayClock(s.Time),
			int(s.Value),
			int(seriesAt(fdQueue, i)),
			int(seriesAt(hkQueue, i)),
			occRate,
		)
	}
}

// Close closes the file.
func (t *CSVSeriesWriter) Close() {
	err := t.file.Close()
	if err != nil {
		panic(err)
	}
}

func seriesAt(samples []metrics.Sample, i int) float64 {
	if len(samples) == 0 {
		return 0
	}

	if i >= len(samples) {
		return samples[len(samples)-1].Value
	}

	return samples[i].Value
}

// formatDayClock renders an absolute hour count as a day index plus wall
// clock, like "D3 15:30".
func formatDayClock(t sim.VTimeInHours) string {
	day := int(float64(t) / 24.0)
	hour := int(math.Mod(float64(t), 24.0))
	minute := int(math.Mod(float64(t)*60.0, 60.0))

	return fmt.Sprintf("D%d %02d:%02d", day, hour, minute)
}
