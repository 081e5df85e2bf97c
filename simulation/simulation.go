// Package simulation assembles the engine, the hotel components, the
// measurement hook and the optional monitoring and recording services into
// one runnable scenario.
package simulation

import (
	"github.com/rosamundsoh/hotel-checkin-des/arrivals"
	"github.com/rosamundsoh/hotel-checkin-des/datarecording"
	"github.com/rosamundsoh/hotel-checkin-des/frontdesk"
	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/housekeeping"
	"github.com/rosamundsoh/hotel-checkin-des/metrics"
	"github.com/rosamundsoh/hotel-checkin-des/monitoring"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
	"github.com/rosamundsoh/hotel-checkin-des/stochastic"
)

// A Simulation owns every piece of one configured run.
type Simulation struct {
	id     string
	config hotel.Config

	engine       sim.Engine
	source       *stochastic.Source
	generator    *arrivals.Generator
	frontDesk    *frontdesk.Comp
	housekeeping *housekeeping.Comp
	accumulator  *metrics.Accumulator

	dataRecorder datarecording.DataRecorder
	csvWriter    *datarecording.CSVSeriesWriter
	monitor      *monitoring.Monitor
	progressBar  *monitoring.ProgressBar

	components    []sim.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Config returns the scenario the simulation was built from.
func (s *Simulation) Config() hotel.Config {
	return s.config
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder, or nil when recording is off.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor, or nil when monitoring is off.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// FrontDesk returns the front-desk component.
func (s *Simulation) FrontDesk() *frontdesk.Comp {
	return s.frontDesk
}

// Housekeeping returns the housekeeping component.
func (s *Simulation) Housekeeping() *housekeeping.Comp {
	return s.housekeeping
}

// Accumulator returns the measurement accumulator.
func (s *Simulation) Accumulator() *metrics.Accumulator {
	return s.accumulator
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, ok := s.compNameIndex[compName]; ok {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	return s.components[s.compNameIndex[name]]
}

// Components returns all the registered components.
func (s *Simulation) Components() []sim.Component {
	return s.components
}

// Run executes the scenario and returns the final report. The random stream
// is reset first, so the same simulation configuration always produces the
// same report.
func (s *Simulation) Run() (*metrics.Report, error) {
	s.source.Reseed(s.config.Seed)
	s.generator.GenerateAll()

	err := s.engine.Run()
	if err != nil {
		return nil, err
	}

	s.engine.Finished()

	if s.progressBar != nil {
		s.monitor.CompleteProgressBar(s.progressBar)
	}

	report := s.accumulator.Summarize(s.id)

	if s.dataRecorder != nil {
		datarecording.RecordRun(
			s.dataRecorder, report, s.accumulator, s.frontDesk.Guests())
		s.dataRecorder.Flush()
	}

	if s.csvWriter != nil {
		s.csvWriter.WriteRun(s.accumulator, s.config.NumRooms)
	}

	return report, nil
}

// Terminate releases everything the simulation holds open.
func (s *Simulation) Terminate() {
	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}

	if s.csvWriter != nil {
		s.csvWriter.Close()
	}
}
