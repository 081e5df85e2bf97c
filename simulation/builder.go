package simulation

import (
	"github.com/rs/xid"

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

// Builder can be used to build a simulation.
type Builder struct {
	config     hotel.Config
	fdStaffing hotel.StaffingFunc
	hkStaffing hotel.StaffingFunc

	demand   arrivals.DemandProfile
	demandOn bool

	monitorOn   bool
	monitorPort int

	recordingOn    bool
	outputFileName string

	csvOn       bool
	csvFileName string
}

// MakeBuilder creates a builder holding the baseline scenario, with
// monitoring on and recording off.
func MakeBuilder() Builder {
	return Builder{
		config:    hotel.DefaultConfig(),
		monitorOn: true,
	}
}

// WithConfig replaces the scenario configuration.
func (b Builder) WithConfig(config hotel.Config) Builder {
	b.config = config
	return b
}

// WithFrontDeskStaffing overrides the agent roster the configuration would
// otherwise derive.
func (b Builder) WithFrontDeskStaffing(staffing hotel.StaffingFunc) Builder {
	b.fdStaffing = staffing
	return b
}

// WithHousekeepingStaffing overrides the cleaner roster the configuration
// would otherwise derive.
func (b Builder) WithHousekeepingStaffing(staffing hotel.StaffingFunc) Builder {
	b.hkStaffing = staffing
	return b
}

// WithDemandProfile replaces the hourly arrival demand shape.
func (b Builder) WithDemandProfile(profile arrivals.DemandProfile) Builder {
	b.demand = profile
	b.demandOn = true
	return b
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithDataRecording stores the finished run into a SQLite database at
// path + ".sqlite3". An empty path derives a name from the run ID.
func (b Builder) WithDataRecording(path string) Builder {
	b.recordingOn = true
	b.outputFileName = path
	return b
}

// WithCSVExport stores the sampled state series into path + ".csv". An
// empty path derives a name from the run ID.
func (b Builder) WithCSVExport(path string) Builder {
	b.csvOn = true
	b.csvFileName = path
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	err := b.config.Validate()
	if err != nil {
		panic(err)
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		config:        b.config,
		compNameIndex: make(map[string]int),
	}

	engine := sim.NewSerialEngine()
	engine.SetHorizon(b.config.EndTime())
	s.engine = engine

	s.source = stochastic.NewSource(b.config.Seed)

	b.buildMeasurement(s)
	b.buildComponents(s)
	b.buildGenerator(s)
	b.buildRecording(s)
	b.buildMonitor(s)

	return s
}

func (b Builder) buildMeasurement(s *Simulation) {
	metricsBuilder := metrics.MakeBuilder().
		WithTimeTeller(s.engine).
		WithConfig(b.config)

	if b.fdStaffing != nil {
		metricsBuilder = metricsBuilder.WithFrontDeskStaffing(b.fdStaffing)
	}

	if b.hkStaffing != nil {
		metricsBuilder = metricsBuilder.WithHousekeepingStaffing(b.hkStaffing)
	}

	s.accumulator = metricsBuilder.Build()
}

func (b Builder) buildComponents(s *Simulation) {
	fdStaffing := b.fdStaffing
	if fdStaffing == nil {
		fdStaffing = hotel.DefaultFrontDeskStaffing()
	}

	hkStaffing := b.hkStaffing
	if hkStaffing == nil {
		hkStaffing = hotel.ShiftStaffing(
			b.config.Cleaners,
			b.config.ShiftStartHour,
			b.config.ShiftEndHour,
		)
	}

	s.housekeeping = housekeeping.MakeBuilder().
		WithEngine(s.engine).
		WithSource(s.source).
		WithStaffing(hkStaffing).
		WithRecorder(s.accumulator).
		WithNumRooms(b.config.NumRooms).
		WithCleanMinutes(b.config.CleanMeanMinutes, b.config.CleanSigma).
		WithCheckoutHour(b.config.CheckoutHour).
		Build("Housekeeping")

	s.frontDesk = frontdesk.MakeBuilder().
		WithEngine(s.engine).
		WithSource(s.source).
		WithStaffing(fdStaffing).
		WithAssigner(s.housekeeping).
		WithServiceMinutes(
			b.config.FrontDeskServiceMinMinutes,
			b.config.FrontDeskServiceModeMinutes,
			b.config.FrontDeskServiceMaxMinutes).
		WithAvgStayNights(b.config.AvgStayNights).
		Build("FrontDesk")

	s.accumulator.ObserveFrontDesk(s.frontDesk)
	s.accumulator.ObserveHousekeeping(s.housekeeping)

	s.engine.AcceptHook(s.accumulator)
	s.engine.AcceptHook(reactivationHook{
		frontDesk:    s.frontDesk,
		housekeeping: s.housekeeping,
	})

	s.RegisterComponent(s.frontDesk)
	s.RegisterComponent(s.housekeeping)
}

func (b Builder) buildGenerator(s *Simulation) {
	generatorBuilder := arrivals.MakeBuilder().
		WithEngine(s.engine).
		WithSource(s.source).
		WithFrontDesk(s.frontDesk).
		WithMeanDailyArrivals(b.config.MeanDailyArrivals).
		WithTotalDays(b.config.TotalDays())

	if b.demandOn {
		generatorBuilder = generatorBuilder.WithProfile(b.demand)
	}

	s.generator = generatorBuilder.Build()
}

func (b Builder) buildRecording(s *Simulation) {
	if b.recordingOn {
		path := b.outputFileName
		if path == "" {
			path = "hotelsim_" + s.id
		}

		s.dataRecorder = datarecording.NewDataRecorder(path)
	}

	if b.csvOn {
		path := b.csvFileName
		if path == "" {
			path = "hotelsim_series_" + s.id
		}

		csvWriter := datarecording.NewCSVSeriesWriter(path)
		csvWriter.Init()
		s.csvWriter = csvWriter
	}
}

func (b Builder) buildMonitor(s *Simulation) {
	if !b.monitorOn {
		return
	}

	s.monitor = monitoring.NewMonitor()
	s.monitor.WithRunID(s.id)

	if b.monitorPort > 0 {
		s.monitor.WithPortNumber(b.monitorPort)
	}

	s.monitor.RegisterEngine(s.engine)
	s.monitor.RegisterAccumulator(s.accumulator)

	for _, c := range s.components {
		s.monitor.RegisterComponent(c)
	}

	s.progressBar = s.monitor.CreateProgressBar(
		"Simulated hours", uint64(b.config.TotalDays()*24))
	s.engine.AcceptHook(progressHook{
		engine: s.engine,
		bar:    s.progressBar,
	})

	s.monitor.StartServer()
}
