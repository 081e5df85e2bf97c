// The hotelsim command runs one hotel check-in scenario and prints the
// final report as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/rosamundsoh/hotel-checkin-des/hotel"
	"github.com/rosamundsoh/hotel-checkin-des/sim"
	"github.com/rosamundsoh/hotel-checkin-des/simulation"
)

var (
	configFile string

	rooms        int
	arrivals     float64
	stayNights   float64
	simDays      int
	warmupDays   int
	seed         int64
	checkinHour  float64
	checkoutHour float64
	cleaners     int
	shiftStart   float64
	shiftEnd     float64

	monitorOn   bool
	monitorPort int
	openPage    bool

	sqlitePath string
	csvPath    string

	traceEvents bool
)

var rootCmd = &cobra.Command{
	Use:   "hotelsim",
	Short: "Hotel check-in flow simulator",
	Long: `hotelsim runs a discrete-event simulation of a hotel's check-in flow:
guests arrive, queue for the front desk, and wait for a clean room while
housekeeping turns rooms around during its shift.

The final report is printed to stdout as JSON. A web monitor, a SQLite
archive and a CSV series export can each be switched on per run.`,
	RunE: runScenario,
}

func init() {
	defaults := hotel.DefaultConfig()
	flags := rootCmd.Flags()

	flags.StringVarP(&configFile, "config", "c", "",
		"Path to a YAML scenario file")

	flags.IntVar(&rooms, "rooms", defaults.NumRooms,
		"Number of rooms")
	flags.Float64Var(&arrivals, "arrivals", defaults.MeanDailyArrivals,
		"Mean daily arrivals")
	flags.Float64Var(&stayNights, "stay-nights", defaults.AvgStayNights,
		"Average length of stay in nights")
	flags.IntVar(&simDays, "sim-days", defaults.SimDays,
		"Days measured after warm-up")
	flags.IntVar(&warmupDays, "warmup-days", defaults.WarmupDays,
		"Warm-up days excluded from measurement")
	flags.Int64Var(&seed, "seed", defaults.Seed,
		"Random seed")
	flags.Float64Var(&checkinHour, "checkin-hour", defaults.CheckinHour,
		"Earliest check-in hour of day")
	flags.Float64Var(&checkoutHour, "checkout-hour", defaults.CheckoutHour,
		"Check-out hour of day")
	flags.IntVar(&cleaners, "cleaners", defaults.Cleaners,
		"Cleaners on shift")
	flags.Float64Var(&shiftStart, "shift-start", defaults.ShiftStartHour,
		"Housekeeping shift start hour")
	flags.Float64Var(&shiftEnd, "shift-end", defaults.ShiftEndHour,
		"Housekeeping shift end hour")

	flags.BoolVar(&monitorOn, "monitor", false,
		"Serve the web monitor during and after the run")
	flags.IntVar(&monitorPort, "monitor-port", 0,
		"Port for the web monitor (0 picks a free one)")
	flags.BoolVar(&openPage, "open", false,
		"Open the monitor page in a browser")

	flags.StringVar(&sqlitePath, "sqlite", "",
		"Record the run into <path>.sqlite3")
	flags.StringVar(&csvPath, "csv", "",
		"Export the state series into <path>.csv")

	flags.BoolVar(&traceEvents, "trace-events", false,
		"Log every dispatched event to stderr")
}

// loadScenario layers the configuration: defaults, then the YAML file, then
// every flag set on the command line.
func loadScenario(cmd *cobra.Command) (hotel.Config, error) {
	config := hotel.DefaultConfig()

	if configFile != "" {
		loaded, err := hotel.LoadConfig(configFile)
		if err != nil {
			return config, err
		}

		config = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rooms") {
		config.NumRooms = rooms
	}

	if flags.Changed("arrivals") {
		config.MeanDailyArrivals = arrivals
	}

	if flags.Changed("stay-nights") {
		config.AvgStayNights = stayNights
	}

	if flags.Changed("sim-days") {
		config.SimDays = simDays
	}

	if flags.Changed("warmup-days") {
		config.WarmupDays = warmupDays
	}

	if flags.Changed("seed") {
		config.Seed = seed
	}

	if flags.Changed("checkin-hour") {
		config.CheckinHour = checkinHour
	}

	if flags.Changed("checkout-hour") {
		config.CheckoutHour = checkoutHour
	}

	if flags.Changed("cleaners") {
		config.Cleaners = cleaners
	}

	if flags.Changed("shift-start") {
		config.ShiftStartHour = shiftStart
	}

	if flags.Changed("shift-end") {
		config.ShiftEndHour = shiftEnd
	}

	return config, nil
}

func resolveMonitorPort(cmd *cobra.Command) error {
	if !monitorOn || cmd.Flags().Changed("monitor-port") {
		return nil
	}

	portString := os.Getenv("HOTELSIM_MONITOR_PORT")
	if portString == "" {
		return nil
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return fmt.Errorf("invalid HOTELSIM_MONITOR_PORT: %w", err)
	}

	monitorPort = port

	return nil
}

func runScenario(cmd *cobra.Command, _ []string) error {
	config, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	err = config.Validate()
	if err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	err = resolveMonitorPort(cmd)
	if err != nil {
		return err
	}

	builder := simulation.MakeBuilder().WithConfig(config)

	if !monitorOn {
		builder = builder.WithoutMonitoring()
	}

	if monitorOn && monitorPort > 0 {
		builder = builder.WithMonitorPort(monitorPort)
	}

	if cmd.Flags().Changed("sqlite") {
		builder = builder.WithDataRecording(sqlitePath)
	}

	if cmd.Flags().Changed("csv") {
		builder = builder.WithCSVExport(csvPath)
	}

	s := builder.Build()
	defer s.Terminate()

	if traceEvents {
		logger := log.New(os.Stderr, "", 0)
		s.GetEngine().AcceptHook(sim.NewEventLogger(logger))
	}

	if openPage && s.GetMonitor() != nil {
		url := fmt.Sprintf("http://localhost:%d", s.GetMonitor().Port())

		err := browser.OpenURL(url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open %s: %s\n", url, err)
		}
	}

	report, err := s.Run()
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	if monitorOn {
		fmt.Fprintln(os.Stderr,
			"Run complete. The monitor keeps serving; press Ctrl-C to exit.")
		select {}
	}

	return nil
}

func main() {
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
