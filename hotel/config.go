package hotel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rosamundsoh/hotel-checkin-des/sim"
)

// Config collects every parameter of a simulation run. The zero value is not
// a usable scenario; start from DefaultConfig and override.
type Config struct {
	NumRooms   int `yaml:"numRooms"`
	SimDays    int `yaml:"simDays"`
	WarmupDays int `yaml:"warmupDays"`

	MeanDailyArrivals float64 `yaml:"meanDailyArrivals"`
	AvgStayNights     float64 `yaml:"avgStayNights"`

	CheckinHour  float64 `yaml:"checkinHour"`
	CheckoutHour float64 `yaml:"checkoutHour"`

	FrontDeskServiceMinMinutes  float64 `yaml:"frontDeskServiceMinMinutes"`
	FrontDeskServiceModeMinutes float64 `yaml:"frontDeskServiceModeMinutes"`
	FrontDeskServiceMaxMinutes  float64 `yaml:"frontDeskServiceMaxMinutes"`

	CleanMeanMinutes float64 `yaml:"cleanMeanMinutes"`
	CleanSigma       float64 `yaml:"cleanSigma"`

	Cleaners       int     `yaml:"cleaners"`
	ShiftStartHour float64 `yaml:"shiftStartHour"`
	ShiftEndHour   float64 `yaml:"shiftEndHour"`

	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the baseline scenario: a 200 room property observed
// for a week after a week of warm-up.
func DefaultConfig() Config {
	return Config{
		NumRooms:   200,
		SimDays:    7,
		WarmupDays: 7,

		MeanDailyArrivals: 80,
		AvgStayNights:     2.0,

		CheckinHour:  15.0,
		CheckoutHour: 12.0,

		FrontDeskServiceMinMinutes:  3,
		FrontDeskServiceModeMinutes: 6,
		FrontDeskServiceMaxMinutes:  10,

		CleanMeanMinutes: 35,
		CleanSigma:       0.5,

		Cleaners:       12,
		ShiftStartHour: 9.0,
		ShiftEndHour:   17.0,

		Seed: 42,
	}
}

// TotalDays is the warm-up period plus the measured horizon.
func (c Config) TotalDays() int {
	return c.WarmupDays + c.SimDays
}

// EndTime is the instant the run stops at.
func (c Config) EndTime() sim.VTimeInHours {
	return sim.VTimeInHours(float64(c.TotalDays()) * 24.0)
}

// WarmupEnd is the instant measurement starts at.
func (c Config) WarmupEnd() sim.VTimeInHours {
	return sim.VTimeInHours(float64(c.WarmupDays) * 24.0)
}

// Validate rejects configurations that cannot describe a real property. The
// components themselves trust their inputs, so callers that accept outside
// configuration should validate before building a simulation.
func (c Config) Validate() error {
	if c.NumRooms < 0 {
		return fmt.Errorf("numRooms must not be negative")
	}

	if c.SimDays <= 0 {
		return fmt.Errorf("simDays must be greater than 0")
	}

	if c.WarmupDays < 0 {
		return fmt.Errorf("warmupDays must not be negative")
	}

	if c.MeanDailyArrivals < 0 {
		return fmt.Errorf("meanDailyArrivals must not be negative")
	}

	if c.AvgStayNights <= 0 {
		return fmt.Errorf("avgStayNights must be greater than 0")
	}

	if c.CheckinHour < 0 || c.CheckinHour >= 24 {
		return fmt.Errorf("checkinHour must be within [0, 24)")
	}

	if c.CheckoutHour < 0 || c.CheckoutHour >= 24 {
		return fmt.Errorf("checkoutHour must be within [0, 24)")
	}

	if c.FrontDeskServiceMinMinutes < 0 {
		return fmt.Errorf("frontDeskServiceMinMinutes must not be negative")
	}

	if c.FrontDeskServiceModeMinutes < c.FrontDeskServiceMinMinutes {
		return fmt.Errorf(
			"frontDeskServiceModeMinutes must not be below the minimum")
	}

	if c.FrontDeskServiceMaxMinutes < c.FrontDeskServiceModeMinutes {
		return fmt.Errorf(
			"frontDeskServiceMaxMinutes must not be below the mode")
	}

	if c.FrontDeskServiceMaxMinutes <= 0 {
		return fmt.Errorf("frontDeskServiceMaxMinutes must be greater than 0")
	}

	if c.CleanMeanMinutes <= 0 {
		return fmt.Errorf("cleanMeanMinutes must be greater than 0")
	}

	if c.CleanSigma < 0 {
		return fmt.Errorf("cleanSigma must not be negative")
	}

	if c.Cleaners < 0 {
		return fmt.Errorf("cleaners must not be negative")
	}

	if c.ShiftStartHour < 0 || c.ShiftStartHour > 24 {
		return fmt.Errorf("shiftStartHour must be within [0, 24]")
	}

	if c.ShiftEndHour < c.ShiftStartHour || c.ShiftEndHour > 24 {
		return fmt.Errorf("shiftEndHour must be within [shiftStartHour, 24]")
	}

	return nil
}

// LoadConfig reads a YAML scenario file over the default configuration, so a
// file only needs to carry the fields it changes.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
