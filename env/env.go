package env

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables consulted for flag defaults. They may be set in a
// .env file next to the binary.
const (
	EnvI2CBus      = "WEATHER_I2C_BUS"
	EnvCalibration = "WEATHER_CALIBRATION"
	EnvMetricsFile = "WEATHER_METRICS_FILE"
	EnvMasthead    = "WEATHER_MASTHEAD"
	EnvVerbose     = "WEATHER_VERBOSE"
)

type Config struct {
	Test        bool   // report every second instead of every minute
	Verbose     bool   // debug logging
	Bus         string // I²C bus, empty for the default
	Masthead    bool   // read wind pulses from the I²C masthead instead of GPIO
	Calibration string // wind vane calibration YAML, empty for the built-in table
	MetricsFile string // prometheus textfile output, empty to disable
	Speedon     bool   // log every wind speed sample
	Diron       bool   // log every wind direction sample
	Rainon      bool   // log every rain sample
}

// Load reads envFile (if it exists) into the process environment and then
// parses args. Flags win over the environment.
func Load(envFile string, args []string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %v: %w", envFile, err)
		}
	}

	masthead, err := envBool(EnvMasthead)
	if err != nil {
		return nil, err
	}
	verbose, err := envBool(EnvVerbose)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	fl := flag.NewFlagSet("weathermeter", flag.ContinueOnError)
	fl.BoolVar(&c.Test, "test", false, "test mode, report readings every second")
	fl.BoolVar(&c.Verbose, "verbose", verbose, "debug logging")
	fl.StringVar(&c.Bus, "bus", os.Getenv(EnvI2CBus), "I²C bus (/dev/i2c-1)")
	fl.BoolVar(&c.Masthead, "masthead", masthead, "read the anemometer count from the I²C masthead")
	fl.StringVar(&c.Calibration, "calibration", os.Getenv(EnvCalibration), "wind vane calibration file (yaml)")
	fl.StringVar(&c.MetricsFile, "metrics-file", os.Getenv(EnvMetricsFile), "write prometheus metrics to this file every report period")
	fl.BoolVar(&c.Speedon, "speed", false, "log wind speed samples")
	fl.BoolVar(&c.Diron, "dir", false, "log wind direction samples")
	fl.BoolVar(&c.Rainon, "rain", false, "log rain samples")
	if err := fl.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func envBool(key string) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%v: %w", key, err)
	}
	return b, nil
}
