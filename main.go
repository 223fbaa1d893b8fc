package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/sensors"
	"github.com/jonboulle/clockwork"
	logger "github.com/sirupsen/logrus"
)

const version = "GRB-WeatherMeter-1.0.0"

func main() {
	cfg, err := env.Load(".env", os.Args[1:])
	if err != nil {
		logger.Fatalf("Bad configuration [%v]", err)
	}
	if cfg.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	logger.Infof("Starting weather meter [%v]", version)
	if cfg.Test {
		logger.Info("TEST MODE")
	}

	cal := sensors.DefaultCalibration()
	if cfg.Calibration != "" {
		if cal, err = sensors.LoadCalibration(cfg.Calibration); err != nil {
			logger.Fatalf("Failed to load wind vane calibration [%v]", err)
		}
	}

	logger.Info("Initialize sensors...")
	h, err := openHardware(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialise sensors!! [%v]", err)
	}
	w := newWeatherstation(cfg, cal, clockwork.NewRealClock())
	if err := w.bind(h.sampler, h.wind, h.rain); err != nil {
		_ = h.close()
		logger.Fatalf("Failed to initialise sensors!! [%v]", err)
	}
	checkCalibration(cfg, w.vane)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := w.Run(ctx); err != nil {
		logger.Errorf("Station stopped [%v]", err)
	}
	if err := h.close(); err != nil {
		logger.Errorf("Failed to release hardware [%v]", err)
	}
	logger.Info("Exiting")
}
