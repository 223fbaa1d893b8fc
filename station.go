package main

import (
	"context"
	"time"

	"github.com/gr-butler/weathermeter/data"
	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/sensors"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

/*
The station is the scheduler the sensors package expects to be driven by.
The wind vane processes itself from the sampler's completion callback; the
anemometer must be processed once a second and the rain gauge once a minute,
since both convert a count into a rate assuming exactly that interval.
*/

type weatherstation struct {
	vane *sensors.WindVane
	wind *sensors.Anemometer
	rain *sensors.Rainmeter

	cfg         *env.Config
	clock       clockwork.Clock
	registry    *prometheus.Registry
	metrics     *metrics
	reportEvery time.Duration
}

func newWeatherstation(cfg *env.Config, cal sensors.Calibration, clock clockwork.Clock) *weatherstation {
	reg := prometheus.NewRegistry()
	w := &weatherstation{
		vane:        sensors.NewWindVane(cal, env.WindVaneBufferSize),
		wind:        sensors.NewAnemometer(),
		rain:        sensors.NewRainmeter(),
		cfg:         cfg,
		clock:       clock,
		registry:    reg,
		metrics:     newMetrics(reg),
		reportEvery: env.ReportPeriod,
	}
	if cfg.Test {
		logger.Info("Report period set to 1 second for test")
		w.reportEvery = env.WindSpeedPeriod
	}
	return w
}

// bind attaches each component to its hardware. Any failure stops start up.
func (w *weatherstation) bind(vane sensors.SampleSource, wind, rain sensors.PulseCounter) error {
	if err := w.vane.Init(vane); err != nil {
		logger.Errorf("Failed to initialise wind vane [%v]", err)
		return err
	}
	if err := w.wind.Init(wind); err != nil {
		logger.Errorf("Failed to initialise anemometer [%v]", err)
		return err
	}
	if err := w.rain.Init(rain); err != nil {
		logger.Errorf("Failed to initialise rain gauge [%v]", err)
		return err
	}
	logger.Info("Sensors initialized.")
	return nil
}

// Run drives the counters until ctx is cancelled.
func (w *weatherstation) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.every(ctx, env.WindSpeedPeriod, w.recordWindSpeed) })
	g.Go(func() error { return w.every(ctx, env.RainPeriod, w.recordRain) })
	g.Go(func() error { return w.every(ctx, w.reportEvery, w.report) })
	return g.Wait()
}

func (w *weatherstation) every(ctx context.Context, period time.Duration, fn func()) error {
	t := w.clock.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.Chan():
			fn()
		}
	}
}

func (w *weatherstation) reading() data.Reading {
	return data.Take(w.clock.Now(), w.vane, w.wind, w.rain)
}

func (w *weatherstation) recordWindSpeed() {
	w.wind.Process()
	r := w.reading()
	w.metrics.setWind(r)
	w.metrics.setDirection(r)
	if w.cfg.Speedon {
		logger.Infof("MPH [%.2f] Count read [%v]", r.WindSpeedMph, r.WindPulses)
	}
	if w.cfg.Diron {
		logger.Infof("Vane [%v], Dir [%v]", r.VaneSignal, r.Direction)
	}
}

func (w *weatherstation) recordRain() {
	w.rain.Process()
	r := w.reading()
	w.metrics.setRain(r)
	if w.cfg.Rainon || r.RainTips > 0 {
		logger.Infof("Rain tips [%v] rate [%.3f] in/hr", r.RainTips, r.RainInPerHour)
	}
}

func (w *weatherstation) report() {
	r := w.reading()
	logger.WithFields(r.Fields()).Info("Weather reading")
	if w.cfg.MetricsFile == "" {
		return
	}
	if err := prometheus.WriteToTextfile(w.cfg.MetricsFile, w.registry); err != nil {
		logger.Errorf("Failed to write metrics to [%v] [%v]", w.cfg.MetricsFile, err)
	}
}
