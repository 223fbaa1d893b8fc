package main

import (
	"errors"

	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/hw"
	"github.com/gr-butler/weathermeter/led"
	"github.com/gr-butler/weathermeter/sensors"
	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// 64 conversions a second fills the vane buffer once a second.
const vaneSampleRate = 64 * physic.Hertz

// hardware holds the periph resources backing the three sensors.
type hardware struct {
	bus     i2c.BusCloser
	sampler *hw.Sampler
	wind    sensors.PulseCounter
	rain    *hw.EdgeCounter
	rainLED *led.LED
}

func openHardware(cfg *env.Config) (*hardware, error) {
	if _, err := host.Init(); err != nil {
		logger.Errorf("Failed to init host [%v]", err)
		return nil, err
	}

	// Open default I²C bus.
	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		logger.Errorf("Failed to open I²C [%v]", err)
		return nil, err
	}
	h := &hardware{bus: bus}

	h.sampler, err = hw.NewADS1115Sampler(bus, vaneSampleRate)
	if err != nil {
		logger.Errorf("Failed to open wind direction ADC [%v]", err)
		_ = bus.Close()
		return nil, err
	}
	h.sampler.Verbose = cfg.Diron

	if cfg.Masthead {
		m := hw.NewMasthead(bus, env.MastHead)
		m.Verbose = cfg.Speedon
		h.wind = m
	} else {
		wp := gpioreg.ByName(env.WindSensorIn)
		if wp == nil {
			logger.Errorf("Failed to find %v - wind pin", env.WindSensorIn)
		}
		c := hw.NewEdgeCounter("wind", wp, env.AnemometerDenoise, env.AnemometerDebounce)
		c.Verbose = cfg.Speedon
		h.wind = c
	}

	rp := gpioreg.ByName(env.RainSensorIn)
	if rp == nil {
		logger.Errorf("Failed to find %v - rain pin", env.RainSensorIn)
	}
	h.rain = hw.NewEdgeCounter("rain", rp, env.RainDenoise, env.RainDebounce)
	h.rain.Verbose = cfg.Rainon

	// failed rain tip LED is not critical
	h.rainLED = led.NewLED("Rain Tip", gpioreg.ByName(env.RainTipLed))
	h.rain.OnPulse = h.rainLED.Flash

	return h, nil
}

// close halts whatever was started and closes the bus.
func (h *hardware) close() error {
	var errs []error
	errs = append(errs, h.sampler.Halt())
	if c, ok := h.wind.(*hw.EdgeCounter); ok {
		errs = append(errs, c.Halt())
	}
	errs = append(errs, h.rain.Halt())
	h.rainLED.Off()
	errs = append(errs, h.bus.Close())
	return errors.Join(errs...)
}

// checkCalibration logs the vane table in use. It returns false, with a
// warning, when the built in table is paired with the ADS1115, whose scale
// it was not measured on.
func checkCalibration(cfg *env.Config, vane *sensors.WindVane) bool {
	cal := vane.Calibration()
	if cfg.Calibration != "" {
		logger.Infof("Wind vane calibration loaded from [%v] band [%v]", cfg.Calibration, cal.CodeBand)
		return true
	}
	logger.Warnf("Wind vane using the built in table (band [%v]), measured on a 3.3V 12 bit ADC; "+
		"directions from the ADS1115 will mostly read ERR until -calibration is set", cal.CodeBand)
	return false
}
