package main

import (
	"github.com/gr-butler/weathermeter/data"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	windDirection prometheus.Gauge
	vaneSignal    prometheus.Gauge
	vaneUnmatched prometheus.Counter
	windspeed     prometheus.Gauge
	windPulses    prometheus.Gauge
	rainRate      prometheus.Gauge
	rainTips      prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		windDirection: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "winddirection",
			Help: "Wind Direction Deg",
		}),
		vaneSignal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wind_vane_signal",
			Help: "Averaged raw wind vane ADC value",
		}),
		vaneUnmatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wind_vane_unmatched_total",
			Help: "Readings where the vane signal matched no compass point",
		}),
		windspeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "windspeed",
			Help: "Wind speed mph over the last second",
		}),
		windPulses: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "anemometer_pulses",
			Help: "Anemometer pulses in the last second",
		}),
		rainRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rain_hour_rate",
			Help: "The rain rate in inches per hour based on the last minute",
		}),
		rainTips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rain_bucket_tips",
			Help: "Rain bucket tips in the last minute",
		}),
	}
	reg.MustRegister(
		m.windDirection,
		m.vaneSignal,
		m.vaneUnmatched,
		m.windspeed,
		m.windPulses,
		m.rainRate,
		m.rainTips)
	return m
}

func (m *metrics) setDirection(r data.Reading) {
	m.vaneSignal.Set(float64(r.VaneSignal))
	// keep the last good heading rather than report north
	if deg, ok := r.Direction.Degrees(); ok {
		m.windDirection.Set(deg)
	} else {
		m.vaneUnmatched.Inc()
	}
}

func (m *metrics) setWind(r data.Reading) {
	m.windspeed.Set(r.WindSpeedMph)
	m.windPulses.Set(float64(r.WindPulses))
}

func (m *metrics) setRain(r data.Reading) {
	m.rainRate.Set(r.RainInPerHour)
	m.rainTips.Set(float64(r.RainTips))
}
