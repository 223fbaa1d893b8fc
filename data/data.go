package data

import (
	"time"

	"github.com/gr-butler/weathermeter/sensors"
	logger "github.com/sirupsen/logrus"
)

// Reading is one snapshot of everything the three instruments report.
type Reading struct {
	Time          time.Time
	Direction     sensors.Direction
	VaneSignal    uint32
	WindPulses    uint32
	WindSpeedMph  float64
	WindSpeedKph  float64
	RainTips      uint32
	RainInPerHour float64
	RainMMPerHour float64
}

// Take reads the current values from each component. Nothing is processed.
func Take(now time.Time, v *sensors.WindVane, a *sensors.Anemometer, r *sensors.Rainmeter) Reading {
	return Reading{
		Time:          now,
		Direction:     v.Direction(),
		VaneSignal:    v.Signal(),
		WindPulses:    a.Count(),
		WindSpeedMph:  a.SpeedMPH(),
		WindSpeedKph:  a.SpeedKPH(),
		RainTips:      r.Count(),
		RainInPerHour: r.RateInchesPerHour(),
		RainMMPerHour: r.RateMMPerHour(),
	}
}

func (r Reading) Fields() logger.Fields {
	f := logger.Fields{
		"wind_dir":     r.Direction.Label(),
		"vane_signal":  r.VaneSignal,
		"wind_pulses":  r.WindPulses,
		"wind_mph":     r.WindSpeedMph,
		"wind_kph":     r.WindSpeedKph,
		"rain_tips":    r.RainTips,
		"rain_in_hour": r.RainInPerHour,
		"rain_mm_hour": r.RainMMPerHour,
	}
	if deg, ok := r.Direction.Degrees(); ok {
		f["wind_deg"] = deg
	}
	return f
}
