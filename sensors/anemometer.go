package sensors

import "github.com/gr-butler/weathermeter/env"

/*
How do we measure the wind.

The anemometer generates 1 pulse per revolution and the datasheet states a
wind of one pulse per second is 2.4km/h, or 1.492MPH. Process must be called
exactly once a second for the numbers to mean anything; there is no clock in
here.
*/

// Anemometer converts the pulse count of the last second into a wind speed.
type Anemometer struct {
	pulses pulseChannel
}

func NewAnemometer() *Anemometer {
	return &Anemometer{}
}

// Init binds the anemometer to its pulse counter and starts it.
func (a *Anemometer) Init(c PulseCounter) error {
	return a.pulses.init(c)
}

// Process reads and zeroes the counter. Call once per second.
func (a *Anemometer) Process() {
	a.pulses.process()
}

// Count returns the raw pulses captured by the last Process.
func (a *Anemometer) Count() uint32 {
	return a.pulses.count.Load()
}

func (a *Anemometer) SpeedMPH() float64 {
	return float64(a.Count()) * env.MphPerPulse
}

func (a *Anemometer) SpeedKPH() float64 {
	return float64(a.Count()) * env.KphPerPulse
}
