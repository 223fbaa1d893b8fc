package sensors

import "github.com/gr-butler/weathermeter/env"

// Rainmeter converts bucket tips counted over one minute into an hourly rate.
type Rainmeter struct {
	tips pulseChannel
}

func NewRainmeter() *Rainmeter {
	return &Rainmeter{}
}

// Init binds the rain gauge to its tip counter and starts it.
func (r *Rainmeter) Init(c PulseCounter) error {
	return r.tips.init(c)
}

// Process reads and zeroes the tip counter. Call once per minute.
func (r *Rainmeter) Process() {
	r.tips.process()
}

// Count returns the bucket tips captured by the last Process.
func (r *Rainmeter) Count() uint32 {
	return r.tips.count.Load()
}

// RateInchesPerHour assumes the last Process covered exactly one minute.
func (r *Rainmeter) RateInchesPerHour() float64 {
	return float64(r.Count()) * env.InchesPerTip * 60
}

func (r *Rainmeter) RateMMPerHour() float64 {
	return r.RateInchesPerHour() * env.MmToInch
}
