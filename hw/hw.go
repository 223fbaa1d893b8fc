// Package hw provides the periph.io backed pulse counters and ADC sampler
// that the sensors package consumes.
package hw

import (
	"time"

	"github.com/gr-butler/weathermeter/sensors"
)

// edgeTimeout bounds how long a monitor waits on a pin before checking
// whether it has been halted.
const edgeTimeout = 250 * time.Millisecond

var (
	_ sensors.PulseCounter = (*EdgeCounter)(nil)
	_ sensors.PulseCounter = (*Masthead)(nil)
	_ sensors.SampleSource = (*Sampler)(nil)
)
