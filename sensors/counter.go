package sensors

import (
	"fmt"
	"sync/atomic"
)

// pulseChannel is the bound counter plus the count captured by the last
// Process. Anemometer and Rainmeter only differ in how they scale it.
type pulseChannel struct {
	counter PulseCounter
	bound   atomic.Bool
	count   atomic.Uint32
}

func (p *pulseChannel) init(c PulseCounter) error {
	if c == nil {
		return ErrInvalidHandle
	}
	if !p.bound.CompareAndSwap(false, true) {
		return ErrAlreadyBound
	}
	if err := c.Start(); err != nil {
		p.bound.Store(false)
		return fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}
	p.counter = c
	return nil
}

// process captures and clears the hardware count in a single call so there
// is never a window where the count has been read but not yet zeroed.
func (p *pulseChannel) process() {
	if p.counter == nil {
		return
	}
	p.count.Store(p.counter.ReadAndReset())
}
