package sensors

import "errors"

/*
 * Sensors turns raw instrument output into calibrated readings. The hardware
 * itself sits behind the two capability interfaces below so nothing here is
 * platform specific. Each component owns its own capability; none of them
 * share state.
 */

var (
	// ErrInvalidHandle is returned by Init when the capability is missing or
	// refuses to start.
	ErrInvalidHandle = errors.New("sensors: invalid capability handle")
	// ErrAlreadyBound is returned by Init on a component that is already active.
	ErrAlreadyBound = errors.New("sensors: capability already bound")
)

// SampleSource continuously fills a fixed size buffer with raw analog samples.
type SampleSource interface {
	// Start begins filling buf in the background and calls done every time the
	// whole buffer has been rewritten. done runs on the filling goroutine and
	// buf must not be written while it runs.
	Start(buf []uint32, done func()) error
}

// PulseCounter is a counter that increments once per physical pulse.
type PulseCounter interface {
	// Start sets the counter running from zero.
	Start() error
	// ReadAndReset returns the pulses seen since the last call and zeroes the
	// counter. A pulse landing during the call may be lost.
	ReadAndReset() uint32
}
