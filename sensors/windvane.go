package sensors

import (
	"fmt"
	"sync/atomic"

	"github.com/gr-butler/weathermeter/env"
)

// WindVane classifies the averaged vane voltage into a compass direction.
type WindVane struct {
	cal     Calibration
	buf     []uint32
	average atomic.Uint32
	bound   atomic.Bool
}

// NewWindVane returns an unbound vane averaging size samples per pass. A
// size of zero or less uses env.WindVaneBufferSize.
func NewWindVane(cal Calibration, size int) *WindVane {
	if size <= 0 {
		size = env.WindVaneBufferSize
	}
	return &WindVane{
		cal: cal,
		buf: make([]uint32, size),
	}
}

// Init hands the sample buffer to src. Process is called each time src has
// refilled it.
func (v *WindVane) Init(src SampleSource) error {
	if src == nil {
		return ErrInvalidHandle
	}
	if !v.bound.CompareAndSwap(false, true) {
		return ErrAlreadyBound
	}
	if err := src.Start(v.buf, v.Process); err != nil {
		v.bound.Store(false)
		return fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}
	return nil
}

// Process averages the sample buffer. It is cheap enough to run on the
// sampler's completion path: one pass, no allocation, no locks.
func (v *WindVane) Process() {
	var sum uint64
	for _, s := range v.buf {
		sum += uint64(s)
	}
	v.average.Store(uint32(sum / uint64(len(v.buf))))
}

// Signal returns the most recent averaged ADC value.
func (v *WindVane) Signal() uint32 {
	return v.average.Load()
}

// Direction matches the averaged signal against the calibration table.
// Where two bands overlap the earlier compass point wins.
func (v *WindVane) Direction() Direction {
	return v.cal.match(v.average.Load())
}

func (v *WindVane) Calibration() Calibration {
	return v.cal
}
