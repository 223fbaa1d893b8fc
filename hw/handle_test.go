package hw

import (
	"testing"

	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/sensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestNilCountersAreInvalidHandles(t *testing.T) {
	tests := []struct {
		name    string
		counter sensors.PulseCounter
	}{
		{"edge counter", (*EdgeCounter)(nil)},
		{"masthead", (*Masthead)(nil)},
		{"edge counter without pin", NewEdgeCounter("wind", nil, 0, 0)},
		{"masthead without device", &Masthead{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sensors.NewAnemometer()
			assert.NotPanics(t, func() {
				assert.ErrorIs(t, a.Init(tt.counter), sensors.ErrInvalidHandle)
			})
			r := sensors.NewRainmeter()
			assert.NotPanics(t, func() {
				assert.ErrorIs(t, r.Init(tt.counter), sensors.ErrInvalidHandle)
			})

			// a failed bind leaves the anemometer free for a working counter
			bus := &i2ctest.Playback{Ops: []i2ctest.IO{{Addr: env.MastHead, W: []byte{0x00}, R: []byte{0, 0}}}}
			require.NoError(t, a.Init(NewMasthead(bus, env.MastHead)))
			require.NoError(t, bus.Close())
		})
	}
}

func TestNilSamplerIsInvalidHandle(t *testing.T) {
	for name, s := range map[string]*Sampler{
		"nil sampler":    nil,
		"sampler no adc": NewSampler(nil),
	} {
		t.Run(name, func(t *testing.T) {
			v := sensors.NewWindVane(sensors.DefaultCalibration(), 4)
			assert.NotPanics(t, func() {
				assert.ErrorIs(t, v.Init(s), sensors.ErrInvalidHandle)
			})

			adc := newFakeADC()
			require.NoError(t, v.Init(NewSampler(adc)))
			require.NoError(t, adc.Halt())
		})
	}
}
