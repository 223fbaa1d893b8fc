package hw

import (
	"errors"
	"testing"

	"github.com/gr-butler/weathermeter/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

func TestMasthead(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: env.MastHead, W: []byte{0x00}, R: []byte{9, 0}},
			{Addr: env.MastHead, W: []byte{0x00}, R: []byte{7, 0}},
			{Addr: env.MastHead, W: []byte{0x00}, R: []byte{0, 0}},
			{Addr: env.MastHead, W: []byte{0x00}, R: []byte{200, 0}},
		},
	}
	m := NewMasthead(bus, env.MastHead)

	// the count held at start up is discarded
	require.NoError(t, m.Start())
	assert.Equal(t, uint32(7), m.ReadAndReset())
	assert.Equal(t, uint32(0), m.ReadAndReset())
	// bounce
	assert.Equal(t, uint32(0), m.ReadAndReset())
	require.NoError(t, bus.Close())
}

type deadBus struct{}

func (deadBus) String() string { return "dead" }

func (deadBus) Tx(addr uint16, w, r []byte) error { return errors.New("nack") }

func (deadBus) SetSpeed(f physic.Frequency) error { return nil }

func TestMastheadNotResponding(t *testing.T) {
	m := NewMasthead(deadBus{}, env.MastHead)
	assert.Error(t, m.Start())
	assert.Equal(t, uint32(0), m.ReadAndReset())
}
