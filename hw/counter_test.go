package hw

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestEdgeCounter(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO27", EdgesChan: make(chan gpio.Level)}
	c := NewEdgeCounter("wind", pin, 0, 0)
	var seen atomic.Int32
	c.OnPulse = func() { seen.Add(1) }

	require.NoError(t, c.Start())
	defer func() { _ = c.Halt() }()
	assert.Equal(t, gpio.PullUp, pin.P)

	for i := 0; i < 3; i++ {
		pin.EdgesChan <- gpio.Low
	}
	require.Eventually(t, func() bool { return seen.Load() == 3 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, uint32(3), c.ReadAndReset())
	assert.Equal(t, uint32(0), c.ReadAndReset())

	pin.EdgesChan <- gpio.Low
	require.Eventually(t, func() bool { return seen.Load() == 4 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, uint32(1), c.ReadAndReset())
}

func TestEdgeCounterStartClearsCount(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO12", EdgesChan: make(chan gpio.Level)}
	c := NewEdgeCounter("rain", pin, 0, 0)
	c.count.Store(12)
	require.NoError(t, c.Start())
	defer func() { _ = c.Halt() }()
	assert.Equal(t, uint32(0), c.ReadAndReset())
}

func TestEdgeCounterNoPin(t *testing.T) {
	c := NewEdgeCounter("rain", nil, 0, 0)
	assert.Error(t, c.Start())
}

func TestEdgeCounterHalt(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO27", EdgesChan: make(chan gpio.Level)}
	c := NewEdgeCounter("wind", pin, 0, 0)
	require.NoError(t, c.Start())

	halted := make(chan struct{})
	go func() {
		_ = c.Halt()
		close(halted)
	}()
	select {
	case <-halted:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
	// a second halt is harmless
	require.NoError(t, c.Halt())
}

func TestEdgeCounterHaltBeforeStart(t *testing.T) {
	c := NewEdgeCounter("rain", &gpiotest.Pin{N: "GPIO12"}, 0, 0)
	require.NoError(t, c.Halt())
}
