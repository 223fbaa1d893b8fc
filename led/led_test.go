package led

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestFlash(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO19", L: gpio.High}
	l := NewLED("Rain Tip", pin)
	assert.Equal(t, gpio.Low, pin.Read())

	l.Flash()
	assert.Equal(t, gpio.High, pin.Read())
	// a second flash while lit is dropped
	l.Flash()

	require.Eventually(t, func() bool {
		return pin.Read() == gpio.Low
	}, time.Second, 10*time.Millisecond)
}

func TestOffWaitsForFlash(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO19"}
	l := NewLED("Rain Tip", pin)
	l.Flash()
	l.Off()
	assert.Equal(t, gpio.Low, pin.Read())

	// the lock was released so the LED can flash again
	l.Flash()
	assert.Equal(t, gpio.High, pin.Read())
	l.Off()
}

func TestNilPin(t *testing.T) {
	l := NewLED("missing", nil)
	assert.NotPanics(t, func() {
		l.Flash()
		l.Off()
	})
}
