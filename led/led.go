package led

import (
	"sync"
	"time"

	"github.com/gr-butler/weathermeter/env"
	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// LED is an indicator on a GPIO output. A nil pin makes every call a no-op so
// a missing LED never stops the station.
type LED struct {
	Name    string
	lock    sync.Mutex
	gpioPin gpio.PinOut
}

func NewLED(name string, pin gpio.PinOut) *LED {
	if pin == nil {
		logger.Errorf("No pin for LED [%v]", name)
	} else {
		logger.Infof("Creating new LED on pin [%v] called [%v]", pin, name)
		_ = pin.Out(gpio.Low)
	}
	return &LED{
		Name:    name,
		gpioPin: pin,
	}
}

// Off waits for any flash in progress and leaves the LED dark.
func (l *LED) Off() {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.gpioPin != nil {
		_ = l.gpioPin.Out(gpio.Low)
	}
}

// Flash lights the LED briefly without blocking the caller. A request that
// arrives while a flash is running is dropped.
func (l *LED) Flash() {
	if l.gpioPin == nil {
		return
	}
	if !l.lock.TryLock() {
		return
	}
	_ = l.gpioPin.Out(gpio.High)
	go func() {
		defer l.lock.Unlock()
		time.Sleep(env.LEDFlashDuration)
		_ = l.gpioPin.Out(gpio.Low)
	}()
}
