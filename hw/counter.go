package hw

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioutil"
)

// EdgeCounter counts falling edges on a GPIO pin.
type EdgeCounter struct {
	Name string
	// OnPulse, if set, is called from the monitor goroutine for every edge.
	OnPulse func()
	Verbose bool

	pin      gpio.PinIO
	denoise  time.Duration
	debounce time.Duration
	count    atomic.Uint32

	started atomic.Bool
	once    sync.Once
	stop    chan struct{}
	done    chan struct{}
}

// NewEdgeCounter counts edges on pin. Zero denoise and debounce read the pin
// raw.
func NewEdgeCounter(name string, pin gpio.PinIO, denoise, debounce time.Duration) *EdgeCounter {
	return &EdgeCounter{
		Name:     name,
		pin:      pin,
		denoise:  denoise,
		debounce: debounce,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (c *EdgeCounter) Start() error {
	if c == nil || c.pin == nil {
		return errors.New("no pin")
	}
	if c.started.Load() {
		return errors.New("counter already running")
	}
	logger.Infof("Starting %v counter on [%v]", c.Name, c.pin)
	if err := c.pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return err
	}
	p := c.pin
	if c.denoise > 0 || c.debounce > 0 {
		var err error
		if p, err = gpioutil.Debounce(c.pin, c.denoise, c.debounce, gpio.FallingEdge); err != nil {
			logger.Errorf("Failed to set debounce on [%v] [%v]", c.Name, err)
			return err
		}
	}
	c.count.Store(0)
	c.started.Store(true)
	go c.monitor(p)
	return nil
}

func (c *EdgeCounter) monitor(p gpio.PinIO) {
	logger.Infof("%v pulse monitor running", c.Name)
	defer close(c.done)
	defer func() { _ = p.Halt() }()
	for {
		select {
		case <-c.stop:
			return
		default:
		}
		if !p.WaitForEdge(edgeTimeout) {
			continue
		}
		n := c.count.Add(1)
		if c.Verbose {
			logger.Debugf("%v pulse [%v] @ %v", c.Name, n, time.Now().Format(time.ANSIC))
		}
		if c.OnPulse != nil {
			c.OnPulse()
		}
	}
}

func (c *EdgeCounter) ReadAndReset() uint32 {
	return c.count.Swap(0)
}

// Halt stops the monitor and releases the pin.
func (c *EdgeCounter) Halt() error {
	if !c.started.Load() {
		return nil
	}
	c.once.Do(func() { close(c.stop) })
	<-c.done
	return nil
}
