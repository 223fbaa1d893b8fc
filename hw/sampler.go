package hw

import (
	"errors"
	"sync/atomic"

	"github.com/gr-butler/weathermeter/buffer"
	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// ContinuousADC is an analog pin that can stream conversions. The channel
// is closed once the pin is halted.
type ContinuousADC interface {
	ReadContinuous() <-chan analog.Sample
	Halt() error
}

// Sampler streams conversions from an ADC into the wind vane's buffer, the
// way a DMA transfer would, and signals every time the buffer is full.
type Sampler struct {
	// Shift drops low bits from each raw sample so it lines up with the
	// resolution the calibration table was measured at.
	Shift   uint
	Verbose bool

	adc     ContinuousADC
	started atomic.Bool
	done    chan struct{}
}

func NewSampler(adc ContinuousADC) *Sampler {
	return &Sampler{adc: adc, done: make(chan struct{})}
}

// NewADS1115Sampler opens the wind direction ADC on channel 3. The ADS1115
// gives 15 bits of positive range, three more than a 12 bit table.
//
// A 5V maximum selects the +/-6.144V gain, so after the shift one code is
// 1.5mV. The built in table was measured on a 3.3V 12 bit ADC (0.8mV a
// code) and will rarely match; measure the vane on this ADC and load the
// result with -calibration.
func NewADS1115Sampler(bus i2c.Bus, rate physic.Frequency) (*Sampler, error) {
	logger.Infof("Starting Wind direction ADC I2C [%x]", ads1x15.DefaultOpts.I2cAddress)
	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		return nil, err
	}
	pin, err := adc.PinForChannel(ads1x15.Channel3, 5*physic.Volt, rate, ads1x15.SaveEnergy)
	if err != nil {
		return nil, err
	}
	s := NewSampler(pin)
	s.Shift = 3
	return s, nil
}

func (s *Sampler) Start(buf []uint32, done func()) error {
	if s == nil || s.adc == nil {
		return errors.New("no adc")
	}
	if len(buf) == 0 {
		return errors.New("empty sample buffer")
	}
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("sampler already running")
	}
	ring := buffer.NewRing(buf)
	readings := s.adc.ReadContinuous()
	go func() {
		defer close(s.done)
		for sample := range readings {
			raw := sample.Raw
			if raw < 0 {
				raw = 0
			}
			if ring.AddItem(uint32(raw) >> s.Shift) {
				done()
				if s.Verbose {
					logger.Debugf("Wind vane pass [%v] last [%v] volts [%v]", ring.Passes(), ring.GetLast(), sample.V)
				}
			}
		}
		logger.Info("Wind vane sampler stopped")
	}()
	return nil
}

// Halt stops the ADC and waits for the sampling goroutine to finish.
func (s *Sampler) Halt() error {
	err := s.adc.Halt()
	if s.started.Load() {
		<-s.done
	}
	return err
}
