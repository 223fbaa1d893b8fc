package hw

import (
	"errors"

	"github.com/gr-butler/weathermeter/env"
	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
)

// Masthead is the I²C co-processor at the top of the mast that counts
// anemometer pulses. Each read returns the pulses since the previous read,
// so reading it is the reset.
type Masthead struct {
	MaxPulses uint32
	Verbose   bool

	dev   *i2c.Dev
	write [1]byte
	read  [2]byte
}

func NewMasthead(bus i2c.Bus, addr uint16) *Masthead {
	logger.Infof("Starting Masthead I2C [%x]", addr)
	return &Masthead{
		MaxPulses: env.MastHeadMaxPulses,
		dev:       &i2c.Dev{Addr: addr, Bus: bus},
	}
}

// Start checks the masthead responds and throws away whatever it had counted.
func (m *Masthead) Start() error {
	if m == nil || m.dev == nil {
		return errors.New("no masthead")
	}
	if err := m.dev.Tx(m.write[:], m.read[:]); err != nil {
		logger.Errorf("Masthead did not respond [%v]", err)
		return err
	}
	return nil
}

func (m *Masthead) ReadAndReset() uint32 {
	if err := m.dev.Tx(m.write[:], m.read[:]); err != nil {
		logger.Errorf("Failed to request count from masthead [%v]", err)
		return 0
	}
	pulseCount := uint32(m.read[0])
	if pulseCount > m.MaxPulses {
		// switch bounce or EM interference
		logger.Errorf("Pulse count error [%v] [%v] [%b]", pulseCount, m.read, m.read)
		return 0
	}
	if m.Verbose {
		logger.Debugf("Masthead count read [%v]", pulseCount)
	}
	return pulseCount
}
