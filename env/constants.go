package env

import "time"

const (
	GPIO12 = "GPIO12" // rain pin
	GPIO19 = "GPIO19" // rain tip LED
	GPIO27 = "GPIO27" // wind pin

	RainSensorIn = GPIO12
	WindSensorIn = GPIO27
	RainTipLed   = GPIO19

	// The masthead co-processor counts anemometer pulses and hands back the
	// count since the previous read.
	MastHead uint16 = 0x55
	// More than this in a single one second read is switch bounce or EM noise.
	MastHeadMaxPulses = 100

	// Sparkfun weather meters datasheet: a one pulse per second wind gives
	// 2.4km/h (1.492MPH), and each bucket tip is 0.011" of rain.
	MphPerPulse  = 1.492
	KphPerPulse  = 2.4
	InchesPerTip = 0.011
	MmToInch     = 25.4

	// WindVaneBufferSize is the number of ADC samples averaged per pass.
	WindVaneBufferSize = 64
	// WindVaneCodeBand is the +/- window applied to each calibration value.
	// Widen it to tolerate a noisier ADC.
	WindVaneCodeBand = 20

	WindSpeedPeriod = time.Second
	RainPeriod      = time.Minute
	ReportPeriod    = time.Minute

	// Ignore glitches lasting less than 5ms, and ignore repeated edges within 10ms.
	AnemometerDenoise  = 5 * time.Millisecond
	AnemometerDebounce = 10 * time.Millisecond
	// Ignore glitches lasting less than 100ms, and ignore repeated edges within 500ms.
	RainDenoise  = 100 * time.Millisecond
	RainDebounce = 500 * time.Millisecond

	LEDFlashDuration = time.Millisecond * 50
)
