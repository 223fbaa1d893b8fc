package sensors

import (
	"errors"
	"sync"
)

type fakeSource struct {
	buf  []uint32
	done func()
	err  error
}

func (f *fakeSource) Start(buf []uint32, done func()) error {
	if f.err != nil {
		return f.err
	}
	f.buf = buf
	f.done = done
	return nil
}

// fill writes samples the way the ADC would and signals completion.
func (f *fakeSource) fill(samples ...uint32) {
	for i := range f.buf {
		f.buf[i] = samples[i%len(samples)]
	}
	f.done()
}

type fakeCounter struct {
	sync.Mutex
	started bool
	value   uint32
	err     error
}

func (f *fakeCounter) Start() error {
	f.Lock()
	defer f.Unlock()
	if f.err != nil {
		return f.err
	}
	f.started = true
	f.value = 0
	return nil
}

func (f *fakeCounter) pulse(n uint32) {
	f.Lock()
	defer f.Unlock()
	f.value += n
}

func (f *fakeCounter) peek() uint32 {
	f.Lock()
	defer f.Unlock()
	return f.value
}

func (f *fakeCounter) ReadAndReset() uint32 {
	f.Lock()
	defer f.Unlock()
	v := f.value
	f.value = 0
	return v
}

var errNoTimer = errors.New("timer not configured")
