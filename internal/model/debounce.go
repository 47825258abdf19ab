package model

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a typed value is delivered.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer delivers only the last value of a burst once input goes quiet.
type Debouncer struct {
	delay   time.Duration
	fn      func(string)
	timer   *time.Timer
	pending string
	armed   bool
	mx      sync.Mutex
}

// NewDebouncer returns a debouncer calling fn after delay of quiet.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger records v and restarts the quiet period.
func (d *Debouncer) Trigger(v string) {
	d.mx.Lock()
	defer d.mx.Unlock()

	d.pending, d.armed = v, true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Flush delivers the pending value now, if any.
func (d *Debouncer) Flush() {
	d.mx.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mx.Unlock()
	d.fire()
}

// Stop drops the pending value.
func (d *Debouncer) Stop() {
	d.mx.Lock()
	defer d.mx.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
}

func (d *Debouncer) fire() {
	d.mx.Lock()
	if !d.armed {
		d.mx.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	d.mx.Unlock()

	d.fn(v)
}
