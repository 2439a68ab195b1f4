package persistence

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of Trigger calls into one call of fn, made once
// delay has passed without another Trigger.
type Debouncer struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
	stopped bool

	// run is held while fn executes so Flush can wait for an in-flight call.
	run sync.Mutex
}

// NewDebouncer returns a Debouncer that calls fn after delay of quiet.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger cancels any scheduled call and schedules a new one.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.gen++
	gen := d.gen
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.run.Lock()
	defer d.run.Unlock()

	// A timer superseded by a later Trigger may still fire if Stop lost the race.
	if !d.claim(gen) {
		return
	}
	d.fn()
}

func (d *Debouncer) claim(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending || d.stopped || (gen != 0 && gen != d.gen) {
		return false
	}
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return true
}

// Flush runs a pending call immediately, waiting for any call already in
// progress. It reports whether fn was called.
func (d *Debouncer) Flush() bool {
	d.run.Lock()
	defer d.run.Unlock()

	if !d.claim(0) {
		return false
	}
	d.fn()
	return true
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop drops any scheduled call and ignores later Triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
