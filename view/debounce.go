package view

import (
	"sync"
	"time"
)

// debounce is a cancellable one-shot timer. Cancellation is race-free
// through a generation counter: a fire whose generation is stale is
// dropped, so cancel-then-reschedule can never run the old callback.
type debounce struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// schedule arms the timer, replacing any pending callback
func (d *debounce) schedule(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		live := gen == d.gen
		d.mu.Unlock()
		if live {
			fn()
		}
	})
}

// cancel drops any pending callback
func (d *debounce) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
