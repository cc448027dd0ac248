package syncer

import (
	"sync"
	"time"
)

// Debouncer runs the last scheduled function once no new call arrived for
// its duration. A new call invalidates the pending one, even if its timer
// already fired and is waiting on the lock.
type Debouncer struct {
	mu       sync.Mutex
	idle     *sync.Cond
	timer    *time.Timer
	pending  func()
	firing   int
	gen      uint64
	duration time.Duration
}

func NewDebouncer(duration time.Duration) *Debouncer {
	d := &Debouncer{
		duration: duration,
	}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Debounce (re)starts the countdown for fn.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.duration, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.firing++
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.firing--
		if d.firing == 0 {
			d.idle.Broadcast()
		}
		d.mu.Unlock()
	}()
	fn()
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush runs the pending call now, on the caller's goroutine. It reports
// whether there was anything to run. A call whose timer already fired is
// waited for instead, so nothing scheduled is still running when Flush returns.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.gen++
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if fn == nil {
		for d.firing > 0 {
			d.idle.Wait()
		}
		d.mu.Unlock()
		return false
	}
	d.mu.Unlock()

	fn()
	return true
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
