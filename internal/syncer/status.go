package syncer

import (
	"sync"
	"time"
)

type State string

const (
	StateIdle   State = "idle"
	StateSaving State = "saving"
	StateSaved  State = "saved"
	StateError  State = "error"
)

// Status is the sync indicator shown to the reviewer.
type Status struct {
	State       State      `json:"state"`
	Error       string     `json:"error,omitempty"`
	UploadID    string     `json:"upload_id,omitempty"`
	LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
	InFlight    int        `json:"in_flight"`
}

// statusTracker drives idle -> saving -> saved|error -> idle. Saved and error
// fall back after window, measured from the latest completion: an upload that
// starts inside the window shows saving and cancels the pending revert, and
// its own completion opens a fresh window. When the window ends while another
// upload is still in flight the state returns to saving, not idle.
type statusTracker struct {
	mu       sync.Mutex
	status   Status
	window   time.Duration
	finished uint64
	revert   *time.Timer
	closed   bool
}

func newStatusTracker(window time.Duration) *statusTracker {
	return &statusTracker{
		status: Status{State: StateIdle},
		window: window,
	}
}

func (t *statusTracker) get() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.status
	if s.LastSavedAt != nil {
		at := *s.LastSavedAt
		s.LastSavedAt = &at
	}
	return s
}

func (t *statusTracker) begin(uploadID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopRevert()
	t.status.InFlight++
	t.status.State = StateSaving
	t.status.UploadID = uploadID
	t.status.Error = ""
}

func (t *statusTracker) finish(uploadID string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status.InFlight > 0 {
		t.status.InFlight--
	}
	t.status.UploadID = uploadID
	if err != nil {
		t.status.State = StateError
		t.status.Error = err.Error()
	} else {
		now := time.Now().UTC()
		t.status.State = StateSaved
		t.status.Error = ""
		t.status.LastSavedAt = &now
	}

	t.finished++
	gen := t.finished
	t.stopRevert()
	if !t.closed {
		t.revert = time.AfterFunc(t.window, func() { t.reset(gen) })
	}
}

// fail records a failure that happened before any upload started.
func (t *statusTracker) fail(err error) {
	t.mu.Lock()
	t.status.InFlight++
	t.mu.Unlock()
	t.finish("", err)
}

func (t *statusTracker) reset(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.finished {
		return
	}
	if t.status.InFlight > 0 {
		t.status.State = StateSaving
		return
	}
	t.status.State = StateIdle
	t.status.Error = ""
}

func (t *statusTracker) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.stopRevert()
}

func (t *statusTracker) stopRevert() {
	if t.revert != nil {
		t.revert.Stop()
		t.revert = nil
	}
}
