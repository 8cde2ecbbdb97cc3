package intakeclient

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"
)

// State is the lifecycle of one form instance.
type State int

const (
	Idle State = iota
	Submitting
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// DefaultResetDelay is how long success and error stay visible.
const DefaultResetDelay = 5 * time.Second

// ErrSubmitting is returned by Form.Submit while an earlier submit is running.
var ErrSubmitting = errors.New("intake: submission already in flight")

// Submitter is satisfied by *Client.
type Submitter interface {
	Submit(ctx context.Context, dest Destination, payload map[string]any, key string) (*Receipt, error)
}

// Form holds field values for one intake form and guards against a second
// submit while the first is in flight. Safe for concurrent use.
type Form struct {
	// ResetDelay overrides DefaultResetDelay when > 0. Set before first use.
	ResetDelay time.Duration

	client   Submitter
	dest     Destination
	defaults map[string]any

	mu      sync.Mutex
	state   State
	err     error
	receipt *Receipt
	values  map[string]any
	gen     uint64
	timer   *time.Timer
}

// NewForm returns an idle form posting to dest. defaults are the values the
// fields start with and return to after a successful submit.
func NewForm(client Submitter, dest Destination, defaults map[string]any) *Form {
	return &Form{
		client:   client,
		dest:     dest,
		defaults: maps.Clone(defaults),
		values:   cloneOrEmpty(defaults),
	}
}

// Set edits a field. Editing clears a finished success or error state.
func (f *Form) Set(field string, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLocked(field, v)
}

// SetDetail stores v under details[key], creating the details object.
func (f *Form) SetDetail(key string, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, _ := f.values["details"].(map[string]any)
	d = cloneOrEmpty(d)
	d[key] = v
	f.setLocked("details", d)
}

func (f *Form) setLocked(field string, v any) {
	f.values[field] = v
	if f.state == Success || f.state == Error {
		f.toIdleLocked()
	}
}

// Submit sends the current values under a fresh idempotency key. Each call
// is one logical submission; Client retries reuse its key.
func (f *Form) Submit(ctx context.Context) (*Receipt, error) {
	f.mu.Lock()
	if f.state == Submitting {
		f.mu.Unlock()
		return nil, ErrSubmitting
	}
	f.stopTimerLocked()
	f.gen++
	f.state = Submitting
	f.err = nil
	f.receipt = nil
	payload := maps.Clone(f.values)
	f.mu.Unlock()

	rec, err := f.client.Submit(ctx, f.dest, payload, NewIdempotencyKey())

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Error
		f.err = err
	} else {
		f.state = Success
		f.receipt = rec
		f.values = cloneOrEmpty(f.defaults)
	}
	f.scheduleResetLocked()
	return rec, err
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the failure behind the Error state, or nil.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Receipt returns the last successful receipt while in Success.
func (f *Form) Receipt() *Receipt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.receipt
}

// Values returns a copy of the field values.
func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

func (f *Form) scheduleResetLocked() {
	delay := f.ResetDelay
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	gen := f.gen
	f.timer = time.AfterFunc(delay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// A later submit or edit owns the state now.
		if f.gen != gen {
			return
		}
		if f.state == Success || f.state == Error {
			f.toIdleLocked()
		}
	})
}

func (f *Form) toIdleLocked() {
	f.stopTimerLocked()
	f.gen++
	f.state = Idle
	f.err = nil
	f.receipt = nil
}

func (f *Form) stopTimerLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func cloneOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}
