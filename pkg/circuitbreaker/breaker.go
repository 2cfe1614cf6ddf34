// Package circuitbreaker guards calls to unreliable external services.
//
// A Breaker starts CLOSED. After FailureThreshold consecutive failures it
// opens and rejects every call with ErrOpen until Timeout elapses, then moves
// to HALF_OPEN where exactly one trial call may run at a time. A failed trial
// re-opens the breaker and restarts the timeout window; SuccessThreshold
// consecutive successful trials close it again.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrOpen is returned without invoking the wrapped call while the breaker is
// open, or while a half-open trial is already in flight.
var ErrOpen = errors.New("circuit breaker is open")

// State of a breaker.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Settings configures the transition thresholds.
type Settings struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
}

// DefaultSettings are used when a field is left at zero.
var DefaultSettings = Settings{
	FailureThreshold: 5,
	SuccessThreshold: 2,
	Timeout:          60 * time.Second,
}

func (s Settings) withDefaults() Settings {
	if s.FailureThreshold <= 0 {
		s.FailureThreshold = DefaultSettings.FailureThreshold
	}
	if s.SuccessThreshold <= 0 {
		s.SuccessThreshold = DefaultSettings.SuccessThreshold
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultSettings.Timeout
	}
	return s
}

// Metrics is a point-in-time snapshot of a breaker.
type Metrics struct {
	Name                 string     `json:"name"`
	State                string     `json:"state"`
	ConsecutiveFailures  int        `json:"consecutive_failures"`
	ConsecutiveSuccesses int        `json:"consecutive_successes"`
	TotalCalls           int64      `json:"total_calls"`
	TotalFailures        int64      `json:"total_failures"`
	TotalRejected        int64      `json:"total_rejected"`
	OpenedAt             *time.Time `json:"opened_at,omitempty"`
	LastFailureAt        *time.Time `json:"last_failure_at,omitempty"`
}

// StateChangeFunc is notified after every transition.
type StateChangeFunc func(name string, from, to State)

// Option customises a Breaker.
type Option func(*Breaker)

// WithClock replaces time.Now, used by tests.
func WithClock(now func() time.Time) Option {
	return func(b *Breaker) { b.now = now }
}

// WithStateChange registers a transition hook.
func WithStateChange(fn StateChangeFunc) Option {
	return func(b *Breaker) { b.onStateChange = fn }
}

// Breaker is safe for concurrent use.
type Breaker struct {
	name     string
	settings Settings

	now           func() time.Time
	onStateChange StateChangeFunc

	mu                   sync.Mutex
	state                State
	consecutiveFailures  int
	consecutiveSuccesses int
	trialInFlight        bool
	// generation changes on every state transition; a completion from an
	// older generation no longer says anything about the current state.
	generation           uint64
	openedAt             time.Time
	lastFailureAt        time.Time
	totalCalls           int64
	totalFailures        int64
	totalRejected        int64
}

// New creates a closed breaker.
func New(name string, settings Settings, opts ...Option) *Breaker {
	b := &Breaker{
		name:     name,
		settings: settings.withDefaults(),
		now:      time.Now,
		state:    StateClosed,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the dependency name this breaker governs.
func (b *Breaker) Name() string {
	return b.name
}

// Execute runs fn once if the breaker admits it. A non-nil error from fn,
// including a context deadline, is recorded as a failure and returned as is.
func (b *Breaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	gen, trial, err := b.admit()
	if err != nil {
		return err
	}

	err = fn(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	b.record(gen, trial, err)
	return err
}

// State returns the current state, applying a pending OPEN -> HALF_OPEN move.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked()
	return b.state
}

// Reset forces the breaker closed and clears its counters. Operational override.
func (b *Breaker) Reset() {
	b.mu.Lock()
	from := b.state
	b.state = StateClosed
	b.consecutiveFailures = 0
	b.consecutiveSuccesses = 0
	b.trialInFlight = false
	b.openedAt = time.Time{}
	b.generation++
	b.mu.Unlock()

	if from != StateClosed {
		b.notify(from, StateClosed)
	}
}

// Metrics returns a snapshot for observability endpoints.
func (b *Breaker) Metrics() Metrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked()

	m := Metrics{
		Name:                 b.name,
		State:                b.state.String(),
		ConsecutiveFailures:  b.consecutiveFailures,
		ConsecutiveSuccesses: b.consecutiveSuccesses,
		TotalCalls:           b.totalCalls,
		TotalFailures:        b.totalFailures,
		TotalRejected:        b.totalRejected,
	}
	if !b.openedAt.IsZero() {
		t := b.openedAt
		m.OpenedAt = &t
	}
	if !b.lastFailureAt.IsZero() {
		t := b.lastFailureAt
		m.LastFailureAt = &t
	}
	return m
}

// admit reports the generation the call runs in and whether it holds the
// half-open trial slot.
func (b *Breaker) admit() (uint64, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked()

	trial := false
	switch b.state {
	case StateOpen:
		b.totalRejected++
		return 0, false, ErrOpen
	case StateHalfOpen:
		if b.trialInFlight {
			b.totalRejected++
			return 0, false, ErrOpen
		}
		b.trialInFlight = true
		trial = true
	}
	b.totalCalls++
	return b.generation, trial, nil
}

// record applies a completion. Results from an earlier generation only
// update the totals: a call admitted while CLOSED that finishes during
// HALF_OPEN must neither free nor satisfy the trial slot.
func (b *Breaker) record(gen uint64, trial bool, err error) {
	b.mu.Lock()
	b.refreshLocked()
	from := b.state

	if err != nil {
		b.totalFailures++
		b.lastFailureAt = b.now()
	}
	if gen != b.generation {
		b.mu.Unlock()
		return
	}
	if trial {
		b.trialInFlight = false
	}

	if err != nil {
		b.consecutiveSuccesses = 0
		b.consecutiveFailures++

		switch {
		case from == StateHalfOpen && trial:
			b.openLocked()
		case from == StateClosed && b.consecutiveFailures >= b.settings.FailureThreshold:
			b.openLocked()
		}
	} else {
		b.consecutiveFailures = 0
		if from == StateHalfOpen && trial {
			b.consecutiveSuccesses++
			if b.consecutiveSuccesses >= b.settings.SuccessThreshold {
				b.state = StateClosed
				b.consecutiveSuccesses = 0
				b.openedAt = time.Time{}
				b.generation++
			}
		}
	}
	to := b.state
	b.mu.Unlock()

	if from != to {
		b.notify(from, to)
	}
}

func (b *Breaker) openLocked() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.consecutiveSuccesses = 0
	b.trialInFlight = false
	b.generation++
}

// refreshLocked moves OPEN to HALF_OPEN once the timeout has elapsed.
func (b *Breaker) refreshLocked() {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.settings.Timeout {
		b.state = StateHalfOpen
		b.consecutiveSuccesses = 0
		b.consecutiveFailures = 0
		b.trialInFlight = false
		b.generation++
		if b.onStateChange != nil {
			go b.onStateChange(b.name, StateOpen, StateHalfOpen)
		}
	}
}

func (b *Breaker) notify(from, to State) {
	if b.onStateChange != nil {
		b.onStateChange(b.name, from, to)
	}
}
