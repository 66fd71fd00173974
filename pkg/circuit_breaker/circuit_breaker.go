package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

type Config struct {
	// RecordLength is the number of most recent calls the failure ratio is taken over.
	RecordLength int `envconfig:"CB_RECORD_LENGTH" default:"10"`
	// Timeout is how long the breaker stays open before letting a probe through.
	Timeout time.Duration `envconfig:"CB_TIMEOUT" default:"10s"`
	// Percentile is the failure ratio that opens the breaker.
	Percentile float64 `envconfig:"CB_PERCENTILE" default:"0.5"`
	// RecoveryRequests is how many successes in a row close a half-open breaker.
	RecoveryRequests int `envconfig:"CB_RECOVERY_REQUESTS" default:"3"`
}

var ErrOpenCB = errors.New("circuit breaker is open")

type ignored struct{ err error }

func (e ignored) Error() string { return e.err.Error() }
func (e ignored) Unwrap() error { return e.err }

// Ignore marks an error returned from a Call'd function as not being the
// callee's fault. Call returns the original error and records nothing.
func Ignore(err error) error {
	if err == nil {
		return nil
	}
	return ignored{err: err}
}

type CircuitBreaker interface {
	Call(fn func() error) error
	State() Status
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	cfg   Config
	now   func() time.Time
	state Status

	openedAt time.Time
	// ring of the latest call results, true means failed
	failures     []bool
	pos          int
	successCount int
}

func New(cfg Config) CircuitBreaker {
	return newWithClock(cfg, time.Now)
}

func newWithClock(cfg Config, now func() time.Time) *circuitBreaker {
	if cfg.RecordLength <= 0 {
		cfg.RecordLength = 1
	}
	return &circuitBreaker{
		cfg:      cfg,
		now:      now,
		state:    Closed,
		failures: make([]bool, cfg.RecordLength),
	}
}

// Call runs fn unless the breaker is open. Errors from fn are returned as is.
func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) <= cb.cfg.Timeout {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := fn()
	var ign ignored
	if errors.As(err, &ign) {
		return ign.err
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.failures)

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.cfg.RecoveryRequests {
			cb.reset()
		}
		return err
	}

	fails := 0
	for _, failed := range cb.failures {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.failures)) >= cb.cfg.Percentile {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.failures {
		cb.failures[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
