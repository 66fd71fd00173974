package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

var (
	errService = errors.New("service error")

	successfulService = func() error { return nil }
	failingService    = func() error { return errService }
)

func newTestBreaker() (*circuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC)}
	cb := newWithClock(Config{
		RecordLength:     10,
		Timeout:          2 * time.Second,
		Percentile:       0.3,
		RecoveryRequests: 3,
	}, clock.now)
	return cb, clock
}

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	cb, clock := newTestBreaker()

	for i := 0; i < 80; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.Equal(t, Closed, cb.State())

	// 3 of the last 10 calls failing reaches the 30% threshold
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, Closed, cb.State())
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, Open, cb.State())

	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrOpenCB)
	require.False(t, called)

	clock.advance(3 * time.Second)
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(successfulService))
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	cb, clock := newTestBreaker()

	for i := 0; i < 3; i++ {
		_ = cb.Call(failingService)
	}
	require.Equal(t, Open, cb.State())

	clock.advance(3 * time.Second)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(successfulService), ErrOpenCB)

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(successfulService))
}

func Test_circuitBreaker_IgnoredErrors(t *testing.T) {
	t.Parallel()
	cb, _ := newTestBreaker()

	for i := 0; i < 10; i++ {
		err := cb.Call(func() error { return Ignore(errService) })
		require.ErrorIs(t, err, errService)
		require.Equal(t, errService, err)
	}
	require.Equal(t, Closed, cb.State())

	require.NoError(t, cb.Call(func() error { return Ignore(nil) }))
}
