package creditcheck_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Astemirdum/movie-rental/pkg/circuit_breaker"
	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/Astemirdum/movie-rental/rental/internal/service"
	"github.com/Astemirdum/movie-rental/rental/internal/service/creditcheck"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var _ service.CreditChecker = (*creditcheck.Service)(nil)

func newClient(t *testing.T, h http.HandlerFunc) *creditcheck.Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	return creditcheck.NewService(zap.NewNop(), creditcheck.Config{
		Host:    host,
		Port:    port,
		Timeout: time.Second,
		CircuitBreaker: circuit_breaker.Config{
			RecordLength:     4,
			Timeout:          time.Minute,
			Percentile:       0.5,
			RecoveryRequests: 1,
		},
	})
}

func TestService_IsDenylisted(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		status  int
		body    string
		want    bool
		wantErr bool
	}{
		{name: "clear", status: http.StatusOK, body: `{"username":"Test Max","denylisted":false}`, want: false},
		{name: "denylisted", status: http.StatusOK, body: `{"username":"Test Max","denylisted":true}`, want: true},
		{name: "no verdict", status: http.StatusOK, body: `{"username":"Test Max"}`, wantErr: true},
		{name: "garbage", status: http.StatusOK, body: `not json`, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"boom"}`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/v1/credit/Test%20Max", r.URL.EscapedPath())
				require.Equal(t, "Test Max", r.Header.Get(creditcheck.XUserName))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := client.IsDenylisted(context.Background(), model.Customer{Username: "Test Max"})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_IsDenylisted_BreakerOpens(t *testing.T) {
	t.Parallel()
	var calls int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	customer := model.Customer{Username: "u"}

	for i := 0; i < 2; i++ {
		_, err := client.IsDenylisted(context.Background(), customer)
		require.Error(t, err)
		require.NotErrorIs(t, err, circuit_breaker.ErrOpenCB)
	}
	_, err := client.IsDenylisted(context.Background(), customer)
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestService_IsDenylisted_CallerGaveUp(t *testing.T) {
	t.Parallel()
	var calls int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"username":"u","denylisted":false}`))
	})
	customer := model.Customer{Username: "u"}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		_, err := client.IsDenylisted(cancelled, customer)
		require.ErrorIs(t, err, context.Canceled)
	}

	denylisted, err := client.IsDenylisted(context.Background(), customer)
	require.NoError(t, err)
	require.False(t, denylisted)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}
