package creditcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Astemirdum/movie-rental/pkg/circuit_breaker"
	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const XUserName = "X-User-Name"

type Config struct {
	Host           string        `envconfig:"CREDIT_HTTP_HOST"`
	Port           string        `envconfig:"CREDIT_HTTP_PORT"`
	Timeout        time.Duration `envconfig:"CREDIT_HTTP_TIMEOUT" default:"5s"`
	CircuitBreaker circuit_breaker.Config
}

type Service struct {
	log    *zap.Logger
	client *http.Client
	cb     circuit_breaker.CircuitBreaker
	cfg    Config
}

func NewService(log *zap.Logger, cfg Config) *Service {
	return &Service{
		log:    log.Named("credit"),
		client: &http.Client{Timeout: cfg.Timeout},
		cb:     circuit_breaker.New(cfg.CircuitBreaker),
		cfg:    cfg,
	}
}

type standing struct {
	Username   string `json:"username"`
	Denylisted *bool  `json:"denylisted"`
}

// IsDenylisted asks the credit bureau about the customer. Transport errors,
// non-200 answers and malformed bodies are all errors; while the breaker is
// open it fails with circuit_breaker.ErrOpenCB without calling out.
func (s *Service) IsDenylisted(ctx context.Context, customer model.Customer) (bool, error) {
	var denylisted bool
	err := s.cb.Call(func() error {
		var err error
		denylisted, err = s.lookup(ctx, customer.Username)
		if err != nil && ctx.Err() != nil {
			// the caller gave up, the bureau is not to blame
			return circuit_breaker.Ignore(err)
		}
		return err
	})
	if err != nil {
		s.log.Debug("IsDenylisted", zap.String("username", customer.Username),
			zap.Stringer("breaker", s.cb.State()), zap.Error(err))
		return false, err
	}
	return denylisted, nil
}

func (s *Service) lookup(ctx context.Context, username string) (bool, error) {
	u := fmt.Sprintf("http://%s/api/v1/credit/%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return false, err
	}
	req.Header.Set(XUserName, username)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	resp, err := s.client.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "credit request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, errors.Errorf("credit service status %d", resp.StatusCode)
	}
	var st standing
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return false, errors.Wrap(err, "decode credit standing")
	}
	if st.Denylisted == nil {
		return false, errors.New("credit standing without verdict")
	}
	return *st.Denylisted, nil
}
