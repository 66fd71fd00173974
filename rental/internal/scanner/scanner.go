package scanner

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type OverdueNotifier interface {
	NotifyOverdue(ctx context.Context) (int, error)
}

// Scanner runs an overdue sweep every interval until its context is done.
type Scanner struct {
	svc      OverdueNotifier
	interval time.Duration
	log      *zap.Logger
}

func New(svc OverdueNotifier, interval time.Duration, log *zap.Logger) *Scanner {
	return &Scanner{
		svc:      svc,
		interval: interval,
		log:      log.Named("scanner"),
	}
}

// Run blocks until ctx is cancelled. A non-positive interval disables the scanner.
// Sweep errors are logged and the next tick retries.
func (s *Scanner) Run(ctx context.Context) error {
	if s.interval <= 0 {
		s.log.Info("overdue scanner disabled")
		return nil
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scanner) sweep(ctx context.Context) {
	n, err := s.svc.NotifyOverdue(ctx)
	if err != nil {
		s.log.Error("NotifyOverdue", zap.Int("notified", n), zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Info("overdue notices sent", zap.Int("notified", n))
	}
}
