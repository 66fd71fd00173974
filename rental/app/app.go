package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/movie-rental/pkg/database"
	"github.com/Astemirdum/movie-rental/pkg/kafka"
	"github.com/Astemirdum/movie-rental/pkg/logger"
	"github.com/Astemirdum/movie-rental/rental/config"
	"github.com/Astemirdum/movie-rental/rental/internal/handler"
	"github.com/Astemirdum/movie-rental/rental/internal/repository"
	"github.com/Astemirdum/movie-rental/rental/internal/scanner"
	"github.com/Astemirdum/movie-rental/rental/internal/server"
	"github.com/Astemirdum/movie-rental/rental/internal/service"
	"github.com/Astemirdum/movie-rental/rental/internal/service/creditcheck"
	"github.com/Astemirdum/movie-rental/rental/internal/service/notify"
	"github.com/Astemirdum/movie-rental/rental/migrations"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "rental")
	defer log.Sync() //nolint:errcheck

	db, err := database.NewDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	notifier, closeNotifier, err := newNotifier(cfg.Kafka, log)
	if err != nil {
		return errors.Wrap(err, "kafka.NewProducer")
	}
	defer closeNotifier()

	svc := service.NewService(
		repo,
		creditcheck.NewService(log, cfg.CreditCheck),
		notifier,
		log,
		service.WithSkipDay(cfg.Rental.SkipDay.Weekday()),
	)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		return scanner.New(svc, cfg.Overdue.Interval, log).Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("rental", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// newNotifier publishes overdue notices to Kafka when brokers are configured
// and only logs them otherwise.
func newNotifier(cfg kafka.Config, log *zap.Logger) (service.Notifier, func(), error) {
	if !cfg.Enabled() {
		log.Warn("KAFKA_ADDRS not set, overdue notices are logged only")
		return notify.NewLog(log), func() {}, nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, nil, err
	}
	k := notify.NewKafka(producer, cfg.Topic, log)
	return k, func() {
		if err := k.Close(); err != nil {
			log.Error("producer close", zap.Error(err))
		}
	}, nil
}
