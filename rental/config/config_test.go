package config

import (
	"testing"
	"time"

	"github.com/Astemirdum/movie-rental/pkg/database"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(WithLogLevel(zapcore.WarnLevel), WithWriteTimeout(time.Minute))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
	require.Equal(t, time.Sunday, cfg.Rental.SkipDay.Weekday())
	require.Equal(t, time.Hour, cfg.Overdue.Interval)
	require.Equal(t, database.DriverPostgres, cfg.Database.Driver)
	require.Equal(t, "rental.overdue", cfg.Kafka.Topic)
	require.False(t, cfg.Kafka.Enabled())
	require.Equal(t, 5*time.Second, cfg.CreditCheck.Timeout)
	require.Equal(t, 10, cfg.CreditCheck.CircuitBreaker.RecordLength)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RENTAL_SKIP_DAY", "Sat")
	t.Setenv("OVERDUE_SCAN_INTERVAL", "15m")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("CREDIT_HTTP_HOST", "credit")
	t.Setenv("CB_TIMEOUT", "30s")

	cfg, err := load()
	require.NoError(t, err)

	require.Equal(t, time.Saturday, cfg.Rental.SkipDay.Weekday())
	require.Equal(t, 15*time.Minute, cfg.Overdue.Interval)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.True(t, cfg.Kafka.Enabled())
	require.Equal(t, database.DriverSQLite, cfg.Database.Driver)
	require.Equal(t, ":memory:", cfg.Database.DSN())
	require.Equal(t, "credit", cfg.CreditCheck.Host)
	require.Equal(t, 30*time.Second, cfg.CreditCheck.CircuitBreaker.Timeout)
}

func TestLoad_BadSkipDay(t *testing.T) {
	t.Setenv("RENTAL_SKIP_DAY", "someday")

	_, err := load()
	require.Error(t, err)
}

func TestSkipDay_MarshalJSON(t *testing.T) {
	b, err := SkipDay(time.Wednesday).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"wednesday"`, string(b))
}
