package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/movie-rental/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rental.log")
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel, Sink: path}, "rental")

	log.Debug("hidden")
	log.Info("rented")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"logger":"rental"`)
	require.Contains(t, string(data), `"msg":"rented"`)
	require.NotContains(t, string(data), "hidden")
}
