package main

import (
	"errors"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/movie-rental/rental/app"
	"github.com/Astemirdum/movie-rental/rental/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title        Movie rental API
// @version      1.0
// @description  Rents movies, prices baskets, extends and returns rentals.
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
