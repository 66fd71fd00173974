package handler

import (
	"net/http"

	"github.com/Astemirdum/movie-rental/rental/internal/errs"
	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	XUserName  = "X-User-Name"
	XUserEmail = "X-User-Email"

	customerKey = "customer"
)

// customerMW requires the X-User-Name header and stores the customer in the echo context.
func customerMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userName := c.Request().Header.Get(XUserName)
		if userName == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrUserName.Error())
		}
		c.Set(customerKey, &model.Customer{
			Username: userName,
			Email:    c.Request().Header.Get(XUserEmail),
		})
		return next(c)
	}
}

func getCustomer(c echo.Context) (*model.Customer, error) {
	customer, ok := c.Get(customerKey).(*model.Customer)
	if !ok {
		return nil, errs.ErrUserName
	}
	return customer, nil
}

func requestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}

func newRateLimiterMW(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}
