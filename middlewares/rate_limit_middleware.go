package middlewares

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const defaultAnonymousRequestsPerMinute = 10

func anonymousRequestsPerMinute() int {
	v := os.Getenv("ANONYMOUS_RATE_LIMIT_PER_MINUTE")
	if v == "" {
		return defaultAnonymousRequestsPerMinute
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid ANONYMOUS_RATE_LIMIT_PER_MINUTE, using default", "value", v, "default", defaultAnonymousRequestsPerMinute)
		return defaultAnonymousRequestsPerMinute
	}
	return n
}

// AnonymousRateLimit throttles unauthenticated endpoints per client ip. It
// bounds brute forcing of secret incident keys.
func AnonymousRateLimit() echo.MiddlewareFunc {
	return anonymousRateLimit(anonymousRequestsPerMinute())
}

func anonymousRateLimit(perMinute int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(time.Minute / time.Duration(perMinute)),
		Burst:     perMinute,
		ExpiresIn: 10 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "could not identify client")
		},
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			slog.Warn("rate limit exceeded", "ip", identifier, "path", ctx.Path())
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}
