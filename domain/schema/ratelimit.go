package schema

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/apperror"
)

const (
	defaultRatePerMinute = 60
	defaultRateBurst     = 10
	visitorExpiry        = 5 * time.Minute
)

// RateLimit returns per-client middleware for the studio group. A
// negative per-minute rate disables limiting.
func RateLimit(cfg config.StudioConfig) echo.MiddlewareFunc {
	perMinute := cfg.RateLimitPerMinute
	if perMinute < 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if perMinute == 0 {
		perMinute = defaultRatePerMinute
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = defaultRateBurst
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(time.Minute / time.Duration(perMinute)),
		Burst:     burst,
		ExpiresIn: visitorExpiry,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperror.ErrBadRequest.WithInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return apperror.ErrRateLimited
		},
	})
}
