package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"
)

// RateLimitByIP limits requests per client IP with a fixed-window counter
// backed by Redis. A limiter failure lets the request through, so an
// unavailable Redis never blocks authentication.
func RateLimitByIP(limiter *redis.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warnf("Rate limiter unavailable, allowing request from %s: %v", c.RealIP(), err)
				return next(c)
			}

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": msg.GetMessage("auth.rate-limited"),
				})
			}

			return next(c)
		}
	}
}
