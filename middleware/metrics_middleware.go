package middleware

import (
	"strconv"
	"time"

	"fntp-backend/lib/metrics"

	"github.com/gofiber/fiber/v2"
)

// RequestMetrics observes request duration by route template, so ids do not multiply label values.
func RequestMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()
		route := c.Path()
		if r := c.Route(); r != nil {
			route = r.Path
		}
		metrics.RequestDuration.
			WithLabelValues(c.Method(), route, strconv.Itoa(c.Response().StatusCode())).
			Observe(time.Since(started).Seconds())
		return err
	}
}
