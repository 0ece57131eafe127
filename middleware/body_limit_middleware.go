package middleware

import (
	"fmt"
	"strconv"
	"strings"

	apimodels "fntp-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit rejects requests by Content-Length, document uploads have their own limit.
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost && strings.HasSuffix(c.Path(), "/document") {
			return c.Next()
		}
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && size > limit {
				return c.Status(fiber.StatusRequestEntityTooLarge).
					JSON(apimodels.NewError(fmt.Sprintf("request body too large, maximum allowed: %d bytes", limit)))
			}
		}
		return c.Next()
	}
}
