package fiberlog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// Next skips logging when it returns true
	Next func(c *fiber.Ctx) bool
	// MaxBodySize caps logged request and response bodies, defaultMaxBodySize when zero
	MaxBodySize int
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
	MaxBodySize: defaultMaxBodySize,
}

func (c Config) maxBodySize() int {
	if c.MaxBodySize <= 0 {
		return defaultMaxBodySize
	}
	return c.MaxBodySize
}
