package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&log.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: []string{TagStatus, TagMethod, TagPath, TagResBody}}))
	app.Get("/api/v1/ping", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTeapot).JSON(fiber.Map{"status": "success"})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/ping", nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	entry := map[string]interface{}{}
	require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warning", entry["level"])
	require.Equal(t, "/api/v1/ping", entry[TagPath])
	require.Equal(t, "GET", entry[TagMethod])
	require.Equal(t, float64(fiber.StatusTeapot), entry[TagStatus])
	require.Equal(t, `{"status":"success"}`, entry[TagResBody])
}

func TestNewSkipAndTruncate(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&log.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{
		Logger:      logger,
		Tags:        []string{TagPath, TagBody},
		MaxBodySize: 4,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/swagger"
		},
	}))
	app.Get("/swagger", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/api/v1/severity/report", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/swagger", nil))
	require.Nil(t, err)
	require.Equal(t, 0, buf.Len())

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/severity/report", bytes.NewBufferString(`{"responses":[]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err = app.Test(req)
	require.Nil(t, err)

	entry := map[string]interface{}{}
	require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, `{"re...`, entry[TagBody])
}
