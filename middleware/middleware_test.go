package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authutils "fntp-backend/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/private", Authorization(testSecret), func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c))
	})
	app.Get("/public", ClientIDRequired(), func(c *fiber.Ctx) error {
		return c.SendString(GetClientID(c))
	})
	app.Post("/limited", WithBodyLimit(10), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthorization(t *testing.T) {
	app := newTestApp()
	token, err := authutils.SignToken(testSecret, "p-1", "Dr. Ann", time.Hour)
	require.Nil(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, _ := io.ReadAll(resp.Body)
	require.Equal(t, "p-1", string(data))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/private?token="+token, nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/private", nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	expired, err := authutils.SignToken(testSecret, "p-1", "Dr. Ann", -time.Minute)
	require.Nil(t, err)
	req = httptest.NewRequest(fiber.MethodGet, "/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+expired)
	resp, err = app.Test(req)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestClientID(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/public", nil)
	req.Header.Set(ClientIDHeader, "c-1")
	resp, err := app.Test(req)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, _ := io.ReadAll(resp.Body)
	require.Equal(t, "c-1", string(data))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/public?client_id=c-2", nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/public", nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWithBodyLimit(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/limited", strings.NewReader("0123456789abc")))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/limited", strings.NewReader("0123")))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
