package apiv1

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fntp-backend/config"
	"fntp-backend/lib/assessment"
	authutils "fntp-backend/lib/utils/auth-utils"
	"fntp-backend/models"
	apimodels "fntp-backend/models/api"
	severityapimodels "fntp-backend/models/api/severity"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newSeverityTestApp(t *testing.T) *fiber.App {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = testSecret
	require.Nil(t, assessment.NewHandler(assessment.Options{}))
	app := fiber.New()
	InitSeverityApiRouters(app)
	return app
}

func TestSeverityReportEndpoint(t *testing.T) {
	app := newSeverityTestApp(t)
	token, err := authutils.SignToken(testSecret, "p-1", "Dr. Ann", time.Hour)
	require.Nil(t, err)

	body := `{"responses":[
		{"question_id":"essential-inflammation-severity","value":5},
		{"question_id":"essential-inflammation-frequency","value":5,"text":"Daily"},
		{"question_id":"essential-digest-severity","value":2}
	]}`
	req := httptest.NewRequest(fiber.MethodPost, "/severity/report", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	result := struct {
		apimodels.Response
		Data severityapimodels.Report `json:"data"`
	}{}
	require.Nil(t, json.Unmarshal(data, &result))
	require.Equal(t, "success", result.Status)
	require.Len(t, result.Data.Scores, 2)
	require.Equal(t, "Inflammation", result.Data.Scores[0].Category)
	require.Equal(t, models.PriorityCritical, result.Data.Scores[0].Priority)
	require.Contains(t, result.Data.Markdown, "### Critical Priority Areas:")
}

func TestSeverityReportEndpointRejects(t *testing.T) {
	app := newSeverityTestApp(t)
	token, err := authutils.SignToken(testSecret, "p-1", "Dr. Ann", time.Hour)
	require.Nil(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/severity/report", strings.NewReader(`{"responses":[{"value":3}]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/severity/report", strings.NewReader(`{"responses":[]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
