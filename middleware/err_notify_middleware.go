package middleware

import (
	"encoding/json"

	apimodels "fntp-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

// ErrNotify posts every 5xx response to the notification webhook at addr.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}
		notification := errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      c.OriginalURL(),
			RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
		}
		if r := c.Route(); r != nil {
			notification.Path = r.Path
		}
		var data apimodels.Response
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr == nil && data.Message != "" {
			notification.Error = data.Message
		} else {
			notification.Error = string(c.Response().Body())
		}
		if err != nil && notification.Error == "" {
			notification.Error = err.Error()
		}
		go sendErrNotification(addr, notification)
		return err
	}
}

func sendErrNotification(addr string, notification errNotification) {
	logger := log.WithField("path", notification.Path)
	code, _, errs := fiber.Post(addr).JSON(notification).Bytes()
	if len(errs) != 0 {
		logger.WithError(errs[0]).Warn("ошибка отправки уведомления об ошибке")
		return
	}
	if code >= fiber.StatusBadRequest {
		logger.WithField("status", code).Warn("сервис уведомлений об ошибках вернул ошибку")
	}
}
