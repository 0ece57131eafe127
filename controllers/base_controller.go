package controllers

import (
	"fmt"
	"strings"

	"fntp-backend/middleware"
	"fntp-backend/models"
	apimodels "fntp-backend/models/api"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

var validate = validator.New(validator.WithRequiredStructEnabled())

// BodyParser decodes the request body and checks its validate tags.
func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("unable to read request data")
	}
	return c.Validate(out)
}

func (c *BaseAPIController) Validate(out interface{}) error {
	err := validate.Struct(out)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s: %s", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return errors.Errorf("invalid request data (%s)", strings.Join(fields, ", "))
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParamID(ctx, "id")
}

func (c *BaseAPIController) GetParamID(ctx *fiber.Ctx, name string) (string, error) {
	id := ctx.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Errorf("invalid %s", name)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if userID := middleware.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	if clientID := middleware.GetClientID(ctx); clientID != "" {
		logger = logger.WithField("client_id", clientID)
	}
	return logger
}

// SendError answers 404 for a wrapped models.ErrNotFound and 500 for anything else.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	if errors.Is(err, models.ErrNotFound) {
		logger.WithError(err).Info(msg)
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("not found"))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("internal server error"))
}
