package controllers

import (
	"fntp-backend/lib/assessment"
	apimodels "fntp-backend/models/api"
	assessmentapimodels "fntp-backend/models/api/assessment"

	"github.com/gofiber/fiber/v2"
)

// AssessmentActions serves the assessment routes shared by practitioner and client APIs.
// Access to the assessment is checked by the router before these handlers run.
type AssessmentActions struct {
	BaseAPIController
}

func (c *AssessmentActions) Submit(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var payload assessmentapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, hMsg, err := assessment.Instance.Submit(id, payload)
	if err != nil {
		logger := c.GetLogger(ctx).
			WithField("assessment_id", id).
			WithField("question_id", payload.QuestionID)
		return c.SendError(ctx, logger, err, "Ошибка сохранения ответа")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *AssessmentActions) Next(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	resp, err := assessment.Instance.NextQuestion(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка получения следующего вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *AssessmentActions) Progress(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	resp, err := assessment.Instance.Progress(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка расчета прогресса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *AssessmentActions) Pause(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	hMsg, err := assessment.Instance.Pause(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка приостановки опроса")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *AssessmentActions) Resume(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	resp, hMsg, err := assessment.Instance.Resume(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка возобновления опроса")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
