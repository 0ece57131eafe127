package apiv1

import (
	"fntp-backend/controllers"
	"fntp-backend/lib/assessment"
	"fntp-backend/middleware"
	apimodels "fntp-backend/models/api"
	severityapimodels "fntp-backend/models/api/severity"

	"github.com/gofiber/fiber/v2"
)

type severityApiController struct {
	controllers.BaseAPIController
}

func InitSeverityApiRouters(app *fiber.App) {
	controller := severityApiController{}
	app.Route("severity", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("report", controller.report)
	})
}

// @Summary Расчет тяжести симптомов
// @Tags Тяжесть симптомов
// @Description Оценка тяжести по переданным ответам на полном шаблоне опроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 severityapimodels.ReportRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=severityapimodels.Report}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/severity/report [post]
func (c *severityApiController) report(ctx *fiber.Ctx) error {
	var payload severityapimodels.ReportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(assessment.Instance.SeverityReport(payload.Responses)))
}
