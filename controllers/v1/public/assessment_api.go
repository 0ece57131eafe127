package publicapi

import (
	"fntp-backend/controllers"
	"fntp-backend/lib/assessment"
	"fntp-backend/middleware"
	apimodels "fntp-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type publicAssessmentApiController struct {
	controllers.AssessmentActions
}

func InitPublicAssessmentApiRouters(app *fiber.App) {
	controller := publicAssessmentApiController{}
	app.Route("assessment", func(router fiber.Router) {
		router.Post("start", controller.start)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Use(controller.accessRequired)
			idRoute.Get("next", controller.next)
			idRoute.Post("response", controller.submit)
			idRoute.Get("progress", controller.progress)
			idRoute.Put("pause", controller.pause)
			idRoute.Put("resume", controller.resume)
		})
	})
}

func (c *publicAssessmentApiController) accessRequired(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = assessment.Instance.CheckAccess(id, assessment.Access{ClientID: middleware.GetClientID(ctx)})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка проверки доступа к опросу")
	}
	return ctx.Next()
}

// @Summary Начать или продолжить опрос
// @Tags Опрос клиента
// @Description Возвращает активный опрос клиента или создает новый
// @Param   X-Client-ID		header		string	true	"Идентификатор клиента"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StartResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/start [post]
func (c *publicAssessmentApiController) start(ctx *fiber.Ctx) error {
	clientID := middleware.GetClientID(ctx)
	resp, err := assessment.Instance.Start(clientID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запуска опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Следующий вопрос
// @Tags Опрос клиента
// @Description Следующий вопрос и прогресс
// @Param   X-Client-ID		header		string	true	"Идентификатор клиента"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.NextQuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id}/next [get]
func (c *publicAssessmentApiController) next(ctx *fiber.Ctx) error {
	return c.Next(ctx)
}

// @Summary Сохранение ответа
// @Tags Опрос клиента
// @Description Сохраняет ответ на вопрос, повторный ответ заменяет предыдущий
// @Param   X-Client-ID		header		string	true	"Идентификатор клиента"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 assessmentapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.SubmitResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id}/response [post]
func (c *publicAssessmentApiController) submit(ctx *fiber.Ctx) error {
	return c.Submit(ctx)
}

// @Summary Прогресс опроса
// @Tags Опрос клиента
// @Description Прогресс по модулям и общий
// @Param   X-Client-ID		header		string	true	"Идентификатор клиента"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=progress.Snapshot}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id}/progress [get]
func (c *publicAssessmentApiController) progress(ctx *fiber.Ctx) error {
	return c.Progress(ctx)
}

// @Summary Приостановить опрос
// @Tags Опрос клиента
// @Description Приостановить опрос
// @Param   X-Client-ID		header		string	true	"Идентификатор клиента"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id}/pause [put]
func (c *publicAssessmentApiController) pause(ctx *fiber.Ctx) error {
	return c.Pause(ctx)
}

// @Summary Возобновить опрос
// @Tags Опрос клиента
// @Description Возобновить приостановленный опрос
// @Param   X-Client-ID		header		string	true	"Идентификатор клиента"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StartResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/assessment/{id}/resume [put]
func (c *publicAssessmentApiController) resume(ctx *fiber.Ctx) error {
	return c.Resume(ctx)
}
