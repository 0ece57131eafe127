package apiv1

import (
	"fmt"

	"fntp-backend/config"
	"fntp-backend/controllers"
	"fntp-backend/lib/analysis"
	"fntp-backend/lib/assessment"
	clienthandler "fntp-backend/lib/client"
	pdfexport "fntp-backend/lib/export/pdf"
	xlsexport "fntp-backend/lib/export/xls"
	"fntp-backend/middleware"
	apimodels "fntp-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type assessmentApiController struct {
	controllers.AssessmentActions
}

func InitAssessmentApiRouters(app *fiber.App) {
	controller := assessmentApiController{}
	app.Route("client/:id/assessment", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.start)
		router.Get("list", controller.listByClient)
	})
	app.Route("assessment/:id", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(controller.accessRequired)
		router.Get("", controller.get)
		router.Post("response", controller.submit)
		router.Get("next", controller.next)
		router.Get("progress", controller.progress)
		router.Put("pause", controller.pause)
		router.Put("resume", controller.resume)
		router.Get("responses", controller.responses)
		router.Get("severity", controller.severity)
		router.Get("severity/pdf", controller.severityPdf)
		router.Get("export/xlsx", controller.exportXlsx)
		router.Get("analysis", controller.getAnalysis)
		router.Post("analysis", controller.requestAnalysis)
	})
}

func (c *assessmentApiController) accessRequired(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = assessment.Instance.CheckAccess(id, assessment.Access{PractitionerID: middleware.GetUserID(ctx)})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка проверки доступа к опросу")
	}
	return ctx.Next()
}

// @Summary Начать или продолжить опрос
// @Tags Опрос
// @Description Возвращает активный опрос клиента или создает новый
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "client ID"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StartResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id}/assessment [post]
func (c *assessmentApiController) start(ctx *fiber.Ctx) error {
	clientID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := c.GetLogger(ctx).WithField("client_id", clientID)
	err = clienthandler.Instance.CheckOwner(middleware.GetUserID(ctx), clientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка проверки клиента")
	}

	resp, err := assessment.Instance.Start(clientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка запуска опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список опросов клиента
// @Tags Опрос
// @Description Список опросов клиента
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "client ID"
// @Success 200 {object} apimodels.Response{data=[]assessmentapimodels.AssessmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id}/assessment/list [get]
func (c *assessmentApiController) listByClient(ctx *fiber.Ctx) error {
	clientID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := c.GetLogger(ctx).WithField("client_id", clientID)
	err = clienthandler.Instance.CheckOwner(middleware.GetUserID(ctx), clientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка проверки клиента")
	}

	list, err := assessment.Instance.ListByClient(clientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка получения списка опросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение опроса
// @Tags Опрос
// @Description Получение опроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.AssessmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id} [get]
func (c *assessmentApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	resp, err := assessment.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка получения опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение ответа
// @Tags Опрос
// @Description Сохраняет ответ на вопрос, повторный ответ заменяет предыдущий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body body	 assessmentapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.SubmitResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/response [post]
func (c *assessmentApiController) submit(ctx *fiber.Ctx) error {
	return c.Submit(ctx)
}

// @Summary Следующий вопрос
// @Tags Опрос
// @Description Следующий вопрос и прогресс
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.NextQuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/next [get]
func (c *assessmentApiController) next(ctx *fiber.Ctx) error {
	return c.Next(ctx)
}

// @Summary Прогресс опроса
// @Tags Опрос
// @Description Прогресс по модулям и общий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=progress.Snapshot}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/progress [get]
func (c *assessmentApiController) progress(ctx *fiber.Ctx) error {
	return c.Progress(ctx)
}

// @Summary Приостановить опрос
// @Tags Опрос
// @Description Приостановить опрос
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/pause [put]
func (c *assessmentApiController) pause(ctx *fiber.Ctx) error {
	return c.Pause(ctx)
}

// @Summary Возобновить опрос
// @Tags Опрос
// @Description Возобновить приостановленный опрос
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=assessmentapimodels.StartResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/resume [put]
func (c *assessmentApiController) resume(ctx *fiber.Ctx) error {
	return c.Resume(ctx)
}

// @Summary Ответы опроса
// @Tags Опрос
// @Description Ответы опроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]assessmentapimodels.ResponseView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/responses [get]
func (c *assessmentApiController) responses(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	list, err := assessment.Instance.Responses(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка получения ответов опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отчет о тяжести симптомов
// @Tags Опрос
// @Description Оценка тяжести по кластерам и отчет в markdown
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=severityapimodels.Report}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/severity [get]
func (c *assessmentApiController) severity(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	resp, err := assessment.Instance.Severity(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка формирования отчета о тяжести")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отчет о тяжести симптомов в PDF
// @Tags Опрос
// @Description Отчет о тяжести симптомов в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/severity/pdf [get]
func (c *assessmentApiController) severityPdf(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	logger := c.GetLogger(ctx).WithField("assessment_id", id)
	view, err := assessment.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка получения опроса")
	}
	client, err := clienthandler.Instance.Get(middleware.GetUserID(ctx), view.ClientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка получения клиента")
	}
	report, err := assessment.Instance.Severity(id)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка формирования отчета о тяжести")
	}
	file, err := pdfexport.GenerateSeverityReport(pdfexport.SeverityReportData{
		PracticeName: config.Conf.Practice.Name,
		ClientName:   client.FullName,
		Assessment:   view,
		Scores:       report.Scores,
	})
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка формирования PDF")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="severity-%s.pdf"`, id))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Send(file)
}

// @Summary Выгрузка ответов в Excel
// @Tags Опрос
// @Description Ответы и оценка тяжести в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/export/xlsx [get]
func (c *assessmentApiController) exportXlsx(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	logger := c.GetLogger(ctx).WithField("assessment_id", id)
	list, err := assessment.Instance.Responses(id)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка получения ответов опроса")
	}
	report, err := assessment.Instance.Severity(id)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка формирования отчета о тяжести")
	}
	buf, err := xlsexport.ExportAssessment(list, report.Scores)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка формирования xlsx")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="assessment-%s.xlsx"`, id))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Send(buf.Bytes())
}

// @Summary Получение AI анализа
// @Tags Опрос
// @Description AI анализ завершенного опроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=analysisapimodels.AnalysisView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/analysis [get]
func (c *assessmentApiController) getAnalysis(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	resp, err := analysis.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка получения анализа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Запрос повторного AI анализа
// @Tags Опрос
// @Description Возвращает завершенный опрос в очередь анализа, не чаще одного раза за период
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/analysis [post]
func (c *assessmentApiController) requestAnalysis(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	hMsg, err := analysis.Instance.RequestReanalysis(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("assessment_id", id), err, "Ошибка запроса анализа")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
