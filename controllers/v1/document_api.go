package apiv1

import (
	"fmt"
	"io"

	"fntp-backend/controllers"
	clienthandler "fntp-backend/lib/client"
	"fntp-backend/lib/document"
	"fntp-backend/middleware"
	apimodels "fntp-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type documentApiController struct {
	controllers.BaseAPIController
}

func InitDocumentApiRouters(app *fiber.App) {
	controller := documentApiController{}
	app.Route("client/:id/document", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.upload)
		router.Get("list", controller.list)
	})
	app.Route("document/:id", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.get)
		router.Get("file", controller.download)
	})
}

// @Summary Загрузка документа клиента
// @Tags Документы
// @Description Загрузка анализов или других документов клиента, текстовые документы анализируются AI в фоне
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "client ID"
// @Param   file         		formData    file  true         "документ"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id}/document [post]
func (c *documentApiController) upload(ctx *fiber.Ctx) error {
	clientID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := c.GetLogger(ctx).WithField("client_id", clientID)
	err = clienthandler.Instance.CheckOwner(middleware.GetUserID(ctx), clientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка проверки клиента")
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	if fileHeader.Size > document.MaxDocumentSize {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fmt.Sprintf("file is larger than %d MB", document.MaxDocumentSize>>20)))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, logger, errors.Wrap(err, "ошибка открытия файла"), "Ошибка загрузки документа")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, logger, errors.Wrap(err, "ошибка чтения файла"), "Ошибка загрузки документа")
	}

	id, hMsg, err := document.Instance.Upload(ctx.UserContext(), clientID, fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка загрузки документа")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список документов клиента
// @Tags Документы
// @Description Список документов клиента со статусом анализа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "client ID"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id}/document/list [get]
func (c *documentApiController) list(ctx *fiber.Ctx) error {
	clientID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := c.GetLogger(ctx).WithField("client_id", clientID)
	err = clienthandler.Instance.CheckOwner(middleware.GetUserID(ctx), clientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка проверки клиента")
	}
	list, err := document.Instance.ListByClient(clientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка получения списка документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение документа
// @Tags Документы
// @Description Метаданные и результат анализа документа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document/{id} [get]
func (c *documentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := c.GetLogger(ctx).WithField("document_id", id)
	view, err := document.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка получения документа")
	}
	err = clienthandler.Instance.CheckOwner(middleware.GetUserID(ctx), view.ClientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка проверки клиента")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Скачивание документа
// @Tags Документы
// @Description Скачивание исходного файла документа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/document/{id}/file [get]
func (c *documentApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := c.GetLogger(ctx).WithField("document_id", id)
	view, err := document.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка получения документа")
	}
	err = clienthandler.Instance.CheckOwner(middleware.GetUserID(ctx), view.ClientID)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка проверки клиента")
	}
	file, err := document.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка скачивания документа")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, file.Name))
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	return ctx.Send(file.Data)
}
