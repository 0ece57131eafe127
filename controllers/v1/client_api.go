package apiv1

import (
	"fntp-backend/controllers"
	clienthandler "fntp-backend/lib/client"
	"fntp-backend/middleware"
	apimodels "fntp-backend/models/api"
	clientapimodels "fntp-backend/models/api/client"

	"github.com/gofiber/fiber/v2"
)

type clientApiController struct {
	controllers.BaseAPIController
}

func InitClientApiRouters(app *fiber.App) {
	controller := clientApiController{}
	app.Route("client", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Создание клиента
// @Tags Клиент
// @Description Создание карточки клиента практики
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clientapimodels.ClientData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client [post]
func (c *clientApiController) create(ctx *fiber.Ctx) error {
	var payload clientapimodels.ClientData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, hMsg, err := clienthandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания клиента")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список клиентов
// @Tags Клиент
// @Description Список клиентов практикующего специалиста
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clientapimodels.ListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/list [post]
func (c *clientApiController) list(ctx *fiber.Ctx) error {
	var payload clientapimodels.ListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := clienthandler.Instance.List(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка клиентов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение клиента
// @Tags Клиент
// @Description Получение карточки клиента
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [get]
func (c *clientApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := clienthandler.Instance.Get(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("client_id", id), err, "Ошибка получения клиента")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
