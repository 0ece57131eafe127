package ws

import (
	"fntp-backend/lib/assessment"
	wsclient "fntp-backend/lib/ws/client"
	connectionhub "fntp-backend/lib/ws/hub/connection-hub"
	"fntp-backend/middleware"
	apimodels "fntp-backend/models/api"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const localAssessmentID = "assessmentID"

func InitWs(app *fiber.App) {
	app.Use(func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		return ctx.Next()
	})
	app.Get("/assessment/:id", middleware.AuthorizationRequired(), accessRequired(func(ctx *fiber.Ctx) assessment.Access {
		return assessment.Access{PractitionerID: middleware.GetUserID(ctx)}
	}), websocket.New(progressHandler))
	app.Get("/public/assessment/:id", middleware.ClientIDRequired(), accessRequired(func(ctx *fiber.Ctx) assessment.Access {
		return assessment.Access{ClientID: middleware.GetClientID(ctx)}
	}), websocket.New(progressHandler))
}

func accessRequired(access func(ctx *fiber.Ctx) assessment.Access) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Params("id")
		err := assessment.Instance.CheckAccess(id, access(ctx))
		if err != nil {
			log.WithError(err).WithField("assessment_id", id).Info("отказ в подключении к websocket опроса")
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("not found"))
		}
		ctx.Locals(localAssessmentID, id)
		return ctx.Next()
	}
}

// @Summary Прогресс опроса
// @Tags Websocket
// @Description События опроса: progress, red_flag, completed. Токен передается в query параметре token, для клиента client_id
// @Param   id          		path    string  true         "assessment ID"
// @Param   token		query		string		false		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 401
// @Failure 404
// @Failure 426
// @router /ws/assessment/{id} [get]
func progressHandler(c *websocket.Conn) {
	assessmentID := c.Locals(localAssessmentID).(string)
	sessionID := connectionhub.Instance.Subscribe(assessmentID, c)
	defer connectionhub.Instance.Unsubscribe(assessmentID, sessionID)
	wsclient.NewClient(assessmentID, c).Dispatch()
}
