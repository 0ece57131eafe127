package middleware

import (
	"strings"

	authutils "fntp-backend/lib/utils/auth-utils"
	apimodels "fntp-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

const ClientIDHeader = "X-Client-ID"

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if userID, ok := sub.(string); ok {
			return userID
		}
	}
	return ""
}

// GetClientID is the client identity of public routes, taken from the header or,
// for websocket clients, the client_id query parameter.
func GetClientID(ctx *fiber.Ctx) string {
	clientID := strings.TrimSpace(ctx.Get(ClientIDHeader))
	if clientID == "" {
		clientID = strings.TrimSpace(ctx.Query("client_id"))
	}
	return clientID
}

func ClientIDRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetClientID(ctx) == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("client id is required"))
		}
		return ctx.Next()
	}
}
