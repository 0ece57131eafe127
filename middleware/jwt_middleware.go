package middleware

import (
	"fntp-backend/config"
	apimodels "fntp-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AuthorizationRequired() fiber.Handler {
	return Authorization(config.Conf.Auth.JWTSecret)
}

// Authorization accepts the bearer header and, for websocket clients, the token query parameter.
func Authorization(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: "header:Authorization,query:token",
		AuthScheme:  "Bearer",
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(secret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("unauthorized"))
		},
	})
}
