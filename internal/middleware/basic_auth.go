package middleware

import (
	"context"
	"time"

	"taproom/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/rs/zerolog"
)

// Realm is announced in the WWW-Authenticate challenge.
const Realm = "taproom"

const authTimeout = 5 * time.Second

// AuthRequired checks HTTP Basic credentials against the stored accounts.
// A store failure during the check is logged and treated as a rejection.
func AuthRequired(authService *services.AuthService, log zerolog.Logger) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: Realm,
		Authorizer: func(username, password string) bool {
			ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
			defer cancel()

			ok, err := authService.Authenticate(ctx, username, password)
			if err != nil {
				log.Error().Err(err).Str("username", username).Msg("credential check failed")
				return false
			}
			return ok
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `basic realm="`+Realm+`"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "authentication required",
				},
			})
		},
	})
}
