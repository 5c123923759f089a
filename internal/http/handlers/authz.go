package handlers

import (
	applog "trendyshop/internal/log"
	"trendyshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	TokenHeader = "auth-token"

	msgMissingToken = "Please authenticate using valid token"
	msgInvalidToken = "Please authenticate using a valid token"
)

// RequireToken resolves the auth-token header to a user id and stores it in
// Locals("userID"). It never looks the user up.
func RequireToken(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Get(TokenHeader)
		if tok == "" {
			applog.Security(c, "auth.token.missing", nil)
			return reject(c, fiber.StatusUnauthorized, msgMissingToken)
		}
		uid, err := tokens.Verify(tok)
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return reject(c, fiber.StatusUnauthorized, msgInvalidToken)
		}
		c.Locals("userID", uid)
		return c.Next()
	}
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
