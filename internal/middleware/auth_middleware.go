package middleware

import (
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// TokenParser validates a bearer token.
type TokenParser interface {
	ParseToken(raw string) (*usecase.Claims, error)
}

// Auth rejects requests without a valid bearer token and stores the session
// in the request context.
func Auth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token provided"})
		}

		claims, err := parser.ParseToken(authHeader)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(sessionKey, claims)
		return c.Next()
	}
}

// OptionalAuth stores the session when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
			if claims, err := parser.ParseToken(authHeader); err == nil {
				c.Locals(sessionKey, claims)
			}
		}
		return c.Next()
	}
}

// Session returns the authenticated session, or nil.
func Session(c *fiber.Ctx) *usecase.Claims {
	claims, _ := c.Locals(sessionKey).(*usecase.Claims)
	return claims
}
