package middleware

import "github.com/gofiber/fiber/v2"

func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := Session(c)
		if session == nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: no session"})
		}

		for _, role := range allowedRoles {
			if role == session.Role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: insufficient role"})
	}
}
