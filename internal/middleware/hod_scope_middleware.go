package middleware

import (
	"strconv"

	"hod-management-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

// HODScope stops a HOD session from reading another HOD's rows. The HOD id is
// taken from the route parameter when named, otherwise from the hod_id query.
// Sessions that are not HOD-scoped pass through, as do "All" and an absent id.
func HODScope(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := Session(c)
		if !session.IsHOD() {
			return c.Next()
		}

		raw := c.Query("hod_id")
		if param != "" {
			raw = c.Params(param)
		}
		if raw == "" || raw == report.AllSentinel {
			return c.Next()
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || uint(id) != *session.HODID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: records belong to another HOD"})
		}
		return c.Next()
	}
}
