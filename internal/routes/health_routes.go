package routes

import "github.com/gofiber/fiber/v2"

func SetupHealthRoutes(app *fiber.App) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "Server is running"})
	})
}
