package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSearchRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewSearchHandler(repository.NewSearchRepository(db))

	app.Get("/api/search", hdl.Search)
}
