package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewCategoryRepository(db)
	hdl := handler.NewCategoryHandler(repo)

	api := app.Group("/api/categories")
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
