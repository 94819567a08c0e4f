package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHODRoutes(app *fiber.App, db *gorm.DB, sessions middleware.TokenParser) {
	repo := repository.NewHODRepository(db)
	hdl := handler.NewHODHandler(repo)

	api := app.Group("/api/hods", middleware.OptionalAuth(sessions))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", middleware.HODScope("id"), hdl.GetByID)
	api.Get("/:id/details", middleware.HODScope("id"), hdl.GetDetails)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
