package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKPIRoutes(app *fiber.App, db *gorm.DB, sessions middleware.TokenParser) {
	repo := repository.NewKPIRepository(db)
	hdl := handler.NewKPIHandler(repo)

	api := app.Group("/api/kpis", middleware.OptionalAuth(sessions))
	api.Get("/", hdl.GetAll)
	api.Get("/hod/:hodId", middleware.HODScope("hodId"), hdl.GetByHOD)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
