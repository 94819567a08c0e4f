package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRevenueRoutes(app *fiber.App, db *gorm.DB, sessions middleware.TokenParser) {
	repo := repository.NewRevenueRepository(db)
	hdl := handler.NewRevenueHandler(repo)

	api := app.Group("/api/revenue", middleware.OptionalAuth(sessions))
	api.Get("/", hdl.GetAll)
	api.Get("/hod/:hodId", middleware.HODScope("hodId"), hdl.GetByHOD)
	api.Get("/summary/by-hod", hdl.SummaryByHOD)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
