package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, sessions middleware.TokenParser) {
	repo := repository.NewAttendanceRepository(db)
	hdl := handler.NewAttendanceHandler(repo)

	api := app.Group("/api/attendance", middleware.OptionalAuth(sessions))
	api.Get("/", hdl.GetAll)
	api.Get("/range", hdl.GetByRange)
	api.Get("/hod/:hodId", middleware.HODScope("hodId"), hdl.GetByHOD)
	api.Get("/summary/by-hod", hdl.SummaryByHOD)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
