package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB, sessions middleware.TokenParser) {
	staffRepo := repository.NewStaffRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	hdl := handler.NewReportHandler(staffRepo, attendanceRepo)

	api := app.Group("/api/attendance/report", middleware.OptionalAuth(sessions))
	api.Get("/monthly", hdl.GetMonthlyRegister)
}
