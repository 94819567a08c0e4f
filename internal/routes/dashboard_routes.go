package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, sessions middleware.TokenParser, fallback usecase.Fallbacks) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(usecase.NewDashboardUsecase(repo, fallback))

	api := app.Group("/api/dashboard", middleware.OptionalAuth(sessions))
	api.Get("/stats", hdl.Stats)
	api.Get("/quick-stats", hdl.QuickStats)
	api.Get("/schemes-by-category", hdl.SchemesByCategory)
	api.Get("/hods-by-department", hdl.HODsByDepartment)
	api.Get("/budget-by-hod", hdl.BudgetByHOD)
	api.Get("/schemes-by-hod", hdl.SchemesByHOD)
	api.Get("/attendance-by-hod", hdl.AttendanceByHOD)
	api.Get("/revenue-by-hod", hdl.RevenueByHOD)
	api.Get("/revenue-by-department", hdl.RevenueByDepartment)
	api.Get("/kpi-summary", hdl.KPISummary)
	api.Get("/overview", hdl.Overview)
}
