package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSchemeRoutes(app *fiber.App, db *gorm.DB, sessions middleware.TokenParser) {
	repo := repository.NewSchemeRepository(db)
	hdl := handler.NewSchemeHandler(repo)

	api := app.Group("/api/schemes", middleware.OptionalAuth(sessions))

	// Allocation routes are registered first so "budget-allocations" is not read as a scheme id.
	api.Get("/budget-allocations/all", hdl.GetAllAllocations)
	api.Put("/budget-allocations/:id", hdl.UpdateAllocation)
	api.Delete("/budget-allocations/:id", hdl.DeleteAllocation)
	api.Get("/:schemeId/budget-allocations", hdl.GetAllocations)
	api.Post("/:schemeId/budget-allocations", hdl.CreateAllocation)

	api.Get("/", hdl.GetAll)
	api.Get("/hod/:hodId", middleware.HODScope("hodId"), hdl.GetByHOD)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
