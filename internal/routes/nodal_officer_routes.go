package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNodalOfficerRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewNodalOfficerRepository(db)
	hdl := handler.NewNodalOfficerHandler(repo)

	api := app.Group("/api/nodal-officers")
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
