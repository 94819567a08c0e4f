package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLocationRepository(db)
	hdl := handler.NewLocationHandler(repo)

	api := app.Group("/api/locations")
	api.Get("/states", hdl.GetStates)
	api.Get("/districts/:stateId", hdl.GetDistricts)
	api.Get("/mandals/:districtId", hdl.GetMandals)
	api.Get("/villages/mandal/:mandalId", hdl.Villages(repository.VillagesByMandal, "mandalId"))
	api.Get("/villages/district/:districtId", hdl.Villages(repository.VillagesByDistrict, "districtId"))
	api.Get("/villages/state/:stateId", hdl.Villages(repository.VillagesByState, "stateId"))
}
