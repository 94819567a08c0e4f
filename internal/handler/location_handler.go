package handler

import (
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	repo repository.LocationRepository
}

func NewLocationHandler(repo repository.LocationRepository) *LocationHandler {
	return &LocationHandler{repo: repo}
}

func (h *LocationHandler) GetStates(c *fiber.Ctx) error {
	states, err := h.repo.GetStates()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(states)
}

func (h *LocationHandler) GetDistricts(c *fiber.Ctx) error {
	stateID, ok := helper.ParamID(c, "stateId")
	if !ok {
		return helper.InvalidID(c)
	}
	districts, err := h.repo.GetDistricts(stateID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(districts)
}

func (h *LocationHandler) GetMandals(c *fiber.Ctx) error {
	districtID, ok := helper.ParamID(c, "districtId")
	if !ok {
		return helper.InvalidID(c)
	}
	mandals, err := h.repo.GetMandals(districtID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(mandals)
}

// Villages lists the distinct villages recorded on budget rows under the
// location named by the route parameter.
func (h *LocationHandler) Villages(scope repository.VillageScope, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := helper.ParamID(c, param)
		if !ok {
			return helper.InvalidID(c)
		}
		villages, err := h.repo.GetVillages(scope, id)
		if err != nil {
			return helper.ServerError(c, err)
		}
		return c.JSON(villages)
	}
}
