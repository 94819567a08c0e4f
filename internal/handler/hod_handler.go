package handler

import (
	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HODHandler struct {
	repo repository.HODRepository
}

func NewHODHandler(repo repository.HODRepository) *HODHandler {
	return &HODHandler{repo: repo}
}

func (h *HODHandler) GetAll(c *fiber.Ctx) error {
	hods, err := h.repo.GetAll()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(hods)
}

func (h *HODHandler) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	hod, err := h.repo.FindByID(id)
	if err != nil {
		return helper.FindError(c, err, "HOD not found")
	}
	return c.JSON(hod)
}

// GetDetails returns the HOD with its schemes, staff, budget and KPIs.
func (h *HODHandler) GetDetails(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	details, err := h.repo.GetDetails(id)
	if err != nil {
		return helper.FindError(c, err, "HOD not found")
	}
	return c.JSON(details)
}

func (h *HODHandler) Create(c *fiber.Ctx) error {
	var req dto.HODRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	hod := req.ToModel()
	if err := h.repo.Create(&hod); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, hod.ID, "HOD created successfully")
}

func (h *HODHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.HODRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	hod := req.ToModel()
	hod.ID = id
	if err := h.repo.Update(&hod); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "HOD updated successfully")
}

func (h *HODHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "HOD deleted successfully")
}
