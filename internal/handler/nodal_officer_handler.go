package handler

import (
	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type NodalOfficerHandler struct {
	repo repository.NodalOfficerRepository
}

func NewNodalOfficerHandler(repo repository.NodalOfficerRepository) *NodalOfficerHandler {
	return &NodalOfficerHandler{repo: repo}
}

func (h *NodalOfficerHandler) GetAll(c *fiber.Ctx) error {
	officers, err := h.repo.GetAll()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(officers)
}

func (h *NodalOfficerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	officer, err := h.repo.FindByID(id)
	if err != nil {
		return helper.FindError(c, err, "Nodal officer not found")
	}
	return c.JSON(officer)
}

func (h *NodalOfficerHandler) Create(c *fiber.Ctx) error {
	var req dto.NodalOfficerRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	officer := req.ToModel()
	if err := h.repo.Create(&officer); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, officer.ID, "Nodal officer created successfully")
}

func (h *NodalOfficerHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.NodalOfficerRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	officer := req.ToModel()
	officer.ID = id
	if err := h.repo.Update(&officer); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Nodal officer updated successfully")
}

func (h *NodalOfficerHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Nodal officer deleted successfully")
}
