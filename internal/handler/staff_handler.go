package handler

import (
	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type StaffHandler struct {
	repo repository.StaffRepository
}

func NewStaffHandler(repo repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

func (h *StaffHandler) GetAll(c *fiber.Ctx) error {
	staff, err := h.repo.GetAll()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(staff)
}

func (h *StaffHandler) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	member, err := h.repo.FindByID(id)
	if err != nil {
		return helper.FindError(c, err, "Staff not found")
	}
	return c.JSON(member)
}

func (h *StaffHandler) GetByHOD(c *fiber.Ctx) error {
	hodID, ok := helper.ParamID(c, "hodId")
	if !ok {
		return helper.InvalidID(c)
	}
	staff, err := h.repo.GetByHOD(hodID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}
	member, err := req.ToModel()
	if err != nil {
		return helper.BadRequest(c, err.Error())
	}

	if err := h.repo.Create(&member); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, member.ID, "Staff created successfully")
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.StaffRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}
	member, err := req.ToModel()
	if err != nil {
		return helper.BadRequest(c, err.Error())
	}

	member.ID = id
	if err := h.repo.Update(&member); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Staff updated successfully")
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Staff deleted successfully")
}
