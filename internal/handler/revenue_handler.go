package handler

import (
	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RevenueHandler struct {
	repo repository.RevenueRepository
}

func NewRevenueHandler(repo repository.RevenueRepository) *RevenueHandler {
	return &RevenueHandler{repo: repo}
}

func (h *RevenueHandler) GetAll(c *fiber.Ctx) error {
	rows, err := h.repo.GetAll()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(rows)
}

func (h *RevenueHandler) GetByHOD(c *fiber.Ctx) error {
	hodID, ok := helper.ParamID(c, "hodId")
	if !ok {
		return helper.InvalidID(c)
	}
	rows, err := h.repo.GetByHOD(hodID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(rows)
}

func (h *RevenueHandler) SummaryByHOD(c *fiber.Ctx) error {
	rows, err := h.repo.SummaryByHOD()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(rows)
}

func (h *RevenueHandler) Create(c *fiber.Ctx) error {
	var req dto.RevenueRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}
	entry, err := req.ToModel()
	if err != nil {
		return helper.BadRequest(c, err.Error())
	}

	if err := h.repo.Create(&entry); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, entry.ID, "Revenue entry created successfully")
}

func (h *RevenueHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.RevenueRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}
	entry, err := req.ToModel()
	if err != nil {
		return helper.BadRequest(c, err.Error())
	}

	entry.ID = id
	if err := h.repo.Update(&entry); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Revenue entry updated successfully")
}

func (h *RevenueHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Revenue entry deleted successfully")
}
