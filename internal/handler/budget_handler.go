package handler

import (
	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type BudgetHandler struct {
	repo repository.BudgetRepository
}

func NewBudgetHandler(repo repository.BudgetRepository) *BudgetHandler {
	return &BudgetHandler{repo: repo}
}

func (h *BudgetHandler) GetAll(c *fiber.Ctx) error {
	entries, err := h.repo.GetAll()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(entries)
}

func (h *BudgetHandler) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	entry, err := h.repo.FindByID(id)
	if err != nil {
		return helper.FindError(c, err, "Budget entry not found")
	}
	return c.JSON(entry)
}

func (h *BudgetHandler) GetByHOD(c *fiber.Ctx) error {
	hodID, ok := helper.ParamID(c, "hodId")
	if !ok {
		return helper.InvalidID(c)
	}
	entries, err := h.repo.GetByHOD(hodID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(entries)
}

// Summary totals allocations per financial year.
func (h *BudgetHandler) Summary(c *fiber.Ctx) error {
	rows, err := h.repo.SummaryByYear()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(rows)
}

func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var req dto.BudgetRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	entry := req.ToModel()
	if err := h.repo.Create(&entry); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, entry.ID, "Budget entry created successfully")
}

func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.BudgetRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	entry := req.ToModel()
	entry.ID = id
	if err := h.repo.Update(&entry); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Budget entry updated successfully")
}

func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Budget entry deleted successfully")
}
