package handler

import (
	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type KPIHandler struct {
	repo repository.KPIRepository
}

func NewKPIHandler(repo repository.KPIRepository) *KPIHandler {
	return &KPIHandler{repo: repo}
}

func (h *KPIHandler) GetAll(c *fiber.Ctx) error {
	kpis, err := h.repo.GetAll()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(kpis)
}

func (h *KPIHandler) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	kpi, err := h.repo.FindByID(id)
	if err != nil {
		return helper.FindError(c, err, "KPI not found")
	}
	return c.JSON(kpi)
}

func (h *KPIHandler) GetByHOD(c *fiber.Ctx) error {
	hodID, ok := helper.ParamID(c, "hodId")
	if !ok {
		return helper.InvalidID(c)
	}
	kpis, err := h.repo.GetByHOD(hodID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(kpis)
}

func (h *KPIHandler) Create(c *fiber.Ctx) error {
	var req dto.KPIRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	kpi := req.ToModel()
	if err := h.repo.Create(&kpi); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, kpi.ID, "KPI created successfully")
}

func (h *KPIHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.KPIRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	kpi := req.ToModel()
	kpi.ID = id
	if err := h.repo.Update(&kpi); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "KPI updated successfully")
}

func (h *KPIHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "KPI deleted successfully")
}
