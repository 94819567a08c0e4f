package handler

import (
	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type SchemeHandler struct {
	repo repository.SchemeRepository
}

func NewSchemeHandler(repo repository.SchemeRepository) *SchemeHandler {
	return &SchemeHandler{repo: repo}
}

func (h *SchemeHandler) GetAll(c *fiber.Ctx) error {
	schemes, err := h.repo.GetAll()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(schemes)
}

func (h *SchemeHandler) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	scheme, err := h.repo.GetDetails(id)
	if err != nil {
		return helper.FindError(c, err, "Scheme not found")
	}
	return c.JSON(scheme)
}

func (h *SchemeHandler) GetByHOD(c *fiber.Ctx) error {
	hodID, ok := helper.ParamID(c, "hodId")
	if !ok {
		return helper.InvalidID(c)
	}
	schemes, err := h.repo.GetByHOD(hodID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(schemes)
}

func (h *SchemeHandler) Create(c *fiber.Ctx) error {
	var req dto.SchemeRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}
	scheme, err := req.ToModel()
	if err != nil {
		return helper.BadRequest(c, err.Error())
	}

	if err := h.repo.Create(&scheme); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, scheme.ID, "Scheme created successfully")
}

func (h *SchemeHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.SchemeRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}
	scheme, err := req.ToModel()
	if err != nil {
		return helper.BadRequest(c, err.Error())
	}

	scheme.ID = id
	if err := h.repo.Update(&scheme); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Scheme updated successfully")
}

func (h *SchemeHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Delete(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Scheme deleted successfully")
}

func (h *SchemeHandler) GetAllAllocations(c *fiber.Ctx) error {
	allocations, err := h.repo.GetAllAllocations()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(allocations)
}

func (h *SchemeHandler) GetAllocations(c *fiber.Ctx) error {
	schemeID, ok := helper.ParamID(c, "schemeId")
	if !ok {
		return helper.InvalidID(c)
	}
	allocations, err := h.repo.GetAllocations(schemeID)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(allocations)
}

func (h *SchemeHandler) CreateAllocation(c *fiber.Ctx) error {
	schemeID, ok := helper.ParamID(c, "schemeId")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.AllocationRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	allocation := req.ToModel(schemeID)
	if err := h.repo.CreateAllocation(&allocation); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Created(c, allocation.ID, "Budget allocation created successfully")
}

func (h *SchemeHandler) UpdateAllocation(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.AllocationRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	allocation := req.ToModel(0)
	allocation.ID = id
	if err := h.repo.UpdateAllocation(&allocation); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Budget allocation updated successfully")
}

func (h *SchemeHandler) DeleteAllocation(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.DeleteAllocation(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Budget allocation deleted successfully")
}
