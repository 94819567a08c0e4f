package handler

import (
	"errors"

	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	repo repository.CategoryRepository
}

func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	categories, err := h.repo.GetActive()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	category, err := h.repo.FindByID(id)
	if err != nil {
		return helper.FindError(c, err, "Category not found")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	category := req.ToModel()
	if err := h.repo.Create(&category); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return helper.BadRequest(c, "Category name already exists")
		}
		return helper.ServerError(c, err)
	}
	return helper.Created(c, category.ID, "Category created successfully")
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	var req dto.CategoryRequest
	if ok, err := helper.Bind(c, &req); !ok {
		return err
	}

	category := req.ToModel()
	category.ID = id
	if err := h.repo.Update(&category); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return helper.BadRequest(c, "Category name already exists")
		}
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Category updated successfully")
}

// Delete deactivates the category; HODs and schemes keep pointing at it.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.Deactivate(id); err != nil {
		return helper.ServerError(c, err)
	}
	return helper.Done(c, id, "Category deleted successfully")
}
