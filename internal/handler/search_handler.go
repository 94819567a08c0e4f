package handler

import (
	"strings"
	"unicode/utf8"

	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/model"
	"hod-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

const minSearchLength = 2

type SearchHandler struct {
	repo repository.SearchRepository
}

func NewSearchHandler(repo repository.SearchRepository) *SearchHandler {
	return &SearchHandler{repo: repo}
}

// Search looks up HODs, schemes, staff and nodal officers by name. Terms
// shorter than two characters return an empty list.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(q) < minSearchLength {
		return c.JSON([]model.SearchResult{})
	}

	results, err := h.repo.Search(q)
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(results)
}
