package handlers

import (
	"trendyshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cats)
}

// Products lists one category, e.g. GET /category/women.
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	ps, err := h.Catalog.ByCategory(c.UserContext(), c.Params("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(ps)
}
