package handlers

import (
	"encoding/json"

	"trendyshop/internal/log"
	"trendyshop/internal/services"
	"trendyshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

const popularCategory = "women"

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) All(c *fiber.Ctx) error {
	ps, err := h.Catalog.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.Catalog.Add(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	log.Audit(c, "catalog.product.add", map[string]any{"id": p.ID, "name": p.Name})
	return c.JSON(fiber.Map{"success": true, "name": p.Name})
}

type removeProductRequest struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

func (h *ProductHandler) Remove(c *fiber.Ctx) error {
	var req removeProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	id, ok := validate.ProductID(req.ID)
	if !ok {
		return fail(c, &services.ValidationError{Field: "id", Msg: "must be a positive integer"})
	}
	if err := h.Catalog.Remove(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	log.Audit(c, "catalog.product.remove", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true, "name": req.Name})
}

func (h *ProductHandler) NewCollections(c *fiber.Ctx) error {
	ps, err := h.Catalog.NewCollections(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(ps)
}

func (h *ProductHandler) PopularInWomen(c *fiber.Ctx) error {
	ps, err := h.Catalog.PopularIn(c.UserContext(), popularCategory)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(ps)
}
