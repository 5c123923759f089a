package handlers

import (
	"encoding/json"

	"trendyshop/internal/services"
	"trendyshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

type cartRequest struct {
	ItemID json.Number `json:"itemId"`
}

func (h *CartHandler) itemID(c *fiber.Ctx) (int, error) {
	var req cartRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, &services.ValidationError{Field: "body", Msg: "request body must be JSON"}
	}
	id, ok := validate.ItemID(req.ItemID)
	if !ok {
		return 0, &services.ValidationError{Field: "itemId", Msg: "must be a non-negative integer"}
	}
	return id, nil
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, err := h.itemID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.Cart.Increment(c.UserContext(), userID(c), id); err != nil {
		return fail(c, err)
	}
	return c.SendString("Added")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := h.itemID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.Cart.Decrement(c.UserContext(), userID(c), id); err != nil {
		return fail(c, err)
	}
	return c.SendString("Removed")
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	cart, err := h.Cart.Snapshot(c.UserContext(), userID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cart)
}
