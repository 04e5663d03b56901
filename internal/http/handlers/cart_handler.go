package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"nitrobrew/internal/services"
)

type CartHandler struct {
	Cart *services.CartService
}

// GET /api/cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	cv, err := h.Cart.View(currentSession(c).Identity())
	if err != nil {
		return fail(c, "cart.view", err)
	}
	return c.JSON(cv)
}

// POST /api/cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in struct {
		ID       int `json:"id"`
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if in.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing item id"})
	}
	if err := h.Cart.Add(currentSession(c).Identity(), in.ID, in.Quantity); err != nil {
		return fail(c, "cart.add", err)
	}
	return h.View(c)
}

// PUT /api/cart/:id
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}
	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if err := h.Cart.UpdateQuantity(currentSession(c).Identity(), id, in.Quantity); err != nil {
		return fail(c, "cart.update", err)
	}
	return h.View(c)
}

// DELETE /api/cart/:id
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}
	if err := h.Cart.Remove(currentSession(c).Identity(), id); err != nil {
		return fail(c, "cart.remove", err)
	}
	return h.View(c)
}

// DELETE /api/cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.Cart.Clear(currentSession(c).Identity()); err != nil {
		return fail(c, "cart.clear", err)
	}
	return h.View(c)
}
