package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "nitrobrew/internal/log"
	"nitrobrew/internal/services"
	"nitrobrew/internal/validate"
)

type StockHandler struct {
	Stock *services.StockService
}

type stockBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
	Image string `json:"image"`
}

// GET /api/admin/stock
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.Stock.List()
	if err != nil {
		return fail(c, "stock.list", err)
	}
	return c.JSON(fiber.Map{"stocks": items})
}

// POST /api/admin/stock
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in stockBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if _, ok := validate.ID(in.ID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	it, err := h.Stock.Create(in.ID, in.Name, in.Stock, in.Image)
	if err != nil {
		return fail(c, "stock.create", err)
	}
	applog.Audit(c, "stock.create", map[string]any{"id": it.ProductID, "qty": it.Stock})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"stock": it})
}

// PUT /api/admin/stock
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in stockBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	it, err := h.Stock.Update(in.ID, in.Name, in.Stock, in.Image)
	if err != nil {
		return fail(c, "stock.update", err)
	}
	applog.Audit(c, "stock.update", map[string]any{"id": it.ProductID, "qty": it.Stock})
	return c.JSON(fiber.Map{"stock": it})
}

// PATCH /api/admin/stock/:id
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	var in struct {
		Action string `json:"action"`
		Amount int    `json:"amount"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	it, err := h.Stock.Adjust(id, in.Action, in.Amount)
	if err != nil {
		return fail(c, "stock.adjust", err)
	}
	applog.Audit(c, "stock.adjust", map[string]any{"id": id, "action": in.Action, "amount": in.Amount, "qty": it.Stock})
	return c.JSON(fiber.Map{"stock": it})
}

// DELETE /api/admin/stock/:id
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	if err := h.Stock.Delete(id); err != nil {
		return fail(c, "stock.delete", err)
	}
	applog.Audit(c, "stock.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Stock deleted successfully"})
}

// POST /api/admin/stock/initialize
func (h *StockHandler) Initialize(c *fiber.Ctx) error {
	count, err := h.Stock.InitializeDefaults()
	if err != nil {
		return fail(c, "stock.initialize", err)
	}
	applog.Audit(c, "stock.initialize", map[string]any{"count": count})
	return c.JSON(fiber.Map{"message": "Initial stock data created successfully", "count": count})
}
