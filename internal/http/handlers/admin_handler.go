package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "nitrobrew/internal/log"
	"nitrobrew/internal/services"
)

type AdminHandler struct {
	Order  *services.OrderService
	Report *services.ReportService
}

// GET /api/admin/orders
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.Order.ListAll()
	if err != nil {
		return fail(c, "admin.orders.list", err)
	}
	return c.JSON(orders)
}

// PUT /api/admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if id == "" || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing id or status"})
	}
	o, err := h.Order.SetStaffStatus(id, in.Status)
	if err != nil {
		return fail(c, "admin.orders.update", err)
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": in.Status})
	return c.JSON(o)
}

// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.Report.Dashboard()
	if err != nil {
		return fail(c, "admin.dashboard", err)
	}
	return c.JSON(d)
}
