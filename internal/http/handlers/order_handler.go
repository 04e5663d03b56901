package handlers

import (
	"github.com/gofiber/fiber/v2"

	"nitrobrew/internal/domain"
	applog "nitrobrew/internal/log"
	"nitrobrew/internal/services"
)

type OrderHandler struct {
	Order *services.OrderService
	Cart  *services.CartService
}

type checkoutRequest struct {
	Items       []domain.OrderItem `json:"items"`
	TotalAmount int64              `json:"totalAmount"`
}

// POST /api/tokenizer
//
// Accepts the cart snapshot, opens a gateway transaction and records the
// pending order. The cart is cleared only after both succeed.
func (h *OrderHandler) Tokenize(c *fiber.Ctx) error {
	var in checkoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}

	sess := currentSession(c)
	res, err := h.Order.Checkout(sess, in.Items, in.TotalAmount)
	if err != nil {
		applog.Security(c, "order.checkout.fail", map[string]any{"error": err.Error()})
		return fail(c, "order.checkout", err)
	}

	if err := h.Cart.Clear(sess.Identity()); err != nil {
		applog.Error(c, "order.cart.clear", err, map[string]any{"order_id": res.OrderID})
	}

	applog.Audit(c, "order.checkout", map[string]any{
		"order_id": res.OrderID,
		"total":    in.TotalAmount,
		"guest":    sess.Guest,
	})
	return c.JSON(res)
}

// GET /api/order-history
func (h *OrderHandler) History(c *fiber.Ctx) error {
	orders, err := h.Order.History(currentSession(c))
	if err != nil {
		return fail(c, "order.history", err)
	}
	return c.JSON(orders)
}
