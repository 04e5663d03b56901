package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nitrobrew/internal/domain"
	applog "nitrobrew/internal/log"
	"nitrobrew/internal/services"
)

type PaymentHandler struct {
	Order *services.OrderService
}

type gatewayNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// POST /api/payment-notification
//
// Webhook called by the gateway out-of-band. Must stay idempotent: the same
// terminal notification can arrive more than once.
func (h *PaymentHandler) Notification(c *fiber.Ctx) error {
	var n gatewayNotification
	if err := c.BodyParser(&n); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid payload"})
	}
	if n.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "missing order_id"})
	}

	err := h.Order.HandleNotification(n.OrderID, n.TransactionStatus, n.FraudStatus)
	if errors.Is(err, domain.ErrNotFound) {
		applog.Security(c, "payment.notification.unknown", map[string]any{"order_id": n.OrderID})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Order not found"})
	}
	if err != nil {
		applog.Error(c, "payment.notification", err, map[string]any{"order_id": n.OrderID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error processing notification"})
	}

	applog.Audit(c, "payment.notification", map[string]any{
		"order_id":           n.OrderID,
		"transaction_status": n.TransactionStatus,
		"fraud_status":       n.FraudStatus,
	})
	return c.JSON(fiber.Map{"success": true})
}
