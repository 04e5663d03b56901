package handlers

import (
	"github.com/gofiber/fiber/v2"

	"nitrobrew/internal/catalog"
	"nitrobrew/internal/domain"
)

type MenuHandler struct{}

// GET /api/menu?type=coffee&q=aka
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items := catalog.Filter(c.Query("type"), c.Query("q"))
	if items == nil {
		items = []domain.MenuItem{}
	}
	return c.JSON(fiber.Map{"items": items})
}
