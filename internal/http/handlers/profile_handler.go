package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "nitrobrew/internal/log"
	"nitrobrew/internal/repos"
	"nitrobrew/internal/services"
	"nitrobrew/internal/validate"
)

type ProfileHandler struct {
	Auth  *services.AuthService
	Users *repos.UserRepo
}

// PUT /api/profile/update
func (h *ProfileHandler) UpdateName(c *fiber.Ctx) error {
	sess := currentSession(c)
	var in struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name is required"})
	}
	u, err := h.Auth.UpdateName(sess.UserID, name)
	if err != nil {
		return fail(c, "profile.update", err)
	}
	applog.Audit(c, "profile.update", map[string]any{"user_id": u.ID})
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    fiber.Map{"id": u.ID, "email": u.Email, "name": u.Name, "role": u.Role},
	})
}

// POST /api/profile/get-points
func (h *ProfileHandler) GetPoints(c *fiber.Ctx) error {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	points, err := h.Users.Points(in.Email)
	if err != nil {
		return fail(c, "profile.points.get", err)
	}
	return c.JSON(fiber.Map{"points": points})
}

// POST /api/profile/update-points
func (h *ProfileHandler) UpdatePoints(c *fiber.Ctx) error {
	var in struct {
		Email     string `json:"email"`
		ItemCount int    `json:"itemCount"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
	}
	if in.ItemCount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "itemCount must not be negative"})
	}
	points, err := h.Users.AddPoints(in.Email, in.ItemCount*10)
	if err != nil {
		return fail(c, "profile.points.update", err)
	}
	applog.Audit(c, "profile.points.update", map[string]any{"email": in.Email, "added": in.ItemCount * 10})
	return c.JSON(fiber.Map{"message": "Points updated successfully", "points": points})
}
