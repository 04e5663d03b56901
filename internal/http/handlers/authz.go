package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "nitrobrew/internal/log"
	"nitrobrew/internal/services"
)

const (
	authCookie  = "auth_token"
	guestCookie = "guest_id"
)

// AttachSession resolves every request to a single Session: the decoded
// identity token when present and valid, otherwise a guest with a stable
// cookie key. Downstream handlers never re-derive guest status.
func AttachSession(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := c.Cookies(authCookie); tok != "" {
			if sess, err := auth.VerifyToken(tok); err == nil {
				c.Locals("session", sess)
				return c.Next()
			}
			applog.Security(c, "auth.token.invalid", nil)
		}
		key := c.Cookies(guestCookie)
		if key == "" {
			key = "guest-" + uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     guestCookie,
				Value:    key,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals("session", services.Session{Guest: true, GuestKey: key})
		return c.Next()
	}
}

func currentSession(c *fiber.Ctx) services.Session {
	sess, _ := c.Locals("session").(services.Session)
	return sess
}

// RequireUser rejects guests.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if currentSession(c).Guest {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authenticated"})
		}
		return c.Next()
	}
}

// RequireStaff rejects guests and non-staff roles.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := currentSession(c)
		if sess.Guest {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authenticated"})
		}
		if !sess.IsStaff() {
			applog.Security(c, "access.denied.staff", map[string]any{"email": sess.Email})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
		}
		return c.Next()
	}
}
