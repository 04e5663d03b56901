package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"nitrobrew/internal/config"
	"nitrobrew/internal/http/handlers"
	applog "nitrobrew/internal/log"
	"nitrobrew/internal/payment"
	"nitrobrew/internal/repos"
	"nitrobrew/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, services.DefaultRolePolicy)
	authH := &handlers.AuthHandler{Auth: authSvc}

	gateway := payment.NewMidtrans(cfg.MidtransServerKey, cfg.MidtransEnv)

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(handlers.AttachSession(authSvc))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, authSvc, gateway)

	// Public
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/thanks", func(c *fiber.Ctx) error {
		return c.Render("thanks", fiber.Map{"OrderID": c.Query("order_id")})
	})

	api := app.Group("/api")
	api.Get("/menu", deps.MenuHandler.List)

	// Auth (login throttled)
	api.Post("/auth/signup", authH.Signup)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	api.Get("/auth/me", authH.Me)
	api.Post("/auth/logout", authH.Logout)

	// Cart
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Put("/cart/:id", deps.CartHandler.UpdateQuantity)
	api.Delete("/cart/:id", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)

	// Checkout & payment
	api.Post("/tokenizer", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.checkout.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "rate limit exceeded, retry soon"})
		},
	}), deps.OrderHandler.Tokenize)
	api.Post("/payment-notification", deps.PaymentHandler.Notification)
	api.Get("/order-history", deps.OrderHandler.History)

	// Profile & points
	api.Put("/profile/update", handlers.RequireUser(), deps.ProfileHandler.UpdateName)
	api.Post("/profile/get-points", deps.ProfileHandler.GetPoints)
	api.Post("/profile/update-points", handlers.RequireUser(), deps.ProfileHandler.UpdatePoints)

	// Admin (staff only)
	admin := api.Group("/admin", handlers.RequireStaff())
	admin.Get("/dashboard", deps.AdminHandler.Dashboard)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Put("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Get("/stock", deps.StockHandler.List)
	admin.Post("/stock", deps.StockHandler.Create)
	admin.Put("/stock", deps.StockHandler.Update)
	admin.Patch("/stock/:id", deps.StockHandler.Adjust)
	admin.Delete("/stock/:id", deps.StockHandler.Delete)
	admin.Post("/stock/initialize", deps.StockHandler.Initialize)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
