package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"nitrobrew/internal/domain"
	"nitrobrew/internal/http/handlers"
	"nitrobrew/internal/payment"
	"nitrobrew/internal/repos"
	"nitrobrew/internal/services"
)

type fakeGateway struct {
	fail  bool
	calls int
}

func (g *fakeGateway) CreateTransactionToken(req payment.TokenRequest) (string, error) {
	g.calls++
	if g.fail {
		return "", fmt.Errorf("%w: 401 from gateway", domain.ErrGateway)
	}
	return "tok-" + req.OrderID, nil
}

type testApp struct {
	app  *fiber.App
	db   *sqlx.DB
	auth *services.AuthService
	gw   *fakeGateway
}

// newTestApp wires the real route table against an in-memory database and a
// fake gateway.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo, "test-secret", nil)
	authH := &handlers.AuthHandler{Auth: authSvc}
	gw := &fakeGateway{}

	app := fiber.New()
	app.Use(handlers.AttachSession(authSvc))

	deps := handlers.NewDeps(db, authSvc, gw)

	api := app.Group("/api")
	api.Get("/menu", deps.MenuHandler.List)
	api.Post("/auth/signup", authH.Signup)
	api.Post("/auth/login", authH.Login)
	api.Get("/auth/me", authH.Me)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Put("/cart/:id", deps.CartHandler.UpdateQuantity)
	api.Delete("/cart/:id", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)
	api.Post("/tokenizer", deps.OrderHandler.Tokenize)
	api.Post("/payment-notification", deps.PaymentHandler.Notification)
	api.Get("/order-history", deps.OrderHandler.History)
	api.Put("/profile/update", handlers.RequireUser(), deps.ProfileHandler.UpdateName)
	api.Post("/profile/get-points", deps.ProfileHandler.GetPoints)
	api.Post("/profile/update-points", handlers.RequireUser(), deps.ProfileHandler.UpdatePoints)

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

	return &testApp{app: app, db: db, auth: authSvc, gw: gw}
}

// tokenFor issues a signed cookie value for one of the seeded users.
func (ta *testApp) tokenFor(t *testing.T, email string) string {
	t.Helper()
	u, err := repos.NewUserRepo(ta.db).ByEmail(email)
	if err != nil {
		t.Fatalf("seed user %s missing: %v", email, err)
	}
	token, err := ta.auth.IssueToken(u)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func jsonReq(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("decode body %q: %v", string(b), err)
	}
}
