package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"nitrobrew/internal/domain"
)

func login(t *testing.T, ta *testApp, email, password string) *http.Cookie {
	t.Helper()
	resp, err := ta.app.Test(jsonReq(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned %d", resp.StatusCode)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "auth_token" && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("login did not set auth_token cookie")
	return nil
}

func TestCheckoutAndNotificationFlow(t *testing.T) {
	ta := newTestApp(t)
	auth := login(t, ta, "customer@gmail.com", "customer123")

	// Fill the cart.
	addReq := jsonReq(t, http.MethodPost, "/api/cart", map[string]int{"id": 1, "quantity": 2})
	addReq.AddCookie(auth)
	resp, err := ta.app.Test(addReq)
	if err != nil {
		t.Fatalf("cart add failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cart add returned %d", resp.StatusCode)
	}
	var cart struct {
		Items       []domain.CartEntry `json:"items"`
		TotalAmount int64              `json:"totalAmount"`
		TotalItems  int                `json:"totalItems"`
	}
	decodeBody(t, resp, &cart)
	if cart.TotalItems != 2 || cart.TotalAmount != 60000 {
		t.Fatalf("unexpected cart view: %+v", cart)
	}

	// Checkout the snapshot.
	tokReq := jsonReq(t, http.MethodPost, "/api/tokenizer", map[string]any{
		"items": []map[string]any{
			{"productId": 1, "name": cart.Items[0].Name, "price": 30000, "quantity": 2},
		},
		"totalAmount": 60000,
	})
	tokReq.AddCookie(auth)
	resp, err = ta.app.Test(tokReq)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("tokenize returned %d", resp.StatusCode)
	}
	var out struct {
		Token     string `json:"token"`
		OrderID   string `json:"orderId"`
		UserEmail string `json:"userEmail"`
	}
	decodeBody(t, resp, &out)
	if !strings.HasPrefix(out.OrderID, "TX-") {
		t.Fatalf("unexpected order id %q", out.OrderID)
	}
	if out.Token != "tok-"+out.OrderID {
		t.Fatalf("token %q does not match order %q", out.Token, out.OrderID)
	}
	if out.UserEmail != "customer@gmail.com" {
		t.Fatalf("unexpected user email %q", out.UserEmail)
	}
	if ta.gw.calls != 1 {
		t.Fatalf("expected 1 gateway call, got %d", ta.gw.calls)
	}

	// Checkout empties the cart.
	viewReq := jsonReq(t, http.MethodGet, "/api/cart", nil)
	viewReq.AddCookie(auth)
	resp, err = ta.app.Test(viewReq)
	if err != nil {
		t.Fatalf("cart view failed: %v", err)
	}
	decodeBody(t, resp, &cart)
	if cart.TotalItems != 0 {
		t.Fatalf("cart should be empty after checkout, got %d items", cart.TotalItems)
	}

	// Gateway settles the transaction, twice.
	for i := 0; i < 2; i++ {
		resp, err = ta.app.Test(jsonReq(t, http.MethodPost, "/api/payment-notification", map[string]string{
			"order_id":           out.OrderID,
			"transaction_status": "settlement",
			"fraud_status":       "accept",
		}))
		if err != nil {
			t.Fatalf("notification failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("notification returned %d", resp.StatusCode)
		}
	}

	histReq := jsonReq(t, http.MethodGet, "/api/order-history", nil)
	histReq.AddCookie(auth)
	resp, err = ta.app.Test(histReq)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	var orders []domain.Order
	decodeBody(t, resp, &orders)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order in history, got %d", len(orders))
	}
	if orders[0].Status != domain.StatusPaid {
		t.Fatalf("expected paid order, got %q", orders[0].Status)
	}

	// Points credited once despite the duplicated notification.
	resp, err = ta.app.Test(jsonReq(t, http.MethodPost, "/api/profile/get-points", map[string]string{
		"email": "customer@gmail.com",
	}))
	if err != nil {
		t.Fatalf("get points failed: %v", err)
	}
	var pts struct {
		Points int `json:"points"`
	}
	decodeBody(t, resp, &pts)
	if pts.Points != 20 {
		t.Fatalf("expected 20 points, got %d", pts.Points)
	}
}

func TestTokenizeRejectsTotalMismatch(t *testing.T) {
	ta := newTestApp(t)
	auth := login(t, ta, "customer@gmail.com", "customer123")

	req := jsonReq(t, http.MethodPost, "/api/tokenizer", map[string]any{
		"items": []map[string]any{
			{"productId": 1, "name": "Akahana", "price": 30000, "quantity": 2},
		},
		"totalAmount": 1,
	})
	req.AddCookie(auth)
	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for mismatched total, got %d", resp.StatusCode)
	}
	if ta.gw.calls != 0 {
		t.Fatalf("gateway must not be called for invalid checkout, got %d calls", ta.gw.calls)
	}
}

func TestNotificationUnknownOrder(t *testing.T) {
	ta := newTestApp(t)

	resp, err := ta.app.Test(jsonReq(t, http.MethodPost, "/api/payment-notification", map[string]string{
		"order_id":           "TX-0",
		"transaction_status": "settlement",
		"fraud_status":       "accept",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", resp.StatusCode)
	}
	var body struct {
		Success bool `json:"success"`
	}
	decodeBody(t, resp, &body)
	if body.Success {
		t.Fatal("expected success=false for unknown order")
	}
}

func TestNotificationMissingOrderID(t *testing.T) {
	ta := newTestApp(t)

	resp, err := ta.app.Test(jsonReq(t, http.MethodPost, "/api/payment-notification", map[string]string{
		"transaction_status": "settlement",
	}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGuestCartUsesStableCookie(t *testing.T) {
	ta := newTestApp(t)

	resp, err := ta.app.Test(jsonReq(t, http.MethodPost, "/api/cart", map[string]int{"id": 2, "quantity": 1}))
	if err != nil {
		t.Fatalf("cart add failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cart add returned %d", resp.StatusCode)
	}
	var guest *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "guest_id" {
			guest = ck
		}
	}
	if guest == nil || !strings.HasPrefix(guest.Value, "guest-") {
		t.Fatalf("expected guest_id cookie, got %v", resp.Cookies())
	}

	// The same cookie sees the same cart.
	viewReq := jsonReq(t, http.MethodGet, "/api/cart", nil)
	viewReq.AddCookie(guest)
	resp, err = ta.app.Test(viewReq)
	if err != nil {
		t.Fatalf("cart view failed: %v", err)
	}
	var cart struct {
		TotalItems int `json:"totalItems"`
	}
	decodeBody(t, resp, &cart)
	if cart.TotalItems != 1 {
		t.Fatalf("expected 1 item for returning guest, got %d", cart.TotalItems)
	}

	// A fresh client gets its own empty cart.
	resp, err = ta.app.Test(jsonReq(t, http.MethodGet, "/api/cart", nil))
	if err != nil {
		t.Fatalf("cart view failed: %v", err)
	}
	decodeBody(t, resp, &cart)
	if cart.TotalItems != 0 {
		t.Fatalf("expected empty cart for new guest, got %d", cart.TotalItems)
	}
}
