package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdminEndpointsRejectGuests(t *testing.T) {
	ta := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stock", nil)
	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", resp.StatusCode)
	}
}

func TestAdminEndpointsRejectCustomers(t *testing.T) {
	ta := newTestApp(t)
	token := ta.tokenFor(t, "customer@gmail.com")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stock", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", resp.StatusCode)
	}
}

func TestAdminEndpointsAllowStaff(t *testing.T) {
	ta := newTestApp(t)
	token := ta.tokenFor(t, "admin@admin.com")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stock", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for staff, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if _, ok := body["stocks"]; !ok {
		t.Fatalf("expected stocks key in response, got %v", body)
	}
}

func TestTamperedTokenFallsBackToGuest(t *testing.T) {
	ta := newTestApp(t)
	token := ta.tokenFor(t, "admin@admin.com")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stock", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token + "x"})
	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("tampered token should be treated as guest, got %d", resp.StatusCode)
	}
}

func TestProfileUpdateRequiresUser(t *testing.T) {
	ta := newTestApp(t)

	req := jsonReq(t, http.MethodPut, "/api/profile/update", map[string]string{"name": "Someone"})
	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", resp.StatusCode)
	}
}
