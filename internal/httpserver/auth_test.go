package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adminsvc "lumina-storefront/internal/service/admin"
)

func TestLoginSuccess(t *testing.T) {
	deps := defaultDeps()
	deps.AdminSvc = &stubAdminService{token: "tok-123"}
	router := newTestRouter(t, deps)

	body := `{"username":"admin","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "tok-123") {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "43200") {
		t.Fatalf("expiresIn missing from response: %s", rec.Body.String())
	}
}

func TestLoginBadCredentials(t *testing.T) {
	deps := defaultDeps()
	deps.AdminSvc = &stubAdminService{loginErr: adminsvc.ErrInvalidCredentials}
	router := newTestRouter(t, deps)

	body := `{"username":"admin","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginMissingFields(t *testing.T) {
	router := newTestRouter(t, defaultDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	deps := defaultDeps()
	deps.AdminSvc = &stubAdminService{authErr: adminsvc.ErrInvalidToken}
	router := newTestRouter(t, deps)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/orders"},
		{http.MethodGet, "/api/admin/sales"},
		{http.MethodPut, "/api/admin/delivery-rates"},
		{http.MethodPost, "/api/admin/products"},
		{http.MethodPatch, "/api/admin/theme"},
	}
	for _, p := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", p.method, p.path, rec.Code)
		}
	}
}

func TestAdminRouteWithValidToken(t *testing.T) {
	deps := defaultDeps()
	deps.AdminSvc = &stubAdminService{}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminRouteRejectsMalformedAuthorizationHeader(t *testing.T) {
	deps := defaultDeps()
	deps.AdminSvc = &stubAdminService{}
	router := newTestRouter(t, deps)

	for _, header := range []string{"tok-123", "Basic dXNlcg==", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	adm := &stubAdminService{}
	deps := defaultDeps()
	deps.AdminSvc = adm
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if adm.revoked != "tok-123" {
		t.Fatalf("expected token revoked, got %q", adm.revoked)
	}
}
