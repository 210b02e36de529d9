package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakerist/pkg/utils"

	"go.uber.org/zap"
)

const testSecret = "test-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, handler http.Handler, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/verify", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body.Message
}

func TestAuthMissingToken(t *testing.T) {
	handler := Auth(testSecret, zap.NewNop())(okHandler())

	rec := doRequest(t, handler, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "No token provided" {
		t.Errorf("message = %q", msg)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	handler := Auth(testSecret, zap.NewNop())(okHandler())

	rec := doRequest(t, handler, "Bearer not-a-real-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Invalid token" {
		t.Errorf("message = %q", msg)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(testSecret, "u1", "ana@example.com", "customer", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	handler := Auth(testSecret, zap.NewNop())(okHandler())

	rec := doRequest(t, handler, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Token expired" {
		t.Errorf("message = %q, want Token expired", msg)
	}
}

func TestAuthValidTokenSetsClaims(t *testing.T) {
	token, err := utils.GenerateToken(testSecret, "u1", "ana@example.com", "customer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotClaims *utils.Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(testSecret, zap.NewNop())(inner)

	rec := doRequest(t, handler, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotClaims == nil {
		t.Fatal("claims missing from context")
	}
	if gotClaims.UserID != "u1" || gotClaims.Role != "customer" {
		t.Errorf("claims = %+v", gotClaims)
	}
}

func TestAdminRejectsCustomer(t *testing.T) {
	token, err := utils.GenerateToken(testSecret, "u1", "ana@example.com", "customer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	handler := Auth(testSecret, zap.NewNop())(Admin(zap.NewNop())(okHandler()))

	rec := doRequest(t, handler, "Bearer "+token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Admin access required" {
		t.Errorf("message = %q", msg)
	}
}

func TestAdminAllowsAdmin(t *testing.T) {
	token, err := utils.GenerateToken(testSecret, "u2", "boss@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	handler := Auth(testSecret, zap.NewNop())(Admin(zap.NewNop())(okHandler()))

	rec := doRequest(t, handler, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
