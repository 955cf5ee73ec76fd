package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/passmint/passmint-go/internal/crypto"
)

const testSecret = "middleware-test-secret"

func authProtected(t *testing.T) (http.Handler, *int64) {
	t.Helper()

	var gotUserID int64
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("expected user ID in context")
		}
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})

	return JWTAuth(testSecret)(inner), &gotUserID
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	handler, _ := authProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	handler, _ := authProtected(t)

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rr.Code)
		}
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	handler, _ := authProtected(t)

	token, err := crypto.MintToken(42, "some-other-secret", time.Hour)
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for token signed with wrong secret, got %d", rr.Code)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	handler, gotUserID := authProtected(t)

	token, err := crypto.MintToken(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if *gotUserID != 42 {
		t.Errorf("expected user ID 42 in context, got %d", *gotUserID)
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("expected no user ID in a bare request context")
	}
}
