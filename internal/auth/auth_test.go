package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("swordfish")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("swordfish")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")); err == nil {
		t.Fatal("wrong password must not verify")
	}
}

func signedCookie(t *testing.T, key []byte, claims jwt.MapClaims) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return &http.Cookie{Name: sessionCookie, Value: s}
}

func TestAuthMiddleware(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key")}

	var gotID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
	})
	handler := env.AuthMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(signedCookie(t, env.JWTKey, jwt.MapClaims{
		"user_id": 42,
		"login":   "sam",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for a valid token, got %d", w.Code)
	}
	if gotID != 42 {
		t.Fatalf("expected user id 42 in context, got %d", gotID)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key")}
	handler := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	// No cookie at all.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a cookie, got %d", w.Code)
	}

	// Token signed with the wrong key.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(signedCookie(t, []byte("other-key"), jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad signature, got %d", w.Code)
	}

	// Expired token.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(signedCookie(t, env.JWTKey, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an expired token, got %d", w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	handler := limiter.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst of 2 should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third immediate request should be limited, got %v", codes)
	}

	// A different address has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("fresh address should pass, got %d", w.Code)
	}
}
