package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/resumesync/resume-api/internal/core/domain"
)

func signToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return rec, called, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", time.Hour))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret")(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not set, got %v", c.Get("user_id"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match", nil)

	_, called, err := runAuth(t, req)
	if !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if called {
		t.Fatalf("next must not run without credentials")
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	_, called, err := runAuth(t, req)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if called {
		t.Fatalf("next must not run with a garbage token")
	}
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("Authorization", "Token abc")

	if _, _, err := runAuth(t, req); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", -time.Minute))

	if _, _, err := runAuth(t, req); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthMiddleware_TamperedSignature(t *testing.T) {
	signed := signToken(t, "secret", time.Hour)

	// Flip the last signature byte.
	tampered := []byte(signed)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("Authorization", "Bearer "+string(tampered))

	if _, _, err := runAuth(t, req); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestAuthMiddleware_WrongSigningKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", time.Hour))

	if _, _, err := runAuth(t, req); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_OptionsPreflightPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/match", nil)

	rec, called, err := runAuth(t, req)
	if err != nil {
		t.Fatalf("preflight must not error: %v", err)
	}
	if called {
		t.Fatalf("preflight must not reach the handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
