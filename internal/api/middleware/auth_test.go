package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key any) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, c, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	signed := signToken(t, jwt.MapClaims{
		"sub":   "USR-001",
		"email": "ana@example.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256, []byte("secret"))

	rec, c, called := runAuth(t, "Bearer "+signed)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get(ContextUserID) != "USR-001" || c.Get(ContextEmail) != "ana@example.com" || c.Get(ContextRole) != "admin" {
		t.Fatalf("claims not injected: %v %v %v", c.Get(ContextUserID), c.Get(ContextEmail), c.Get(ContextRole))
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{"sub": "USR-001", "exp": time.Now().Add(-time.Minute).Unix()},
		jwt.SigningMethodHS256, []byte("secret"))
	noExp := signToken(t, jwt.MapClaims{"sub": "USR-001"}, jwt.SigningMethodHS256, []byte("secret"))
	otherKey := signToken(t, jwt.MapClaims{"sub": "USR-001", "exp": time.Now().Add(time.Hour).Unix()},
		jwt.SigningMethodHS256, []byte("other"))
	hs512 := signToken(t, jwt.MapClaims{"sub": "USR-001", "exp": time.Now().Add(time.Hour).Unix()},
		jwt.SigningMethodHS512, []byte("secret"))

	tests := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"garbage":        "Bearer not-a-token",
		"expired":        "Bearer " + expired,
		"no expiry":      "Bearer " + noExp,
		"wrong key":      "Bearer " + otherKey,
		"wrong alg":      "Bearer " + hs512,
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			rec, _, called := runAuth(t, header)
			if called {
				t.Fatalf("should not reach next")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
