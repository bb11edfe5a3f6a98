package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

type stubSessions struct {
	valid map[string]bool // username:tokenID -> live
}

func (s *stubSessions) Put(context.Context, string, string, time.Duration) error { return nil }
func (s *stubSessions) Revoke(context.Context, string, string) error             { return nil }
func (s *stubSessions) RevokeOthers(context.Context, string, string) error       { return nil }

func (s *stubSessions) Valid(_ context.Context, username, tokenID string) (bool, error) {
	return s.valid[username+":"+tokenID], nil
}

func signedToken(t *testing.T, username, role, tokenID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"jti":      tokenID,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, header string, sessions *stubSessions) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testSecret, sessions)
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, c, err
}

func TestAuth_ValidToken(t *testing.T) {
	sessions := &stubSessions{valid: map[string]bool{"maria:tok-1": true}}
	token := signedToken(t, "maria", "admin", "tok-1")

	_, c, err := runAuth(t, "Bearer "+token, sessions)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if c.Get("username") != "maria" || c.Get("role") != "admin" || c.Get("token_id") != "tok-1" {
		t.Fatalf("claims not injected: %v %v %v", c.Get("username"), c.Get("role"), c.Get("token_id"))
	}
}

func TestAuth_RevokedSession(t *testing.T) {
	sessions := &stubSessions{valid: map[string]bool{}}
	token := signedToken(t, "maria", "admin", "tok-1")

	_, _, err := runAuth(t, "Bearer "+token, sessions)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session, got %v", err)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := runAuth(t, "", &stubSessions{})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, _, err := runAuth(t, "Token abc", &stubSessions{})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_BadSignature(t *testing.T) {
	claims := jwt.MapClaims{"username": "maria", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, _, err = runAuth(t, "Bearer "+token, &stubSessions{})
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
