package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, username, password string) (string, *domain.User, error)
	logoutFn         func(ctx context.Context, username, tokenID string) error
	changePasswordFn func(ctx context.Context, username, current, next, keepTokenID string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, username, tokenID string) error {
	return s.logoutFn(ctx, username, tokenID)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, username, current, next, keepTokenID string) error {
	return s.changePasswordFn(ctx, username, current, next, keepTokenID)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			if username != "ana" || password != "secret99" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return "signed-token", &domain.User{Username: "ana", Name: "Ana Rojas", Role: "admin"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"username":"ana","password":"secret99"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" || resp["rol"] != "admin" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestAuthHandler_Login_WrongCredentialsAndMissingUserLookAlike(t *testing.T) {
	for _, serviceErr := range []error{domain.ErrInvalidCredentials, domain.ErrUserNotFound} {
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
				return "", nil, serviceErr
			},
		}
		handler := NewAuthHandler(stub)

		c, rec := newTestContext(http.MethodPost, "/auth/login", `{"username":"ana","password":"wrong999"}`)
		if err := handler.Login(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %v, got %d", serviceErr, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "invalid credentials") {
			t.Errorf("both cases must produce the same message: %s", rec.Body.String())
		}
	}
}

func TestAuthHandler_Logout_RevokesCurrentSession(t *testing.T) {
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, username, tokenID string) error {
			if username != "ana" || tokenID != "tok-1" {
				t.Fatalf("unexpected args: %s %s", username, tokenID)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/logout", "")
	c.Set("username", "ana")
	c.Set("role", "admin")
	c.Set("token_id", "tok-1")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ChangePassword_ShortNewPasswordRejected(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, current, next, keepTokenID string) error {
			t.Fatal("service must not be called on validation failure")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"password_actual":"oldpass99","password_nueva":"1234567"}`
	c, rec := newTestContext(http.MethodPost, "/api/cambiar-password", body)
	c.Set("username", "ana")
	c.Set("role", "admin")
	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_ChangePassword_WrongCurrentPassword(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, current, next, keepTokenID string) error {
			return domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"password_actual":"wrong","password_nueva":"12345678"}`
	c, rec := newTestContext(http.MethodPost, "/api/cambiar-password", body)
	c.Set("username", "ana")
	c.Set("role", "admin")
	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "current password is incorrect") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_ChangePassword_KeepsCurrentSession(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, current, next, keepTokenID string) error {
			if username != "ana" || keepTokenID != "tok-1" {
				t.Fatalf("unexpected args: %s %s", username, keepTokenID)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	body := `{"password_actual":"oldpass99","password_nueva":"12345678"}`
	c, rec := newTestContext(http.MethodPost, "/api/cambiar-password", body)
	c.Set("username", "ana")
	c.Set("role", "admin")
	c.Set("token_id", "tok-1")
	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "password updated") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
