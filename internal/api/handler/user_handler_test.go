package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	getFn    func(ctx context.Context, username string) (*domain.User, error)
	saveFn   func(ctx context.Context, input ports.SaveUserInput) (bool, error)
	deleteFn func(ctx context.Context, username, actingUsername string) error
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.getFn(ctx, username)
}

func (s *stubUserService) Save(ctx context.Context, input ports.SaveUserInput) (bool, error) {
	return s.saveFn(ctx, input)
}

func (s *stubUserService) Delete(ctx context.Context, username, actingUsername string) error {
	return s.deleteFn(ctx, username, actingUsername)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_List_Success(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "ana", Username: "ana", Name: "Ana Rojas", Role: "admin", Active: true},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/usuarios", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["username"] != "ana" || resp[0]["rol"] != "admin" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if resp[0]["activo"] != float64(1) {
		t.Fatalf("activo should travel as 1, got %v", resp[0]["activo"])
	}
}

func TestUserHandler_Save_CreateDefaultsToActive(t *testing.T) {
	var got ports.SaveUserInput
	stub := &stubUserService{
		saveFn: func(ctx context.Context, input ports.SaveUserInput) (bool, error) {
			got = input
			return true, nil
		},
	}
	handler := NewUserHandler(stub)

	body := `{"username":"ana","nombre":"Ana Rojas","rol":"usuario","password":"12345678"}`
	c, rec := newTestContext(http.MethodPost, "/api/usuarios", body)
	if err := handler.Save(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if got.EditKey != "" {
		t.Errorf("create must not carry an edit key, got %q", got.EditKey)
	}
	if !got.Active {
		t.Error("activo omitted on create should default to active")
	}
	if !strings.Contains(rec.Body.String(), "profile created") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Save_UpdateCarriesEditKey(t *testing.T) {
	var got ports.SaveUserInput
	stub := &stubUserService{
		saveFn: func(ctx context.Context, input ports.SaveUserInput) (bool, error) {
			got = input
			return false, nil
		},
	}
	handler := NewUserHandler(stub)

	body := `{"id":"ana","username":"ana","nombre":"Ana Rojas Soto","activo":0}`
	c, rec := newTestContext(http.MethodPost, "/api/usuarios", body)
	if err := handler.Save(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got.EditKey != "ana" {
		t.Errorf("edit key = %q, want ana", got.EditKey)
	}
	if got.Active {
		t.Error("activo=0 should map to inactive")
	}
	if got.Password != "" {
		t.Error("absent password must stay empty so the stored hash is kept")
	}
	if !strings.Contains(rec.Body.String(), "profile updated") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Save_ShortPasswordRejected(t *testing.T) {
	stub := &stubUserService{
		saveFn: func(ctx context.Context, input ports.SaveUserInput) (bool, error) {
			t.Fatal("service must not be called on validation failure")
			return false, nil
		},
	}
	handler := NewUserHandler(stub)

	body := `{"username":"ana","nombre":"Ana Rojas","password":"1234567"}`
	c, rec := newTestContext(http.MethodPost, "/api/usuarios", body)
	if err := handler.Save(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Save_DuplicateUsername(t *testing.T) {
	stub := &stubUserService{
		saveFn: func(ctx context.Context, input ports.SaveUserInput) (bool, error) {
			return false, domain.ErrUserExists
		},
	}
	handler := NewUserHandler(stub)

	body := `{"username":"ana","nombre":"Ana Rojas","password":"12345678"}`
	c, rec := newTestContext(http.MethodPost, "/api/usuarios", body)
	if err := handler.Save(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("failure envelope expected: %s", rec.Body.String())
	}
}

func TestUserHandler_Delete_RequiresIDParam(t *testing.T) {
	handler := NewUserHandler(&stubUserService{})

	c, rec := newTestContext(http.MethodDelete, "/api/usuarios", "")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_PassesActingUser(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, username, actingUsername string) error {
			if username != "bruno" || actingUsername != "ana" {
				t.Fatalf("unexpected args: %s %s", username, actingUsername)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/usuarios?id=bruno", "")
	c.Set("username", "ana")
	c.Set("role", "admin")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUserHandler_Delete_SelfDeleteRejected(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, username, actingUsername string) error {
			return domain.ErrSelfDelete
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/usuarios?id=ana", "")
	c.Set("username", "ana")
	c.Set("role", "admin")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
