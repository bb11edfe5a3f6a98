package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jesus1025/registro-interno/internal/api/metrics"
	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"nombre"`
	Role     string `json:"rol"`
}

// changePasswordRequest keeps the legacy field names of the password form.
type changePasswordRequest struct {
	Current string `json:"password_actual" validate:"required"`
	Next    string `json:"password_nueva"  validate:"required,min=8"`
}

// Login authenticates a profile and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	})
}

// Logout revokes the current session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	tokenID, _ := c.Get("token_id").(string)

	if err := h.authService.Logout(c.Request().Context(), username, tokenID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok("session closed"))
}

// ChangePassword handles the self-service password change of the
// administration screen.
//
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  failureResponse
// @Router       /api/cambiar-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: err.Error()})
	}

	username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	tokenID, _ := c.Get("token_id").(string)

	err = h.authService.ChangePassword(c.Request().Context(), username, req.Current, req.Next, tokenID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, failureResponse{Error: "current password is incorrect"})
		case errors.Is(err, domain.ErrPasswordTooShort), errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, fail(err))
		}
		return c.JSON(http.StatusInternalServerError, fail(err))
	}

	return c.JSON(http.StatusOK, ok("password updated"))
}
