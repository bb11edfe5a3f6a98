package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jesus1025/registro-interno/internal/api/metrics"
	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/internal/core/ports"
)

// UserHandler handles HTTP requests for profile management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/usuarios.
//
// @Summary      List all profiles
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/usuarios/:username.
//
// @Summary      Get a single profile
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/usuarios/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Save handles POST /api/usuarios: create or update, disambiguated by the
// presence of the id field in the payload.
//
// @Summary      Create or update a profile
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveUserRequest  true  "Profile fields; id present only for updates"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  failureResponse
// @Failure      404   {object}  failureResponse
// @Router       /api/usuarios [post]
func (h *UserHandler) Save(c echo.Context) error {
	var req saveUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: err.Error()})
	}

	created, err := h.service.Save(c.Request().Context(), ports.SaveUserInput{
		EditKey:  req.ID,
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Active:   req.active(),
		Password: req.Password,
	})
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("perfil", "save", "error").Inc()
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, fail(err))
		case errors.Is(err, domain.ErrUserExists),
			errors.Is(err, domain.ErrMissingFields),
			errors.Is(err, domain.ErrPasswordTooShort):
			return c.JSON(http.StatusBadRequest, fail(err))
		}
		return c.JSON(http.StatusInternalServerError, fail(err))
	}

	metrics.MutationsTotal.WithLabelValues("perfil", "save", "ok").Inc()
	if created {
		return c.JSON(http.StatusOK, ok("profile created"))
	}
	return c.JSON(http.StatusOK, ok("profile updated"))
}

// Delete handles DELETE /api/usuarios?id=<username>.
//
// @Summary      Delete a profile
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   query     string  true  "Username of the profile to delete"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  failureResponse
// @Failure      404  {object}  failureResponse
// @Router       /api/usuarios [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	key := c.QueryParam("id")
	if key == "" {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: "id parameter is required"})
	}

	actingUsername, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), key, actingUsername); err != nil {
		metrics.MutationsTotal.WithLabelValues("perfil", "delete", "error").Inc()
		switch {
		case errors.Is(err, domain.ErrSelfDelete):
			return c.JSON(http.StatusBadRequest, fail(err))
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, fail(err))
		}
		return c.JSON(http.StatusInternalServerError, fail(err))
	}

	metrics.MutationsTotal.WithLabelValues("perfil", "delete", "ok").Inc()
	return c.JSON(http.StatusOK, ok("profile deleted"))
}
