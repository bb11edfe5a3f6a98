package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jesus1025/registro-interno/internal/api/metrics"
	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/internal/core/ports"
)

// ClientHandler handles HTTP requests for the client registry.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clientes?estado=<activo|inactivo>.
//
// @Summary      List clients
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        estado  query     string  false  "Filter by status: activo or inactivo"
// @Success      200     {array}   domain.Client
// @Failure      401     {object}  map[string]string
// @Router       /api/clientes [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context(), c.QueryParam("estado"))
	if err != nil {
		return err
	}

	// Always an array on the wire, never null.
	if clients == nil {
		clients = []*domain.Client{}
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /api/clientes/:rut.
//
// @Summary      Get a single client
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        rut  path      string  true  "Client RUT, any formatting"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /api/clientes/{rut} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("rut"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Save handles POST /api/clientes: creates the client or, when the
// normalized RUT already exists, updates and reactivates it.
//
// @Summary      Create or update a client
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveClientRequest  true  "Client fields"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  failureResponse
// @Router       /api/clientes [post]
func (h *ClientHandler) Save(c echo.Context) error {
	var req saveClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: err.Error()})
	}

	created, err := h.service.Save(c.Request().Context(), ports.SaveClientInput{
		RUT:          req.RUT,
		BusinessName: req.BusinessName,
		Activity:     req.Activity,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Commune:      req.Commune,
		BankAccount:  req.BankAccount,
		Bank:         req.Bank,
		Notes:        req.Notes,
	})
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("cliente", "save", "error").Inc()
		if errors.Is(err, domain.ErrInvalidRUT) || errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, fail(err))
		}
		return c.JSON(http.StatusInternalServerError, fail(err))
	}

	metrics.MutationsTotal.WithLabelValues("cliente", "save", "ok").Inc()
	if created {
		return c.JSON(http.StatusOK, ok("client created"))
	}
	return c.JSON(http.StatusOK, ok("client updated"))
}

// Update handles PUT /api/clientes/:rut, the partial field update used by the
// inline edit form. Fields absent from the payload keep their value.
//
// @Summary      Update client fields
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        rut   path      string               true  "Client RUT"
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  failureResponse
// @Failure      404   {object}  failureResponse
// @Router       /api/clientes/{rut} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: "invalid payload"})
	}

	err := h.service.UpdateFields(c.Request().Context(), c.Param("rut"), ports.ClientFieldPatch{
		BusinessName: req.BusinessName,
		Activity:     req.Activity,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Commune:      req.Commune,
		BankAccount:  req.BankAccount,
		Bank:         req.Bank,
		Notes:        req.Notes,
	})
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("cliente", "update", "error").Inc()
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			return c.JSON(http.StatusNotFound, fail(err))
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, fail(err))
		}
		return c.JSON(http.StatusInternalServerError, fail(err))
	}

	metrics.MutationsTotal.WithLabelValues("cliente", "update", "ok").Inc()
	return c.JSON(http.StatusOK, ok("client updated"))
}

// Delete handles DELETE /api/clientes?rut=<rut>, a soft delete that flags
// the client inactive.
//
// @Summary      Deactivate a client
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        rut  query     string  true  "Client RUT"
// @Success      200  {object}  successResponse
// @Failure      400  {object}  failureResponse
// @Failure      404  {object}  failureResponse
// @Router       /api/clientes [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	key := c.QueryParam("rut")
	if key == "" {
		return c.JSON(http.StatusBadRequest, failureResponse{Error: "rut parameter is required"})
	}

	if err := h.service.Deactivate(c.Request().Context(), key); err != nil {
		metrics.MutationsTotal.WithLabelValues("cliente", "delete", "error").Inc()
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, fail(err))
		}
		return c.JSON(http.StatusInternalServerError, fail(err))
	}

	metrics.MutationsTotal.WithLabelValues("cliente", "delete", "ok").Inc()
	return c.JSON(http.StatusOK, ok("client deactivated"))
}
