package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

// RBAC restricts a route to the given roles. The check runs against the
// role claim injected by Auth; a missing or unknown role is always
// rejected, mirroring the panel gate's read-only fallback so the API
// cannot be used to bypass the UI policy. Denials surface as
// domain.ErrForbidden and take their status and envelope from the
// central error handler.
func RBAC(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[normalizeRole(role)] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !allowed[normalizeRole(role)] {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// normalizeRole folds the claim the way roles are stored: lower-case,
// no surrounding whitespace. An empty claim stays empty and never matches.
func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
