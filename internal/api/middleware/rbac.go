package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole admits requests whose token role matches one of roles,
// ignoring case. It must run after Auth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token inválido o expirado.")
			}
			for _, r := range roles {
				if strings.EqualFold(r, role) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Acceso denegado.")
		}
	}
}
