package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

var (
	corsMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsHeaders = []string{"X-Requested-With", "Content-Type", "Accept", "Origin", "Authorization"}
)

// CORS echoes the request Origin only when it is allow-listed. The allowed
// methods and headers are advertised on every response, preflight or not.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	cors := echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: corsMethods,
		AllowHeaders: corsHeaders,
	})
	methods := strings.Join(corsMethods, ", ")
	headers := strings.Join(corsHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := cors(next)
		return func(c echo.Context) error {
			hdr := c.Response().Header()
			hdr.Set(echo.HeaderAccessControlAllowHeaders, headers)
			hdr.Set(echo.HeaderAccessControlAllowMethods, methods)
			return h(c)
		}
	}
}
