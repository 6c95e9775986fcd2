package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// corsHeaders stamps the permissive CORS headers on every response and
// answers preflight requests directly with 200 and an empty body. It is
// registered with Pre so preflights never reach the router.
func corsHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, OPTIONS")
			h.Set(echo.HeaderAccessControlAllowHeaders, "Cache-Control")
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
