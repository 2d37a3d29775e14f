package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bintrack/pkg/auth"
)

// RequireLogin bounces requests without an admin session to the login
// page.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.IsLoggedIn(c) {
				return c.Redirect(http.StatusSeeOther, "/admin_login")
			}
			return next(c)
		}
	}
}
