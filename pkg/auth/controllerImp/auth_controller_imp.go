package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"bintrack/config"
	"bintrack/pkg/auth"
	"bintrack/pkg/auth/controller"
	"bintrack/pkg/metrics"
)

type authCtrl struct{ cfg *config.AppConfig }

func NewAuthController(cfg *config.AppConfig) controller.AuthController {
	return &authCtrl{cfg: cfg}
}

func (h *authCtrl) LoginForm(c echo.Context) error {
	if auth.IsLoggedIn(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, "admin_login.html", echo.Map{})
}

func (h *authCtrl) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if !auth.CheckCredentials(username, password, h.cfg.AdminUsername, h.cfg.AdminPassword) {
		metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
		log.Warn().Str("username", username).Msg("failed admin login")
		auth.Flash(c, "Invalid login.")
		return c.Redirect(http.StatusSeeOther, "/admin_login")
	}

	if err := auth.Login(c); err != nil {
		return err
	}
	metrics.AuthLoginsTotal.WithLabelValues("success").Inc()
	log.Info().Str("username", username).Msg("admin logged in")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *authCtrl) Logout(c echo.Context) error {
	if err := auth.Logout(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin_login")
}
