package router

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"bintrack/database"
	"bintrack/pkg/auth"
	authController "bintrack/pkg/auth/controller"
	binController "bintrack/pkg/bin/controller"
	"bintrack/pkg/middleware"
	optionController "bintrack/pkg/option/controller"
	reportController "bintrack/pkg/report/controller"
	"bintrack/web"
)

// New wires the middleware stack and registers every route. Login,
// barcode images, static assets and the operational endpoints stay
// outside the session gate; everything else needs an admin session.
func New(
	e *echo.Echo,
	db *gorm.DB,
	store sessions.Store,
	binCtrl binController.BinController,
	optionCtrl optionController.OptionController,
	reportCtrl reportController.ReportController,
	authCtrl authController.AuthController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(auth.Middleware(store))
	e.HTTPErrorHandler = errorHandler

	// Public surface.
	e.GET("/admin_login", authCtrl.LoginForm)
	e.POST("/admin_login", authCtrl.Login)
	e.GET("/admin_logout", authCtrl.Logout)
	e.GET("/barcode/:bin_id", binCtrl.BarcodeImage)
	e.StaticFS("/static", web.StaticFS())
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/init_db", func(c echo.Context) error {
		if err := database.Migrate(db); err != nil {
			return err
		}
		return c.String(http.StatusOK, "DB initialized.")
	})

	// Admin surface.
	admin := e.Group("", middleware.RequireLogin())
	admin.GET("/", reportCtrl.Dashboard)
	admin.GET("/season_bins_tipped", reportCtrl.SeasonBinsTipped)
	admin.GET("/add_bins", binCtrl.AddBinsForm)
	admin.POST("/add_bins", binCtrl.AddBins)
	admin.GET("/mark_tipped", binCtrl.MarkTippedForm)
	admin.POST("/mark_tipped", binCtrl.MarkTipped)
	admin.GET("/admin", binCtrl.AdminPanel)
	admin.GET("/edit_bin/:bin_id", binCtrl.EditBinForm)
	admin.POST("/edit_bin/:bin_id", binCtrl.EditBin)
	admin.POST("/delete_bin/:bin_id", binCtrl.DeleteBin)
	admin.GET("/reprint/:bin_id", binCtrl.ReprintLabel)
	admin.GET("/manage_options", optionCtrl.ManageForm)
	admin.POST("/manage_options", optionCtrl.Create)
	admin.POST("/delete_option/:id", optionCtrl.Delete)
	admin.GET("/export_csv", reportCtrl.ExportCSVAll)
	admin.GET("/export_csv_on_stock", reportCtrl.ExportCSVOnStock)
	admin.GET("/export_csv_tipped", reportCtrl.ExportCSVTipped)
	admin.GET("/export_csv_season", reportCtrl.ExportCSVSeason)
	admin.GET("/export_xlsx", reportCtrl.ExportXLSX)

	return e
}

// errorHandler turns unhandled errors into a plain error page instead
// of the default JSON body.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
	}
	if c.Response().Committed {
		return
	}
	_ = c.String(code, http.StatusText(code))
}
