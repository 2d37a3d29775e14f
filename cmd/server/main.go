package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bintrack/config"
	"bintrack/database"
	"bintrack/pkg/auth"
	"bintrack/router"
	"bintrack/web"

	// Auth
	authCtrlImp "bintrack/pkg/auth/controllerImp"

	// Bins
	binCtrlImp "bintrack/pkg/bin/controllerImp"
	binRepoImp "bintrack/pkg/bin/repositoryImp"
	binSvcImp "bintrack/pkg/bin/serviceImp"

	// Dropdown options
	optionCtrlImp "bintrack/pkg/option/controllerImp"
	optionRepoImp "bintrack/pkg/option/repositoryImp"
	optionSvcImp "bintrack/pkg/option/serviceImp"

	// Reports
	reportCtrlImp "bintrack/pkg/report/controllerImp"

	// Health
	healthCtrlImp "bintrack/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logging
	setupLogging(cfg)

	// 3) DB (sqlite) + versioned migrations
	db := database.OpenSQLite(cfg.DBPath)
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	// 4) Repos
	binRepo := binRepoImp.New(db)
	optionRepo := optionRepoImp.New(db)

	// 5) Services
	binSvc := binSvcImp.New(binRepo, cfg.SeasonThreshold)
	optionSvc := optionSvcImp.New(optionRepo)

	// 6) Controllers
	binCtrl := binCtrlImp.NewBinController(binSvc, optionSvc)
	optionCtrl := optionCtrlImp.NewOptionController(optionSvc)
	reportCtrl := reportCtrlImp.NewReportController(binSvc)
	authCtrl := authCtrlImp.NewAuthController(&cfg)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Renderer = web.NewRenderer()
	store := auth.NewStore(cfg.SessionSecret, cfg.SecureCookies)
	r := router.New(e, db, store, binCtrl, optionCtrl, reportCtrl, authCtrl, healthCtrl)

	// 8) Start
	log.Info().
		Str("port", cfg.Port).
		Str("db", cfg.DBPath).
		Dur("season_threshold", cfg.SeasonThreshold).
		Msg("bintrack listening")
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogging(cfg config.AppConfig) {
	switch cfg.LogLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if cfg.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
