package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Port          string
	DBPath        string
	AdminUsername string
	// AdminPassword is either a plain value or a bcrypt hash
	// ($2a$/$2b$/$2y$ prefix).
	AdminPassword string
	SessionSecret string
	// SeasonThreshold is how long after creation a tipped bin counts
	// toward the season summary. Operational policy, not hardcoded.
	SeasonThreshold time.Duration
	SecureCookies   bool
	LogLevel        string
	LogFormat       string // console|json
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		DBPath:          get("DB_PATH", "bins.db"),
		AdminUsername:   get("ADMIN_USERNAME", "admin"),
		AdminPassword:   get("ADMIN_PASSWORD", "admin"),
		SessionSecret:   get("SESSION_SECRET", "bintrack-dev-secret"),
		SeasonThreshold: 12 * time.Hour,
		SecureCookies:   get("SECURE_COOKIES", "false") == "true",
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFormat:       get("LOG_FORMAT", "console"),
	}
	if v := os.Getenv("SEASON_THRESHOLD"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Warn().Str("value", v).Err(err).Msg("invalid SEASON_THRESHOLD, keeping default")
		} else {
			cfg.SeasonThreshold = d
		}
	}
	return cfg
}
