package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bintrack/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

// Health reports database reachability, whether the bin schema is
// queryable, and process uptime.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	ping := sub{OK: true}
	if h.db == nil {
		ping = sub{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		ping = sub{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		ping = sub{Err: "ping: " + err.Error()}
	}

	schema := sub{OK: true}
	if !ping.OK {
		schema = sub{Err: "skipped: database unreachable"}
	} else {
		var n int64
		if err := h.db.WithContext(ctx).Model(&entities.Bin{}).Count(&n).Error; err != nil {
			schema = sub{Err: "bin table: " + err.Error()}
		}
	}

	allOK := ping.OK && schema.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": ping,
			"schema":   schema,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
