// database/bootstrap.go
package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SchemaVersion rows record which migrations have run; the highest
// version is the current schema marker.
type SchemaVersion struct {
	Version   int `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (SchemaVersion) TableName() string { return "schema_versions" }

type migration struct {
	version int
	name    string
	run     func(tx *gorm.DB) error
}

// migrations is the ordered schema history. Entries that have shipped
// are frozen; schema changes append a new version.
var migrations = []migration{
	{1, "create bin and dropdown_option tables", createBaseTables},
	{2, "add bin.run_number", addColumn("bin", "run_number", "VARCHAR(50)")},
	{3, "add bin.size", addColumn("bin", "size", "VARCHAR(100)")},
}

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("open sqlite")
	}
	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}
	return db
}

// Migrate applies every schema version above the recorded marker, each
// in its own transaction. Safe to call repeatedly; /init_db reuses it.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS schema_versions (version INTEGER PRIMARY KEY, applied_at DATETIME)`,
	).Error; err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	current := 0
	if err := db.Model(&SchemaVersion{}).
		Select("COALESCE(MAX(version), 0)").Scan(&current).Error; err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaVersion{Version: m.version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		log.Info().Int("version", m.version).Str("name", m.name).Msg("schema migrated")
	}
	return nil
}

func createBaseTables(tx *gorm.DB) error {
	// run_number and size arrive in later versions; v1 matches the
	// oldest deployed schema.
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bin (
			id            VARCHAR(32) PRIMARY KEY,
			puc           VARCHAR(100),
			farm_name     VARCHAR(100),
			commodity     VARCHAR(100),
			variety       VARCHAR(100),
			bin_class     VARCHAR(100),
			total_weight  REAL,
			date          DATE,
			date_created  DATETIME,
			is_tipped     BOOLEAN DEFAULT 0,
			tipped_weight REAL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bin_date_created ON bin(date_created)`,
		`CREATE INDEX IF NOT EXISTS idx_bin_is_tipped ON bin(is_tipped)`,
		`CREATE TABLE IF NOT EXISTS dropdown_option (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			field VARCHAR(50),
			value VARCHAR(100)
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_dropdown_field_value ON dropdown_option(field, value)`,
	}
	for _, s := range stmts {
		if err := tx.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

// addColumn ALTERs only when the column is missing, so databases that
// predate the version table still migrate cleanly.
func addColumn(table, column, typ string) func(*gorm.DB) error {
	return func(tx *gorm.DB) error {
		has, err := hasColumn(tx, table, column)
		if err != nil {
			return err
		}
		if has {
			return nil
		}
		return tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, typ)).Error
	}
}

func hasColumn(tx *gorm.DB, table, column string) (bool, error) {
	type colInfo struct {
		Name string
		Pk   int
	}
	var cols []colInfo
	if err := tx.Raw(fmt.Sprintf("PRAGMA table_info(%s)", table)).Scan(&cols).Error; err != nil {
		return false, fmt.Errorf("table_info %s: %w", table, err)
	}
	for _, c := range cols {
		if strings.EqualFold(c.Name, column) {
			return true, nil
		}
	}
	return false, nil
}
