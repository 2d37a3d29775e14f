package database

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bintrack/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestMigrateFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	current := 0
	require.NoError(t, db.Model(&SchemaVersion{}).Select("COALESCE(MAX(version), 0)").Scan(&current).Error)
	assert.Equal(t, len(migrations), current)

	for _, col := range []string{"id", "run_number", "size", "tipped_weight"} {
		has, err := hasColumn(db, "bin", col)
		require.NoError(t, err)
		assert.True(t, has, "bin.%s should exist", col)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&SchemaVersion{}).Count(&count).Error)
	assert.EqualValues(t, len(migrations), count)
}

func TestMigrateGuardsExistingColumns(t *testing.T) {
	// A database whose columns exist but whose version marker is gone
	// (pre-versioning deployment) must migrate without ALTER failures.
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Exec(`DELETE FROM schema_versions`).Error)

	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&SchemaVersion{}).Count(&count).Error)
	assert.EqualValues(t, len(migrations), count)
}

func TestSchemaMatchesEntities(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	d := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
	b := entities.Bin{
		ID: "GKF00001", RunNumber: "R1", PUC: "P1", FarmName: "Green Kloof Farm",
		Commodity: "Apple", Variety: "Fuji", BinClass: "1", Size: "L",
		TotalWeight: 450, Date: &d, DateCreated: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&b).Error)

	var got entities.Bin
	require.NoError(t, db.First(&got, "id = ?", "GKF00001").Error)
	assert.Equal(t, "P1", got.PUC)
	assert.Equal(t, "L", got.Size)
	require.NotNil(t, got.Date)
	assert.Equal(t, "2026-08-14", got.Date.Format("2006-01-02"))
	assert.False(t, got.IsTipped)
}

func TestDropdownOptionPairUnique(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&entities.DropdownOption{Field: "commodity", Value: "Apple"}).Error)
	err := db.Create(&entities.DropdownOption{Field: "commodity", Value: "Apple"}).Error
	assert.Error(t, err, "duplicate (field, value) must be rejected by the unique index")

	require.NoError(t, db.Create(&entities.DropdownOption{Field: "variety", Value: "Apple"}).Error)
}
