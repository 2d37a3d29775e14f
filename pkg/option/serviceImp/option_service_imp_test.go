package serviceImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bintrack/database"
	"bintrack/entities"
	"bintrack/pkg/option/repositoryImp"
	"bintrack/pkg/option/service"
)

func newTestService(t *testing.T) service.OptionService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bins.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return New(repositoryImp.New(db))
}

func TestAddOptionDedupes(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.AddOption("commodity", "Apples")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.AddOption("commodity", "Apples")
	require.NoError(t, err)
	assert.False(t, created)

	// The same value under another field is a distinct option.
	created, err = svc.AddOption("variety", "Apples")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestAddOptionTrimsInput(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.AddOption("commodity", "  Pears  ")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.AddOption("commodity", "Pears")
	require.NoError(t, err)
	assert.False(t, created)

	values, err := svc.GroupedValues()
	require.NoError(t, err)
	assert.Equal(t, []string{"Pears"}, values["commodity"])
}

func TestAddOptionRejectsBadInput(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddOption("favourite_colour", "Blue")
	assert.Error(t, err)

	_, err = svc.AddOption("commodity", "   ")
	assert.Error(t, err)
}

func TestGroupedOptionsCoversAllFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddOption("commodity", "Apples")
	require.NoError(t, err)
	_, err = svc.AddOption("commodity", "Pears")
	require.NoError(t, err)
	_, err = svc.AddOption("farm_name", "Groenkloof Farms")
	require.NoError(t, err)

	grouped, err := svc.GroupedOptions()
	require.NoError(t, err)

	// Every known field has a key even when it holds no options yet.
	for _, f := range entities.DropdownFields {
		_, ok := grouped[f]
		assert.True(t, ok, "missing field %s", f)
	}

	require.Len(t, grouped["commodity"], 2)
	assert.Equal(t, "Apples", grouped["commodity"][0].Value)
	assert.Equal(t, "Pears", grouped["commodity"][1].Value)
	assert.Empty(t, grouped["variety"])
}

func TestDeleteOption(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddOption("commodity", "Apples")
	require.NoError(t, err)

	grouped, err := svc.GroupedOptions()
	require.NoError(t, err)
	require.Len(t, grouped["commodity"], 1)

	require.NoError(t, svc.DeleteOption(grouped["commodity"][0].ID))

	grouped, err = svc.GroupedOptions()
	require.NoError(t, err)
	assert.Empty(t, grouped["commodity"])

	// Unknown ids delete nothing and return no error.
	assert.NoError(t, svc.DeleteOption(9999))
}
