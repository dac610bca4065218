package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studyplan/backend/config"
	"studyplan/backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CatalogModule{}))
	return db
}

func TestStoreReplaceAndLoad(t *testing.T) {
	store := NewStore(openTestDB(t))
	ctx := context.Background()

	first := []models.Module{
		{Course: "B", Module: "2", Topics: "second", Weight: 2},
		{Course: "A", Module: "1", Topics: "first", ColabLink: "https://colab/a1", Weight: 1},
	}
	require.NoError(t, store.Replace(ctx, first))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, loaded)

	second := []models.Module{{Course: "C", Module: "9", Topics: "only", Weight: 1}}
	require.NoError(t, store.Replace(ctx, second))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestStoreRejectsDuplicateKeys(t *testing.T) {
	store := NewStore(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, []models.Module{{Course: "A", Module: "1", Weight: 1}}))

	err := store.Replace(ctx, []models.Module{
		{Course: "X", Module: "1", Weight: 1},
		{Course: "X", Module: "1", Weight: 1},
	})
	assert.Error(t, err)

	// The failed replace is rolled back.
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Module{{Course: "A", Module: "1", Weight: 1}}, loaded)
}

func TestNewLoader(t *testing.T) {
	loader, err := NewLoader(&config.Config{CatalogSource: "xlsx", CatalogPath: "plan.xlsx"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &XLSXLoader{}, loader)

	_, err = NewLoader(&config.Config{CatalogSource: "db"}, nil)
	assert.Error(t, err)

	loader, err = NewLoader(&config.Config{CatalogSource: "db"}, openTestDB(t))
	require.NoError(t, err)
	assert.IsType(t, &Store{}, loader)

	_, err = NewLoader(&config.Config{CatalogSource: "csv"}, nil)
	assert.Error(t, err)
}

func TestStaticReturnsCopies(t *testing.T) {
	loader := Static([]models.Module{{Course: "A", Module: "1"}})
	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	got[0].Course = "changed"

	again, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Course)
}
