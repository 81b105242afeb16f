package catalog_test

import (
	"context"
	"strings"
	"testing"

	"catalog-impex/core/database"
	"catalog-impex/core/impex"
	"catalog-impex/feature/catalog"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testConfig = impex.Config{
	ContextNamespace: "test",
	TimestampLayout:  impex.DefaultTimestampLayout,
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, catalog.Migrate(db))
	return db
}

func newImporter(t *testing.T, db *gorm.DB, logger *zap.Logger) *impex.Importer {
	t.Helper()

	registry, err := catalog.NewRegistry(db, testConfig, logger)
	require.NoError(t, err)
	return impex.NewImporter(registry, impex.DefaultDescriptor(testConfig), database.NewTransactor(db), logger)
}

func runImport(t *testing.T, db *gorm.DB, doc string, opts impex.Options) *impex.Summary {
	t.Helper()

	summary, err := newImporter(t, db, zap.NewNop()).Import(context.Background(), strings.NewReader(doc), opts)
	require.NoError(t, err)
	return summary
}

func findCategory(t *testing.T, db *gorm.DB, guid string) *catalog.Category {
	t.Helper()

	var category catalog.Category
	err := db.Where("guid = ?", guid).First(&category).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	require.NoError(t, err)
	return &category
}

func countCategories(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&catalog.Category{}).Count(&n).Error)
	return n
}
