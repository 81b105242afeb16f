package catalog

import (
	"fmt"

	"catalog-impex/core/impex"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handlers returns the bound handlers of every catalog record kind.
func Handlers(db *gorm.DB, cfg impex.Config, logger *zap.Logger) []impex.RecordHandler {
	return []impex.RecordHandler{
		impex.Bind[CategoryRecord, *Category](NewCategoryHandler(db, cfg, logger)),
		impex.Bind[BrandRecord, *Brand](NewBrandHandler(db, cfg)),
	}
}

// NewRegistry returns a registry holding the catalog handlers.
func NewRegistry(db *gorm.DB, cfg impex.Config, logger *zap.Logger) (*impex.Registry, error) {
	return impex.NewRegistry(Handlers(db, cfg, logger)...)
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}
