package cmd

import (
	"fmt"

	"catalog-impex/core/config"
	"catalog-impex/core/database"
	"catalog-impex/core/impex"
	"catalog-impex/core/logger"
	"catalog-impex/core/storage"
	"catalog-impex/feature/catalog"
	"catalog-impex/feature/importer"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the application logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logg, nil
}

// connect opens the catalog database.
func connect(cfg *config.Config, logg *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logg.Info("Connected to catalog database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name),
	)
	return db, nil
}

// newImportService wires the catalog handlers, the descriptor and the importer.
// store may be nil when no bucket import is needed.
func newImportService(cfg *config.Config, db *gorm.DB, store storage.Client, logg *zap.Logger) (*importer.Service, error) {
	registry, err := catalog.NewRegistry(db, cfg.Import, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	descriptor, err := impex.LoadDescriptor(cfg.Import)
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptor: %w", err)
	}

	imp := impex.NewImporter(registry, descriptor, database.NewTransactor(db), logg)
	return importer.NewService(imp, registry, store, cfg.Storage.Bucket, cfg.Import, logg), nil
}
