package catalog

import (
	"context"
	"errors"
	"fmt"

	"catalog-impex/core/database"
	"catalog-impex/core/impex"

	"gorm.io/gorm"
)

// BrandHandler reconciles <brand> records with the brands table.
type BrandHandler struct {
	db  *gorm.DB
	cfg impex.Config
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(db *gorm.DB, cfg impex.Config) *BrandHandler {
	return &BrandHandler{db: db, cfg: cfg}
}

func (h *BrandHandler) Identity() impex.Identity {
	return impex.Identity{Namespace: h.cfg.ContextNamespace, Element: "brand"}
}

func (h *BrandHandler) Key(record *BrandRecord) string {
	return record.GUID
}

func (h *BrandHandler) ResolveMode(record *BrandRecord) impex.ImportMode {
	return impex.ResolveMode(record.ImportMode)
}

func (h *BrandHandler) GetOrCreate(ctx context.Context, record *BrandRecord) (*Brand, bool, error) {
	var brand Brand
	err := database.Conn(ctx, h.db).Where("guid = ?", record.GUID).First(&brand).Error
	switch {
	case err == nil:
		return &brand, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Brand{GUID: record.GUID}, true, nil
	default:
		return nil, false, fmt.Errorf("failed to load brand %s: %w", record.GUID, err)
	}
}

func (h *BrandHandler) Delete(ctx context.Context, brand *Brand) error {
	if err := database.Conn(ctx, h.db).Delete(brand).Error; err != nil {
		return fmt.Errorf("failed to delete brand %s: %w", brand.GUID, err)
	}
	return nil
}

func (h *BrandHandler) SaveOrUpdate(ctx context.Context, brand *Brand, record *BrandRecord, mode impex.ImportMode) error {
	brand.Name = record.Name
	brand.DisplayName = impex.ProcessI18n(record.DisplayName, brand.DisplayName)
	brand.Description = record.Description

	if err := database.Conn(ctx, h.db).Save(brand).Error; err != nil {
		return fmt.Errorf("failed to save brand %s: %w", brand.GUID, err)
	}
	return nil
}
