package catalog

import (
	"context"
	"errors"
	"fmt"

	"catalog-impex/core/database"
	"catalog-impex/core/impex"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryHandler reconciles <category> records with the categories table.
type CategoryHandler struct {
	db     *gorm.DB
	cfg    impex.Config
	logger *zap.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(db *gorm.DB, cfg impex.Config, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{db: db, cfg: cfg, logger: logger}
}

func (h *CategoryHandler) Identity() impex.Identity {
	return impex.Identity{Namespace: h.cfg.ContextNamespace, Element: "category"}
}

func (h *CategoryHandler) Key(record *CategoryRecord) string {
	return record.GUID
}

func (h *CategoryHandler) ResolveMode(record *CategoryRecord) impex.ImportMode {
	return impex.ResolveMode(record.ImportMode)
}

func (h *CategoryHandler) GetOrCreate(ctx context.Context, record *CategoryRecord) (*Category, bool, error) {
	var category Category
	err := database.Conn(ctx, h.db).Where("guid = ?", record.GUID).First(&category).Error
	if err == nil {
		return &category, false, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Category{GUID: record.GUID}, true, nil
	}
	return nil, false, fmt.Errorf("failed to load category %s: %w", record.GUID, err)
}

// Delete removes the category. Its children become roots.
func (h *CategoryHandler) Delete(ctx context.Context, category *Category) error {
	conn := database.Conn(ctx, h.db)
	if err := conn.Model(&Category{}).Where("parent_id = ?", category.ID).Update("parent_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach children of category %s: %w", category.GUID, err)
	}
	if err := conn.Delete(category).Error; err != nil {
		return fmt.Errorf("failed to delete category %s: %w", category.GUID, err)
	}
	return nil
}

func (h *CategoryHandler) SaveOrUpdate(ctx context.Context, category *Category, record *CategoryRecord, mode impex.ImportMode) error {
	from, err := impex.ParseTimestamp(record.AvailableFrom, h.cfg.TimestampLayout)
	if err != nil {
		return fmt.Errorf("available-from: %w", err)
	}
	to, err := impex.ParseTimestamp(record.AvailableTo, h.cfg.TimestampLayout)
	if err != nil {
		return fmt.Errorf("available-to: %w", err)
	}

	category.Name = record.Name
	category.DisplayName = impex.ProcessI18n(record.DisplayName, category.DisplayName)
	category.Description = record.Description
	if record.Rank != nil {
		category.Rank = *record.Rank
	}
	category.AvailableFrom = from
	category.AvailableTo = to
	impex.ApplySeo(record.Seo, &category.Seo)

	if record.Parent != nil {
		parentID, err := h.resolveParent(ctx, category, record.Parent.GUID)
		if err != nil {
			return err
		}
		if parentID != nil {
			category.ParentID = parentID
		}
	}

	if err := database.Conn(ctx, h.db).Save(category).Error; err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.GUID, err)
	}
	return nil
}

// resolveParent returns the ID of the parent category, or nil when the reference
// cannot be used (unknown GUID or self reference).
func (h *CategoryHandler) resolveParent(ctx context.Context, category *Category, guid string) (*uint, error) {
	log := h.logger.With(zap.String("category", category.GUID), zap.String("parent", guid))

	if guid == category.GUID {
		log.Warn("Category references itself as parent, ignoring")
		return nil, nil
	}

	var parent Category
	err := database.Conn(ctx, h.db).Select("id").Where("guid = ?", guid).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn("Parent category not found, keeping current parent", zap.Error(impex.ErrUnmapped))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve parent %s: %w", guid, err)
	}
	return &parent.ID, nil
}
