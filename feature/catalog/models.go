package catalog

import (
	"time"

	"catalog-impex/core/impex"
)

// Category is a node of the catalog category tree.
type Category struct {
	ID            uint       `gorm:"column:id;primaryKey" json:"id"`
	GUID          string     `gorm:"column:guid;type:varchar(255);uniqueIndex;not null" json:"guid"`
	Name          string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	DisplayName   *string    `gorm:"column:display_name;type:text" json:"display_name"`
	Description   string     `gorm:"column:description;type:text" json:"description"`
	ParentID      *uint      `gorm:"column:parent_id;index" json:"parent_id"`
	Rank          int        `gorm:"column:display_rank" json:"rank"`
	AvailableFrom *time.Time `gorm:"column:available_from" json:"available_from"`
	AvailableTo   *time.Time `gorm:"column:available_to" json:"available_to"`
	Seo           impex.Seo  `gorm:"embedded;embeddedPrefix:seo_" json:"seo"`
	CreatedAt     time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Category) TableName() string {
	return "categories"
}

// Brand is a product brand.
type Brand struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	GUID        string    `gorm:"column:guid;type:varchar(255);uniqueIndex;not null" json:"guid"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	DisplayName *string   `gorm:"column:display_name;type:text" json:"display_name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Brand) TableName() string {
	return "brands"
}

// Models returns every catalog model, for migrations and schema checks.
func Models() []any {
	return []any{&Category{}, &Brand{}}
}
