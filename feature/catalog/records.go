package catalog

import (
	"catalog-impex/core/impex"
)

// Reference points at another entity by GUID.
type Reference struct {
	GUID string `xml:"guid,attr" validate:"required,max=255"`
}

// CategoryRecord is the <category> element of an import document.
type CategoryRecord struct {
	GUID          string           `xml:"guid,attr" validate:"required,max=255"`
	ImportMode    impex.ImportMode `xml:"import-mode,attr" validate:"omitempty,oneof=DELETE INSERT_ONLY UPDATE_ONLY MERGE"`
	Name          string           `xml:"name" validate:"required_unless=ImportMode DELETE,max=255"`
	DisplayName   *impex.I18nBlock `xml:"display-name"`
	Description   string           `xml:"description"`
	Parent        *Reference       `xml:"parent"`
	Rank          *int             `xml:"rank"`
	AvailableFrom string           `xml:"available-from"`
	AvailableTo   string           `xml:"available-to"`
	Seo           *impex.SeoBlock  `xml:"seo"`
}

// BrandRecord is the <brand> element of an import document.
type BrandRecord struct {
	GUID        string           `xml:"guid,attr" validate:"required,max=255"`
	ImportMode  impex.ImportMode `xml:"import-mode,attr" validate:"omitempty,oneof=DELETE INSERT_ONLY UPDATE_ONLY MERGE"`
	Name        string           `xml:"name" validate:"required_unless=ImportMode DELETE,max=255"`
	DisplayName *impex.I18nBlock `xml:"display-name"`
	Description string           `xml:"description"`
}
