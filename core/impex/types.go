package impex

import (
	"catalog-impex/core/i18n"
)

// ImportMode is the record level directive that selects the reconciliation branch.
type ImportMode string

const (
	// ModeDelete removes an existing entity.
	ModeDelete ImportMode = "DELETE"
	// ModeInsertOnly creates new entities and ignores existing ones.
	ModeInsertOnly ImportMode = "INSERT_ONLY"
	// ModeUpdateOnly updates existing entities and ignores new ones.
	ModeUpdateOnly ImportMode = "UPDATE_ONLY"
	// ModeMerge creates or updates the entity.
	ModeMerge ImportMode = "MERGE"
)

// Identity is the (namespace, element) pair a handler is registered under.
type Identity struct {
	// Namespace is the context namespace shared by a family of handlers.
	Namespace string `json:"namespace"`
	// Element is the local name of the record element (e.g., "category").
	Element string `json:"element"`
}

// String returns the identity as "namespace:element".
func (i Identity) String() string {
	if i.Namespace == "" {
		return i.Element
	}
	return i.Namespace + ":" + i.Element
}

// Action is the branch taken by the reconciliation of one record.
type Action string

const (
	// ActionInsert means a new entity was saved.
	ActionInsert Action = "insert"
	// ActionUpdate means an existing entity was saved.
	ActionUpdate Action = "update"
	// ActionDelete means an existing entity was deleted.
	ActionDelete Action = "delete"
	// ActionSkip means the record was intentionally ignored.
	ActionSkip Action = "skip"
)

// Skip reasons reported in Outcome.Reason.
const (
	ReasonExists          = "exists"
	ReasonNotFound        = "not-found"
	ReasonNothingToDelete = "nothing-to-delete"
)

// Outcome describes what the reconciliation of one record did.
type Outcome struct {
	// Identity is the handler identity that processed the record.
	Identity Identity `json:"identity"`

	// Key is the natural key of the record, as reported by the handler.
	Key string `json:"key"`

	// Mode is the resolved import mode.
	Mode ImportMode `json:"mode"`

	// IsNew reports whether the entity was freshly allocated.
	IsNew bool `json:"is_new"`

	// Action is the branch taken.
	Action Action `json:"action"`

	// Reason explains a skip. Empty for other actions.
	Reason string `json:"reason,omitempty"`
}

// I18nValue is one localized value inside an I18nBlock.
type I18nValue struct {
	Lang  string `xml:"lang,attr" validate:"required,langtag"`
	Value string `xml:",chardata"`
}

// I18nBlock is the incoming representation of a localized attribute.
type I18nBlock struct {
	// ImportMode is the declared field mode. Empty means MERGE.
	ImportMode i18n.Mode   `xml:"import-mode,attr,omitempty" validate:"omitempty,oneof=MERGE REPLACE"`
	Values     []I18nValue `xml:"i18n" validate:"dive"`
}

// SeoBlock is the incoming representation of SEO metadata.
type SeoBlock struct {
	// ImportMode is the declared SEO mode. Empty means MERGE.
	ImportMode             i18n.Mode  `xml:"import-mode,attr,omitempty" validate:"omitempty,oneof=MERGE REPLACE"`
	URI                    string     `xml:"uri"`
	MetaTitle              string     `xml:"meta-title"`
	MetaTitleDisplay       *I18nBlock `xml:"meta-title-display"`
	MetaKeywords           string     `xml:"meta-keywords"`
	MetaKeywordsDisplay    *I18nBlock `xml:"meta-keywords-display"`
	MetaDescription        string     `xml:"meta-description"`
	MetaDescriptionDisplay *I18nBlock `xml:"meta-description-display"`
}

// Seo is the persisted SEO metadata embedded into catalog entities.
// Display fields are localized blobs; nil means absent.
type Seo struct {
	URI                    string  `gorm:"column:uri;type:varchar(255)" json:"uri"`
	Title                  string  `gorm:"column:title;type:varchar(255)" json:"title"`
	Metakeywords           string  `gorm:"column:metakeywords;type:varchar(255)" json:"metakeywords"`
	Metadescription        string  `gorm:"column:metadescription;type:varchar(255)" json:"metadescription"`
	DisplayTitle           *string `gorm:"column:display_title;type:text" json:"display_title"`
	DisplayMetakeywords    *string `gorm:"column:display_metakeywords;type:text" json:"display_metakeywords"`
	DisplayMetadescription *string `gorm:"column:display_metadescription;type:text" json:"display_metadescription"`
}
