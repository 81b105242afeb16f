package impex

import (
	"strings"

	"catalog-impex/core/i18n"
)

// ApplySeo applies an incoming SEO block onto the existing SEO metadata in place.
// A nil block leaves existing untouched.
//
// Under MERGE (the default) plain fields are only overwritten by non-blank values,
// and each localized field is merged with its own declared mode, MERGE when silent.
// Under REPLACE every plain field is overwritten, blank included, and every localized
// field is rebuilt with REPLACE.
func ApplySeo(block *SeoBlock, existing *Seo) {
	if block == nil || existing == nil {
		return
	}

	if block.ImportMode == i18n.ModeReplace {
		existing.URI = block.URI
		existing.Title = block.MetaTitle
		existing.Metakeywords = block.MetaKeywords
		existing.Metadescription = block.MetaDescription
		existing.DisplayTitle = processI18n(block.MetaTitleDisplay, existing.DisplayTitle, i18n.ModeReplace)
		existing.DisplayMetakeywords = processI18n(block.MetaKeywordsDisplay, existing.DisplayMetakeywords, i18n.ModeReplace)
		existing.DisplayMetadescription = processI18n(block.MetaDescriptionDisplay, existing.DisplayMetadescription, i18n.ModeReplace)
		return
	}

	if notBlank(block.URI) {
		existing.URI = block.URI
	}
	if notBlank(block.MetaTitle) {
		existing.Title = block.MetaTitle
	}
	if notBlank(block.MetaKeywords) {
		existing.Metakeywords = block.MetaKeywords
	}
	if notBlank(block.MetaDescription) {
		existing.Metadescription = block.MetaDescription
	}
	existing.DisplayTitle = ProcessI18n(block.MetaTitleDisplay, existing.DisplayTitle)
	existing.DisplayMetakeywords = ProcessI18n(block.MetaKeywordsDisplay, existing.DisplayMetakeywords)
	existing.DisplayMetadescription = ProcessI18n(block.MetaDescriptionDisplay, existing.DisplayMetadescription)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
