package impex

import (
	"catalog-impex/core/i18n"
)

// ProcessI18n merges an incoming localized block into an existing blob using the
// block's declared mode (MERGE when silent). A nil block seeds no values, so the
// existing blob comes back re-encoded, or nil if it holds nothing.
func ProcessI18n(block *I18nBlock, existing *string) *string {
	mode := i18n.ModeMerge
	if block != nil && block.ImportMode != "" {
		mode = block.ImportMode
	}
	return processI18n(block, existing, mode)
}

func processI18n(block *I18nBlock, existing *string, mode i18n.Mode) *string {
	var values []i18n.Value
	if block != nil {
		values = make([]i18n.Value, 0, len(block.Values))
		for _, v := range block.Values {
			values = append(values, i18n.Value{Lang: v.Lang, Text: v.Value})
		}
	}
	return i18n.Merge(existing, values, mode)
}
