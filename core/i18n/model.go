package i18n

import (
	"sort"
	"strings"
)

// Separator delimits languages and values inside an encoded blob.
const Separator = "#~#"

// Inside a blob every "#~" of a language or text is written as "#~~", so encoded
// parts never contain Separator. Parts without "#~" are stored unchanged.
var (
	escaper   = strings.NewReplacer("#~", "#~~")
	unescaper = strings.NewReplacer("#~~", "#~")
)

// Mode selects how incoming values are combined with an existing blob.
type Mode string

const (
	// ModeMerge keeps existing languages and overrides the incoming ones.
	ModeMerge Mode = "MERGE"
	// ModeReplace discards existing languages before applying the incoming ones.
	ModeReplace Mode = "REPLACE"
)

// Value is a single (language, text) pair.
type Value struct {
	Lang string
	Text string
}

// Model maps a language code to its text.
type Model map[string]string

// Put sets the text for a language. Blank text removes the language.
func (m Model) Put(lang, text string) {
	if strings.TrimSpace(text) == "" {
		delete(m, lang)
		return
	}
	m[lang] = text
}

// Languages returns the language codes of the model in sorted order.
func (m Model) Languages() []string {
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Decode parses an encoded blob. An empty blob decodes to an empty model and a
// trailing language without a value is ignored.
func Decode(blob string) Model {
	model := make(Model)
	if blob == "" {
		return model
	}

	parts := strings.Split(blob, Separator)
	for i := 0; i+1 < len(parts); i += 2 {
		if parts[i] == "" {
			continue
		}
		model[unescaper.Replace(parts[i])] = unescaper.Replace(parts[i+1])
	}
	return model
}

// Encode serializes the model into a blob, languages in sorted order.
// Decode(Encode(m)) equals m for any model without empty language codes.
func Encode(m Model) string {
	var b strings.Builder
	for _, lang := range m.Languages() {
		b.WriteString(escaper.Replace(lang))
		b.WriteString(Separator)
		b.WriteString(escaper.Replace(m[lang]))
		b.WriteString(Separator)
	}
	return b.String()
}
