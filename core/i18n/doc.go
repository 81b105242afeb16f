// Package i18n holds the localized text model stored on catalog entities.
//
// A localized attribute is persisted as a single string blob that encodes a mapping
// from language code to text. The package provides the codec for that blob and the
// merge operation used when an import record carries new values for the attribute.
//
// # Blob Format
//
// Each entry is written as the language code, a separator, the text and a trailing
// separator:
//
//	en#~#Hello#~#fr#~#Bonjour#~#
//
// Entries are written in language order so that equal models always encode to equal
// blobs. An empty model is never encoded; Merge reports it as absent (nil) instead.
//
// # Modes
//
//   - MERGE: incoming values are layered over the values already in the blob.
//   - REPLACE: the blob is rebuilt from the incoming values only.
//
// # Usage
//
//	blob := i18n.Merge(category.DisplayName, []i18n.Value{{Lang: "en", Text: "Shoes"}}, i18n.ModeMerge)
//	names := i18n.Decode(*blob)
package i18n
