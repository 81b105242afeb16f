package i18n

// Merge applies incoming values to an existing blob and returns the new blob.
//
// Under ModeReplace the working model starts empty, otherwise it starts from the
// decoded existing blob (nil or empty seeds an empty model). Values are applied in
// order, so the last value for a language wins. A model left empty is reported as
// nil rather than as an empty blob. An empty mode is treated as ModeMerge.
//
// Merge never mutates existing.
func Merge(existing *string, values []Value, mode Mode) *string {
	model := make(Model)
	if mode != ModeReplace && existing != nil {
		model = Decode(*existing)
	}

	for _, v := range values {
		model.Put(v.Lang, v.Text)
	}

	if len(model) == 0 {
		return nil
	}

	blob := Encode(model)
	return &blob
}
