package impex

// ResolveMode returns the import mode a record declared, or ModeMerge when it
// declared none. Handlers call it from their ResolveMode implementation.
func ResolveMode(declared ImportMode) ImportMode {
	if declared == "" {
		return ModeMerge
	}
	return declared
}
