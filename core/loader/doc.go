// Package loader registers the HTTP features of the server.
//
// A Feature names itself, reports whether it can run with the current wiring and
// registers its routes. The importer feature, for instance, is disabled when no
// database connection could be opened, while the integrity feature always loads.
//
// Manager keeps registration order; LoadAll skips disabled features and stops at
// the first Load error.
package loader
