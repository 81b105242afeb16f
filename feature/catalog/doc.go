// Package catalog provides the catalog entities and their import handlers.
//
// Each record kind has a gorm model, an XML record type and an impex.EntityHandler:
//
//	<category guid="..." import-mode="MERGE">   Category   CategoryHandler
//	<brand guid="..." import-mode="MERGE">      Brand      BrandHandler
//
// Handlers resolve entities by GUID and always go through database.Conn, so they run
// inside the per-record transaction opened by the importer.
//
// A category parent that cannot be resolved is logged and the current parent kept.
// Timestamps use the configured import layout.
package catalog
