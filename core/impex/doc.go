// Package impex provides the bulk import engine that reconciles externally supplied
// records with persisted catalog entities.
//
// The engine is generic over the record and entity types. Each entity kind supplies
// an EntityHandler with the entity specific lookup, save and delete logic; the
// sequencing and skip rules live once in Handle.
//
// # Architecture
//
// The import system consists of the following components:
//
// 1. Mode resolver: ResolveMode turns the import mode declared on a record into the
//    effective mode (MERGE when silent).
//
// 2. Engine: Handle resolves or creates the entity, classifies it as new exactly once,
//    then deletes, skips or saves it according to the mode.
//
// 3. Localized and SEO mergers: ProcessI18n and ApplySeo apply incoming localized blocks
//    and SEO metadata onto entity fields with their own MERGE/REPLACE semantics.
//
// 4. Registry: handlers are bound with Bind and registered under an Identity
//    (namespace, element). The driver looks them up per record element.
//
// 5. Importer: streams an XML document, decodes and validates each record, and runs
//    Handle inside a per-record transaction supplied by a TxRunner. Failed records are
//    tallied and the run continues.
//
// # Modes
//
//	DELETE       existing -> delete   new -> skip (nothing-to-delete)
//	INSERT_ONLY  existing -> skip     new -> save
//	UPDATE_ONLY  existing -> save     new -> skip (not-found)
//	MERGE        existing -> save     new -> save
//
// # Errors
//
// Lookup failures wrap ErrLookup and save/delete failures wrap ErrPersistence, both
// inside a *RecordError. Unmapped elements are not errors: the importer logs them and
// counts them as unmapped.
//
// # Usage Example
//
//	registry, _ := impex.NewRegistry(impex.Bind[catalog.CategoryRecord, *catalog.Category](handler))
//	importer := impex.NewImporter(registry, impex.DefaultDescriptor(cfg.Import), database.NewTransactor(db), logger)
//
//	summary, err := importer.Import(ctx, file, impex.Options{DryRun: true})
package impex
