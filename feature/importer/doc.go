// Package importer exposes the import engine over HTTP and drives bucket imports.
//
// # Bucket Import
//
// ImportBucket lists the inbox prefix, imports every document whose base name matches
// the descriptor file pattern and moves it afterwards:
//
//	import/inbox/categories.xml -> import/processed/categories.xml   (no failed records)
//	import/inbox/brands.xml     -> import/failed/brands.xml          (aborted or failed records)
//
// Dry runs leave the documents in the inbox.
//
// # HTTP Endpoints
//
//   - POST /impex/import : Imports the XML request body (supports ?dry_run=true&fail_fast=true).
//   - POST /impex/bucket : Imports the bucket inbox (supports ?dry_run=true).
//   - GET /impex/handlers : Lists the registered handler identities.
package importer
