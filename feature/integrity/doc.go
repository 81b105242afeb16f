// Package integrity provides health checks for the import infrastructure.
//
// # Checks Provided
//
//   - Structure: Checks that the import prefixes (inbox, processed, failed) exist in the storage bucket.
//   - Schema: Validates that the connected database matches the catalog models (columns, declared types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
package integrity
