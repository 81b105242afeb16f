// Package logger builds the zap logger used across the importer.
//
// Level selects the base configuration: "debug" uses zap's development config
// (ISO8601 timestamps, caller info), anything else the production one. Format picks
// the json or console encoder; the CLI uses console, the server json.
//
// Request handlers derive their logger with WithRayID so every line of a request,
// including the per-record lines of an import run, carries the same ray_id.
//
//	l := logger.WithRayID(log, c)
//	l.Error("Import aborted", zap.Error(err))
package logger
