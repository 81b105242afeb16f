// Package config provides configuration management for the catalog importer.
//
// It uses Viper to load settings from environment variables and an optional .env
// file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and upload limits
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials and the import bucket
//   - Log: level and format
//   - Import: handler namespace, timestamp layout, descriptor and bucket prefixes
//
// Nested keys map to environment variables with "_" (import.fail_fast -> IMPORT_FAIL_FAST).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Import.InboxPrefix)
package config
