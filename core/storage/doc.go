// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so bucket imports can be
// tested with the mocks in core/storage/mocks. Both AWS S3 and self-hosted MinIO work.
//
// # Operations
//
//   - EnsureBucket: Creates the bucket when missing.
//   - ListKeys: Lists the document keys under a prefix.
//   - Move: Moves a document between prefixes (copy, then remove).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	keys, err := storage.ListKeys(ctx, client, cfg.Storage.Bucket, "import/inbox")
package storage
