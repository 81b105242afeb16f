package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"catalog-impex/core/impex"
	"catalog-impex/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredPrefixes lists the bucket prefixes the bucket import works with.
func RequiredPrefixes(cfg impex.Config) []string {
	return []string{cfg.InboxPrefix, cfg.ProcessedPrefix, cfg.FailedPrefix}
}

// CheckStructure returns the prefixes that hold no object yet.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, prefixes []string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, prefix := range prefixes {
		opts := minio.ListObjectsOptions{
			Prefix:    folderKey(prefix),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
			}
			found = true
			break
		}

		if !found {
			missing = append(missing, prefix)
		}
	}

	return missing, nil
}

// FixStructure creates a folder marker object for every missing prefix.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, prefix := range missing {
		_, err := client.PutObject(ctx, bucket, folderKey(prefix), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("prefix", prefix), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("prefix", prefix))
	}
	return nil
}

func folderKey(prefix string) string {
	return strings.TrimSuffix(prefix, "/") + "/"
}
