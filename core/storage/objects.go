package storage

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
)

// EnsureBucket creates the bucket when it does not exist.
func EnsureBucket(ctx context.Context, c Client, bucket, region string) error {
	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// ListKeys returns the keys of all objects under prefix, sorted.
// Directory markers (keys ending in "/") are skipped.
func ListKeys(ctx context.Context, c Client, bucket, prefix string) ([]string, error) {
	prefix = strings.TrimSuffix(prefix, "/") + "/"

	var keys []string
	for obj := range c.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Move copies the object at key under dstPrefix, keeping its base name, and then
// removes the original. It returns the new key.
func Move(ctx context.Context, c Client, bucket, key, dstPrefix string) (string, error) {
	dstKey := path.Join(dstPrefix, path.Base(key))

	_, err := c.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: bucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: bucket, Object: key},
	)
	if err != nil {
		return "", fmt.Errorf("failed to copy %s to %s: %w", key, dstKey, err)
	}

	if err := c.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return dstKey, fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return dstKey, nil
}
