package ports

import (
	"context"
	"time"
)

// StorageSigner issues time-limited URLs for video objects and removes
// objects during course deletion. Backed by S3 (or MinIO locally).
type StorageSigner interface {
	// SignUpload returns a presigned PUT URL for a new object.
	SignUpload(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	// SignDownload returns a presigned GET URL for an existing object.
	SignDownload(ctx context.Context, key string, ttl time.Duration) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
