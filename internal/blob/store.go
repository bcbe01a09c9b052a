// Package blob provides the image blob store behind the capture
// pipeline: an S3-compatible backend for deployments, a filesystem
// store for local use, and an in-memory store for tests.
package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotFound is returned when no blob exists under a key.
var ErrNotFound = errors.New("blob not found")

// Store is the blob half of the persistence gateway. Keys are
// namespaced under an images/ prefix by callers; Upload returns the
// durable URL the key is fetchable at.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
}

// Environment variables:
//   HOMEDOC_BLOB_DRIVER=s3|filesystem|memory (default filesystem)
//   HOMEDOC_BLOB_DIR=<dir> (filesystem; default ~/.homedoc/blobs)
//   HOMEDOC_BLOB_S3_BUCKET=<bucket> (required for s3)
//   HOMEDOC_BLOB_S3_REGION=<region> (default us-east-1)
//   HOMEDOC_BLOB_S3_ENDPOINT=<url> (optional, for MinIO)
//   HOMEDOC_BLOB_S3_PATH_STYLE=true|false (default false)

// OpenFromEnv constructs a store from process environment.
func OpenFromEnv(ctx context.Context) (Store, error) {
	driver := strings.ToLower(os.Getenv("HOMEDOC_BLOB_DRIVER"))
	switch driver {
	case "", "filesystem":
		dir := os.Getenv("HOMEDOC_BLOB_DIR")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("getting home directory: %w", err)
			}
			dir = home + "/.homedoc/blobs"
		}
		return NewFilesystemStore(dir)
	case "memory":
		return NewMemoryStore(), nil
	case "s3":
		return OpenS3FromEnv(ctx)
	default:
		return nil, fmt.Errorf("unknown blob driver: %s", driver)
	}
}
