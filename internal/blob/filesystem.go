package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemStore writes blobs under a root directory. Keys map to
// relative file paths.
type FilesystemStore struct {
	root string
}

// NewFilesystemStore creates a store rooted at dir, creating it if
// needed.
func NewFilesystemStore(dir string) (*FilesystemStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob directory %s: %w", dir, err)
	}
	return &FilesystemStore{root: dir}, nil
}

// path resolves a key inside the root, rejecting traversal.
func (f *FilesystemStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob key: %s", key)
	}
	return filepath.Join(f.root, clean), nil
}

// Upload writes data under key and returns its file URL.
func (f *FilesystemStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	path, err := f.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating blob subdirectory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing blob %s: %w", key, err)
	}
	return "file://" + filepath.ToSlash(path), nil
}

// Download reads the blob under key.
func (f *FilesystemStore) Download(_ context.Context, key string) ([]byte, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("blob %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return data, nil
}
