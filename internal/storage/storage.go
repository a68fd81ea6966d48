package storage

import (
	"context"
	"io"
	"time"
)

// Package storage abstracts where uploaded PDF files live. The default
// backend is a local directory served read-only under /uploaded_files;
// an S3-compatible backend (MinIO) can be selected instead. Keys are
// bare filenames; implementations must not let a key escape their root.

// PutObjectOptions define optional parameters for storing objects.
// Size should be the exact number of bytes if known; set -1 when
// unknown. ContentType is optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage is a file store for uploaded documents. Implementations are
// safe for concurrent use. Put overwrites an existing key: re-uploading
// a document replaces its previous content.
type Storage interface {
	// Put stores an object under the given key from the provided reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
