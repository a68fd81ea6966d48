package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
)

// localStorage stores objects as plain files in one directory. Keys are
// flattened with filepath.Base so a crafted key cannot traverse out of
// the root.
type localStorage struct {
	root string
}

// NewLocal creates a disk-backed Storage rooted at dir, creating the
// directory if it does not exist.
func NewLocal(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &localStorage{root: dir}, nil
}

func (l *localStorage) path(key string) string {
	return filepath.Join(l.root, filepath.Base(key))
}

// Put writes the object to disk, replacing any previous content under
// the same key.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}

	dst := l.path(key)
	f, err := os.Create(dst)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}

	st, err := os.Stat(dst)
	if err != nil {
		return ObjectInfo{}, err
	}

	ct := opt.ContentType
	if ct == "" {
		ct = mime.TypeByExtension(filepath.Ext(key))
	}

	return ObjectInfo{
		Key:          filepath.Base(key),
		Size:         n,
		ContentType:  ct,
		LastModified: st.ModTime(),
	}, nil
}

// Get opens the file for streaming. The caller owns the ReadCloser.
func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := os.Open(l.path(key))
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}

	info := ObjectInfo{
		Key:          filepath.Base(key),
		Size:         st.Size(),
		ContentType:  mime.TypeByExtension(filepath.Ext(key)),
		LastModified: st.ModTime(),
	}
	return f, info, nil
}

// Delete removes the file; a missing file is treated as already deleted.
func (l *localStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(l.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
