package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocal(t *testing.T) {
	t.Run("creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "uploads")
		_, err := NewLocal(dir)

		require.NoError(t, err)
		st, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, st.IsDir())
	})

	t.Run("empty dir rejected", func(t *testing.T) {
		_, err := NewLocal("")
		assert.Error(t, err)
	})
}

func TestLocalStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocal(dir)
	require.NoError(t, err)

	content := "%PDF-1.4 fake content"

	t.Run("roundtrip", func(t *testing.T) {
		info, err := store.Put(ctx, "test.pdf", strings.NewReader(content), PutObjectOptions{
			Size:        int64(len(content)),
			ContentType: "application/pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, "test.pdf", info.Key)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.Equal(t, "application/pdf", info.ContentType)

		rc, got, err := store.Get(ctx, "test.pdf")
		require.NoError(t, err)
		defer rc.Close()

		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, content, string(b))
		assert.Equal(t, int64(len(content)), got.Size)
	})

	t.Run("put overwrites existing key", func(t *testing.T) {
		_, err := store.Put(ctx, "test.pdf", strings.NewReader("replaced"), PutObjectOptions{})
		require.NoError(t, err)

		rc, _, err := store.Get(ctx, "test.pdf")
		require.NoError(t, err)
		defer rc.Close()

		b, _ := io.ReadAll(rc)
		assert.Equal(t, "replaced", string(b))
	})

	t.Run("key cannot escape the root", func(t *testing.T) {
		_, err := store.Put(ctx, "../escape.pdf", strings.NewReader("x"), PutObjectOptions{})
		require.NoError(t, err)

		// Written inside the root under the base name, not above it
		_, err = os.Stat(filepath.Join(dir, "escape.pdf"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "..", "escape.pdf"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("get missing key", func(t *testing.T) {
		_, _, err := store.Get(ctx, "missing.pdf")
		assert.True(t, IsNotExist(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "test.pdf"))

		_, _, err := store.Get(ctx, "test.pdf")
		assert.True(t, IsNotExist(err))
	})

	t.Run("delete missing key is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-existed.pdf"))
	})
}
