package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/etaubman/annotations/internal/storage"
)

// ServeUploadedFile streams a stored file back to the client. Works for
// both the local-disk and the S3 backend since it goes through the
// storage interface rather than the filesystem.
func ServeUploadedFile(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("filename")
		if key == "" {
			return writeError(c, fiber.StatusBadRequest, "FILENAME_REQUIRED", "filename is required")
		}

		rc, info, err := store.Get(c.UserContext(), key)
		if err != nil {
			if storage.IsNotExist(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		ct := info.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		c.Set(fiber.HeaderContentType, ct)

		// fasthttp closes the stream reader when the response is done
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
