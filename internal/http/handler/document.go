package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/etaubman/annotations/internal/service"
)

// UploadDocument accepts a multipart/form-data upload (field name: file)
// and optional document_type_id and created_by form fields. Only PDF
// files are accepted. Re-uploading a filename refreshes the existing
// document row instead of creating a new one.
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		var typeID *int64
		if v := c.FormValue("document_type_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT_TYPE_ID", "invalid document_type_id")
			}
			typeID = &id
		}

		var createdBy *string
		if v := c.FormValue("created_by"); v != "" {
			createdBy = &v
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := docSvc.Upload(c.UserContext(), f, fh.Filename, fh.Size, typeID, createdBy)
		if err != nil {
			if errors.Is(err, service.ErrInvalidFileType) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "only PDF files are allowed")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListDocuments returns documents with skip & limit pagination.
func ListDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skipStr := c.Query("skip", "0")
		limitStr := c.Query("limit", "100")
		skip, err := strconv.Atoi(skipStr)
		if err != nil || skip < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SKIP", "invalid skip")
		}
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		res, err := docSvc.List(c.UserContext(), skip, limit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetDocument returns a single document by its numeric ID.
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := docSvc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			if errors.Is(err, service.ErrInvalidID) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(doc)
	}
}

// ListDocumentsWithAnnotationCounts returns every document alongside
// the number of annotations it carries, zero included.
func ListDocumentsWithAnnotationCounts(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := docSvc.ListWithAnnotationCounts(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
