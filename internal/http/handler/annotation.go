package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/service"
)

// CreateAnnotation stores a new page annotation on a document.
// Annotations are append-only; the document must already exist.
func CreateAnnotation(annSvc service.AnnotationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a model.Annotation
		if err := c.BodyParser(&a); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		created, err := annSvc.Create(c.UserContext(), &a)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT_ID", "invalid document_id")
			case errors.Is(err, service.ErrValueRequired):
				return writeError(c, fiber.StatusBadRequest, "VALUE_REQUIRED", "value is required")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ListAnnotations returns all annotations for one document, oldest
// first. An unknown document yields an empty list.
func ListAnnotations(annSvc service.AnnotationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		documentID, err := strconv.ParseInt(c.Params("document_id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := annSvc.ListByDocument(c.UserContext(), documentID)
		if err != nil {
			if errors.Is(err, service.ErrInvalidID) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
