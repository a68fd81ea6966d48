package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/service"
)

type createTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ListDocumentTypes returns every document type with its data elements.
func ListDocumentTypes(typeSvc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := typeSvc.ListTypes(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// ListDataElementsByType returns the data elements associated with one
// document type.
func ListDataElementsByType(typeSvc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := typeSvc.ElementsByType(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrInvalidID) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// CreateDocumentType creates a new document type. Names are unique.
func CreateDocumentType(typeSvc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createTypeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		t, err := typeSvc.CreateType(c.UserContext(), req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNameRequired):
				return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "name is required")
			case errors.Is(err, service.ErrDuplicateName):
				return writeError(c, fiber.StatusConflict, "DUPLICATE_NAME", "document type name already exists")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// CreateDataElement creates a new data element.
func CreateDataElement(typeSvc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createTypeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		e, err := typeSvc.CreateElement(c.UserContext(), req.Name, req.Description)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "name is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// AssociateDataElement links a data element to a document type with
// is_required and allow_multiple flags. A duplicate pair is a conflict,
// a dangling reference is not found; the caller always learns which.
func AssociateDataElement(typeSvc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var assoc model.DocumentTypeDataElement
		if err := c.BodyParser(&assoc); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := typeSvc.Associate(c.UserContext(), assoc); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
			case errors.Is(err, service.ErrAlreadyAssociated):
				return writeError(c, fiber.StatusConflict, "ALREADY_ASSOCIATED", "data element already associated with document type")
			case errors.Is(err, service.ErrUnknownReference):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document type or data element not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(assoc)
	}
}
