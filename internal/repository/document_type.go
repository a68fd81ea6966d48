package repository

import (
	"context"

	"github.com/etaubman/annotations/internal/model"
)

// DocumentTypeRepository defines persistence for the reference data:
// document types, data elements and the association between them.
type DocumentTypeRepository interface {
	// CreateType inserts a document type. Name is unique; a duplicate
	// surfaces as a unique violation.
	CreateType(ctx context.Context, name string, description *string) (*model.DocumentType, error)

	// CreateElement inserts a data element. Names are not unique.
	CreateElement(ctx context.Context, name string, description *string) (*model.DataElement, error)

	// ListTypesWithElements returns every document type carrying its
	// flat list of associated data elements. Association flags are not
	// surfaced in this shape.
	ListTypesWithElements(ctx context.Context) ([]model.DocumentType, error)

	// ElementsByType returns the data elements associated with one
	// document type. A type with no associations yields an empty list.
	ElementsByType(ctx context.Context, documentTypeID int64) ([]model.DataElement, error)

	// Associate inserts one association row. A duplicate pair surfaces
	// as a unique violation, an unknown identity as a foreign key
	// violation; neither leaves a partial row behind.
	Associate(ctx context.Context, assoc model.DocumentTypeDataElement) error
}
