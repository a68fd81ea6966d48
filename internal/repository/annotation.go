package repository

import (
	"context"

	"github.com/etaubman/annotations/internal/model"
)

// AnnotationRepository defines persistence for annotations. Annotations
// are append-only: there is no update or delete beyond the document
// cascade.
type AnnotationRepository interface {
	// Create inserts a new annotation. The database assigns the
	// identity and the caller-supplied CreatedAt is stored as given.
	// Fails with a foreign key violation when the document is absent.
	Create(ctx context.Context, a *model.Annotation) (*model.Annotation, error)

	// ListByDocument returns all annotations for one document, no
	// pagination. An unknown document yields an empty list.
	ListByDocument(ctx context.Context, documentID int64) ([]model.Annotation, error)
}
