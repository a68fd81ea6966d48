package repository

import (
	"context"

	"github.com/etaubman/annotations/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Upsert inserts a document keyed on its file path, or refreshes the
	// existing row: uploaded_at is set to now and the type reference is
	// overwritten only when documentTypeID is non-nil. At most one row
	// ever exists per file path; concurrent upserts on a new path
	// serialize on the row instead of failing.
	Upsert(ctx context.Context, filePath string, documentTypeID *int64, createdBy *string) (*model.Document, error)

	// FindByID returns a document with its document type eagerly
	// resolved. Returns sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id int64) (*model.Document, error)

	// List returns a page of documents, each with its document type
	// resolved. No ordering is guaranteed beyond being stable.
	List(ctx context.Context, pq PageQuery) ([]model.Document, error)

	// ListWithAnnotationCounts returns one row per document with the
	// number of annotations referencing it. Documents with no
	// annotations are included with a count of 0.
	ListWithAnnotationCounts(ctx context.Context) ([]model.DocumentAnnotationCount, error)

	// Delete removes a document and all of its annotations in one
	// transaction. Returns sql.ErrNoRows when the document is absent.
	Delete(ctx context.Context, id int64) error
}
