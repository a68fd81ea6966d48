package sqldb

import (
	"context"
	"database/sql"

	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/repository"
)

// AnnotationSQL is the SQL implementation of repository.AnnotationRepository.
type AnnotationSQL struct {
	db *sql.DB
}

// NewAnnotationSQL creates a new AnnotationSQL repository.
func NewAnnotationSQL(db *sql.DB) *AnnotationSQL {
	return &AnnotationSQL{db: db}
}

var _ repository.AnnotationRepository = (*AnnotationSQL)(nil)

// Create inserts a new annotation row and returns the stored record.
// A missing document surfaces as a foreign key violation from the
// driver; classification happens in the service layer.
func (r *AnnotationSQL) Create(ctx context.Context, a *model.Annotation) (*model.Annotation, error) {
	const q = `
		INSERT INTO annotations (document_id, page, x, y, width, height, value, annotation_value, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, document_id, page, x, y, width, height, value, annotation_value, created_at, created_by
	`
	row := r.db.QueryRowContext(ctx, q,
		a.DocumentID,
		a.Page,
		a.X,
		a.Y,
		a.Width,
		a.Height,
		a.Value,
		nullStr(a.AnnotationValue),
		a.CreatedAt,
		nullStr(a.CreatedBy),
	)

	var (
		out   model.Annotation
		value sql.NullString
		by    sql.NullString
	)
	if err := row.Scan(
		&out.ID,
		&out.DocumentID,
		&out.Page,
		&out.X,
		&out.Y,
		&out.Width,
		&out.Height,
		&out.Value,
		&value,
		&out.CreatedAt,
		&by,
	); err != nil {
		return nil, err
	}
	out.AnnotationValue = strPtr(value)
	out.CreatedBy = strPtr(by)
	return &out, nil
}

// ListByDocument returns every annotation referencing one document.
func (r *AnnotationSQL) ListByDocument(ctx context.Context, documentID int64) ([]model.Annotation, error) {
	const q = `
		SELECT id, document_id, page, x, y, width, height, value, annotation_value, created_at, created_by
		FROM annotations
		WHERE document_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Annotation, 0)
	for rows.Next() {
		var (
			a     model.Annotation
			value sql.NullString
			by    sql.NullString
		)
		if err := rows.Scan(
			&a.ID,
			&a.DocumentID,
			&a.Page,
			&a.X,
			&a.Y,
			&a.Width,
			&a.Height,
			&a.Value,
			&value,
			&a.CreatedAt,
			&by,
		); err != nil {
			return nil, err
		}
		a.AnnotationValue = strPtr(value)
		a.CreatedBy = strPtr(by)
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
