package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/repository"
)

// DocumentSQL is the SQL implementation of repository.DocumentRepository.
type DocumentSQL struct {
	db *sql.DB
}

// NewDocumentSQL creates a new DocumentSQL repository.
func NewDocumentSQL(db *sql.DB) *DocumentSQL {
	return &DocumentSQL{db: db}
}

var _ repository.DocumentRepository = (*DocumentSQL)(nil)

// documentColumns is the select list shared by FindByID and List: the
// document row plus its left-joined document type.
const documentColumns = `
		d.id, d.file_path, d.uploaded_at, d.document_type_id, d.created_by,
		t.id, t.name, t.description`

// Upsert inserts or refreshes the document row keyed on file_path in a
// single statement, so two concurrent upserts for the same new path
// serialize on the row instead of one failing on the unique constraint.
// The stored type reference is only overwritten when a new one is
// supplied.
func (r *DocumentSQL) Upsert(ctx context.Context, filePath string, documentTypeID *int64, createdBy *string) (*model.Document, error) {
	const q = `
		INSERT INTO documents (file_path, uploaded_at, document_type_id, created_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (file_path) DO UPDATE SET
			uploaded_at      = excluded.uploaded_at,
			document_type_id = COALESCE(excluded.document_type_id, documents.document_type_id),
			created_by       = COALESCE(excluded.created_by, documents.created_by)
		RETURNING id, file_path, uploaded_at, document_type_id, created_by
	`
	row := r.db.QueryRowContext(ctx, q, filePath, time.Now().UTC(), nullInt(documentTypeID), nullStr(createdBy))

	var (
		d      model.Document
		typeID sql.NullInt64
		by     sql.NullString
	)
	if err := row.Scan(&d.ID, &d.FilePath, &d.UploadedAt, &typeID, &by); err != nil {
		return nil, err
	}
	d.DocumentTypeID = intPtr(typeID)
	d.CreatedBy = strPtr(by)
	return &d, nil
}

// FindByID fetches a single document with its document type eagerly
// resolved, so the caller does not need a second round trip.
func (r *DocumentSQL) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM documents d
		LEFT JOIN document_types t ON t.id = d.document_type_id
		WHERE d.id = $1
	`, documentColumns)

	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return d, nil
}

// List returns documents using LIMIT/OFFSET pagination, ordered by id
// for a stable window.
func (r *DocumentSQL) List(ctx context.Context, pq repository.PageQuery) ([]model.Document, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM documents d
		LEFT JOIN document_types t ON t.id = d.document_type_id
		ORDER BY d.id
		LIMIT $1 OFFSET $2
	`, documentColumns)

	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListWithAnnotationCounts joins documents against their annotations
// and counts per document. The join is an outer join: documents with
// zero annotations must appear with a count of 0, never be omitted.
func (r *DocumentSQL) ListWithAnnotationCounts(ctx context.Context) ([]model.DocumentAnnotationCount, error) {
	const q = `
		SELECT d.id, d.file_path, d.uploaded_at, COUNT(a.id) AS annotation_count
		FROM documents d
		LEFT JOIN annotations a ON a.document_id = d.id
		GROUP BY d.id, d.file_path, d.uploaded_at
		ORDER BY d.id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentAnnotationCount, 0)
	for rows.Next() {
		var c model.DocumentAnnotationCount
		if err := rows.Scan(&c.ID, &c.FilePath, &c.UploadedAt, &c.AnnotationCount); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the document and its annotations in one transaction.
// The children go first so the foreign key never dangles mid-way.
func (r *DocumentSQL) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM annotations WHERE document_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var (
		d        model.Document
		typeID   sql.NullInt64
		by       sql.NullString
		tID      sql.NullInt64
		tName    sql.NullString
		tDesc    sql.NullString
	)
	if err := row.Scan(&d.ID, &d.FilePath, &d.UploadedAt, &typeID, &by, &tID, &tName, &tDesc); err != nil {
		return nil, err
	}
	d.DocumentTypeID = intPtr(typeID)
	d.CreatedBy = strPtr(by)
	if tID.Valid {
		d.DocumentType = &model.DocumentType{
			ID:          tID.Int64,
			Name:        tName.String,
			Description: strPtr(tDesc),
		}
	}
	return &d, nil
}
