package sqldb

import (
	"context"
	"database/sql"

	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/repository"
)

// DocumentTypeSQL is the SQL implementation of repository.DocumentTypeRepository.
type DocumentTypeSQL struct {
	db *sql.DB
}

// NewDocumentTypeSQL creates a new DocumentTypeSQL repository.
func NewDocumentTypeSQL(db *sql.DB) *DocumentTypeSQL {
	return &DocumentTypeSQL{db: db}
}

var _ repository.DocumentTypeRepository = (*DocumentTypeSQL)(nil)

// CreateType inserts a document type row and returns the stored record.
func (r *DocumentTypeSQL) CreateType(ctx context.Context, name string, description *string) (*model.DocumentType, error) {
	const q = `
		INSERT INTO document_types (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`
	var (
		t    model.DocumentType
		desc sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, q, name, nullStr(description)).Scan(&t.ID, &t.Name, &desc); err != nil {
		return nil, err
	}
	t.Description = strPtr(desc)
	return &t, nil
}

// CreateElement inserts a data element row and returns the stored record.
func (r *DocumentTypeSQL) CreateElement(ctx context.Context, name string, description *string) (*model.DataElement, error) {
	const q = `
		INSERT INTO data_elements (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`
	var (
		e    model.DataElement
		desc sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, q, name, nullStr(description)).Scan(&e.ID, &e.Name, &desc); err != nil {
		return nil, err
	}
	e.Description = strPtr(desc)
	return &e, nil
}

// ListTypesWithElements resolves every type and its elements in two
// queries and groups in memory, instead of fanning out one element
// query per type.
func (r *DocumentTypeSQL) ListTypesWithElements(ctx context.Context) ([]model.DocumentType, error) {
	const qTypes = `
		SELECT id, name, description
		FROM document_types
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, qTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]model.DocumentType, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var (
			t    model.DocumentType
			desc sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &desc); err != nil {
			return nil, err
		}
		t.Description = strPtr(desc)
		t.DataElements = make([]model.DataElement, 0)
		index[t.ID] = len(types)
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const qElements = `
		SELECT de.document_type_id, e.id, e.name, e.description
		FROM document_data_elements de
		JOIN data_elements e ON e.id = de.data_element_id
		ORDER BY de.document_type_id, e.id
	`
	elemRows, err := r.db.QueryContext(ctx, qElements)
	if err != nil {
		return nil, err
	}
	defer elemRows.Close()

	for elemRows.Next() {
		var (
			typeID int64
			e      model.DataElement
			desc   sql.NullString
		)
		if err := elemRows.Scan(&typeID, &e.ID, &e.Name, &desc); err != nil {
			return nil, err
		}
		e.Description = strPtr(desc)
		if i, ok := index[typeID]; ok {
			types[i].DataElements = append(types[i].DataElements, e)
		}
	}
	if err := elemRows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// ElementsByType returns the flat list of data elements associated with
// one document type. Association flags are not part of this shape.
func (r *DocumentTypeSQL) ElementsByType(ctx context.Context, documentTypeID int64) ([]model.DataElement, error) {
	const q = `
		SELECT e.id, e.name, e.description
		FROM data_elements e
		JOIN document_data_elements de ON de.data_element_id = e.id
		WHERE de.document_type_id = $1
		ORDER BY e.id
	`
	rows, err := r.db.QueryContext(ctx, q, documentTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DataElement, 0)
	for rows.Next() {
		var (
			e    model.DataElement
			desc sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Name, &desc); err != nil {
			return nil, err
		}
		e.Description = strPtr(desc)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Associate inserts one association row carrying the per-pair flags.
// The composite primary key keeps the "at most one row per pair"
// invariant; violations propagate to the caller for classification.
func (r *DocumentTypeSQL) Associate(ctx context.Context, assoc model.DocumentTypeDataElement) error {
	const q = `
		INSERT INTO document_data_elements (document_type_id, data_element_id, is_required, allow_multiple)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, q,
		assoc.DocumentTypeID,
		assoc.DataElementID,
		assoc.IsRequired,
		assoc.AllowMultiple,
	)
	return err
}
