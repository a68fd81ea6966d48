package sqldb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/etaubman/annotations/internal/repository"
)

func TestDocumentSQL_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentSQL(db)
	ctx := context.Background()

	t.Run("insert", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "file_path", "uploaded_at", "document_type_id", "created_by"}).
			AddRow(1, "test.pdf", now, nil, nil)

		mock.ExpectQuery("INSERT INTO documents").
			WithArgs("test.pdf", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(rows)

		doc, err := repo.Upsert(ctx, "test.pdf", nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), doc.ID)
		assert.Equal(t, "test.pdf", doc.FilePath)
		assert.Nil(t, doc.DocumentTypeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refresh keeps identity", func(t *testing.T) {
		typeID := int64(3)
		by := "alex"
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "file_path", "uploaded_at", "document_type_id", "created_by"}).
			AddRow(1, "test.pdf", now, typeID, by)

		mock.ExpectQuery("INSERT INTO documents").
			WithArgs("test.pdf", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(rows)

		doc, err := repo.Upsert(ctx, "test.pdf", &typeID, &by)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), doc.ID)
		assert.Equal(t, &typeID, doc.DocumentTypeID)
		assert.Equal(t, &by, doc.CreatedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDocumentSQL_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentSQL(db)
	ctx := context.Background()

	t.Run("found with type", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "file_path", "uploaded_at", "document_type_id", "created_by", "id", "name", "description"}).
			AddRow(1, "test.pdf", time.Now(), 2, nil, 2, "Credit Agreement", nil)

		mock.ExpectQuery("SELECT (.+) FROM documents d").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, 1)

		assert.NoError(t, err)
		assert.NotNil(t, doc.DocumentType)
		assert.Equal(t, "Credit Agreement", doc.DocumentType.Name)
	})

	t.Run("found without type", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "file_path", "uploaded_at", "document_type_id", "created_by", "id", "name", "description"}).
			AddRow(1, "test.pdf", time.Now(), nil, nil, nil, nil, nil)

		mock.ExpectQuery("SELECT (.+) FROM documents d").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, 1)

		assert.NoError(t, err)
		assert.Nil(t, doc.DocumentType)
		assert.Nil(t, doc.DocumentTypeID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents d").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentSQL_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentSQL(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "file_path", "uploaded_at", "document_type_id", "created_by", "id", "name", "description"}).
			AddRow(1, "a.pdf", time.Now(), nil, nil, nil, nil, nil).
			AddRow(2, "b.pdf", time.Now(), 1, nil, 1, "Draw Notice", nil)

		mock.ExpectQuery("SELECT (.+) FROM documents d").
			WithArgs(10, 5).
			WillReturnRows(rows)

		items, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 5})

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Nil(t, items[0].DocumentType)
		assert.Equal(t, "Draw Notice", items[1].DocumentType.Name)
	})

	t.Run("empty", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "file_path", "uploaded_at", "document_type_id", "created_by", "id", "name", "description"})

		mock.ExpectQuery("SELECT (.+) FROM documents d").
			WithArgs(100, 0).
			WillReturnRows(rows)

		items, err := repo.List(ctx, repository.PageQuery{Limit: 100, Offset: 0})

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestDocumentSQL_ListWithAnnotationCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentSQL(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "file_path", "uploaded_at", "annotation_count"}).
		AddRow(1, "a.pdf", time.Now(), 3).
		AddRow(2, "b.pdf", time.Now(), 0)

	mock.ExpectQuery("SELECT (.+) FROM documents d").
		WillReturnRows(rows)

	items, err := repo.ListWithAnnotationCounts(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 3, items[0].AnnotationCount)
	// Documents without annotations still appear, with a zero count
	assert.Equal(t, 0, items[1].AnnotationCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentSQL_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentSQL(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM annotations").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM documents").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 1)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM annotations").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM documents").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
