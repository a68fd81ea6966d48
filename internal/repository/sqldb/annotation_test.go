package sqldb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/etaubman/annotations/internal/model"
)

func TestAnnotationSQL_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAnnotationSQL(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now().UTC()
		a := &model.Annotation{
			DocumentID: 1,
			Page:       2,
			X:          10.5,
			Y:          20.5,
			Width:      100,
			Height:     50,
			Value:      "Borrower Name",
			CreatedAt:  now,
		}

		rows := sqlmock.NewRows([]string{"id", "document_id", "page", "x", "y", "width", "height", "value", "annotation_value", "created_at", "created_by"}).
			AddRow(7, a.DocumentID, a.Page, a.X, a.Y, a.Width, a.Height, a.Value, nil, now, nil)

		mock.ExpectQuery("INSERT INTO annotations").
			WithArgs(a.DocumentID, a.Page, a.X, a.Y, a.Width, a.Height, a.Value, sqlmock.AnyArg(), now, sqlmock.AnyArg()).
			WillReturnRows(rows)

		created, err := repo.Create(ctx, a)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, "Borrower Name", created.Value)
		assert.Nil(t, created.AnnotationValue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error propagates", func(t *testing.T) {
		fkErr := errors.New("FOREIGN KEY constraint failed")
		mock.ExpectQuery("INSERT INTO annotations").
			WillReturnError(fkErr)

		created, err := repo.Create(ctx, &model.Annotation{DocumentID: 999, Value: "x"})

		assert.ErrorIs(t, err, fkErr)
		assert.Nil(t, created)
	})
}

func TestAnnotationSQL_ListByDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAnnotationSQL(db)
	ctx := context.Background()

	t.Run("ordered oldest first", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "document_id", "page", "x", "y", "width", "height", "value", "annotation_value", "created_at", "created_by"}).
			AddRow(1, 5, 1, 0.0, 0.0, 10.0, 10.0, "a", "Acme Corp", now, nil).
			AddRow(2, 5, 2, 1.0, 1.0, 20.0, 20.0, "b", nil, now, "alex")

		mock.ExpectQuery("SELECT (.+) FROM annotations").
			WithArgs(int64(5)).
			WillReturnRows(rows)

		items, err := repo.ListByDocument(ctx, 5)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, "Acme Corp", *items[0].AnnotationValue)
		assert.Equal(t, "alex", *items[1].CreatedBy)
	})

	t.Run("unknown document yields empty list", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "document_id", "page", "x", "y", "width", "height", "value", "annotation_value", "created_at", "created_by"})

		mock.ExpectQuery("SELECT (.+) FROM annotations").
			WithArgs(int64(999)).
			WillReturnRows(rows)

		items, err := repo.ListByDocument(ctx, 999)

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
