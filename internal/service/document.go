package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/repository"
	"github.com/etaubman/annotations/internal/storage"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidFileType = errors.New("only PDF files are allowed")
	ErrReaderNil       = errors.New("reader is nil")
	ErrInvalidID       = errors.New("invalid id")
)

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload validates the file is a PDF, writes the bytes through the
	// configured storage backend under the sanitized filename, and
	// upserts the document row keyed on that filename. Re-uploading the
	// same filename refreshes the existing document instead of creating
	// a second one.
	Upload(ctx context.Context, r io.Reader, originalFilename string, size int64, documentTypeID *int64, createdBy *string) (*model.Document, error)

	// List returns documents using skip/limit pagination, each with its
	// document type resolved.
	List(ctx context.Context, skip, limit int) ([]model.Document, error)

	// Get returns a single document by its ID with its document type
	// resolved, or ErrNotFound.
	Get(ctx context.Context, id int64) (*model.Document, error)

	// ListWithAnnotationCounts returns every document with the number
	// of annotations referencing it, zero included.
	ListWithAnnotationCounts(ctx context.Context) ([]model.DocumentAnnotationCount, error)

	// Delete removes a document, its annotations (atomically, at the
	// data layer) and its stored file. Not exposed over HTTP.
	Delete(ctx context.Context, id int64) error
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, originalFilename string, size int64, documentTypeID *int64, createdBy *string) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.EqualFold(filepath.Ext(originalFilename), ".pdf") {
		return nil, ErrInvalidFileType
	}

	// Strip any directory components so a crafted filename cannot
	// escape the upload root.
	filename := filepath.Base(originalFilename)

	if _, err := s.store.Put(ctx, filename, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: "application/pdf",
	}); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	doc, err := s.repo.Upsert(ctx, filename, documentTypeID, createdBy)
	if err != nil {
		// No storage rollback here: on a re-upload the previous file
		// content has already been replaced, so deleting would lose it.
		logrus.WithField("file_path", filename).WithError(err).Error("document upsert failed after file write")
		return nil, fmt.Errorf("save document: %w", err)
	}
	return doc, nil
}

// List returns paginated documents without exposing repository types.
func (s *documentService) List(ctx context.Context, skip, limit int) ([]model.Document, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	return s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: skip})
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListWithAnnotationCounts(ctx context.Context) ([]model.DocumentAnnotationCount, error) {
	return s.repo.ListWithAnnotationCounts(ctx)
}

// Delete removes the stored file first, then the document row together
// with its annotations. If the file removal fails the rows are kept so
// the document is not left pointing at nothing.
func (s *documentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, doc.FilePath); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
