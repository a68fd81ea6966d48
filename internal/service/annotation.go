package service

import (
	"context"
	"errors"
	"time"

	"github.com/etaubman/annotations/internal/database"
	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/repository"
)

var ErrValueRequired = errors.New("value is required")

// AnnotationService defines the use cases for page annotations.
// Annotations are append-only; there is no update or delete surface.
type AnnotationService interface {
	// Create stores a new annotation on a document. Returns ErrNotFound
	// when the document does not exist, including when it was deleted
	// concurrently — the foreign key decides.
	Create(ctx context.Context, a *model.Annotation) (*model.Annotation, error)

	// ListByDocument returns all annotations for one document, oldest
	// first. An unknown document yields an empty list, not an error.
	ListByDocument(ctx context.Context, documentID int64) ([]model.Annotation, error)
}

type annotationService struct {
	repo repository.AnnotationRepository
}

// NewAnnotationService constructs a new AnnotationService.
func NewAnnotationService(repo repository.AnnotationRepository) AnnotationService {
	return &annotationService{repo: repo}
}

func (s *annotationService) Create(ctx context.Context, a *model.Annotation) (*model.Annotation, error) {
	if a == nil || a.DocumentID <= 0 {
		return nil, ErrInvalidID
	}
	if a.Value == "" {
		return nil, ErrValueRequired
	}

	a.ID = 0
	a.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return created, nil
}

func (s *annotationService) ListByDocument(ctx context.Context, documentID int64) ([]model.Annotation, error) {
	if documentID <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.ListByDocument(ctx, documentID)
}
