package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/etaubman/annotations/internal/cache"
	"github.com/etaubman/annotations/internal/database"
	"github.com/etaubman/annotations/internal/model"
	"github.com/etaubman/annotations/internal/repository"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrDuplicateName     = errors.New("document type name already exists")
	ErrAlreadyAssociated = errors.New("data element already associated with document type")
	ErrUnknownReference  = errors.New("document type or data element does not exist")
)

const (
	typesCacheKey = "document_types:all"
	typesCacheTTL = 5 * time.Minute
)

// DocumentTypeService defines the use cases for the reference data:
// document types, data elements and their association. Rows are only
// ever created, by seeding or administrative calls.
type DocumentTypeService interface {
	CreateType(ctx context.Context, name string, description *string) (*model.DocumentType, error)
	CreateElement(ctx context.Context, name string, description *string) (*model.DataElement, error)

	// ListTypes returns every document type with its flat list of data
	// elements. Served from the cache when one is configured.
	ListTypes(ctx context.Context) ([]model.DocumentType, error)

	// ElementsByType returns the data elements associated with one
	// document type; empty list when there are none.
	ElementsByType(ctx context.Context, documentTypeID int64) ([]model.DataElement, error)

	// Associate links a data element to a document type with the given
	// flags. Returns ErrAlreadyAssociated for a duplicate pair and
	// ErrUnknownReference for a dangling identity — callers can always
	// tell success from failure.
	Associate(ctx context.Context, assoc model.DocumentTypeDataElement) error
}

type documentTypeService struct {
	repo  repository.DocumentTypeRepository
	cache cache.Cache
}

// NewDocumentTypeService constructs a new DocumentTypeService.
func NewDocumentTypeService(repo repository.DocumentTypeRepository, c cache.Cache) DocumentTypeService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &documentTypeService{repo: repo, cache: c}
}

func (s *documentTypeService) CreateType(ctx context.Context, name string, description *string) (*model.DocumentType, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	t, err := s.repo.CreateType(ctx, name, description)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	s.invalidate(ctx)
	return t, nil
}

func (s *documentTypeService) CreateElement(ctx context.Context, name string, description *string) (*model.DataElement, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	e, err := s.repo.CreateElement(ctx, name, description)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return e, nil
}

func (s *documentTypeService) ListTypes(ctx context.Context) ([]model.DocumentType, error) {
	if b, err := s.cache.Get(ctx, typesCacheKey); err == nil {
		var types []model.DocumentType
		if err := json.Unmarshal(b, &types); err == nil {
			return types, nil
		}
	}

	types, err := s.repo.ListTypesWithElements(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(types); err == nil {
		if err := s.cache.Set(ctx, typesCacheKey, b, typesCacheTTL); err != nil {
			logrus.WithError(err).Warn("document type cache set failed")
		}
	}
	return types, nil
}

func (s *documentTypeService) ElementsByType(ctx context.Context, documentTypeID int64) ([]model.DataElement, error) {
	if documentTypeID <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.ElementsByType(ctx, documentTypeID)
}

func (s *documentTypeService) Associate(ctx context.Context, assoc model.DocumentTypeDataElement) error {
	if assoc.DocumentTypeID <= 0 || assoc.DataElementID <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.Associate(ctx, assoc); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyAssociated
		}
		if database.IsForeignKeyViolation(err) {
			return ErrUnknownReference
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *documentTypeService) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, typesCacheKey); err != nil {
		logrus.WithError(err).Warn("document type cache invalidation failed")
	}
}
