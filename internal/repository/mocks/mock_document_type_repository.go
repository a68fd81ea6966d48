package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/etaubman/annotations/internal/model"
)

type MockDocumentTypeRepository struct {
	mock.Mock
}

func (m *MockDocumentTypeRepository) CreateType(ctx context.Context, name string, description *string) (*model.DocumentType, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeRepository) CreateElement(ctx context.Context, name string, description *string) (*model.DataElement, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DataElement), args.Error(1)
}

func (m *MockDocumentTypeRepository) ListTypesWithElements(ctx context.Context) ([]model.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeRepository) ElementsByType(ctx context.Context, documentTypeID int64) ([]model.DataElement, error) {
	args := m.Called(ctx, documentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DataElement), args.Error(1)
}

func (m *MockDocumentTypeRepository) Associate(ctx context.Context, assoc model.DocumentTypeDataElement) error {
	args := m.Called(ctx, assoc)
	return args.Error(0)
}
