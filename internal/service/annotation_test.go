package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/etaubman/annotations/internal/model"
	repoMocks "github.com/etaubman/annotations/internal/repository/mocks"
)

func TestAnnotationService_Create(t *testing.T) {
	ctx := context.Background()

	fkViolation := sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	}

	tests := []struct {
		name       string
		annotation *model.Annotation
		setupMocks func(mRepo *repoMocks.MockAnnotationRepository)
		wantErr    error
	}{
		{
			name:       "happy path",
			annotation: &model.Annotation{DocumentID: 1, Page: 1, Value: "Borrower Name"},
			setupMocks: func(mRepo *repoMocks.MockAnnotationRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(a *model.Annotation) bool {
					// The service assigns the timestamp and never trusts
					// a client-supplied identity
					return a.ID == 0 && !a.CreatedAt.IsZero()
				})).Return(&model.Annotation{ID: 7, DocumentID: 1, Page: 1, Value: "Borrower Name"}, nil)
			},
		},
		{
			name:       "validation - nil annotation",
			annotation: nil,
			setupMocks: func(mRepo *repoMocks.MockAnnotationRepository) {},
			wantErr:    ErrInvalidID,
		},
		{
			name:       "validation - non-positive document id",
			annotation: &model.Annotation{DocumentID: 0, Value: "x"},
			setupMocks: func(mRepo *repoMocks.MockAnnotationRepository) {},
			wantErr:    ErrInvalidID,
		},
		{
			name:       "validation - empty value",
			annotation: &model.Annotation{DocumentID: 1},
			setupMocks: func(mRepo *repoMocks.MockAnnotationRepository) {},
			wantErr:    ErrValueRequired,
		},
		{
			name:       "missing document maps foreign key violation",
			annotation: &model.Annotation{DocumentID: 999, Value: "x"},
			setupMocks: func(mRepo *repoMocks.MockAnnotationRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, fkViolation)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "generic repository error",
			annotation: &model.Annotation{DocumentID: 1, Value: "x"},
			setupMocks: func(mRepo *repoMocks.MockAnnotationRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockAnnotationRepository)
			svc := NewAnnotationService(mRepo)

			tt.setupMocks(mRepo)

			created, err := svc.Create(ctx, tt.annotation)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrInvalidID) || errors.Is(tt.wantErr, ErrValueRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), created.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestAnnotationService_ListByDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockAnnotationRepository)
		svc := NewAnnotationService(mRepo)

		expected := []model.Annotation{{ID: 1, DocumentID: 5, Value: "a"}}
		mRepo.On("ListByDocument", ctx, int64(5)).Return(expected, nil)

		items, err := svc.ListByDocument(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, expected, items)
		mRepo.AssertExpectations(t)
	})

	t.Run("validation - non-positive id", func(t *testing.T) {
		mRepo := new(repoMocks.MockAnnotationRepository)
		svc := NewAnnotationService(mRepo)

		items, err := svc.ListByDocument(ctx, 0)

		assert.ErrorIs(t, err, ErrInvalidID)
		assert.Nil(t, items)
	})
}
