package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"docvault/internal/model"
	"docvault/internal/repository"
	repoMocks "docvault/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestObjectService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		class      string
		id         string
		setupMocks func(mRepo *repoMocks.MockObjectRepository)
		wantErr    error
		checkID    func(t *testing.T, id string)
	}{
		{
			name:  "happy path with explicit id",
			class: "invoice",
			id:    "42",
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {
				mRepo.On("CreateObject", ctx, mock.MatchedBy(func(o *model.Object) bool {
					return o.Class == "invoice" && o.ID == "42" && !o.CreatedAt.IsZero()
				})).Return(&model.Object{Class: "invoice", ID: "42"}, nil)
			},
			checkID: func(t *testing.T, id string) { assert.Equal(t, "42", id) },
		},
		{
			name:  "empty id is generated",
			class: "invoice",
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {
				mRepo.On("CreateObject", ctx, mock.MatchedBy(func(o *model.Object) bool {
					_, err := uuid.Parse(o.ID)
					return err == nil
				})).Return(&model.Object{Class: "invoice", ID: "7d5c1f0e-3a4b-4c2d-9e8f-0a1b2c3d4e5f"}, nil)
			},
			checkID: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:       "validation - empty class",
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {},
			wantErr:    ErrClassRequired,
		},
		{
			name:  "duplicate maps to ErrObjectExists",
			class: "invoice",
			id:    "42",
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {
				mRepo.On("CreateObject", ctx, mock.Anything).
					Return(nil, fmt.Errorf("insert object: %w", repository.ErrDuplicate))
			},
			wantErr: ErrObjectExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockObjectRepository)
			svc := NewObjectService(mRepo, Options{})

			tt.setupMocks(mRepo)

			obj, err := svc.Create(ctx, tt.class, tt.id, map[string]string{"secret": "s3"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, obj)
			} else {
				assert.NoError(t, err)
				if tt.checkID != nil {
					tt.checkID(t, obj.ID)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestObjectService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		class      string
		id         string
		secret     Secret
		setupMocks func(mRepo *repoMocks.MockObjectRepository)
		wantErr    error
	}{
		{
			name:  "happy path",
			class: "invoice",
			id:    "42",
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {
				mRepo.On("FindObject", ctx, "invoice", "42").Return(&model.Object{Class: "invoice", ID: "42"}, nil)
			},
		},
		{
			name:       "validation - empty id",
			class:      "invoice",
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name:  "not found - mapping sql.ErrNoRows",
			class: "invoice",
			id:    "missing",
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {
				mRepo.On("FindObject", ctx, "invoice", "missing").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFoundOrForbidden,
		},
		{
			name:   "matching secret",
			class:  "invoice",
			id:     "42",
			secret: Secret{Field: "access_key", Value: "s3cret"},
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {
				mRepo.On("FindObject", ctx, "invoice", "42").
					Return(&model.Object{Class: "invoice", ID: "42", Attributes: map[string]string{"access_key": "s3cret"}}, nil)
			},
		},
		{
			name:   "wrong secret looks like a missing object",
			class:  "invoice",
			id:     "42",
			secret: Secret{Field: "access_key", Value: "guess"},
			setupMocks: func(mRepo *repoMocks.MockObjectRepository) {
				mRepo.On("FindObject", ctx, "invoice", "42").
					Return(&model.Object{Class: "invoice", ID: "42", Attributes: map[string]string{"access_key": "s3cret"}}, nil)
			},
			wantErr: ErrNotFoundOrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockObjectRepository)
			svc := NewObjectService(mRepo, Options{})

			tt.setupMocks(mRepo)

			obj, err := svc.Get(ctx, tt.class, tt.id, tt.secret)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, obj)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, obj.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestObjectService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("pagination boundary - zero limit uses default", func(t *testing.T) {
		mRepo := new(repoMocks.MockObjectRepository)
		mRepo.On("ListObjects", ctx, "invoice", repository.PageQuery{Limit: 10, Offset: 0}).
			Return(&repository.PageResult[model.Object]{Items: []model.Object{{ID: "1"}, {ID: "2"}}, Total: 2}, nil)

		res, err := NewObjectService(mRepo, Options{}).List(ctx, "invoice", 0, -1)

		assert.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, 2, res.Total)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockObjectRepository)
		mRepo.On("ListObjects", ctx, "invoice", mock.Anything).Return(nil, errors.New("db fail"))

		res, err := NewObjectService(mRepo, Options{}).List(ctx, "invoice", 5, 0)

		assert.EqualError(t, err, "db fail")
		assert.Nil(t, res)
	})

	t.Run("validation - empty class", func(t *testing.T) {
		_, err := NewObjectService(new(repoMocks.MockObjectRepository), Options{}).List(ctx, "", 5, 0)
		assert.ErrorIs(t, err, ErrClassRequired)
	})
}
