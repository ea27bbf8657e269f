package mocks

import (
	"context"

	"docvault/internal/model"
	"docvault/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockObjectRepository struct {
	mock.Mock
}

func (m *MockObjectRepository) CreateObject(ctx context.Context, obj *model.Object) (*model.Object, error) {
	args := m.Called(ctx, obj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectRepository) FindObject(ctx context.Context, class, id string) (*model.Object, error) {
	args := m.Called(ctx, class, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectRepository) ListObjects(ctx context.Context, class string, pq repository.PageQuery) (*repository.PageResult[model.Object], error) {
	args := m.Called(ctx, class, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Object]), args.Error(1)
}

func (m *MockObjectRepository) FindAttachment(ctx context.Context, ref model.ObjectRef) (*model.Attachment, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockObjectRepository) ListAttachments(ctx context.Context, class, id string) ([]model.Attachment, error) {
	args := m.Called(ctx, class, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockObjectRepository) SaveAttachment(ctx context.Context, att *model.Attachment) (*model.Attachment, error) {
	args := m.Called(ctx, att)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockObjectRepository) UpdateDownloadsCount(ctx context.Context, ref model.ObjectRef, count int) error {
	args := m.Called(ctx, ref, count)
	return args.Error(0)
}

func (m *MockObjectRepository) DeleteAttachment(ctx context.Context, ref model.ObjectRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
