package mocks

import (
	"context"

	"docvault/internal/model"
	"docvault/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockObjectService struct {
	mock.Mock
}

func (m *MockObjectService) Create(ctx context.Context, class, id string, attributes map[string]string) (*model.Object, error) {
	args := m.Called(ctx, class, id, attributes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectService) Get(ctx context.Context, class, id string, secret service.Secret) (*model.Object, error) {
	args := m.Called(ctx, class, id, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Object), args.Error(1)
}

func (m *MockObjectService) List(ctx context.Context, class string, limit, offset int) (*service.ObjectListResult, error) {
	args := m.Called(ctx, class, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ObjectListResult), args.Error(1)
}
