package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"docvault/internal/model"
	"docvault/internal/repository"
)

// ObjectListResult is the service-level DTO for paginated objects.
type ObjectListResult struct {
	Items []model.Object `json:"data"`
	Total int            `json:"total"`
}

// ObjectService defines the use cases for the records documents are attached to.
type ObjectService interface {
	// Create stores a new object. An empty id is replaced by a generated UUID.
	Create(ctx context.Context, class, id string, attributes map[string]string) (*model.Object, error)

	// Get returns a single object when secret matches it; a missing object and a wrong
	// secret both fail with ErrNotFoundOrForbidden.
	Get(ctx context.Context, class, id string, secret Secret) (*model.Object, error)

	// List returns the objects of a class using limit/offset and a total count.
	List(ctx context.Context, class string, limit, offset int) (*ObjectListResult, error)
}

type objectService struct {
	repo repository.ObjectRepository
	gate objectGate
}

// NewObjectService constructs a new ObjectService.
func NewObjectService(repo repository.ObjectRepository, opts Options) ObjectService {
	return &objectService{repo: repo, gate: objectGate{repo: repo, delay: opts.SecretMismatchDelay}}
}

func (s *objectService) Create(ctx context.Context, class, id string, attributes map[string]string) (*model.Object, error) {
	if class == "" {
		return nil, ErrClassRequired
	}
	if id == "" {
		id = uuid.NewString()
	}

	obj, err := s.repo.CreateObject(ctx, &model.Object{
		Class:      class,
		ID:         id,
		Attributes: attributes,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrObjectExists
		}
		return nil, err
	}
	return obj, nil
}

func (s *objectService) Get(ctx context.Context, class, id string, secret Secret) (*model.Object, error) {
	if class == "" {
		return nil, ErrClassRequired
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	return s.gate.resolve(ctx, class, id, secret)
}

func (s *objectService) List(ctx context.Context, class string, limit, offset int) (*ObjectListResult, error) {
	if class == "" {
		return nil, ErrClassRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListObjects(ctx, class, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ObjectListResult{Items: res.Items, Total: res.Total}, nil
}
