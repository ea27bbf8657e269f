package repository

import (
	"context"
	"errors"

	"docvault/internal/model"
)

// ErrDuplicate is returned when an insert conflicts with an existing row.
var ErrDuplicate = errors.New("duplicate row")

// ObjectRepository defines data access for objects and their document slots.
// No business logic here, strictly persistence operations.
// Lookups of a missing row return sql.ErrNoRows.
type ObjectRepository interface {
	// CreateObject inserts a new object with its attributes. It returns ErrDuplicate when
	// the (class, id) pair is taken.
	CreateObject(ctx context.Context, obj *model.Object) (*model.Object, error)

	// FindObject returns an object by class and id.
	FindObject(ctx context.Context, class, id string) (*model.Object, error)

	// ListObjects returns a paginated list of the objects of a class.
	ListObjects(ctx context.Context, class string, pq PageQuery) (*PageResult[model.Object], error)

	// FindAttachment returns the document metadata held by a field.
	FindAttachment(ctx context.Context, ref model.ObjectRef) (*model.Attachment, error)

	// ListAttachments returns every document slot of an object, ordered by field.
	ListAttachments(ctx context.Context, class, id string) ([]model.Attachment, error)

	// SaveAttachment inserts or replaces the document metadata of a field.
	SaveAttachment(ctx context.Context, att *model.Attachment) (*model.Attachment, error)

	// UpdateDownloadsCount stores the downloads counter of a field.
	UpdateDownloadsCount(ctx context.Context, ref model.ObjectRef, count int) error

	// DeleteAttachment removes the document metadata of a field. Missing rows are not an error.
	DeleteAttachment(ctx context.Context, ref model.ObjectRef) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
