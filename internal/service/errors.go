package service

import (
	"errors"
	"fmt"
)

var (
	ErrClassRequired = errors.New("class is required")
	ErrIDRequired    = errors.New("id is required")
	ErrFieldRequired = errors.New("field is required")
	ErrNotFound      = errors.New("object not found")
	ErrObjectExists  = errors.New("object already exists")
	ErrReaderNil     = errors.New("reader is nil")

	// ErrNotFoundOrForbidden is returned for a missing object and for a wrong secret alike,
	// so callers cannot tell whether a restricted object exists.
	ErrNotFoundOrForbidden = errors.New("the object does not exist or you are not allowed to view it")
)

func notFoundOrForbidden(class, id string) error {
	return fmt.Errorf("invalid object %s::%s: %w", class, id, ErrNotFoundOrForbidden)
}
