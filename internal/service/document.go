package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"docvault/internal/logging"
	"docvault/internal/model"
	"docvault/internal/repository"
	"docvault/internal/storage"
)

// DocumentService defines the use cases for the documents attached to objects.
// Every operation first resolves the object with the caller's Secret; a missing object
// and a wrong secret both fail with ErrNotFoundOrForbidden.
type DocumentService interface {
	// Attach uploads the content to object storage and records it in the given field,
	// replacing any previous document. The downloads counter starts over at zero.
	Attach(ctx context.Context, ref model.ObjectRef, secret Secret, r io.Reader, fileName, contentType string, size int64) (*model.Attachment, error)

	// Load returns the document held by a field, or nil when the field holds none.
	Load(ctx context.Context, ref model.ObjectRef, secret Secret) (*model.Document, error)

	// List returns the metadata of every document attached to an object.
	List(ctx context.Context, class, id string, secret Secret) ([]model.Attachment, error)

	// Download writes the document held by a field to w. See DownloadRequest.
	Download(ctx context.Context, w ResponseWriter, req DownloadRequest) (*model.Document, error)

	// Detach removes the document held by a field from storage and from the object.
	Detach(ctx context.Context, ref model.ObjectRef, secret Secret) error
}

// Options tune a DocumentService.
type Options struct {
	// SecretMismatchDelay is waited before rejecting a request with a wrong secret.
	SecretMismatchDelay time.Duration
}

type documentService struct {
	store storage.Storage
	repo  repository.ObjectRepository
	gate  objectGate
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.ObjectRepository, opts Options) DocumentService {
	return &documentService{
		store: store,
		repo:  repo,
		gate:  objectGate{repo: repo, delay: opts.SecretMismatchDelay},
	}
}

func validateRef(ref model.ObjectRef) error {
	switch {
	case ref.Class == "":
		return ErrClassRequired
	case ref.ID == "":
		return ErrIDRequired
	case ref.Field == "":
		return ErrFieldRequired
	}
	return nil
}

// storageKey places the content of a field under a unique key, so a replaced
// document stays readable until the new metadata is committed.
func storageKey(ref model.ObjectRef, fileName string) string {
	return path.Join("documents",
		url.PathEscape(ref.Class),
		url.PathEscape(ref.ID),
		url.PathEscape(ref.Field),
		uuid.NewString()+filepath.Ext(fileName),
	)
}

func (s *documentService) Attach(ctx context.Context, ref model.ObjectRef, secret Secret, r io.Reader, fileName, contentType string, size int64) (*model.Attachment, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = model.DefaultMimeType
	}

	if _, err := s.gate.resolve(ctx, ref.Class, ref.ID, secret); err != nil {
		return nil, err
	}

	var previousKey string
	prev, err := s.repo.FindAttachment(ctx, ref)
	switch {
	case err == nil:
		previousKey = prev.StoragePath
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	key := storageKey(ref, fileName)
	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": fileName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.repo.SaveAttachment(ctx, &model.Attachment{
		Ref:         ref,
		FileName:    fileName,
		MimeType:    contentType,
		Size:        objInfo.Size,
		StoragePath: objInfo.Key,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if previousKey != "" && previousKey != stored.StoragePath {
		if err := s.store.Delete(ctx, previousKey); err != nil {
			logging.From(ctx).Warnw("failed to delete replaced document content",
				"class", ref.Class, "id", ref.ID, "field", ref.Field,
				"storage_path", previousKey, "error", err)
		}
	}
	return stored, nil
}

func (s *documentService) Load(ctx context.Context, ref model.ObjectRef, secret Secret) (*model.Document, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	if _, err := s.gate.resolve(ctx, ref.Class, ref.ID, secret); err != nil {
		return nil, err
	}
	return s.load(ctx, ref)
}

// load reads a field of an object already resolved by the gate.
func (s *documentService) load(ctx context.Context, ref model.ObjectRef) (*model.Document, error) {
	att, err := s.repo.FindAttachment(ctx, ref)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rc, _, err := s.store.Get(ctx, att.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return model.NewDocument(data, att.MimeType, att.FileName, att.DownloadsCount), nil
}

func (s *documentService) List(ctx context.Context, class, id string, secret Secret) ([]model.Attachment, error) {
	if class == "" {
		return nil, ErrClassRequired
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.gate.resolve(ctx, class, id, secret); err != nil {
		return nil, err
	}
	return s.repo.ListAttachments(ctx, class, id)
}

// Detach removes the content from storage first; if this fails the metadata is kept
// so the storage reference is not lost.
func (s *documentService) Detach(ctx context.Context, ref model.ObjectRef, secret Secret) error {
	if err := validateRef(ref); err != nil {
		return err
	}
	if _, err := s.gate.resolve(ctx, ref.Class, ref.ID, secret); err != nil {
		return err
	}

	att, err := s.repo.FindAttachment(ctx, ref)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, att.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.DeleteAttachment(ctx, ref)
}
