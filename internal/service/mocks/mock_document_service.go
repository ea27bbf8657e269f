package mocks

import (
	"context"
	"io"

	"docvault/internal/model"
	"docvault/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Attach(ctx context.Context, ref model.ObjectRef, secret service.Secret, r io.Reader, fileName, contentType string, size int64) (*model.Attachment, error) {
	args := m.Called(ctx, ref, secret, r, fileName, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockDocumentService) Load(ctx context.Context, ref model.ObjectRef, secret service.Secret) (*model.Document, error) {
	args := m.Called(ctx, ref, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, class, id string, secret service.Secret) ([]model.Attachment, error) {
	args := m.Called(ctx, class, id, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

// Download writes the document returned by the expectation to w, the way the real service does.
func (m *MockDocumentService) Download(ctx context.Context, w service.ResponseWriter, req service.DownloadRequest) (*model.Document, error) {
	args := m.Called(ctx, w, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	doc := args.Get(0).(*model.Document)
	if args.Error(1) == nil {
		w.ClearBufferedOutput()
		w.SetContentType(doc.MimeType())
		w.SetContentDisposition(req.Disposition, doc.FileName())
		if err := w.WriteBody(doc.Data()); err != nil {
			return nil, err
		}
	}
	return doc, args.Error(1)
}

func (m *MockDocumentService) Detach(ctx context.Context, ref model.ObjectRef, secret service.Secret) error {
	args := m.Called(ctx, ref, secret)
	return args.Error(0)
}
