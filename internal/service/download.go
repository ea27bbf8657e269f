package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"docvault/internal/logging"
	"docvault/internal/metrics"
	"docvault/internal/model"
)

// Disposition tells the client to render a document in place or to save it.
type Disposition string

const (
	DispositionInline     Disposition = "inline"
	DispositionAttachment Disposition = "attachment"
)

var tracer = otel.Tracer("docvault/internal/service")

// ResponseWriter receives a downloaded document.
type ResponseWriter interface {
	// ClearBufferedOutput discards anything written to the response body so far.
	ClearBufferedOutput()
	SetContentType(mimeType string)
	SetContentDisposition(disposition Disposition, fileName string)
	WriteBody(data []byte) error
}

// DownloadRequest identifies the document to download.
type DownloadRequest struct {
	Ref         model.ObjectRef
	Disposition Disposition
	// SecretField, when set, names the object attribute SecretValue must match.
	// An object without this attribute matches an empty SecretValue.
	SecretField string
	SecretValue string
}

func (r DownloadRequest) secret() Secret {
	return Secret{Field: r.SecretField, Value: r.SecretValue}
}

// Download resolves the object, checks the secret and writes the document to w.
// A missing object and a wrong secret both fail with ErrNotFoundOrForbidden.
// When the field holds no document nothing is written and a nil document is returned.
// An attachment download increments and persists the downloads counter.
func (s *documentService) Download(ctx context.Context, w ResponseWriter, req DownloadRequest) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Download", trace.WithAttributes(
		attribute.String("docvault.class", req.Ref.Class),
		attribute.String("docvault.field", req.Ref.Field),
		attribute.String("docvault.disposition", string(req.Disposition)),
	))
	defer span.End()

	if err := validateRef(req.Ref); err != nil {
		return nil, err
	}
	if req.Disposition == "" {
		req.Disposition = DispositionAttachment
	}

	if _, err := s.gate.resolve(ctx, req.Ref.Class, req.Ref.ID, req.secret()); err != nil {
		return nil, err
	}

	doc, err := s.load(ctx, req.Ref)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	w.ClearBufferedOutput()
	w.SetContentType(doc.MimeType())
	w.SetContentDisposition(req.Disposition, doc.FileName())
	if err := w.WriteBody(doc.Data()); err != nil {
		return nil, err
	}
	metrics.DocumentDownloads.WithLabelValues(req.Ref.Class, string(req.Disposition)).Inc()

	// Inline views display the document within a page and are not counted.
	if req.Disposition == DispositionAttachment {
		doc.IncreaseDownloadsCount(1)
		if err := s.repo.UpdateDownloadsCount(ctx, req.Ref, doc.DownloadsCount()); err != nil {
			logging.From(ctx).Errorw("failed to persist downloads count",
				"class", req.Ref.Class, "id", req.Ref.ID, "field", req.Ref.Field, "error", err)
		}
	}
	return doc, nil
}
