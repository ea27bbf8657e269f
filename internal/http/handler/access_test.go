package handler

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"docvault/internal/config"
	"docvault/internal/model"
	repoMocks "docvault/internal/repository/mocks"
	"docvault/internal/service"
	storageMocks "docvault/internal/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSecuredApp(repo *repoMocks.MockObjectRepository, store *storageMocks.MockStorage) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, Dependencies{
		Objects:   service.NewObjectService(repo, service.Options{}),
		Documents: service.NewDocumentService(store, repo, service.Options{}),
		Status:    stubReporter{},
		Config: &config.AppConfig{
			AppRootURL: "https://docs.example.com/",
			Download:   config.DownloadConfig{SecretField: "token"},
		},
	})
	return app
}

func TestObjectRoutes_SecretRequired(t *testing.T) {
	invoice := &model.Object{Class: "invoice", ID: "42", Attributes: map[string]string{"token": "s3cret"}}
	scan := &model.Attachment{
		Ref:         invoiceScan,
		FileName:    "scan.txt",
		MimeType:    "text/plain",
		Size:        11,
		StoragePath: "documents/invoice/42/scan/a.txt",
	}
	content := "hello world"
	signature := model.NewDocument([]byte(content), "text/plain", "scan.txt", 0).Signature()

	routes := []string{
		"/objects/invoice/42",
		"/objects/invoice/42/documents",
		"/objects/invoice/42/documents/scan",
	}

	for _, query := range []string{"", "?secret=wrong"} {
		for _, route := range routes {
			t.Run("rejected "+route+query, func(t *testing.T) {
				repo := new(repoMocks.MockObjectRepository)
				store := new(storageMocks.MockStorage)
				repo.On("FindObject", mock.Anything, "invoice", "42").Return(invoice, nil).Once()

				resp, _ := newSecuredApp(repo, store).Test(httptest.NewRequest(http.MethodGet, route+query, nil))

				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
				raw, _ := io.ReadAll(resp.Body)
				assert.Contains(t, string(raw), `"code":"NOT_FOUND"`)
				assert.Contains(t, string(raw), service.ErrNotFoundOrForbidden.Error())
				assert.NotContains(t, string(raw), signature)
				assert.NotContains(t, string(raw), "scan.txt")
				repo.AssertNotCalled(t, "FindAttachment", mock.Anything, mock.Anything)
				repo.AssertNotCalled(t, "ListAttachments", mock.Anything, mock.Anything, mock.Anything)
				store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
			})
		}
	}

	t.Run("unknown object reads like a wrong secret", func(t *testing.T) {
		repo := new(repoMocks.MockObjectRepository)
		repo.On("FindObject", mock.Anything, "invoice", "43").Return(nil, sql.ErrNoRows).Once()

		resp, _ := newSecuredApp(repo, new(storageMocks.MockStorage)).
			Test(httptest.NewRequest(http.MethodGet, "/objects/invoice/43/documents/scan?secret=s3cret", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, service.ErrNotFoundOrForbidden.Error(), decodeError(t, resp).Error.Message)
	})

	t.Run("matching secret shows the document", func(t *testing.T) {
		repo := new(repoMocks.MockObjectRepository)
		store := new(storageMocks.MockStorage)
		repo.On("FindObject", mock.Anything, "invoice", "42").Return(invoice, nil).Once()
		repo.On("FindAttachment", mock.Anything, invoiceScan).Return(scan, nil).Once()
		store.On("Get", mock.Anything, scan.StoragePath).Return(io.NopCloser(strings.NewReader(content)), nil, nil).Once()

		resp, _ := newSecuredApp(repo, store).
			Test(httptest.NewRequest(http.MethodGet, "/objects/invoice/42/documents/scan?secret=s3cret", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), signature)
		assert.NotContains(t, string(raw), scan.StoragePath)
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("matching secret lists attachments without storage paths", func(t *testing.T) {
		repo := new(repoMocks.MockObjectRepository)
		repo.On("FindObject", mock.Anything, "invoice", "42").Return(invoice, nil).Once()
		repo.On("ListAttachments", mock.Anything, "invoice", "42").Return([]model.Attachment{*scan}, nil).Once()

		resp, _ := newSecuredApp(repo, new(storageMocks.MockStorage)).
			Test(httptest.NewRequest(http.MethodGet, "/objects/invoice/42/documents?secret=s3cret", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "scan.txt")
		assert.NotContains(t, string(raw), "storage_path")
		assert.NotContains(t, string(raw), scan.StoragePath)
		repo.AssertExpectations(t)
	})

	t.Run("delete with a wrong secret keeps the document", func(t *testing.T) {
		repo := new(repoMocks.MockObjectRepository)
		store := new(storageMocks.MockStorage)
		repo.On("FindObject", mock.Anything, "invoice", "42").Return(invoice, nil).Once()

		req := httptest.NewRequestWithContext(context.Background(), http.MethodDelete, "/objects/invoice/42/documents/scan?secret=nope", nil)
		resp, err := newSecuredApp(repo, store).Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, service.ErrNotFoundOrForbidden.Error(), decodeError(t, resp).Error.Message)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "DeleteAttachment", mock.Anything, mock.Anything)
	})
}
