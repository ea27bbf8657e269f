package handler

import (
	"mime"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/config"
	"docvault/internal/model"
	"docvault/internal/service"
)

// fiberResponseWriter writes a downloaded document to a Fiber response.
type fiberResponseWriter struct {
	c *fiber.Ctx
}

func (w fiberResponseWriter) ClearBufferedOutput() {
	w.c.Response().ResetBody()
}

func (w fiberResponseWriter) SetContentType(mimeType string) {
	w.c.Set(fiber.HeaderContentType, mimeType)
}

func (w fiberResponseWriter) SetContentDisposition(disposition service.Disposition, fileName string) {
	v := mime.FormatMediaType(string(disposition), map[string]string{"filename": fileName})
	if v == "" {
		v = string(disposition)
	}
	w.c.Set(fiber.HeaderContentDisposition, v)
}

func (w fiberResponseWriter) WriteBody(data []byte) error {
	return w.c.Status(fiber.StatusOK).Send(data)
}

// DisplayDocument godoc
// @Summary Display a document
// @Description Renders the document held by a field inline. Inline views are not counted.
// @Tags pages
// @Produce octet-stream
// @Param operation query string true "display_document"
// @Param class query string true "Object class"
// @Param id query string true "Object id"
// @Param field query string true "Document field"
// @Param secret query string false "Object secret"
// @Success 200 {file} binary
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /pages/render [get]
func DisplayDocument(docSvc service.DocumentService, cfg config.DownloadConfig) fiber.Handler {
	return serveDocument(docSvc, cfg, model.OperationDisplayDocument, service.DispositionInline)
}

// DownloadDocument godoc
// @Summary Download a document
// @Description Sends the document held by a field as an attachment and counts the download.
// @Tags pages
// @Produce octet-stream
// @Param operation query string true "download_document"
// @Param class query string true "Object class"
// @Param id query string true "Object id"
// @Param field query string true "Document field"
// @Param secret query string false "Object secret"
// @Param s query string false "Content signature"
// @Param cache query int false "Cache lifetime in seconds"
// @Success 200 {file} binary
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /pages/document [get]
func DownloadDocument(docSvc service.DocumentService, cfg config.DownloadConfig) fiber.Handler {
	return serveDocument(docSvc, cfg, model.OperationDownloadDocument, service.DispositionAttachment)
}

func serveDocument(docSvc service.DocumentService, cfg config.DownloadConfig, operation string, disposition service.Disposition) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query("operation", operation) != operation {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OPERATION", "invalid operation")
		}

		cache := cfg.CacheSeconds
		if v := c.Query("cache"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_CACHE", "invalid cache")
			}
			cache = n
		}

		doc, err := docSvc.Download(c.UserContext(), fiberResponseWriter{c: c}, service.DownloadRequest{
			Ref: model.ObjectRef{
				Class: c.Query("class"),
				ID:    c.Query("id"),
				Field: c.Query("field"),
			},
			Disposition: disposition,
			SecretField: cfg.SecretField,
			SecretValue: c.Query("secret"),
		})
		if err != nil {
			c.Response().Header.Del(fiber.HeaderContentDisposition)
			return writeServiceError(c, err)
		}
		if doc == nil {
			return c.SendStatus(fiber.StatusNoContent)
		}

		if cache > 0 {
			age := strconv.Itoa(cache)
			c.Set(fiber.HeaderCacheControl, "no-transform,public,max-age="+age+",s-maxage="+age)
			c.Set(fiber.HeaderPragma, "cache")
		}
		return nil
	}
}
