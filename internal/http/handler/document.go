package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/model"
	"docvault/internal/service"
	"docvault/internal/validation"
)

// documentDescriptor describes a stored document without its content.
type documentDescriptor struct {
	Class            string `json:"class"`
	ID               string `json:"id"`
	Field            string `json:"field"`
	FileName         string `json:"file_name"`
	MimeType         string `json:"mime_type"`
	MainMimeType     string `json:"main_mime_type"`
	Size             int    `json:"size"`
	FormattedSize    string `json:"formatted_size"`
	Signature        string `json:"signature"`
	DownloadsCount   int    `json:"downloads_count"`
	PreviewAvailable bool   `json:"preview_available"`
	DisplayURL       string `json:"display_url"`
	DownloadURL      string `json:"download_url"`
	DisplayLink      string `json:"display_link"`
	DownloadLink     string `json:"download_link"`
	HTML             string `json:"html"`
	Preview          string `json:"preview"`
}

func describe(doc *model.Document, ref model.ObjectRef, appRoot string) documentDescriptor {
	return documentDescriptor{
		Class:            ref.Class,
		ID:               ref.ID,
		Field:            ref.Field,
		FileName:         doc.FileName(),
		MimeType:         doc.MimeType(),
		MainMimeType:     doc.MainMimeType(),
		Size:             doc.Size(),
		FormattedSize:    doc.FormattedSize(2),
		Signature:        doc.Signature(),
		DownloadsCount:   doc.DownloadsCount(),
		PreviewAvailable: doc.IsPreviewAvailable(),
		DisplayURL:       doc.DisplayURL(appRoot, ref),
		DownloadURL:      doc.DownloadURL(appRoot, ref),
		DisplayLink:      doc.DisplayLink(appRoot, ref),
		DownloadLink:     doc.DownloadLink(appRoot, ref),
		HTML:             doc.HTML(),
		Preview:          doc.String(),
	}
}

func refFromParams(c *fiber.Ctx) model.ObjectRef {
	return model.ObjectRef{Class: c.Params("class"), ID: c.Params("id"), Field: c.Params("field")}
}

// callerSecret pairs the configured secret attribute with the "secret" query value.
func callerSecret(c *fiber.Ctx, secretField string) service.Secret {
	return service.Secret{Field: secretField, Value: c.Query("secret")}
}

// UploadDocument godoc
// @Summary Attach a document
// @Description Stores the uploaded file in a field of the object, replacing the previous document.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param class path string true "Object class"
// @Param id path string true "Object id"
// @Param field path string true "Document field"
// @Param file formData file true "Document"
// @Param secret query string false "Object secret"
// @Success 201 {object} model.Attachment
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /objects/{class}/{id}/documents/{field} [post]
func UploadDocument(docSvc service.DocumentService, secretField string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := validation.ValidateValue("field", c.Params("field"), "required,code,max=64"); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		att, err := docSvc.Attach(c.UserContext(), refFromParams(c), callerSecret(c, secretField), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(att)
	}
}

// ListDocuments godoc
// @Summary List the documents of an object
// @Tags documents
// @Produce json
// @Param class path string true "Object class"
// @Param id path string true "Object id"
// @Param secret query string false "Object secret"
// @Success 200 {array} model.Attachment
// @Failure 404 {object} errorPayload
// @Router /objects/{class}/{id}/documents [get]
func ListDocuments(docSvc service.DocumentService, secretField string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := docSvc.List(c.UserContext(), c.Params("class"), c.Params("id"), callerSecret(c, secretField))
		if err != nil {
			return writeServiceError(c, err)
		}
		if items == nil {
			items = []model.Attachment{}
		}
		return c.JSON(fiber.Map{"data": items})
	}
}

// GetDocument godoc
// @Summary Describe a document
// @Description Returns the metadata, links and HTML description of the document held by a field.
// @Tags documents
// @Produce json
// @Param class path string true "Object class"
// @Param id path string true "Object id"
// @Param field path string true "Document field"
// @Param secret query string false "Object secret"
// @Success 200 {object} documentDescriptor
// @Failure 404 {object} errorPayload
// @Router /objects/{class}/{id}/documents/{field} [get]
func GetDocument(docSvc service.DocumentService, appRoot, secretField string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref := refFromParams(c)
		doc, err := docSvc.Load(c.UserContext(), ref, callerSecret(c, secretField))
		if err != nil {
			return writeServiceError(c, err)
		}
		if doc == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		}
		return c.JSON(describe(doc, ref, appRoot))
	}
}

// DeleteDocument godoc
// @Summary Detach a document
// @Tags documents
// @Param class path string true "Object class"
// @Param id path string true "Object id"
// @Param field path string true "Document field"
// @Param secret query string false "Object secret"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /objects/{class}/{id}/documents/{field} [delete]
func DeleteDocument(docSvc service.DocumentService, secretField string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := docSvc.Detach(c.UserContext(), refFromParams(c), callerSecret(c, secretField)); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
