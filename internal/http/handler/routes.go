package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/config"
	"docvault/internal/http/middleware"
	"docvault/internal/model"
	"docvault/internal/service"
)

// Dependencies are the collaborators of the HTTP routes.
type Dependencies struct {
	DB        *sql.DB
	Objects   service.ObjectService
	Documents service.DocumentService
	Status    StatusReporter
	Config    *config.AppConfig
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service package.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	cfg := d.Config
	if cfg == nil {
		cfg = config.Load()
	}

	app.Get("/health", HealthCheck(d.DB))
	// Backward-compatible simple liveness probe
	app.Get("/healthz", LivenessProbe())
	app.Get("/status", Status(d.Status, cfg))

	objects := app.Group("/objects")
	objects.Post("/", CreateObject(d.Objects))
	objects.Get("/:class", ListObjects(d.Objects))
	secretField := cfg.Download.SecretField
	objects.Get("/:class/:id", GetObject(d.Objects, secretField))
	objects.Get("/:class/:id/documents", ListDocuments(d.Documents, secretField))
	objects.Post("/:class/:id/documents/:field", UploadDocument(d.Documents, secretField))
	objects.Get("/:class/:id/documents/:field", GetDocument(d.Documents, cfg.AppRootURL, secretField))
	objects.Delete("/:class/:id/documents/:field", DeleteDocument(d.Documents, secretField))

	pages := []fiber.Handler{}
	if cfg.Download.RateLimitRPS > 0 {
		pages = append(pages, middleware.NewRateLimiter(cfg.Download.RateLimitRPS, cfg.Download.RateLimitBurst).Handler())
	}
	app.Get("/"+model.DisplayDocumentPath, append(pages, DisplayDocument(d.Documents, cfg.Download))...)
	app.Get("/"+model.DownloadDocumentPath, append(pages, DownloadDocument(d.Documents, cfg.Download))...)
}
