package database

import (
	"context"
	"database/sql"
	"fmt"

	"docvault/internal/config"
	"docvault/internal/database/migration"
	"docvault/internal/logging"
)

// Starter initializes the data model against PostgreSQL.
// With a nil DB it opens a short-lived pool from the given configuration.
type Starter struct {
	DB *sql.DB
}

// NewStarter returns a Starter reusing db when it is not nil.
func NewStarter(db *sql.DB) *Starter {
	return &Starter{DB: db}
}

// Startup checks connectivity and the schema. In model-only mode the schema is only
// verified; otherwise missing tables are created.
func (s *Starter) Startup(ctx context.Context, cfg *config.AppConfig, modelOnly bool) error {
	db := s.DB
	if db == nil {
		opened, err := NewPostgres(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if modelOnly {
		return migration.VerifySchema(ctx, db)
	}
	return migration.EnsureMigrated(ctx, db, logging.From(ctx), cfg.Database.Host)
}
