package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"docvault/internal/logging"
)

// ErrSchemaMissing is returned by VerifySchema when a required table does not exist.
var ErrSchemaMissing = errors.New("database schema is missing")

type migrationStep struct {
	Name string
	SQL  string
}

// requiredTables are checked by VerifySchema and used as sentinels by EnsureMigrated.
var requiredTables = []string{"objects", "object_documents"}

var steps = []migrationStep{
	{
		Name: "create_table_objects",
		SQL: `CREATE TABLE IF NOT EXISTS objects (
  class      TEXT        NOT NULL,
  id         TEXT        NOT NULL,
  attributes JSONB       NOT NULL DEFAULT '{}'::jsonb,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (class, id)
);`,
	},
	{
		Name: "create_table_object_documents",
		SQL: `CREATE TABLE IF NOT EXISTS object_documents (
  class           TEXT        NOT NULL,
  object_id       TEXT        NOT NULL,
  field           TEXT        NOT NULL,
  file_name       TEXT        NOT NULL DEFAULT '',
  mime_type       TEXT        NOT NULL DEFAULT 'text/plain',
  size            BIGINT      NOT NULL CHECK (size >= 0),
  storage_path    TEXT        NOT NULL UNIQUE,
  downloads_count INTEGER     DEFAULT 0 CHECK (downloads_count >= 0),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (class, object_id, field),
  FOREIGN KEY (class, object_id) REFERENCES objects (class, id) ON DELETE CASCADE
);`,
	},
	{
		Name: "create_index_object_documents_mime_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_object_documents_mime_type ON object_documents (mime_type);`,
	},
	{
		Name: "create_index_objects_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_objects_created_at ON objects (class, created_at);`,
	},
}

// EnsureMigrated checks if the schema exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger logging.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With("component", "database", "db_host", dbHost)

	log.Infow("db_migration_check", "status", "starting")

	missing, err := missingTables(ctx, db)
	if err != nil {
		log.Errorw("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel tables: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel tables: %w", err)
	}

	if len(missing) == 0 {
		log.Infow("db_migration_skip",
			"status", "success",
			"reason", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Infow("db_migration_start", "status", "in_progress", "missing_tables", missing)

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Errorw("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Infow("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Infow("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// VerifySchema checks that every required table exists without changing anything.
func VerifySchema(ctx context.Context, db *sql.DB) error {
	missing, err := missingTables(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to check sentinel tables: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrSchemaMissing, missing)
	}
	return nil
}

func missingTables(ctx context.Context, db *sql.DB) ([]string, error) {
	const query = "SELECT to_regclass($1) IS NOT NULL"

	var missing []string
	for _, table := range requiredTables {
		var exists bool
		if err := db.QueryRowContext(ctx, query, "public."+table).Scan(&exists); err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, table)
		}
	}
	return missing, nil
}
