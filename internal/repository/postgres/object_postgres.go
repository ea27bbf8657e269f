package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"docvault/internal/model"
	"docvault/internal/repository"
)

// ObjectPostgres is a PostgreSQL implementation of repository.ObjectRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ObjectPostgres struct {
	db *sql.DB
}

// NewObjectPostgres creates a new ObjectPostgres repository.
func NewObjectPostgres(db *sql.DB) *ObjectPostgres {
	return &ObjectPostgres{db: db}
}

var _ repository.ObjectRepository = (*ObjectPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateObject inserts a new object row and returns the stored record.
func (r *ObjectPostgres) CreateObject(ctx context.Context, obj *model.Object) (*model.Object, error) {
	attrs, err := encodeAttributes(obj.Attributes)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO objects (class, id, attributes, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING class, id, attributes, created_at
	`
	row := r.db.QueryRowContext(ctx, q, obj.Class, obj.ID, attrs, obj.CreatedAt)
	out, err := scanObject(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("object %s::%s: %w", obj.Class, obj.ID, repository.ErrDuplicate)
		}
		return nil, err
	}
	return out, nil
}

// FindObject fetches a single object by class and id.
func (r *ObjectPostgres) FindObject(ctx context.Context, class, id string) (*model.Object, error) {
	const q = `
		SELECT class, id, attributes, created_at
		FROM objects
		WHERE class = $1 AND id = $2
	`
	return scanObject(r.db.QueryRowContext(ctx, q, class, id))
}

// ListObjects returns the objects of a class using LIMIT/OFFSET pagination and a total count.
func (r *ObjectPostgres) ListObjects(ctx context.Context, class string, pq repository.PageQuery) (*repository.PageResult[model.Object], error) {
	const qCount = `SELECT COUNT(*) FROM objects WHERE class = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, class).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT class, id, attributes, created_at
		FROM objects
		WHERE class = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, class, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Object, 0)
	for rows.Next() {
		obj, err := scanObject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *obj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Object]{
		Items: items,
		Total: total,
	}, nil
}

// FindAttachment fetches the document metadata of one field.
func (r *ObjectPostgres) FindAttachment(ctx context.Context, ref model.ObjectRef) (*model.Attachment, error) {
	const q = `
		SELECT class, object_id, field, file_name, mime_type, size, storage_path, downloads_count, updated_at
		FROM object_documents
		WHERE class = $1 AND object_id = $2 AND field = $3
	`
	return scanAttachment(r.db.QueryRowContext(ctx, q, ref.Class, ref.ID, ref.Field))
}

// ListAttachments returns the document slots of an object.
func (r *ObjectPostgres) ListAttachments(ctx context.Context, class, id string) ([]model.Attachment, error) {
	const q = `
		SELECT class, object_id, field, file_name, mime_type, size, storage_path, downloads_count, updated_at
		FROM object_documents
		WHERE class = $1 AND object_id = $2
		ORDER BY field
	`
	rows, err := r.db.QueryContext(ctx, q, class, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Attachment, 0)
	for rows.Next() {
		att, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveAttachment upserts the document metadata of a field and returns the stored row.
func (r *ObjectPostgres) SaveAttachment(ctx context.Context, att *model.Attachment) (*model.Attachment, error) {
	const q = `
		INSERT INTO object_documents (class, object_id, field, file_name, mime_type, size, storage_path, downloads_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (class, object_id, field) DO UPDATE SET
			file_name = EXCLUDED.file_name,
			mime_type = EXCLUDED.mime_type,
			size = EXCLUDED.size,
			storage_path = EXCLUDED.storage_path,
			downloads_count = EXCLUDED.downloads_count,
			updated_at = EXCLUDED.updated_at
		RETURNING class, object_id, field, file_name, mime_type, size, storage_path, downloads_count, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		att.Ref.Class,
		att.Ref.ID,
		att.Ref.Field,
		att.FileName,
		att.MimeType,
		att.Size,
		att.StoragePath,
		att.DownloadsCount,
		att.UpdatedAt,
	)
	return scanAttachment(row)
}

// UpdateDownloadsCount stores the downloads counter of a field.
// It returns sql.ErrNoRows when the slot does not exist.
func (r *ObjectPostgres) UpdateDownloadsCount(ctx context.Context, ref model.ObjectRef, count int) error {
	const q = `
		UPDATE object_documents
		SET downloads_count = $4
		WHERE class = $1 AND object_id = $2 AND field = $3
	`
	res, err := r.db.ExecContext(ctx, q, ref.Class, ref.ID, ref.Field, count)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteAttachment removes the document metadata of a field. It does not return an error if the row does not exist.
func (r *ObjectPostgres) DeleteAttachment(ctx context.Context, ref model.ObjectRef) error {
	const q = `DELETE FROM object_documents WHERE class = $1 AND object_id = $2 AND field = $3`
	_, err := r.db.ExecContext(ctx, q, ref.Class, ref.ID, ref.Field)
	return err
}

func scanObject(row rowScanner) (*model.Object, error) {
	var (
		obj   model.Object
		attrs []byte
	)
	if err := row.Scan(&obj.Class, &obj.ID, &attrs, &obj.CreatedAt); err != nil {
		return nil, err
	}
	obj.Attributes = map[string]string{}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &obj.Attributes); err != nil {
			return nil, fmt.Errorf("decode attributes of %s::%s: %w", obj.Class, obj.ID, err)
		}
	}
	return &obj, nil
}

func scanAttachment(row rowScanner) (*model.Attachment, error) {
	var (
		att       model.Attachment
		downloads sql.NullInt64
	)
	if err := row.Scan(
		&att.Ref.Class,
		&att.Ref.ID,
		&att.Ref.Field,
		&att.FileName,
		&att.MimeType,
		&att.Size,
		&att.StoragePath,
		&downloads,
		&att.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// Rows written before the counter existed hold NULL.
	att.DownloadsCount = int(downloads.Int64)
	return &att, nil
}

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func encodeAttributes(attrs map[string]string) ([]byte, error) {
	if attrs == nil {
		attrs = map[string]string{}
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("encode attributes: %w", err)
	}
	return b, nil
}
