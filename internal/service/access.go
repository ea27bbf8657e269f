package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"time"

	"docvault/internal/metrics"
	"docvault/internal/model"
	"docvault/internal/repository"
)

// Secret is the value a caller presents for an object. An empty Field disables the check;
// an object without the Field attribute matches an empty Value only.
type Secret struct {
	Field string
	Value string
}

// objectGate resolves the object behind every object-scoped operation.
type objectGate struct {
	repo  repository.ObjectRepository
	delay time.Duration
}

// resolve returns the object when it exists and the secret matches. A missing object and a
// wrong secret both fail with ErrNotFoundOrForbidden; the latter after the mismatch delay.
func (g objectGate) resolve(ctx context.Context, class, id string, secret Secret) (*model.Object, error) {
	obj, err := g.repo.FindObject(ctx, class, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundOrForbidden(class, id)
		}
		return nil, err
	}

	if secret.Field == "" {
		return obj, nil
	}
	expected, _ := obj.Attribute(secret.Field)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(secret.Value)) != 1 {
		metrics.SecretMismatches.Inc()
		_ = sleepContext(ctx, g.delay)
		return nil, notFoundOrForbidden(class, id)
	}
	return obj, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
