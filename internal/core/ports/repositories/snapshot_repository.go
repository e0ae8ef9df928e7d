// Package repositories defines the persistence ports for the application
// core. The store is a single serialized snapshot: every operation is a
// whole-object load, save or clear; there is no partial write.
package repositories

import (
	"context"

	"github.com/condobooks/condo_books_app/internal/core/domain"
)

// SnapshotRepository persists the entire application state as one blob.
type SnapshotRepository interface {
	// Load returns the stored snapshot, or apperrors.ErrNotFound when the
	// store is empty.
	Load(ctx context.Context) (*domain.Snapshot, error)
	// Save overwrites the stored snapshot wholesale.
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	// Clear removes the stored snapshot entirely.
	Clear(ctx context.Context) error
}
