// Package memory holds an in-process snapshot store, used when the
// database is unreachable and by tests. Nothing survives a restart.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portsrepo "github.com/condobooks/condo_books_app/internal/core/ports/repositories"
)

// SnapshotRepository keeps the serialized snapshot in memory. The blob
// round-trips through JSON so callers get value isolation, the same as
// the database-backed store.
type SnapshotRepository struct {
	mu   sync.RWMutex
	data []byte
}

var _ portsrepo.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates an empty in-memory store.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

func (r *SnapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data == nil {
		return nil, fmt.Errorf("%w: no snapshot stored", apperrors.ErrNotFound)
	}
	snapshot := &domain.Snapshot{}
	if err := json.Unmarshal(r.data, snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snapshot, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
	return nil
}

func (r *SnapshotRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = nil
	return nil
}
