package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portsrepo "github.com/condobooks/condo_books_app/internal/core/ports/repositories"
)

// StoreService owns the in-memory snapshot and serializes every read and
// mutation behind one mutex. Mutations run against the in-memory copy
// first and the whole snapshot is re-saved afterwards; a failed save
// leaves the mutation applied, so the in-memory state can run ahead of
// the durable state until the next successful save.
type StoreService struct {
	BaseService
	mu       sync.Mutex
	repo     portsrepo.SnapshotRepository
	snapshot *domain.Snapshot
	degraded bool
}

// NewStoreService loads the stored snapshot. An empty store starts from
// the seeded defaults; a load failure also starts from defaults but
// flags the store as degraded so the condition is visible, not silent.
func NewStoreService(ctx context.Context, repo portsrepo.SnapshotRepository) *StoreService {
	s := &StoreService{repo: repo}
	snapshot, err := repo.Load(ctx)
	switch {
	case err == nil:
		snapshot.Normalize()
		s.snapshot = snapshot
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogInfo(ctx, "store is empty, starting from seeded defaults")
		s.snapshot = domain.DefaultSnapshot()
	default:
		s.LogError(ctx, "failed to load snapshot, starting from seeded defaults", "error", err)
		s.snapshot = domain.DefaultSnapshot()
		s.degraded = true
	}
	return s
}

// Degraded reports whether the startup load failed and the service is
// running on defaults.
func (s *StoreService) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// View runs fn with read access to the snapshot under the store lock.
// fn must not retain references into the snapshot past its return.
func (s *StoreService) View(fn func(snapshot *domain.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.snapshot)
}

// Update runs fn against the snapshot and persists the result. An error
// from fn aborts before anything is saved. A save failure is returned to
// the caller; the in-memory mutation is kept and the next successful
// save will catch the durable copy up.
func (s *StoreService) Update(ctx context.Context, fn func(snapshot *domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.snapshot); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, s.snapshot); err != nil {
		s.LogError(ctx, "failed to save snapshot, in-memory state is ahead of the stored copy", "error", err)
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Clear resets the snapshot to the seeded defaults and empties the store.
func (s *StoreService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = domain.DefaultSnapshot()
	s.degraded = false
	if err := s.repo.Clear(ctx); err != nil {
		s.LogError(ctx, "failed to clear stored snapshot", "error", err)
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}
