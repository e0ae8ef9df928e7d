// Package pgsql persists the application snapshot as a single jsonb row.
// The dataset is one owner's books for one property: small enough that a
// whole-blob save on every mutation is simpler and safer than a
// relational schema.
package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/core/domain"
	portsrepo "github.com/condobooks/condo_books_app/internal/core/ports/repositories"
)

// snapshotRowID is the fixed primary key: the table holds one row.
const snapshotRowID = 1

const createTableSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INT PRIMARY KEY,
	data JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// SnapshotRepository stores the snapshot in PostgreSQL.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

var _ portsrepo.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates the repository and ensures the table
// exists.
func NewSnapshotRepository(ctx context.Context, pool *pgxpool.Pool) (*SnapshotRepository, error) {
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("creating snapshots table: %w", err)
	}
	return &SnapshotRepository{pool: pool}, nil
}

// Load reads the stored snapshot, or apperrors.ErrNotFound when the
// table is empty.
func (r *SnapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM snapshots WHERE id = $1`, snapshotRowID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: no snapshot stored", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	snapshot := &domain.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snapshot, nil
}

// Save overwrites the stored snapshot wholesale.
func (r *SnapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO snapshots (id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		snapshotRowID, data)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Clear removes the stored snapshot.
func (r *SnapshotRepository) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM snapshots WHERE id = $1`, snapshotRowID); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}
