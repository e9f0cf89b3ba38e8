// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/example/tether/internal/ports/secondary"
)

// SpaceRepository implements secondary.SpaceRepository with SQLite.
type SpaceRepository struct {
	db *sql.DB
}

// NewSpaceRepository creates a new SQLite space repository.
func NewSpaceRepository(db *sql.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

// Create persists a new space. When the record carries no ID, a fresh one is
// generated and written back.
func (r *SpaceRepository) Create(ctx context.Context, space *secondary.SpaceRecord) error {
	if space.ID == "" {
		space.ID = newEntityID("sp")
	}

	var remoteID sql.NullString
	if space.RemoteID != "" {
		remoteID = sql.NullString{String: space.RemoteID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO spaces (id, remote_id, name) VALUES (?, ?, ?)",
		space.ID, remoteID, space.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}

	return nil
}

// GetByID retrieves a space by its ID.
func (r *SpaceRepository) GetByID(ctx context.Context, id string) (*secondary.SpaceRecord, error) {
	record, err := r.scanSpace(r.db.QueryRowContext(ctx,
		"SELECT id, remote_id, name, created_at, updated_at FROM spaces WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("space %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	return record, nil
}

// GetByRemoteID retrieves the space bound to a remote team id, or nil when
// no space carries that remote id.
func (r *SpaceRepository) GetByRemoteID(ctx context.Context, remoteID string) (*secondary.SpaceRecord, error) {
	record, err := r.scanSpace(r.db.QueryRowContext(ctx,
		"SELECT id, remote_id, name, created_at, updated_at FROM spaces WHERE remote_id = ?", remoteID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get space by remote id: %w", err)
	}
	return record, nil
}

// List retrieves all spaces ordered by name.
func (r *SpaceRepository) List(ctx context.Context) ([]*secondary.SpaceRecord, error) {
	return r.listWhere(ctx,
		"SELECT id, remote_id, name, created_at, updated_at FROM spaces ORDER BY name")
}

// ListRemote retrieves all spaces bound to a remote team.
func (r *SpaceRepository) ListRemote(ctx context.Context) ([]*secondary.SpaceRecord, error) {
	return r.listWhere(ctx,
		"SELECT id, remote_id, name, created_at, updated_at FROM spaces WHERE remote_id IS NOT NULL ORDER BY name")
}

func (r *SpaceRepository) listWhere(ctx context.Context, query string) ([]*secondary.SpaceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	defer rows.Close()

	spaces := []*secondary.SpaceRecord{}
	for rows.Next() {
		record, err := r.scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan space: %w", err)
		}
		spaces = append(spaces, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spaces: %w", err)
	}

	return spaces, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SpaceRepository) scanSpace(row rowScanner) (*secondary.SpaceRecord, error) {
	var (
		remoteID  sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.SpaceRecord{}
	err := row.Scan(&record.ID, &remoteID, &record.Name, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if remoteID.Valid {
		record.RemoteID = remoteID.String
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// newEntityID returns a random id with the given prefix, e.g. "sp_6f1a2b3c4d5e".
func newEntityID(prefix string) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is unrecoverable for id generation
		panic(fmt.Sprintf("failed to generate entity id: %v", err))
	}
	return prefix + "_" + hex.EncodeToString(buf)
}
