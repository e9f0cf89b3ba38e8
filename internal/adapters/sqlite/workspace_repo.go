package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tether/internal/ports/secondary"
)

// WorkspaceRepository implements secondary.WorkspaceRepository with SQLite.
type WorkspaceRepository struct {
	db *sql.DB
}

// NewWorkspaceRepository creates a new SQLite workspace repository.
func NewWorkspaceRepository(db *sql.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create persists a new workspace with a caller-supplied ID.
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *secondary.WorkspaceRecord) error {
	scope := workspace.Scope
	if scope == "" {
		scope = "collection"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO workspaces (id, name, parent_id, scope) VALUES (?, ?, ?, ?)",
		workspace.ID, workspace.Name, workspace.ParentID, scope,
	)
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	return nil
}

// GetByID retrieves a workspace by its ID, or nil when absent.
func (r *WorkspaceRepository) GetByID(ctx context.Context, id string) (*secondary.WorkspaceRecord, error) {
	record, err := r.scanWorkspace(r.db.QueryRowContext(ctx,
		"SELECT id, name, parent_id, scope, created_at, updated_at FROM workspaces WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return record, nil
}

// Update updates the name and parent of an existing workspace. Identity is
// immutable: the row is addressed by ID and the ID column is never written.
func (r *WorkspaceRepository) Update(ctx context.Context, workspace *secondary.WorkspaceRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE workspaces SET name = ?, parent_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		workspace.Name, workspace.ParentID, workspace.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update workspace: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check workspace update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("workspace %s not found", workspace.ID)
	}

	return nil
}

// List retrieves all workspaces ordered by name.
func (r *WorkspaceRepository) List(ctx context.Context) ([]*secondary.WorkspaceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, parent_id, scope, created_at, updated_at FROM workspaces ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	workspaces := []*secondary.WorkspaceRecord{}
	for rows.Next() {
		record, err := r.scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workspaces: %w", err)
	}

	return workspaces, nil
}

func (r *WorkspaceRepository) scanWorkspace(row rowScanner) (*secondary.WorkspaceRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.WorkspaceRecord{}
	err := row.Scan(&record.ID, &record.Name, &record.ParentID, &record.Scope, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}
