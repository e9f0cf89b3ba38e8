package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tether/internal/ports/secondary"
)

// DocumentRepository implements secondary.DocumentRepository with SQLite.
type DocumentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new SQLite document repository.
func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Upsert inserts a document or replaces an existing one by ID.
func (r *DocumentRepository) Upsert(ctx context.Context, doc *secondary.DocumentRecord) error {
	var docType sql.NullString
	if doc.Type != "" {
		docType = sql.NullString{String: doc.Type, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, parent_id, type, name) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET parent_id = excluded.parent_id, type = excluded.type, name = excluded.name, updated_at = CURRENT_TIMESTAMP`,
		doc.ID, doc.ParentID, docType, doc.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}

// GetByID retrieves a document by its ID, or nil when absent.
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*secondary.DocumentRecord, error) {
	record, err := r.scanDocument(r.db.QueryRowContext(ctx,
		"SELECT id, parent_id, type, name, created_at, updated_at FROM documents WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return record, nil
}

// UpdateParent rewrites the parent reference of a document.
func (r *DocumentRepository) UpdateParent(ctx context.Context, id, parentID string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE documents SET parent_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		parentID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update document parent: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check document update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("document %s not found", id)
	}

	return nil
}

// ListByParent retrieves documents under a given parent.
func (r *DocumentRepository) ListByParent(ctx context.Context, parentID string) ([]*secondary.DocumentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, parent_id, type, name, created_at, updated_at FROM documents WHERE parent_id = ? ORDER BY name", parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []*secondary.DocumentRecord{}
	for rows.Next() {
		record, err := r.scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

func (r *DocumentRepository) scanDocument(row rowScanner) (*secondary.DocumentRecord, error) {
	var (
		docType   sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.DocumentRecord{}
	err := row.Scan(&record.ID, &record.ParentID, &docType, &record.Name, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if docType.Valid {
		record.Type = docType.String
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}
