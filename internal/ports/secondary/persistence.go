// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems: the document store and the version-control client.
package secondary

import "context"

// SpaceRepository defines the secondary port for space persistence.
// A space is the local container for a remote team or organization.
type SpaceRepository interface {
	// Create persists a new space. When the record's ID is empty a new id
	// is generated and written back to the record.
	Create(ctx context.Context, space *SpaceRecord) error

	// GetByID retrieves a space by its ID.
	GetByID(ctx context.Context, id string) (*SpaceRecord, error)

	// GetByRemoteID retrieves the space bound to a remote team id.
	// Returns (nil, nil) when no space carries that remote id.
	GetByRemoteID(ctx context.Context, remoteID string) (*SpaceRecord, error)

	// List retrieves all spaces ordered by name.
	List(ctx context.Context) ([]*SpaceRecord, error)

	// ListRemote retrieves all spaces bound to a remote team.
	ListRemote(ctx context.Context) ([]*SpaceRecord, error)
}

// SpaceRecord represents a space as stored in persistence.
type SpaceRecord struct {
	ID        string
	RemoteID  string // Empty string means null - local-only space
	Name      string
	CreatedAt string
	UpdatedAt string
}

// WorkspaceRepository defines the secondary port for workspace persistence.
// A workspace represents a checked-out project root; its ID is always the
// remote project's root document id.
type WorkspaceRepository interface {
	// Create persists a new workspace with a caller-supplied ID.
	Create(ctx context.Context, workspace *WorkspaceRecord) error

	// GetByID retrieves a workspace by its ID.
	// Returns (nil, nil) when no workspace has that id.
	GetByID(ctx context.Context, id string) (*WorkspaceRecord, error)

	// Update updates the name and parent of an existing workspace.
	// The ID never changes.
	Update(ctx context.Context, workspace *WorkspaceRecord) error

	// List retrieves all workspaces ordered by name.
	List(ctx context.Context) ([]*WorkspaceRecord, error)
}

// WorkspaceRecord represents a workspace as stored in persistence.
type WorkspaceRecord struct {
	ID        string
	Name      string
	ParentID  string // FK to spaces - the containing space
	Scope     string // 'collection' for version-controlled project roots
	CreatedAt string
	UpdatedAt string
}

// DocumentRepository defines the secondary port for generic document
// persistence (requests and other children of a workspace).
type DocumentRepository interface {
	// Upsert inserts a document or replaces an existing one by ID.
	Upsert(ctx context.Context, doc *DocumentRecord) error

	// GetByID retrieves a document by its ID.
	// Returns (nil, nil) when no document has that id.
	GetByID(ctx context.Context, id string) (*DocumentRecord, error)

	// UpdateParent rewrites the parent reference of a document,
	// preserving its identity and all other fields.
	UpdateParent(ctx context.Context, id, parentID string) error

	// ListByParent retrieves documents under a given parent.
	ListByParent(ctx context.Context, parentID string) ([]*DocumentRecord, error)
}

// DocumentRecord represents a generic document as stored in persistence.
type DocumentRecord struct {
	ID        string
	ParentID  string
	Type      string // Empty string means null - e.g. 'request'
	Name      string
	CreatedAt string
	UpdatedAt string
}
