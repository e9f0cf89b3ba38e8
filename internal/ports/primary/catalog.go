package primary

import "context"

// SpaceService defines the primary port for inspecting local spaces.
type SpaceService interface {
	// GetSpace retrieves a space by ID.
	GetSpace(ctx context.Context, spaceID string) (*Space, error)

	// ListSpaces lists all local spaces.
	ListSpaces(ctx context.Context) ([]*Space, error)
}

// WorkspaceService defines the primary port for inspecting local workspaces.
type WorkspaceService interface {
	// GetWorkspace retrieves a workspace by ID.
	GetWorkspace(ctx context.Context, workspaceID string) (*Workspace, error)

	// ListWorkspaces lists all local workspaces.
	ListWorkspaces(ctx context.Context) ([]*Workspace, error)
}

// Space is the caller-facing view of a local space.
type Space struct {
	ID        string
	RemoteID  string // empty for local-only spaces
	Name      string
	CreatedAt string
}

// Workspace is the caller-facing view of a local workspace.
type Workspace struct {
	ID        string
	Name      string
	ParentID  string
	Scope     string
	CreatedAt string
}
