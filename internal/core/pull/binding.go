package pull

import "errors"

// ErrNoRootDocument is returned when a project descriptor carries no root
// document id and therefore cannot be bound to a local workspace.
var ErrNoRootDocument = errors.New("project has no root document id")

// WorkspaceID is the binding key between a remote project and its local
// workspace: a workspace's identity is always the project's root document id.
// Constructing ids through BindWorkspace keeps that invariant in one place
// instead of relying on callers to copy the right field.
type WorkspaceID string

// BindWorkspace derives the workspace identity for a project's root document.
func BindWorkspace(rootDocumentID string) (WorkspaceID, error) {
	if rootDocumentID == "" {
		return "", ErrNoRootDocument
	}
	return WorkspaceID(rootDocumentID), nil
}

// String returns the id as a plain string for persistence and display.
func (id WorkspaceID) String() string {
	return string(id)
}
