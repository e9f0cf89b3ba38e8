package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/tether/internal/ports/primary"
)

// WorkspaceAdapter translates CLI operations to WorkspaceService calls.
type WorkspaceAdapter struct {
	service primary.WorkspaceService
	out     io.Writer
}

// NewWorkspaceAdapter creates a new WorkspaceAdapter with the given service.
func NewWorkspaceAdapter(service primary.WorkspaceService, out io.Writer) *WorkspaceAdapter {
	return &WorkspaceAdapter{
		service: service,
		out:     out,
	}
}

// List lists all local workspaces.
func (a *WorkspaceAdapter) List(ctx context.Context) error {
	workspaces, err := a.service.ListWorkspaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	if len(workspaces) == 0 {
		fmt.Fprintln(a.out, "No workspaces found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-18s %-18s %-12s %s\n", "ID", "SPACE", "SCOPE", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, w := range workspaces {
		fmt.Fprintf(a.out, "%-18s %-18s %-12s %s\n", w.ID, w.ParentID, w.Scope, w.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single workspace.
func (a *WorkspaceAdapter) Show(ctx context.Context, workspaceID string) error {
	workspace, err := a.service.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	fmt.Fprintf(a.out, "\nWorkspace: %s\n", workspace.ID)
	fmt.Fprintf(a.out, "Name:      %s\n", workspace.Name)
	fmt.Fprintf(a.out, "Space:     %s\n", workspace.ParentID)
	fmt.Fprintf(a.out, "Scope:     %s\n", workspace.Scope)
	fmt.Fprintf(a.out, "Created:   %s\n", workspace.CreatedAt)
	fmt.Fprintln(a.out)

	return nil
}
