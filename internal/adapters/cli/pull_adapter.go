// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing and output
// formatting, but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/tether/internal/ports/primary"
)

// PullAdapter translates CLI operations to PullService calls.
// It depends only on the PullService interface, enabling easy testing with mocks.
type PullAdapter struct {
	service primary.PullService
	out     io.Writer
}

// NewPullAdapter creates a new PullAdapter with the given service.
func NewPullAdapter(service primary.PullService, out io.Writer) *PullAdapter {
	return &PullAdapter{
		service: service,
		out:     out,
	}
}

// Pull reconciles and checks out the given project, reporting what changed.
func (a *PullAdapter) Pull(ctx context.Context, project primary.Project) error {
	resp, err := a.service.PullProject(ctx, primary.PullProjectRequest{Project: project})
	if err != nil {
		return fmt.Errorf("failed to pull project: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()

	if resp.SpaceCreated {
		fmt.Fprintf(a.out, "%s Created space %s: %s\n", green("✓"), resp.Space.ID, resp.Space.Name)
	} else {
		fmt.Fprintf(a.out, "  Space %s: %s\n", resp.Space.ID, resp.Space.Name)
	}

	if resp.WorkspaceCreated {
		fmt.Fprintf(a.out, "%s Created workspace %s: %s\n", green("✓"), resp.Workspace.ID, resp.Workspace.Name)
	} else {
		fmt.Fprintf(a.out, "  Workspace %s: %s\n", resp.Workspace.ID, resp.Workspace.Name)
	}

	if resp.RepairedDocs > 0 {
		fmt.Fprintf(a.out, "%s Repaired %d orphaned document(s)\n", green("✓"), resp.RepairedDocs)
	}

	fmt.Fprintf(a.out, "%s Checked out %s (%s pull)\n", green("✓"), resp.Branch, resp.Kind)
	return nil
}
