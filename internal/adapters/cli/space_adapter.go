package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/tether/internal/ports/primary"
)

// SpaceAdapter translates CLI operations to SpaceService calls.
type SpaceAdapter struct {
	service primary.SpaceService
	out     io.Writer
}

// NewSpaceAdapter creates a new SpaceAdapter with the given service.
func NewSpaceAdapter(service primary.SpaceService, out io.Writer) *SpaceAdapter {
	return &SpaceAdapter{
		service: service,
		out:     out,
	}
}

// List lists all local spaces.
func (a *SpaceAdapter) List(ctx context.Context) error {
	spaces, err := a.service.ListSpaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to list spaces: %w", err)
	}

	if len(spaces) == 0 {
		fmt.Fprintln(a.out, "No spaces found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-18s %-14s %s\n", "ID", "REMOTE", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, s := range spaces {
		remote := s.RemoteID
		if remote == "" {
			remote = "(local)"
		}
		fmt.Fprintf(a.out, "%-18s %-14s %s\n", s.ID, remote, s.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single space.
func (a *SpaceAdapter) Show(ctx context.Context, spaceID string) error {
	space, err := a.service.GetSpace(ctx, spaceID)
	if err != nil {
		return fmt.Errorf("failed to get space: %w", err)
	}

	fmt.Fprintf(a.out, "\nSpace:   %s\n", space.ID)
	fmt.Fprintf(a.out, "Name:    %s\n", space.Name)
	if space.RemoteID != "" {
		fmt.Fprintf(a.out, "Remote:  %s\n", space.RemoteID)
	}
	fmt.Fprintf(a.out, "Created: %s\n", space.CreatedAt)
	fmt.Fprintln(a.out)

	return nil
}
