package app

import (
	"context"
	"fmt"

	"github.com/example/tether/internal/ports/primary"
	"github.com/example/tether/internal/ports/secondary"
)

// SpaceServiceImpl implements the SpaceService interface.
type SpaceServiceImpl struct {
	spaceRepo secondary.SpaceRepository
}

// NewSpaceService creates a new SpaceService with injected dependencies.
func NewSpaceService(spaceRepo secondary.SpaceRepository) *SpaceServiceImpl {
	return &SpaceServiceImpl{spaceRepo: spaceRepo}
}

// GetSpace retrieves a space by ID.
func (s *SpaceServiceImpl) GetSpace(ctx context.Context, spaceID string) (*primary.Space, error) {
	record, err := s.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("space not found: %w", err)
	}
	return recordToSpace(record), nil
}

// ListSpaces lists all local spaces.
func (s *SpaceServiceImpl) ListSpaces(ctx context.Context) ([]*primary.Space, error) {
	records, err := s.spaceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}

	spaces := make([]*primary.Space, len(records))
	for i, r := range records {
		spaces[i] = recordToSpace(r)
	}
	return spaces, nil
}

// WorkspaceServiceImpl implements the WorkspaceService interface.
type WorkspaceServiceImpl struct {
	workspaceRepo secondary.WorkspaceRepository
}

// NewWorkspaceService creates a new WorkspaceService with injected dependencies.
func NewWorkspaceService(workspaceRepo secondary.WorkspaceRepository) *WorkspaceServiceImpl {
	return &WorkspaceServiceImpl{workspaceRepo: workspaceRepo}
}

// GetWorkspace retrieves a workspace by ID.
func (s *WorkspaceServiceImpl) GetWorkspace(ctx context.Context, workspaceID string) (*primary.Workspace, error) {
	record, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("workspace %s not found", workspaceID)
	}
	return recordToWorkspace(record), nil
}

// ListWorkspaces lists all local workspaces.
func (s *WorkspaceServiceImpl) ListWorkspaces(ctx context.Context) ([]*primary.Workspace, error) {
	records, err := s.workspaceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	workspaces := make([]*primary.Workspace, len(records))
	for i, r := range records {
		workspaces[i] = recordToWorkspace(r)
	}
	return workspaces, nil
}

// Helper conversions shared by services

func recordToSpace(r *secondary.SpaceRecord) *primary.Space {
	return &primary.Space{
		ID:        r.ID,
		RemoteID:  r.RemoteID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}

func recordToWorkspace(r *secondary.WorkspaceRecord) *primary.Workspace {
	return &primary.Workspace{
		ID:        r.ID,
		Name:      r.Name,
		ParentID:  r.ParentID,
		Scope:     r.Scope,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure implementations satisfy the interfaces
var (
	_ primary.SpaceService     = (*SpaceServiceImpl)(nil)
	_ primary.WorkspaceService = (*WorkspaceServiceImpl)(nil)
)
