package app

import (
	"context"
	"fmt"

	"github.com/example/tether/internal/core/pull"
	"github.com/example/tether/internal/ports/secondary"
)

// WorkspaceScopeCollection tags workspaces that represent version-controlled
// project roots.
const WorkspaceScopeCollection = "collection"

// WorkspaceReconciler ensures exactly one local workspace exists per remote
// project root, with correct identity, name and parent.
type WorkspaceReconciler struct {
	workspaceRepo secondary.WorkspaceRepository
	documentRepo  secondary.DocumentRepository
}

// NewWorkspaceReconciler creates a new WorkspaceReconciler with injected dependencies.
func NewWorkspaceReconciler(workspaceRepo secondary.WorkspaceRepository, documentRepo secondary.DocumentRepository) *WorkspaceReconciler {
	return &WorkspaceReconciler{
		workspaceRepo: workspaceRepo,
		documentRepo:  documentRepo,
	}
}

// Reconcile looks up the workspace keyed by the project's root document id,
// creating it under the given space when absent, or correcting a drifted
// name/parent in place when present. The returned bool reports creation.
// When name and parent already match, no write happens at all.
func (r *WorkspaceReconciler) Reconcile(ctx context.Context, space *secondary.SpaceRecord, project *secondary.ProjectDescriptor) (*secondary.WorkspaceRecord, bool, error) {
	id, err := pull.BindWorkspace(project.RootDocumentID)
	if err != nil {
		return nil, false, fmt.Errorf("cannot bind workspace for project %q: %w", project.Name, err)
	}

	existing, err := r.workspaceRepo.GetByID(ctx, id.String())
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up workspace %s: %w", id, err)
	}

	if existing == nil {
		workspace := &secondary.WorkspaceRecord{
			ID:       id.String(),
			Name:     project.Name,
			ParentID: space.ID,
			Scope:    WorkspaceScopeCollection,
		}
		if err := r.workspaceRepo.Create(ctx, workspace); err != nil {
			return nil, false, fmt.Errorf("failed to create workspace %s: %w", id, err)
		}
		return workspace, true, nil
	}

	if existing.Name != project.Name || existing.ParentID != space.ID {
		existing.Name = project.Name
		existing.ParentID = space.ID
		if err := r.workspaceRepo.Update(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("failed to update workspace %s: %w", id, err)
		}
	}

	return existing, false, nil
}

// RepairOrphans rewires documents that were parented directly under the
// workspace (a structural anomaly: this document class must hang off the
// space) to the resolved space. Documents with any other parent are left
// untouched. Returns the number of documents repaired.
func (r *WorkspaceReconciler) RepairOrphans(ctx context.Context, workspace *secondary.WorkspaceRecord, space *secondary.SpaceRecord, docs []*secondary.DocumentRecord) (int, error) {
	repaired := 0
	for _, doc := range docs {
		if doc.ParentID != workspace.ID {
			continue
		}
		if err := r.documentRepo.UpdateParent(ctx, doc.ID, space.ID); err != nil {
			return repaired, fmt.Errorf("failed to reparent document %s: %w", doc.ID, err)
		}
		doc.ParentID = space.ID
		repaired++
	}
	return repaired, nil
}
