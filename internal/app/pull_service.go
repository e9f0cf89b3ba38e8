package app

import (
	"context"
	"fmt"

	"github.com/example/tether/internal/core/pull"
	"github.com/example/tether/internal/ports/primary"
	"github.com/example/tether/internal/ports/secondary"
)

// PullServiceImpl implements the PullService interface. One invocation runs
// the whole sequence: resolve space, reconcile workspace, bind the client,
// classify the pull, optionally fetch and repair, and finally check out.
//
// There are no retries and no rollback here; a failure mid-sequence leaves
// earlier writes in place. Every write is independently idempotent, so a
// failed pull may simply be re-run. Concurrent pulls of the same project are
// the caller's responsibility to serialize.
type PullServiceImpl struct {
	spaceRepo  secondary.SpaceRepository
	resolver   *SpaceResolver
	reconciler *WorkspaceReconciler
	client     secondary.VersionControlClient
}

// NewPullService creates a new PullService with injected dependencies.
func NewPullService(
	spaceRepo secondary.SpaceRepository,
	workspaceRepo secondary.WorkspaceRepository,
	documentRepo secondary.DocumentRepository,
	client secondary.VersionControlClient,
) *PullServiceImpl {
	return &PullServiceImpl{
		spaceRepo:  spaceRepo,
		resolver:   NewSpaceResolver(spaceRepo),
		reconciler: NewWorkspaceReconciler(workspaceRepo, documentRepo),
		client:     client,
	}
}

// PullProject reconciles local state for the project and checks it out.
func (s *PullServiceImpl) PullProject(ctx context.Context, req primary.PullProjectRequest) (*primary.PullProjectResponse, error) {
	// Fetch the remote-bound spaces once up front so the resolver does not
	// repeat the lookup.
	remoteSpaces, err := s.spaceRepo.ListRemote(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote spaces: %w", err)
	}

	project := &secondary.ProjectDescriptor{
		RootDocumentID: req.Project.RootDocumentID,
		Name:           req.Project.Name,
		Team: secondary.TeamDescriptor{
			ID:   req.Project.Team.ID,
			Name: req.Project.Team.Name,
		},
	}

	return s.pullProject(ctx, s.client, project, remoteSpaces)
}

// pullProject runs the reconciliation sequence against an explicit client and
// candidate space list.
func (s *PullServiceImpl) pullProject(ctx context.Context, client secondary.VersionControlClient, project *secondary.ProjectDescriptor, remoteSpaces []*secondary.SpaceRecord) (*primary.PullProjectResponse, error) {
	space, spaceCreated, err := s.resolver.Resolve(ctx, project.Team.ID, project.Team.Name, remoteSpaces)
	if err != nil {
		return nil, err
	}

	// First reconciliation pass runs before the client is bound: the
	// document set is not known yet, so no orphan repair happens here.
	workspace, workspaceCreated, err := s.reconciler.Reconcile(ctx, space, project)
	if err != nil {
		return nil, err
	}

	if err := client.SetProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to bind version control to project: %w", err)
	}

	branches, err := client.GetRemoteBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote branches: %w", err)
	}

	kind := pull.Classify(branches)
	repaired := 0
	if kind == pull.ContinuationPull {
		docs, err := client.AllDocuments(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch documents: %w", err)
		}
		repaired, err = s.reconciler.RepairOrphans(ctx, workspace, space, docs)
		if err != nil {
			return nil, err
		}
		if err := client.Pull(ctx, nil, space.RemoteID); err != nil {
			return nil, fmt.Errorf("failed to pull remote snapshot: %w", err)
		}
	}

	// Checkout is always the last call, always with an empty prior document
	// set and the fixed default branch.
	if err := client.Checkout(ctx, nil, pull.DefaultBranchName); err != nil {
		return nil, fmt.Errorf("failed to checkout %s: %w", pull.DefaultBranchName, err)
	}

	return &primary.PullProjectResponse{
		Space:            recordToSpace(space),
		SpaceCreated:     spaceCreated,
		Workspace:        recordToWorkspace(workspace),
		WorkspaceCreated: workspaceCreated,
		Kind:             kind.String(),
		RepairedDocs:     repaired,
		Branch:           pull.DefaultBranchName,
	}, nil
}

// Ensure PullServiceImpl implements the interface
var _ primary.PullService = (*PullServiceImpl)(nil)
