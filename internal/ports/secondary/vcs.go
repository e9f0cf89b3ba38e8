package secondary

import "context"

// VersionControlClient defines the secondary port for the version-control
// engine. The engine owns branches, snapshots and the commit graph; this
// application only binds it to a project and drives checkout and pull.
//
// Callers must serialize concurrent pulls of the same project; the client is
// not required to tolerate interleaved Checkout/Pull sequences.
type VersionControlClient interface {
	// SetProject binds the client to a remote project descriptor. All
	// subsequent calls operate on that project until rebound.
	SetProject(ctx context.Context, project *ProjectDescriptor) error

	// GetRemoteBranches returns the branch names the remote knows for the
	// bound project, in the remote's order. An empty result means the
	// project has never been pulled into version control.
	GetRemoteBranches(ctx context.Context) ([]string, error)

	// Checkout establishes the local head at the given branch. The prior
	// document id set tells the engine which local documents belonged to
	// the previous checkout; this flow always passes none.
	Checkout(ctx context.Context, priorDocumentIDs []string, branchName string) error

	// Pull fetches the latest snapshot for the given remote identity into
	// the local engine state.
	Pull(ctx context.Context, priorDocumentIDs []string, remoteID string) error

	// AllDocuments returns every document the engine knows for the bound
	// project.
	AllDocuments(ctx context.Context) ([]*DocumentRecord, error)
}

// ProjectDescriptor describes a remote version-controlled project. It is
// supplied by the caller and immutable for the duration of a pull.
type ProjectDescriptor struct {
	RootDocumentID string
	Name           string
	Team           TeamDescriptor
}

// TeamDescriptor identifies the remote team or organization owning a project.
type TeamDescriptor struct {
	ID   string
	Name string
}
