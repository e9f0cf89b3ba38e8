// Package pull contains the pure reconciliation rules behind project pulls.
// Nothing in this package touches the database or the version-control client;
// the app layer feeds it data and acts on its decisions.
package pull

// DefaultBranchName is the branch every checkout lands on. The engine names
// its mainline "master" and this layer never checks out anything else.
const DefaultBranchName = "master"

// Kind classifies a project pull based on what the version-control client
// already knows about the remote.
type Kind int

const (
	// FirstPull means the remote has no branches yet: the project has never
	// been pulled into version control, so there is nothing to fetch.
	FirstPull Kind = iota

	// ContinuationPull means remote branches already exist and the local
	// checkout must be brought up to date before checkout.
	ContinuationPull
)

// String returns a human-readable name for the pull kind.
func (k Kind) String() string {
	switch k {
	case FirstPull:
		return "first"
	case ContinuationPull:
		return "continuation"
	default:
		return "unknown"
	}
}

// Classify determines whether a pull is the first for a project or a
// continuation of an already version-controlled one, from the branch names
// the client reports for the bound project.
func Classify(remoteBranches []string) Kind {
	if len(remoteBranches) == 0 {
		return FirstPull
	}
	return ContinuationPull
}
