// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the outside world
// drives the application.
package primary

import "context"

// PullService defines the primary port for pulling a remote project into the
// local checkout. A pull reconciles the project's team and root document
// against local spaces and workspaces, then drives the version-control client
// to the project's default branch.
type PullService interface {
	// PullProject reconciles local state for the project and checks it out.
	PullProject(ctx context.Context, req PullProjectRequest) (*PullProjectResponse, error)
}

// PullProjectRequest contains parameters for pulling a project.
type PullProjectRequest struct {
	Project Project
}

// PullProjectResponse describes what a pull did to local state.
type PullProjectResponse struct {
	Space            *Space
	SpaceCreated     bool
	Workspace        *Workspace
	WorkspaceCreated bool
	Kind             string // "first" or "continuation"
	RepairedDocs     int    // documents whose parent was rewired to the space
	Branch           string // branch the checkout landed on
}

// Project is the remote descriptor of a version-controlled collection.
type Project struct {
	RootDocumentID string `json:"rootDocumentId"`
	Name           string `json:"name"`
	Team           Team   `json:"team"`
}

// Team is the remote organization owning a project.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
