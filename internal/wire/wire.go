// Package wire provides dependency injection for the tether application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5/osfs"

	cliadapter "github.com/example/tether/internal/adapters/cli"
	"github.com/example/tether/internal/adapters/gitvcs"
	"github.com/example/tether/internal/adapters/sqlite"
	"github.com/example/tether/internal/app"
	"github.com/example/tether/internal/config"
	"github.com/example/tether/internal/db"
	"github.com/example/tether/internal/ports/primary"
)

var (
	pullService      primary.PullService
	spaceService     primary.SpaceService
	workspaceService primary.WorkspaceService
	once             sync.Once
)

// PullService returns the singleton PullService instance.
func PullService() primary.PullService {
	once.Do(initServices)
	return pullService
}

// SpaceService returns the singleton SpaceService instance.
func SpaceService() primary.SpaceService {
	once.Do(initServices)
	return spaceService
}

// WorkspaceService returns the singleton WorkspaceService instance.
func WorkspaceService() primary.WorkspaceService {
	once.Do(initServices)
	return workspaceService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	spaceRepo := sqlite.NewSpaceRepository(database)
	workspaceRepo := sqlite.NewWorkspaceRepository(database)
	documentRepo := sqlite.NewDocumentRepository(database)

	// Version-control client rooted under the data directory
	dataDir, err := config.DefaultDataDir()
	if err != nil {
		log.Fatalf("failed to resolve data directory: %v", err)
	}
	vcsClient := gitvcs.NewClient(osfs.New(dataDir))

	// Create services (primary ports implementation)
	pullService = app.NewPullService(spaceRepo, workspaceRepo, documentRepo, vcsClient)
	spaceService = app.NewSpaceService(spaceRepo)
	workspaceService = app.NewWorkspaceService(workspaceRepo)
}

// PullAdapter returns a new PullAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func PullAdapter() *cliadapter.PullAdapter {
	return PullAdapterWithOutput(os.Stdout)
}

// PullAdapterWithOutput returns a new PullAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func PullAdapterWithOutput(out io.Writer) *cliadapter.PullAdapter {
	once.Do(initServices)
	return cliadapter.NewPullAdapter(pullService, out)
}

// SpaceAdapter returns a new SpaceAdapter writing to stdout.
func SpaceAdapter() *cliadapter.SpaceAdapter {
	return SpaceAdapterWithOutput(os.Stdout)
}

// SpaceAdapterWithOutput returns a new SpaceAdapter writing to the given output.
func SpaceAdapterWithOutput(out io.Writer) *cliadapter.SpaceAdapter {
	once.Do(initServices)
	return cliadapter.NewSpaceAdapter(spaceService, out)
}

// WorkspaceAdapter returns a new WorkspaceAdapter writing to stdout.
func WorkspaceAdapter() *cliadapter.WorkspaceAdapter {
	return WorkspaceAdapterWithOutput(os.Stdout)
}

// WorkspaceAdapterWithOutput returns a new WorkspaceAdapter writing to the given output.
func WorkspaceAdapterWithOutput(out io.Writer) *cliadapter.WorkspaceAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkspaceAdapter(workspaceService, out)
}
