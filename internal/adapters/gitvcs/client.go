// Package gitvcs implements the version-control secondary port on top of
// go-git. Each project gets its own repository under the client's filesystem
// root; documents live as JSON files in the worktree so the commit graph
// carries full document history.
package gitvcs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/example/tether/internal/ports/secondary"
)

const (
	// ProjectsDir is the directory under the filesystem root that holds one
	// repository per project.
	ProjectsDir = "projects"

	// DocumentsDir is the worktree directory holding document JSON files.
	DocumentsDir = "documents"

	// ManifestFile records the bound project descriptor inside the worktree.
	ManifestFile = "project.json"

	remoteName = "origin"
)

// ErrNoProject is returned when an operation runs before SetProject.
var ErrNoProject = errors.New("no project bound")

// Client drives a local go-git repository per project. It satisfies
// secondary.VersionControlClient. Not safe for concurrent use.
type Client struct {
	root billy.Filesystem

	project  *secondary.ProjectDescriptor
	repo     *gogit.Repository
	worktree *gogit.Worktree
	fs       billy.Filesystem
}

var _ secondary.VersionControlClient = (*Client)(nil)

// NewClient creates a client rooted at the given filesystem. All repository
// state lives under root; pass an in-memory filesystem for tests.
func NewClient(root billy.Filesystem) *Client {
	return &Client{root: root}
}

// manifest is the on-disk form of the bound project descriptor.
type manifest struct {
	RootDocumentID string `json:"rootDocumentId"`
	Name           string `json:"name"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
}

// documentFile is the on-disk form of a document in the worktree.
type documentFile struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId"`
	Type     string `json:"type"`
	Name     string `json:"name"`
}

// SetProject binds the client to a project, opening its repository or
// initializing a fresh one with the manifest as the root commit.
func (c *Client) SetProject(ctx context.Context, project *secondary.ProjectDescriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if project == nil || project.RootDocumentID == "" {
		return fmt.Errorf("project descriptor requires a root document id")
	}

	wtFS, err := c.root.Chroot(path.Join(ProjectsDir, project.RootDocumentID))
	if err != nil {
		return fmt.Errorf("failed to enter project directory: %w", err)
	}
	dotGit, err := wtFS.Chroot(gogit.GitDirName)
	if err != nil {
		return fmt.Errorf("failed to enter git directory: %w", err)
	}
	storage := filesystem.NewStorage(dotGit, cache.NewObjectLRUDefault())

	repo, err := gogit.Open(storage, wtFS)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		repo, err = c.initProject(wtFS, storage, project)
	}
	if err != nil {
		return fmt.Errorf("failed to open project repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	c.project = project
	c.repo = repo
	c.worktree = worktree
	c.fs = wtFS
	return nil
}

// initProject creates the repository and commits the project manifest so the
// default branch exists from the start.
func (c *Client) initProject(wtFS billy.Filesystem, storage *filesystem.Storage, project *secondary.ProjectDescriptor) (*gogit.Repository, error) {
	repo, err := gogit.Init(storage, wtFS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	data, err := json.MarshalIndent(manifest{
		RootDocumentID: project.RootDocumentID,
		Name:           project.Name,
		TeamID:         project.Team.ID,
		TeamName:       project.Team.Name,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := util.WriteFile(wtFS, ManifestFile, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, err := worktree.Add(ManifestFile); err != nil {
		return nil, fmt.Errorf("failed to stage manifest: %w", err)
	}
	if _, err := worktree.Commit("bind project", &gogit.CommitOptions{
		Author: commitSignature(),
	}); err != nil {
		return nil, fmt.Errorf("failed to commit manifest: %w", err)
	}
	return repo, nil
}

func commitSignature() *object.Signature {
	return &object.Signature{
		Name:  "tether",
		Email: "tether@localhost",
		When:  time.Now(),
	}
}

// GetRemoteBranches lists branch names known under the project's origin
// remote. A project that was never pulled has none.
func (c *Client) GetRemoteBranches(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.repo == nil {
		return nil, ErrNoProject
	}

	refs, err := c.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	prefix := path.Join("refs/remotes", remoteName) + "/"
	branches := []string{}
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		short := strings.TrimPrefix(name, prefix)
		if short == "HEAD" {
			return nil
		}
		branches = append(branches, short)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk references: %w", err)
	}
	return branches, nil
}

// Checkout establishes the local head at the given branch, creating it from
// the current head when missing. Documents from the prior checkout are
// removed from the worktree first so the branch content fully replaces them.
func (c *Client) Checkout(ctx context.Context, priorDocumentIDs []string, branchName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.worktree == nil {
		return ErrNoProject
	}
	if branchName == "" {
		return fmt.Errorf("branch name cannot be empty")
	}

	// Missing files are fine, the prior set is advisory.
	for _, id := range priorDocumentIDs {
		_ = c.fs.Remove(documentPath(id))
	}

	branchRef := plumbing.NewBranchReferenceName(branchName)
	if _, err := c.repo.Reference(branchRef, true); err != nil {
		head, headErr := c.repo.Head()
		if headErr != nil {
			return fmt.Errorf("failed to resolve head for new branch %s: %w", branchName, headErr)
		}
		if setErr := c.repo.Storer.SetReference(plumbing.NewHashReference(branchRef, head.Hash())); setErr != nil {
			return fmt.Errorf("failed to create branch %s: %w", branchName, setErr)
		}
	}

	if err := c.worktree.Checkout(&gogit.CheckoutOptions{Branch: branchRef, Force: true}); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// Pull fast-forwards the current branch from the project's origin remote.
// Already-up-to-date is not an error. Documents from the prior checkout are
// dropped before the snapshot is applied.
func (c *Client) Pull(ctx context.Context, priorDocumentIDs []string, remoteID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.worktree == nil {
		return ErrNoProject
	}
	if remoteID == "" {
		return fmt.Errorf("remote id cannot be empty")
	}

	for _, id := range priorDocumentIDs {
		_ = c.fs.Remove(documentPath(id))
	}

	err := c.worktree.PullContext(ctx, &gogit.PullOptions{RemoteName: remoteName})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to pull remote %s: %w", remoteID, err)
	}
	return nil
}

// AllDocuments decodes every document file in the worktree.
func (c *Client) AllDocuments(ctx context.Context) ([]*secondary.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.fs == nil {
		return nil, ErrNoProject
	}

	entries, err := c.fs.ReadDir(DocumentsDir)
	if err != nil {
		// A project with no documents has no documents directory yet.
		return []*secondary.DocumentRecord{}, nil
	}

	docs := []*secondary.DocumentRecord{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := util.ReadFile(c.fs, path.Join(DocumentsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", entry.Name(), err)
		}
		var doc documentFile
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", entry.Name(), err)
		}
		docs = append(docs, &secondary.DocumentRecord{
			ID:       doc.ID,
			ParentID: doc.ParentID,
			Type:     doc.Type,
			Name:     doc.Name,
		})
	}
	return docs, nil
}

// WriteDocument stores a document file in the bound project's worktree. The
// pull flow never writes documents itself; this exists for tooling and tests.
func (c *Client) WriteDocument(doc *secondary.DocumentRecord) error {
	if c.fs == nil {
		return ErrNoProject
	}
	data, err := json.MarshalIndent(documentFile{
		ID:       doc.ID,
		ParentID: doc.ParentID,
		Type:     doc.Type,
		Name:     doc.Name,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", doc.ID, err)
	}
	if err := util.WriteFile(c.fs, documentPath(doc.ID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", doc.ID, err)
	}
	return nil
}

func documentPath(id string) string {
	return path.Join(DocumentsDir, id+".json")
}
