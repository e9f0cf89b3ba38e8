package app

import (
	"context"
	"fmt"

	"github.com/example/tether/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.SpaceRepository      = (*mockSpaceRepository)(nil)
	_ secondary.WorkspaceRepository  = (*mockWorkspaceRepository)(nil)
	_ secondary.DocumentRepository   = (*mockDocumentRepository)(nil)
	_ secondary.VersionControlClient = (*recordingVCSClient)(nil)
)

// mockSpaceRepository implements secondary.SpaceRepository in memory.
type mockSpaceRepository struct {
	spaces    map[string]*secondary.SpaceRecord // by ID
	creates   int
	createErr error
	nextID    int
}

func newMockSpaceRepository() *mockSpaceRepository {
	return &mockSpaceRepository{spaces: make(map[string]*secondary.SpaceRecord)}
}

func (m *mockSpaceRepository) Create(ctx context.Context, space *secondary.SpaceRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if space.ID == "" {
		m.nextID++
		space.ID = fmt.Sprintf("sp_%03d", m.nextID)
	}
	for _, s := range m.spaces {
		if s.RemoteID != "" && s.RemoteID == space.RemoteID {
			return fmt.Errorf("space for remote %s already exists", space.RemoteID)
		}
	}
	cp := *space
	m.spaces[space.ID] = &cp
	m.creates++
	return nil
}

func (m *mockSpaceRepository) GetByID(ctx context.Context, id string) (*secondary.SpaceRecord, error) {
	s, ok := m.spaces[id]
	if !ok {
		return nil, fmt.Errorf("space %s not found", id)
	}
	return s, nil
}

func (m *mockSpaceRepository) GetByRemoteID(ctx context.Context, remoteID string) (*secondary.SpaceRecord, error) {
	for _, s := range m.spaces {
		if s.RemoteID == remoteID {
			return s, nil
		}
	}
	return nil, nil
}

func (m *mockSpaceRepository) List(ctx context.Context) ([]*secondary.SpaceRecord, error) {
	out := []*secondary.SpaceRecord{}
	for _, s := range m.spaces {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSpaceRepository) ListRemote(ctx context.Context) ([]*secondary.SpaceRecord, error) {
	out := []*secondary.SpaceRecord{}
	for _, s := range m.spaces {
		if s.RemoteID != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// mockWorkspaceRepository implements secondary.WorkspaceRepository in memory.
type mockWorkspaceRepository struct {
	workspaces map[string]*secondary.WorkspaceRecord
	creates    int
	updates    int
}

func newMockWorkspaceRepository() *mockWorkspaceRepository {
	return &mockWorkspaceRepository{workspaces: make(map[string]*secondary.WorkspaceRecord)}
}

func (m *mockWorkspaceRepository) Create(ctx context.Context, workspace *secondary.WorkspaceRecord) error {
	if _, exists := m.workspaces[workspace.ID]; exists {
		return fmt.Errorf("workspace %s already exists", workspace.ID)
	}
	cp := *workspace
	m.workspaces[workspace.ID] = &cp
	m.creates++
	return nil
}

func (m *mockWorkspaceRepository) GetByID(ctx context.Context, id string) (*secondary.WorkspaceRecord, error) {
	w, ok := m.workspaces[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (m *mockWorkspaceRepository) Update(ctx context.Context, workspace *secondary.WorkspaceRecord) error {
	if _, ok := m.workspaces[workspace.ID]; !ok {
		return fmt.Errorf("workspace %s not found", workspace.ID)
	}
	cp := *workspace
	m.workspaces[workspace.ID] = &cp
	m.updates++
	return nil
}

func (m *mockWorkspaceRepository) List(ctx context.Context) ([]*secondary.WorkspaceRecord, error) {
	out := []*secondary.WorkspaceRecord{}
	for _, w := range m.workspaces {
		out = append(out, w)
	}
	return out, nil
}

// mockDocumentRepository implements secondary.DocumentRepository in memory.
type mockDocumentRepository struct {
	docs          map[string]*secondary.DocumentRecord
	parentUpdates int
}

func newMockDocumentRepository() *mockDocumentRepository {
	return &mockDocumentRepository{docs: make(map[string]*secondary.DocumentRecord)}
}

func (m *mockDocumentRepository) Upsert(ctx context.Context, doc *secondary.DocumentRecord) error {
	cp := *doc
	m.docs[doc.ID] = &cp
	return nil
}

func (m *mockDocumentRepository) GetByID(ctx context.Context, id string) (*secondary.DocumentRecord, error) {
	d, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (m *mockDocumentRepository) UpdateParent(ctx context.Context, id, parentID string) error {
	d, ok := m.docs[id]
	if !ok {
		return fmt.Errorf("document %s not found", id)
	}
	d.ParentID = parentID
	m.parentUpdates++
	return nil
}

func (m *mockDocumentRepository) ListByParent(ctx context.Context, parentID string) ([]*secondary.DocumentRecord, error) {
	out := []*secondary.DocumentRecord{}
	for _, d := range m.docs {
		if d.ParentID == parentID {
			out = append(out, d)
		}
	}
	return out, nil
}

// vcsCall records one call into the fake version-control client.
type vcsCall struct {
	method      string
	priorDocIDs []string
	branch      string
	remoteID    string
}

// recordingVCSClient implements secondary.VersionControlClient and records
// every call in order so tests can assert on the exact sequence and the
// exact arguments the orchestrator passed.
type recordingVCSClient struct {
	calls          []vcsCall
	boundProject   *secondary.ProjectDescriptor
	remoteBranches []string
	documents      []*secondary.DocumentRecord

	setProjectErr error
	branchesErr   error
	checkoutErr   error
	pullErr       error
	documentsErr  error
}

func newRecordingVCSClient() *recordingVCSClient {
	return &recordingVCSClient{}
}

func (c *recordingVCSClient) SetProject(ctx context.Context, project *secondary.ProjectDescriptor) error {
	c.calls = append(c.calls, vcsCall{method: "setProject"})
	if c.setProjectErr != nil {
		return c.setProjectErr
	}
	c.boundProject = project
	return nil
}

func (c *recordingVCSClient) GetRemoteBranches(ctx context.Context) ([]string, error) {
	c.calls = append(c.calls, vcsCall{method: "getRemoteBranches"})
	if c.branchesErr != nil {
		return nil, c.branchesErr
	}
	return c.remoteBranches, nil
}

func (c *recordingVCSClient) Checkout(ctx context.Context, priorDocumentIDs []string, branchName string) error {
	c.calls = append(c.calls, vcsCall{method: "checkout", priorDocIDs: priorDocumentIDs, branch: branchName})
	return c.checkoutErr
}

func (c *recordingVCSClient) Pull(ctx context.Context, priorDocumentIDs []string, remoteID string) error {
	c.calls = append(c.calls, vcsCall{method: "pull", priorDocIDs: priorDocumentIDs, remoteID: remoteID})
	return c.pullErr
}

func (c *recordingVCSClient) AllDocuments(ctx context.Context) ([]*secondary.DocumentRecord, error) {
	c.calls = append(c.calls, vcsCall{method: "allDocuments"})
	if c.documentsErr != nil {
		return nil, c.documentsErr
	}
	return c.documents, nil
}

// callsOf filters the recorded calls by method name.
func (c *recordingVCSClient) callsOf(method string) []vcsCall {
	out := []vcsCall{}
	for _, call := range c.calls {
		if call.method == method {
			out = append(out, call)
		}
	}
	return out
}
