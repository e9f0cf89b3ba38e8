package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/tether/internal/ports/primary"
)

// mockWorkspaceService implements primary.WorkspaceService for testing
type mockWorkspaceService struct {
	getWorkspaceFn   func(ctx context.Context, workspaceID string) (*primary.Workspace, error)
	listWorkspacesFn func(ctx context.Context) ([]*primary.Workspace, error)
}

func (m *mockWorkspaceService) GetWorkspace(ctx context.Context, workspaceID string) (*primary.Workspace, error) {
	if m.getWorkspaceFn != nil {
		return m.getWorkspaceFn(ctx, workspaceID)
	}
	return &primary.Workspace{ID: workspaceID, Name: "My API", ParentID: "sp_001", Scope: "collection"}, nil
}

func (m *mockWorkspaceService) ListWorkspaces(ctx context.Context) ([]*primary.Workspace, error) {
	if m.listWorkspacesFn != nil {
		return m.listWorkspacesFn(ctx)
	}
	return []*primary.Workspace{}, nil
}

func TestWorkspaceAdapter_List_Empty(t *testing.T) {
	mock := &mockWorkspaceService{}
	var buf bytes.Buffer
	adapter := NewWorkspaceAdapter(mock, &buf)

	err := adapter.List(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "No workspaces found") {
		t.Errorf("output = %q, want empty-state message", buf.String())
	}
}

func TestWorkspaceAdapter_List(t *testing.T) {
	mock := &mockWorkspaceService{
		listWorkspacesFn: func(ctx context.Context) ([]*primary.Workspace, error) {
			return []*primary.Workspace{
				{ID: "wrk_1", Name: "My API", ParentID: "sp_001", Scope: "collection"},
				{ID: "wrk_2", Name: "Billing API", ParentID: "sp_001", Scope: "collection"},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewWorkspaceAdapter(mock, &buf)

	err := adapter.List(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "wrk_1") || !strings.Contains(output, "Billing API") {
		t.Errorf("output = %q, want both workspaces", output)
	}
}

func TestWorkspaceAdapter_Show(t *testing.T) {
	mock := &mockWorkspaceService{}
	var buf bytes.Buffer
	adapter := NewWorkspaceAdapter(mock, &buf)

	err := adapter.Show(context.Background(), "wrk_1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "wrk_1") || !strings.Contains(output, "collection") {
		t.Errorf("output = %q, want workspace details", output)
	}
}
