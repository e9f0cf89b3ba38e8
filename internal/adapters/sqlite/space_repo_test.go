package sqlite_test

import (
	"context"
	"strings"
	"testing"

	"github.com/example/tether/internal/adapters/sqlite"
	"github.com/example/tether/internal/ports/secondary"
)

func TestSpaceRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSpaceRepository(db)
	ctx := context.Background()

	t.Run("creates space successfully", func(t *testing.T) {
		record := &secondary.SpaceRecord{
			ID:       "sp_001",
			RemoteID: "team_1",
			Name:     "My Team",
		}

		err := repo.Create(ctx, record)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, "sp_001")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}

		if got.Name != "My Team" {
			t.Errorf("Name = %q, want %q", got.Name, "My Team")
		}
		if got.RemoteID != "team_1" {
			t.Errorf("RemoteID = %q, want %q", got.RemoteID, "team_1")
		}
	})

	t.Run("generates id when none supplied", func(t *testing.T) {
		record := &secondary.SpaceRecord{
			RemoteID: "team_2",
			Name:     "Other Team",
		}

		err := repo.Create(ctx, record)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if record.ID == "" {
			t.Fatal("expected generated ID to be written back")
		}
		if !strings.HasPrefix(record.ID, "sp_") {
			t.Errorf("ID = %q, want sp_ prefix", record.ID)
		}
	})

	t.Run("creates local-only space with null remote id", func(t *testing.T) {
		record := &secondary.SpaceRecord{
			ID:   "sp_local",
			Name: "Personal",
		}

		err := repo.Create(ctx, record)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, "sp_local")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.RemoteID != "" {
			t.Errorf("RemoteID = %q, want empty", got.RemoteID)
		}
	})

	t.Run("rejects second space for same remote id", func(t *testing.T) {
		record := &secondary.SpaceRecord{
			ID:       "sp_dup",
			RemoteID: "team_1",
			Name:     "Duplicate",
		}

		if err := repo.Create(ctx, record); err == nil {
			t.Fatal("expected unique constraint error, got nil")
		}
	})
}

func TestSpaceRepository_GetByRemoteID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSpaceRepository(db)
	ctx := context.Background()

	seedSpace(t, db, "sp_001", "team_1", "My Team")

	t.Run("finds bound space", func(t *testing.T) {
		got, err := repo.GetByRemoteID(ctx, "team_1")
		if err != nil {
			t.Fatalf("GetByRemoteID failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected space, got nil")
		}
		if got.ID != "sp_001" {
			t.Errorf("ID = %q, want %q", got.ID, "sp_001")
		}
	})

	t.Run("returns nil without error when unbound", func(t *testing.T) {
		got, err := repo.GetByRemoteID(ctx, "team_unknown")
		if err != nil {
			t.Fatalf("GetByRemoteID failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}

func TestSpaceRepository_ListRemote(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewSpaceRepository(db)
	ctx := context.Background()

	seedSpace(t, db, "sp_001", "team_1", "Remote A")
	seedSpace(t, db, "sp_002", "", "Local Only")
	seedSpace(t, db, "sp_003", "team_2", "Remote B")

	remote, err := repo.ListRemote(ctx)
	if err != nil {
		t.Fatalf("ListRemote failed: %v", err)
	}
	if len(remote) != 2 {
		t.Fatalf("len(remote) = %d, want 2", len(remote))
	}
	for _, s := range remote {
		if s.RemoteID == "" {
			t.Errorf("space %s has empty RemoteID in remote list", s.ID)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}
