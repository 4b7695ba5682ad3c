package domain

import (
	"testing"
	"time"
)

func newTestOwner(t *testing.T) *User {
	t.Helper()
	owner, err := NewUser(1, "owner", "owner@example.com", RoleClassic)
	if err != nil {
		t.Fatalf("Failed to create owner: %v", err)
	}
	return owner
}

func TestNewWorkspace(t *testing.T) {
	t.Parallel()
	owner := newTestOwner(t)

	ws, err := NewWorkspace(4, "Personal", owner)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if ws.ID != 4 {
		t.Errorf("Expected ID 4, got %d", ws.ID)
	}
	if ws.Owner != owner {
		t.Error("Expected workspace to share the owner pointer")
	}
	if len(ws.Tables) != 0 {
		t.Errorf("Expected no tables, got %d", len(ws.Tables))
	}
	if ws.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	for _, desc := range []string{"", "   ", "\t"} {
		if _, err := NewWorkspace(5, desc, owner); err != ErrEmptyDescription {
			t.Errorf("Expected error %v for %q, got %v", ErrEmptyDescription, desc, err)
		}
	}

	if _, err := NewWorkspace(6, "Personal", nil); err != ErrNilOwner {
		t.Errorf("Expected error %v, got %v", ErrNilOwner, err)
	}
}

func TestNewWorkspaceWithCreatedAt(t *testing.T) {
	t.Parallel()
	owner := newTestOwner(t)
	stamp := StartOfDay(time.Date(2024, 3, 9, 17, 45, 12, 99, time.UTC))

	ws, err := NewWorkspace(1, "Team", owner, WithCreatedAt(stamp))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if !ws.CreatedAt.Equal(want) {
		t.Errorf("Expected CreatedAt %v, got %v", want, ws.CreatedAt)
	}
}

func TestWorkspaceAddTable(t *testing.T) {
	t.Parallel()
	owner := newTestOwner(t)

	ws, err := NewWorkspace(1, "Personal", owner)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	titles := []string{"Health", "Work", "Health"}
	for i, title := range titles {
		table, err := NewGoalTable(uint32(i+1), title, "desc", owner, ws.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		ws.AddTable(table)
		if len(ws.Tables) != i+1 {
			t.Fatalf("Expected %d tables, got %d", i+1, len(ws.Tables))
		}
		if ws.Tables[i] != table {
			t.Errorf("Expected new table to be last")
		}
	}

	for i, title := range titles {
		if ws.Tables[i].Title != title {
			t.Errorf("Expected table %d to be %s, got %s", i, title, ws.Tables[i].Title)
		}
	}

	ws.AddTable(nil)
	if len(ws.Tables) != len(titles) {
		t.Errorf("Expected nil table to be ignored")
	}
}

func TestWorkspaceDisplayInfo(t *testing.T) {
	t.Parallel()
	owner := newTestOwner(t)

	ws, err := NewWorkspace(2, "Side projects", owner)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "Workspace ID: 2\nDescription: Side projects\nOwner: owner\nTables:\n"
	if got := ws.DisplayInfo(); got != want {
		t.Errorf("Unexpected display output:\n%q\nwant:\n%q", got, want)
	}

	table, err := NewGoalTable(1, "Reading", "Books", owner, ws.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	ws.AddTable(table)

	want += "- Reading\n"
	if got := ws.DisplayInfo(); got != want {
		t.Errorf("Unexpected display output:\n%q\nwant:\n%q", got, want)
	}
}
