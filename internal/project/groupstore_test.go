package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGroupStore_RoundTrip(t *testing.T) {
	root := t.TempDir()
	gs := NewGroupStore(nil)

	groups := map[string][]string{
		"api":  {"src/api", "go.mod"},
		"docs": {"README.md"},
	}
	if err := gs.SaveGroups(root, groups); err != nil {
		t.Fatalf("SaveGroups() error = %v", err)
	}

	loaded, err := gs.LoadGroups(root)
	if err != nil {
		t.Fatalf("LoadGroups() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d groups, want 2", len(loaded))
	}
	if got := loaded["api"]; len(got) != 2 || got[0] != "src/api" {
		t.Errorf("api group = %v", got)
	}
}

func TestGroupStore_MissingFileIsEmpty(t *testing.T) {
	loaded, err := NewGroupStore(nil).LoadGroups(t.TempDir())
	if err != nil {
		t.Fatalf("LoadGroups() error = %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("got %v, want empty map", loaded)
	}
}

func TestGroupStore_CorruptFileStartsFresh(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, MetaDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "groups.json"), []byte("not json{"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewGroupStore(nil).LoadGroups(root)
	if err != nil {
		t.Fatalf("corrupt file must not error, got %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("got %v, want empty map", loaded)
	}
}
