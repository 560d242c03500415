package exclusion

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(filepath.Join(dir, "ignore.txt"), ".promptpack", nil), dir
}

func TestGlobal_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	if got := s.Global(); got != nil {
		t.Errorf("missing file should be empty layer, got %v", got)
	}

	if err := s.SetGlobal([]string{"node_modules", "  dist  ", "", "*.log"}); err != nil {
		t.Fatalf("SetGlobal() error = %v", err)
	}

	got := s.Global()
	want := []string{"node_modules", "dist", "*.log"}
	if len(got) != len(want) {
		t.Fatalf("Global() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Global()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGlobal_SkipsCommentsAndBlanks(t *testing.T) {
	s, _ := newTestStore(t)
	if err := os.WriteFile(s.globalPath, []byte("# comment\n\nnode_modules\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := s.Global()
	if len(got) != 1 || got[0] != "node_modules" {
		t.Errorf("Global() = %v, want [node_modules]", got)
	}
}

func TestLocal_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	project := t.TempDir()

	if got := s.Local(project); got != nil {
		t.Errorf("missing file should be empty layer, got %v", got)
	}

	if err := s.SetLocal(project, []string{"secrets.env", " ", "fixtures"}); err != nil {
		t.Fatalf("SetLocal() error = %v", err)
	}

	got := s.Local(project)
	if len(got) != 2 || got[0] != "secrets.env" || got[1] != "fixtures" {
		t.Errorf("Local() = %v", got)
	}
}

func TestLocal_CorruptFileIsEmptyLayer(t *testing.T) {
	s, _ := newTestStore(t)
	project := t.TempDir()

	dir := filepath.Join(project, ".promptpack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "exclusions.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := s.Local(project); got != nil {
		t.Errorf("corrupt file should degrade to empty layer, got %v", got)
	}
}

func TestForProject_CombinesLayers(t *testing.T) {
	s, _ := newTestStore(t)
	project := t.TempDir()

	if err := s.SetGlobal([]string{"node_modules"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLocal(project, []string{"fixtures"}); err != nil {
		t.Fatal(err)
	}

	got := s.ForProject(project)
	want := []string{".promptpack", "node_modules", "fixtures"}
	if len(got) != len(want) {
		t.Fatalf("ForProject() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ForProject()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
