package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/promptpack/promptpack/internal/tokenizer"
)

func newTestLoader(sizeLimit int64) *ContentLoader {
	return NewContentLoader(tokenizer.RegexCounter{}, sizeLimit, nil)
}

func TestLoad_FileContents(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "src/app.go")

	contents, err := newTestLoader(0).Load(context.Background(), root, []string{"src/app.go"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d results, want 1", len(contents))
	}
	fc := contents[0]
	if fc.Path != "src/app.go" {
		t.Errorf("Path = %q", fc.Path)
	}
	if fc.Content != "content of src/app.go\n" {
		t.Errorf("Content = %q", fc.Content)
	}
	if fc.TokenCount <= 0 {
		t.Errorf("TokenCount = %d, want > 0", fc.TokenCount)
	}
}

func TestLoad_DirectoryPlaceholder(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "src/app.go")

	contents, err := newTestLoader(0).Load(context.Background(), root, []string{"src"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !contents[0].IsDirectory {
		t.Error("directory placeholder not set")
	}
	if contents[0].Content != "" {
		t.Errorf("directory content = %q, want empty", contents[0].Content)
	}
}

func TestLoad_BinaryPlaceholder(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0xff, 0xfe, 0x00, 0x80}, 0o644); err != nil {
		t.Fatal(err)
	}

	contents, err := newTestLoader(0).Load(context.Background(), root, []string{"blob.bin"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	fc := contents[0]
	if !fc.IsBinary {
		t.Error("binary placeholder not set")
	}
	if fc.Size != 4 {
		t.Errorf("Size = %d, want 4", fc.Size)
	}
	if fc.TokenCount != 0 {
		t.Errorf("TokenCount = %d, want 0", fc.TokenCount)
	}
}

func TestLoad_OversizedContentSkipsTokenCount(t *testing.T) {
	root := t.TempDir()
	big := make([]byte, 64)
	for i := range big {
		big[i] = 'a'
	}
	if err := os.WriteFile(filepath.Join(root, "big.txt"), big, 0o644); err != nil {
		t.Fatal(err)
	}

	contents, err := newTestLoader(32).Load(context.Background(), root, []string{"big.txt"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Within the 2x read cutoff but over the token limit.
	if contents[0].TokenCount != -1 {
		t.Errorf("TokenCount = %d, want -1", contents[0].TokenCount)
	}
	if contents[0].Content == "" {
		t.Error("content should still be loaded")
	}
}

func TestLoad_TooLargeToRead(t *testing.T) {
	root := t.TempDir()
	big := make([]byte, 100)
	if err := os.WriteFile(filepath.Join(root, "huge.txt"), big, 0o644); err != nil {
		t.Fatal(err)
	}

	contents, err := newTestLoader(32).Load(context.Background(), root, []string{"huge.txt"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if contents[0].TokenCount != -1 {
		t.Errorf("TokenCount = %d, want -1", contents[0].TokenCount)
	}
	if contents[0].Content == "content of huge.txt" {
		t.Error("oversized file content should be a stub")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	root := t.TempDir()
	_, err := newTestLoader(0).Load(context.Background(), root, []string{"gone.go"})
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestLoad_MissingBaseDir(t *testing.T) {
	_, err := newTestLoader(0).Load(context.Background(), filepath.Join(t.TempDir(), "gone"), nil)
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("error = %v, want ErrRootNotFound", err)
	}
}

func TestLoad_NormalizesPaths(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "src/app.go")

	contents, err := newTestLoader(0).Load(context.Background(), root, []string{"./src/app.go"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if contents[0].Path != "src/app.go" {
		t.Errorf("Path = %q, want normalized src/app.go", contents[0].Path)
	}
}
