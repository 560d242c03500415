package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/promptpack/promptpack/internal/tokenizer"
	"github.com/promptpack/promptpack/pkg/models"
)

// DefaultSizeLimit is the content length in bytes above which token
// counting is skipped (TokenCount becomes -1). Files larger than twice
// this limit are not read at all.
const DefaultSizeLimit = 2_000_000

// ContentLoader reads selected files in a batch and attaches token
// counts. The core never touches file bytes itself; this is the
// collaborator it hands a selection to.
type ContentLoader struct {
	counter   tokenizer.Counter
	sizeLimit int64
	logger    *slog.Logger
}

// NewContentLoader creates a ContentLoader. sizeLimit <= 0 selects
// DefaultSizeLimit.
func NewContentLoader(counter tokenizer.Counter, sizeLimit int64, logger *slog.Logger) *ContentLoader {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ContentLoader{counter: counter, sizeLimit: sizeLimit, logger: logger}
}

// Load returns content and token count for each of relativePaths under
// baseDir, in input order.
//
// Directories yield a placeholder entry, as do binary (non-UTF-8)
// files. Oversized files get a stub content and TokenCount -1. A path
// that resolves to nothing is an error: the caller is expected to have
// reconciled its selection against a current tree first.
func (l *ContentLoader) Load(ctx context.Context, baseDir string, relativePaths []string) ([]models.FileContent, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrRootNotFound)
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory %s: %w", baseDir, err)
	}
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, baseDir)
	}

	results := make([]models.FileContent, 0, len(relativePaths))
	for _, raw := range relativePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel := normalizeSelectionPath(raw)
		fc, err := l.loadOne(base, rel)
		if err != nil {
			return nil, err
		}
		results = append(results, fc)
	}
	return results, nil
}

func (l *ContentLoader) loadOne(base, rel string) (models.FileContent, error) {
	fc := models.FileContent{Path: rel}
	abs := filepath.Join(base, filepath.FromSlash(rel))

	info, err := os.Stat(abs)
	if err != nil {
		return fc, fmt.Errorf("%w: %s", ErrFileNotFound, rel)
	}
	if info.IsDir() {
		fc.IsDirectory = true
		return fc, nil
	}

	if info.Size() > l.sizeLimit*2 {
		fc.Content = fmt.Sprintf("File too large to process: %s", rel)
		fc.TokenCount = -1
		fc.Size = info.Size()
		return fc, nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		l.logger.Error("failed to read selected file", "path", rel, "error", err)
		return fc, fmt.Errorf("read %s: %w", rel, err)
	}
	if !utf8.Valid(data) {
		fc.IsBinary = true
		fc.Size = info.Size()
		return fc, nil
	}

	fc.Content = string(data)
	if int64(len(fc.Content)) > l.sizeLimit {
		fc.TokenCount = -1
	} else {
		fc.TokenCount = l.counter.Count(fc.Content)
	}
	return fc, nil
}

// normalizeSelectionPath cleans a persisted or user-supplied relative
// path into the canonical slash-delimited form.
func normalizeSelectionPath(raw string) string {
	p := path.Clean(strings.ReplaceAll(raw, "\\", "/"))
	return strings.TrimPrefix(p, "./")
}
