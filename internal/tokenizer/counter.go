// Package tokenizer estimates LLM token counts for file contents and
// assembled prompts. It prefers a real BPE encoding and degrades to a
// cheap regex splitter when the encoding data is unavailable, so token
// counting never becomes a hard failure.
package tokenizer

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE encoding used when none is configured.
const DefaultEncoding = "cl100k_base"

// Counter estimates the number of tokens in a text.
type Counter interface {
	Count(text string) int
}

// New returns a Counter for the given tiktoken encoding name. When the
// encoding cannot be loaded the returned Counter falls back to regex
// splitting and the failure is logged once, here.
func New(encoding string, logger *slog.Logger) Counter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		logger.Info("tiktoken encoding unavailable, using regex token counter",
			"encoding", encoding, "error", err)
		return RegexCounter{}
	}
	return &bpeCounter{enc: enc, fallback: RegexCounter{}}
}

type bpeCounter struct {
	enc      *tiktoken.Tiktoken
	fallback RegexCounter
}

func (c *bpeCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

var tokenSplitRE = regexp.MustCompile(`\s+|([,.;:!?(){}\[\]<>"'])`)

// RegexCounter approximates token counts by splitting on whitespace and
// common punctuation. It is a rough estimate, not a BPE count.
type RegexCounter struct{}

// Count implements Counter.
func (RegexCounter) Count(text string) int {
	return len(tokenSplitRE.Split(strings.TrimSpace(text), -1))
}
