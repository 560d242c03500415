// Package prompt assembles the final LLM prompt from a textual tree,
// loaded file contents, and user instructions.
package prompt

import (
	"fmt"
	"strings"

	"github.com/promptpack/promptpack/internal/tokenizer"
	"github.com/promptpack/promptpack/pkg/models"
)

// Request carries everything the assembler concatenates.
type Request struct {
	// TreeText is the rendered textual tree, may be empty.
	TreeText string

	// Files are the loaded contents of the selection, in order.
	Files []models.FileContent

	// Instructions is the user's task description, may be empty.
	Instructions string
}

// Result is the assembled prompt plus its estimated size.
type Result struct {
	Text       string
	TokenCount int
	FileCount  int
}

// Assembler builds prompts and reports their token cost.
type Assembler struct {
	counter tokenizer.Counter
}

// NewAssembler creates an Assembler using the given token counter.
func NewAssembler(counter tokenizer.Counter) *Assembler {
	return &Assembler{counter: counter}
}

// Assemble concatenates the tree map, the selected file contents in
// fenced blocks, and the user instructions. Directory and binary
// placeholders are skipped; they carry no text worth sending.
func (a *Assembler) Assemble(req Request) Result {
	var b strings.Builder

	if req.TreeText != "" {
		b.WriteString("<file_map>\n")
		b.WriteString(req.TreeText)
		b.WriteString("\n</file_map>\n\n")
	}

	files := 0
	for _, f := range req.Files {
		if f.IsDirectory || f.IsBinary {
			continue
		}
		files++
		fmt.Fprintf(&b, "File: %s\n", f.Path)
		b.WriteString("```\n")
		b.WriteString(f.Content)
		if !strings.HasSuffix(f.Content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n\n")
	}

	if strings.TrimSpace(req.Instructions) != "" {
		b.WriteString("<user_instructions>\n")
		b.WriteString(strings.TrimSpace(req.Instructions))
		b.WriteString("\n</user_instructions>\n")
	}

	text := strings.TrimRight(b.String(), "\n")
	return Result{
		Text:       text,
		TokenCount: a.counter.Count(text),
		FileCount:  files,
	}
}
