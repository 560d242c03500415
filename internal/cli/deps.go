// Package cli provides the Cobra command tree and dependency wiring
// for the promptpack CLI. This file is the composition root: the only
// place where concrete collaborators are instantiated and connected.
package cli

import (
	"log/slog"
	"os"

	"github.com/promptpack/promptpack/internal/config"
	"github.com/promptpack/promptpack/internal/core/selection"
	"github.com/promptpack/promptpack/internal/exclusion"
	"github.com/promptpack/promptpack/internal/project"
	"github.com/promptpack/promptpack/internal/prompt"
	"github.com/promptpack/promptpack/internal/tokenizer"
)

// Dependencies holds the collaborators used by CLI commands. Commands
// reach them through the package-level deps variable set up by
// InitDependencies.
type Dependencies struct {
	Config     *config.Config
	Exclusions *exclusion.Store
	Walker     *project.Walker
	Loader     *project.ContentLoader
	Groups     *selection.GroupManager
	Counter    tokenizer.Counter
	Assembler  *prompt.Assembler
	Logger     *slog.Logger
}

var deps *Dependencies

// InitDependencies creates and wires the dependency graph. Called once
// from Execute; tests may call it again to reset state.
func InitDependencies() {
	logger := newLogger()
	cfg := config.Load(config.Dir())

	excl := exclusion.NewStore(cfg.GlobalIgnorePath(), project.MetaDirName, logger)
	counter := tokenizer.New(cfg.TokenEncoding, logger)

	deps = &Dependencies{
		Config:     cfg,
		Exclusions: excl,
		Walker:     project.NewWalker(cfg.MaxTreeDepth, excl.ForProject, logger),
		Loader:     project.NewContentLoader(counter, cfg.TokenSizeLimit, logger),
		Groups:     selection.NewGroupManager(project.NewGroupStore(logger), logger),
		Counter:    counter,
		Assembler:  prompt.NewAssembler(counter),
		Logger:     logger,
	}
}

// newLogger builds the CLI logger. Warnings and up go to stderr;
// anything chattier is discarded unless PROMPTPACK_DEBUG is set.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("PROMPTPACK_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
