// Package steps contains the fixed list of setup routines.
//
// Each step resolves its (source, target) pairs from the dotfiles root,
// calls the linker, and optionally invokes external commands. Steps are
// independently skippable: a missing optional source is skipped silently,
// a failed link or command is logged and the run continues, and steps
// gated on an OS family are no-ops elsewhere.
package steps

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotup/pkg/command"
	"github.com/arthur-debert/dotup/pkg/config"
	"github.com/arthur-debert/dotup/pkg/filesystem"
	"github.com/arthur-debert/dotup/pkg/linker"
	"github.com/arthur-debert/dotup/pkg/paths"
	"github.com/arthur-debert/dotup/pkg/platform"
)

// Step is one named, independently skippable unit of setup work
type Step interface {
	// Name identifies the step in configuration and logs
	Name() string

	// Applies reports whether the step does anything on this OS family
	Applies(kind platform.Kind) bool

	// Run performs the step. Errors are informational; the run continues.
	Run(ctx *Context) error
}

// Context carries the resolved environment and shared services into steps.
// The Logger is the run-scoped handle every step derives its component
// logger from; tests inject a buffer-backed logger to capture output.
type Context struct {
	Paths  *paths.Paths
	Config *config.Config
	Linker *linker.Linker
	Runner command.Runner
	FS     filesystem.FS
	Logger zerolog.Logger
}

// StepLogger returns the component logger for the named step
func (c *Context) StepLogger(name string) zerolog.Logger {
	return c.Logger.With().Str("component", "steps."+name).Logger()
}

// All returns the fixed step sequence in execution order
func All() []Step {
	return []Step{
		&Packages{},
		&Git{},
		&VSCode{},
		&Python{},
		&Zsh{},
		&ITerm2{},
	}
}

// link creates the link when the source exists; a missing source is skipped
// silently and a failed link is logged, never propagated.
func (c *Context) link(logger zerolog.Logger, source, target string) {
	if _, err := c.FS.Stat(source); err != nil {
		logger.Debug().Str("source", source).Msg("Source not present, skipping")
		return
	}

	if err := c.Linker.Link(source, target); err != nil {
		logger.Error().
			Err(err).
			Str("source", source).
			Str("target", target).
			Msg("Link failed")
	}
}

// exists reports whether a path exists (following symlinks)
func (c *Context) exists(path string) bool {
	_, err := c.FS.Stat(path)
	return err == nil
}
