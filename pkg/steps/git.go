package steps

import (
	"github.com/arthur-debert/dotup/pkg/platform"
)

// Git links the git configuration into the home directory
type Git struct{}

func (s *Git) Name() string {
	return "git"
}

func (s *Git) Applies(platform.Kind) bool {
	return true
}

func (s *Git) Run(ctx *Context) error {
	logger := ctx.StepLogger("git")
	logger.Info().Msg("Setting up Git configuration")

	ctx.link(logger, ctx.Paths.Dotfile("git", ".gitconfig"), ctx.Paths.Home(".gitconfig"))
	return nil
}
