package steps

import (
	"github.com/arthur-debert/dotup/pkg/platform"
)

// Python installs the pinned requirements and creates the shared virtual
// environment under the dotfiles root when it does not exist yet.
type Python struct{}

func (s *Python) Name() string {
	return "python"
}

func (s *Python) Applies(platform.Kind) bool {
	return true
}

func (s *Python) Run(ctx *Context) error {
	logger := ctx.StepLogger("python")
	logger.Info().Msg("Setting up Python environment")

	requirements := ctx.Paths.Dotfile("python", "requirements.txt")
	if ctx.exists(requirements) {
		if !ctx.Runner.Run("pip", "install", "-r", requirements) {
			logger.Warn().Str("requirements", requirements).Msg("Requirements install failed")
		}
	} else {
		logger.Debug().Str("path", requirements).Msg("No requirements file present, skipping")
	}

	venv := ctx.Paths.Dotfile("python", "venv")
	if !ctx.exists(venv) {
		if !ctx.Runner.Run("python", "-m", "venv", venv) {
			logger.Warn().Str("venv", venv).Msg("Virtual environment creation failed")
		}
	}

	return nil
}
