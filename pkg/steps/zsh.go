package steps

import (
	"github.com/arthur-debert/dotup/pkg/platform"
)

// ohMyZshInstaller fetches the upstream bootstrap script and pipes it into
// sh. The fetch happens inside the -c script; there is no outer interactive
// shell to expand a command substitution for us.
const ohMyZshInstaller = `curl -fsSL https://raw.githubusercontent.com/ohmyzsh/ohmyzsh/master/tools/install.sh | sh`

// Zsh installs Oh My Zsh when missing and links the zsh configuration.
// Not applicable on Windows.
type Zsh struct{}

func (s *Zsh) Name() string {
	return "zsh"
}

func (s *Zsh) Applies(kind platform.Kind) bool {
	return !kind.IsWindows()
}

func (s *Zsh) Run(ctx *Context) error {
	logger := ctx.StepLogger("zsh")
	logger.Info().Msg("Setting up Zsh configuration")

	if !ctx.exists(ctx.Paths.OhMyZshDir()) {
		logger.Info().Msg("Installing Oh My Zsh")
		if !ctx.Runner.Run("sh", "-c", ohMyZshInstaller) {
			logger.Warn().Msg("Oh My Zsh install failed")
		}
	}

	ctx.link(logger, ctx.Paths.Dotfile("zsh", ".zshrc"), ctx.Paths.Home(".zshrc"))
	return nil
}
