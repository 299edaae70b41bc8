package steps

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotup/pkg/platform"
)

// ExtensionsFile is the newline-separated list of VS Code extension IDs
const ExtensionsFile = "extensions.txt"

// VSCode links the editor configuration into the VS Code user directory and
// installs the listed extensions through the editor CLI.
type VSCode struct{}

func (s *VSCode) Name() string {
	return "vscode"
}

func (s *VSCode) Applies(platform.Kind) bool {
	return true
}

func (s *VSCode) Run(ctx *Context) error {
	logger := ctx.StepLogger("vscode")
	logger.Info().Msg("Setting up VS Code")

	userDir := ctx.Paths.VSCodeUserDir()
	ctx.link(logger, ctx.Paths.Dotfile("vscode", "settings.json"), filepath.Join(userDir, "settings.json"))
	ctx.link(logger, ctx.Paths.Dotfile("vscode", "keybindings.json"), filepath.Join(userDir, "keybindings.json"))
	ctx.link(logger, ctx.Paths.Dotfile("vscode", "snippets"), filepath.Join(userDir, "snippets"))

	s.installExtensions(ctx, logger)
	return nil
}

// installExtensions runs `code --install-extension` for each identifier in
// extensions.txt. Blank lines are ignored; no file means no installs.
func (s *VSCode) installExtensions(ctx *Context, logger zerolog.Logger) {
	extensionsPath := ctx.Paths.Dotfile("vscode", ExtensionsFile)

	data, err := ctx.FS.ReadFile(extensionsPath)
	if err != nil {
		logger.Debug().Str("path", extensionsPath).Msg("No extensions file present, skipping installs")
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		ext := strings.TrimSpace(line)
		if ext == "" {
			continue
		}
		if !ctx.Runner.Run("code", "--install-extension", ext) {
			logger.Warn().Str("extension", ext).Msg("Extension install failed")
		}
	}
}
