package steps

import (
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotup/pkg/platform"
)

// ITermPlistFile is the iTerm2 preferences file name
const ITermPlistFile = "com.googlecode.iterm2.plist"

// ITerm2 links the iTerm2 preferences and registers the custom prefs folder
// through the macOS defaults database. macOS only.
type ITerm2 struct{}

func (s *ITerm2) Name() string {
	return "iterm2"
}

func (s *ITerm2) Applies(kind platform.Kind) bool {
	return kind.IsDarwin()
}

func (s *ITerm2) Run(ctx *Context) error {
	logger := ctx.StepLogger("iterm2")
	logger.Info().Msg("Setting up iTerm2 configuration")

	source := ctx.Paths.Dotfile("iterm2", ITermPlistFile)
	if !ctx.exists(source) {
		logger.Debug().Str("source", source).Msg("No iTerm2 preferences present, skipping")
		return nil
	}

	s.validatePlist(ctx, logger, source)
	ctx.link(logger, source, ctx.Paths.ITermPrefsTarget())

	// Point iTerm2 at the dotfiles copy so edits made in the app are saved
	// back into the repository.
	prefsDir := filepath.Dir(source)
	if !ctx.Runner.Run("defaults", "write", "com.googlecode.iterm2", "LoadPrefsFromCustomFolder", "-bool", "true") {
		logger.Warn().Msg("Failed to enable custom prefs folder")
	}
	if !ctx.Runner.Run("defaults", "write", "com.googlecode.iterm2", "PrefsCustomFolder", "-string", prefsDir) {
		logger.Warn().Str("dir", prefsDir).Msg("Failed to register custom prefs folder")
	}

	return nil
}

// validatePlist warns when the preferences file is not a plist document.
// Validation is advisory; the file is linked either way.
func (s *ITerm2) validatePlist(ctx *Context, logger zerolog.Logger, source string) {
	data, err := ctx.FS.ReadFile(source)
	if err != nil {
		logger.Warn().Err(err).Str("source", source).Msg("Could not read preferences file")
		return
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		logger.Warn().Err(err).Str("source", source).Msg("Preferences file is not valid XML")
		return
	}

	if root := doc.Root(); root == nil || root.Tag != "plist" {
		logger.Warn().Str("source", source).Msg("Preferences file is not a plist document")
	}
}
