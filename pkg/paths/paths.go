// Package paths provides centralized path handling for dotup.
//
// The Paths value is the resolved environment: home directory, dotfiles
// root, and OS classification. It is resolved once at startup and treated
// as immutable for the remainder of the run.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/platform"
)

// Environment variable names
const (
	// EnvDotfilesPath is the override for the dotfiles root directory
	EnvDotfilesPath = "DOTFILES_PATH"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// DefaultDotfilesDir is the default directory name for dotfiles
const DefaultDotfilesDir = "dotfiles"

// Paths is the resolved environment for one run
type Paths struct {
	// HomeDir is the user's home directory
	HomeDir string

	// DotfilesRoot is the root directory holding the dotfiles sources
	DotfilesRoot string

	// OS is the operating system classification resolved at startup
	OS platform.Kind
}

// New resolves the environment. dotfilesRoot overrides everything when
// non-empty; otherwise the DOTFILES_PATH environment variable is consulted,
// falling back to <home>/dotfiles. An unresolvable home directory is the one
// fatal probe failure.
func New(dotfilesRoot string, osKind platform.Kind) (*Paths, error) {
	home, err := homeDirectory()
	if err != nil {
		return nil, err
	}

	if dotfilesRoot == "" {
		dotfilesRoot = os.Getenv(EnvDotfilesPath)
	}
	if dotfilesRoot == "" {
		dotfilesRoot = filepath.Join(home, DefaultDotfilesDir)
	}
	dotfilesRoot = expandHome(dotfilesRoot, home)

	absRoot, err := filepath.Abs(dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to get absolute path for dotfiles root %s", dotfilesRoot)
	}

	return &Paths{
		HomeDir:      home,
		DotfilesRoot: absRoot,
		OS:           osKind,
	}, nil
}

// Dotfile returns the path of a source file inside the dotfiles root
func (p *Paths) Dotfile(elem ...string) string {
	return filepath.Join(append([]string{p.DotfilesRoot}, elem...)...)
}

// Home returns a path under the home directory
func (p *Paths) Home(elem ...string) string {
	return filepath.Join(append([]string{p.HomeDir}, elem...)...)
}

// VSCodeUserDir returns the OS-conventional VS Code user configuration
// directory.
func (p *Paths) VSCodeUserDir() string {
	switch p.OS {
	case platform.Windows:
		return p.Home("AppData", "Roaming", "Code", "User")
	case platform.Darwin:
		return p.Home("Library", "Application Support", "Code", "User")
	default:
		return filepath.Join(xdg.ConfigHome, "Code", "User")
	}
}

// ITermPrefsTarget returns the macOS location of the iTerm2 preferences file
func (p *Paths) ITermPrefsTarget() string {
	return p.Home("Library", "Preferences", "com.googlecode.iterm2.plist")
}

// OhMyZshDir returns the Oh My Zsh install location
func (p *Paths) OhMyZshDir() string {
	return p.Home(".oh-my-zsh")
}

// StateDir returns the dotup state directory (log file, run lock)
func (p *Paths) StateDir() string {
	return filepath.Join(xdg.StateHome, "dotup")
}

// LockFilePath returns the path of the single-instance run lock
func (p *Paths) LockFilePath() string {
	return filepath.Join(p.StateDir(), "dotup.lock")
}

// homeDirectory returns the user's home directory. It first tries
// os.UserHomeDir, then falls back to the HOME environment variable. If both
// fail, the run cannot meaningfully proceed.
func homeDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return home, nil
	}

	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	return "", errors.New(errors.ErrHomeResolve,
		"unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}

// expandHome expands a leading ~ to the given home directory
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
