package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotup/pkg/platform"
)

func TestNew_DefaultsToHomeDotfiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDotfilesPath, "")

	p, err := New("", platform.Linux)
	require.NoError(t, err)

	assert.Equal(t, home, p.HomeDir)
	assert.Equal(t, filepath.Join(home, "dotfiles"), p.DotfilesRoot)
	assert.Equal(t, platform.Linux, p.OS)
}

func TestNew_EnvOverride(t *testing.T) {
	home := t.TempDir()
	other := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDotfilesPath, other)

	p, err := New("", platform.Linux)
	require.NoError(t, err)
	assert.Equal(t, other, p.DotfilesRoot)
}

func TestNew_ExplicitRootWinsOverEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDotfilesPath, "/elsewhere")

	explicit := t.TempDir()
	p, err := New(explicit, platform.Linux)
	require.NoError(t, err)
	assert.Equal(t, explicit, p.DotfilesRoot)
}

func TestNew_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := New("~/my-dotfiles", platform.Linux)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "my-dotfiles"), p.DotfilesRoot)
}

func TestDotfileAndHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := New("", platform.Linux)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.DotfilesRoot, "git", ".gitconfig"),
		p.Dotfile("git", ".gitconfig"))
	assert.Equal(t, filepath.Join(home, ".zshrc"), p.Home(".zshrc"))
}

func TestVSCodeUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	darwin, err := New("", platform.Darwin)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "Code", "User"),
		darwin.VSCodeUserDir())

	windows, err := New("", platform.Windows)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "AppData", "Roaming", "Code", "User"),
		windows.VSCodeUserDir())

	linux, err := New("", platform.Linux)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(linux.VSCodeUserDir(), filepath.Join("Code", "User")))
}

func TestITermPrefsTarget(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := New("", platform.Darwin)
	require.NoError(t, err)
	assert.Equal(t,
		filepath.Join(home, "Library", "Preferences", "com.googlecode.iterm2.plist"),
		p.ITermPrefsTarget())
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u", expandHome("~", "/home/u"))
	assert.Equal(t, filepath.Join("/home/u", "x"), expandHome("~/x", "/home/u"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path", "/home/u"))
	assert.Equal(t, "~weird", expandHome("~weird", "/home/u"))
}
