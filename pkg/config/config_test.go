package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.True(t, cfg.StepEnabled("git"))
	assert.True(t, cfg.StepEnabled("vscode"))
	assert.True(t, cfg.StepEnabled("zsh"))
	assert.True(t, cfg.StepEnabled("iterm2"))
	assert.False(t, cfg.StepEnabled("packages"))
	assert.False(t, cfg.StepEnabled("python"))
	assert.NotEmpty(t, cfg.Packages.Brew)
}

func TestStepEnabled_UnknownDefaultsTrue(t *testing.T) {
	cfg := &Config{Steps: map[string]bool{}}
	assert.True(t, cfg.StepEnabled("anything"))
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.StepEnabled("git"))
}

func TestLoad_TOMLOverrides(t *testing.T) {
	root := t.TempDir()
	content := "[steps]\ngit = false\n\n[packages]\nbrew = [\"tmux\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "dotup.toml"), []byte(content), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.False(t, cfg.StepEnabled("git"))
	// Layers merge: steps absent from the file keep their defaults
	assert.True(t, cfg.StepEnabled("vscode"))
	assert.Equal(t, []string{"tmux"}, cfg.Packages.Brew)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	root := t.TempDir()
	content := "steps:\n  vscode: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "dotup.yaml"), []byte(content), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.False(t, cfg.StepEnabled("vscode"))
}

func TestLoad_TOMLTakesPrecedenceOverYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "dotup.toml"),
		[]byte("[steps]\ngit = false\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dotup.yaml"),
		[]byte("steps:\n  git: true\n"), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.False(t, cfg.StepEnabled("git"))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOTUP_STEPS_PACKAGES", "true")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.StepEnabled("packages"))
}

func TestLoad_InvalidTOML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "dotup.toml"),
		[]byte("not [valid toml"), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}

func TestDefaultTOML(t *testing.T) {
	out, err := DefaultTOML()
	require.NoError(t, err)

	assert.Contains(t, string(out), "[steps]")
	assert.Contains(t, string(out), "[packages]")
}
