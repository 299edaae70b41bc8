// Package testutil provides helpers for dotup tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotup/pkg/command"
	"github.com/arthur-debert/dotup/pkg/config"
	"github.com/arthur-debert/dotup/pkg/filesystem"
	"github.com/arthur-debert/dotup/pkg/linker"
	"github.com/arthur-debert/dotup/pkg/paths"
	"github.com/arthur-debert/dotup/pkg/platform"
	"github.com/arthur-debert/dotup/pkg/steps"
)

// RecordingRunner records external command invocations instead of running
// them. Commands succeed unless listed in Fail; executables resolve unless
// listed in Missing.
type RecordingRunner struct {
	Calls   [][]string
	Fail    map[string]bool
	Missing map[string]bool
}

var _ command.Runner = (*RecordingRunner)(nil)

func (r *RecordingRunner) Run(name string, args ...string) bool {
	r.Calls = append(r.Calls, append([]string{name}, args...))
	return !r.Fail[name]
}

func (r *RecordingRunner) LookPath(name string) bool {
	return !r.Missing[name]
}

// CallsTo returns the recorded invocations of the named command
func (r *RecordingRunner) CallsTo(name string) [][]string {
	var calls [][]string
	for _, call := range r.Calls {
		if call[0] == name {
			calls = append(calls, call)
		}
	}
	return calls
}

// NewStepContext builds a steps.Context over a fresh temp home and dotfiles
// root for the given OS classification. Commands are recorded, not run.
func NewStepContext(t *testing.T, kind platform.Kind) (*steps.Context, *RecordingRunner) {
	t.Helper()

	home := TempHome(t)
	dotfiles := filepath.Join(home, "dotfiles")
	if err := os.MkdirAll(dotfiles, 0755); err != nil {
		t.Fatalf("failed to create dotfiles root: %v", err)
	}

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("failed to load default config: %v", err)
	}

	fsys := filesystem.NewOS()
	runner := &RecordingRunner{}
	logger := zerolog.Nop()

	return &steps.Context{
		Paths: &paths.Paths{
			HomeDir:      home,
			DotfilesRoot: dotfiles,
			OS:           kind,
		},
		Config: cfg,
		Linker: linker.New(fsys, linker.SelectStrategy(fsys, true), logger),
		Runner: runner,
		FS:     fsys,
		Logger: logger,
	}, runner
}

// TempHome creates a temp directory and points HOME and the XDG base
// directories at it, so path resolution never touches the real home.
func TempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return home
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ReadFile reads path, following symlinks
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
