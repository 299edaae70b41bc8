// Package platform classifies the host operating system once at startup.
//
// The classification is resolved a single time and passed as data into the
// setup steps, so platform-gated behavior never re-queries runtime.GOOS and
// tests can inject a fake classification.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Kind is the resolved operating system family
type Kind int

const (
	// Linux covers Linux and any other Unix-like system
	Linux Kind = iota
	// Darwin is macOS
	Darwin
	// Windows is Microsoft Windows
	Windows
)

// String returns the lowercase name of the OS family
func (k Kind) String() string {
	switch k {
	case Darwin:
		return "darwin"
	case Windows:
		return "windows"
	default:
		return "linux"
	}
}

// IsWindows reports whether the kind is Windows
func (k Kind) IsWindows() bool {
	return k == Windows
}

// IsDarwin reports whether the kind is macOS
func (k Kind) IsDarwin() bool {
	return k == Darwin
}

// Detect classifies the current operating system
func Detect() Kind {
	switch runtime.GOOS {
	case "darwin":
		return Darwin
	case "windows":
		return Windows
	default:
		return Linux
	}
}

// ProbeSymlinkSupport reports whether this environment can create symbolic
// links without elevated privilege. On Unix systems this is always true; on
// Windows it depends on developer mode or administrator rights, so the probe
// actually attempts a link in a scratch directory.
func ProbeSymlinkSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	dir, err := os.MkdirTemp("", "dotup-probe-")
	if err != nil {
		return false
	}
	defer func() { _ = os.RemoveAll(dir) }()

	source := filepath.Join(dir, "source")
	if err := os.WriteFile(source, []byte("probe"), 0644); err != nil {
		return false
	}

	return os.Symlink(source, filepath.Join(dir, "link")) == nil
}
