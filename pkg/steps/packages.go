package steps

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotup/pkg/platform"
)

// homebrewInstaller fetches the upstream bootstrap script and pipes it into
// bash. The fetch happens inside the -c script; there is no outer
// interactive shell to expand a command substitution for us.
const homebrewInstaller = `curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh | /bin/bash`

// Packages installs the configured package list. On macOS it bootstraps
// Homebrew when missing; on Windows it prints a manual checklist; on Linux
// it is a no-op.
type Packages struct{}

func (s *Packages) Name() string {
	return "packages"
}

func (s *Packages) Applies(kind platform.Kind) bool {
	return kind != platform.Linux
}

func (s *Packages) Run(ctx *Context) error {
	logger := ctx.StepLogger("packages")
	logger.Info().Msg("Installing packages")

	if ctx.Paths.OS.IsWindows() {
		s.windowsChecklist()
		return nil
	}

	if !ctx.Runner.LookPath("brew") {
		logger.Info().Msg("Installing Homebrew")
		if !ctx.Runner.Run("/bin/bash", "-c", homebrewInstaller) {
			logger.Warn().Msg("Homebrew install failed")
		}
	}

	for _, pkg := range ctx.Config.Packages.Brew {
		if !ctx.Runner.Run("brew", "install", pkg) {
			logger.Warn().Str("package", pkg).Msg("Package install failed")
		}
	}

	return nil
}

// windowsChecklist lists the installs the user has to perform by hand and
// waits for acknowledgement when attached to a terminal. The checklist goes
// to the console directly; at default verbosity the log shows warnings only.
func (s *Packages) windowsChecklist() {
	pterm.Info.Println("Please ensure you have the following installed:")
	pterm.Info.Println("  1. Python (from python.org)")
	pterm.Info.Println("  2. Git (from git-scm.com)")
	pterm.Info.Println("  3. VS Code (from code.visualstudio.com)")

	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Print("Press Enter when ready to continue...")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
}
