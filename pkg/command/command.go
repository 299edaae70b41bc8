// Package command runs external processes with structured argument lists.
//
// Arguments are passed directly to the process with no shell
// interpretation, so paths containing special characters cannot alter the
// command. A non-zero exit is logged and reported as failure; the caller
// decides whether to continue.
package command

import (
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotup/pkg/errors"
)

// Runner executes external commands to completion
type Runner interface {
	// Run executes the command and reports whether it exited successfully
	Run(name string, args ...string) bool

	// LookPath reports whether an executable is available on PATH
	LookPath(name string) bool
}

// ExecRunner runs commands via os/exec with stdio passed through, so
// interactive installers keep working.
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates a Runner backed by os/exec
func NewExecRunner(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{logger: logger.With().Str("component", "command").Logger()}
}

// Run executes the command to completion. On non-zero exit the command and
// error are logged and false is returned; failures never abort the overall
// run.
func (r *ExecRunner) Run(name string, args ...string) bool {
	r.logger.Debug().
		Str("command", name).
		Strs("args", args).
		Msg("Executing command")

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		r.logger.Error().
			Str("command", name).
			Strs("args", args).
			Err(errors.Wrapf(err, errors.ErrCommandRun, "command failed: %s", name)).
			Msg("Command failed")
		return false
	}

	return true
}

// LookPath reports whether an executable is available on PATH
func (r *ExecRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
