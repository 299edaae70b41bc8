// Package setup orchestrates one bootstrap run.
//
// The flow is strictly linear: resolve the environment, ensure the dotfiles
// root exists, acquire the single-instance lock, then run the enabled steps
// in their fixed order. Step failures are logged and skipped; only an
// unresolvable home directory, an uncreatable dotfiles root, or a held run
// lock abort the run.
package setup

import (
	"os"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/dotup/pkg/command"
	"github.com/arthur-debert/dotup/pkg/config"
	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/filesystem"
	"github.com/arthur-debert/dotup/pkg/linker"
	"github.com/arthur-debert/dotup/pkg/paths"
	"github.com/arthur-debert/dotup/pkg/platform"
	"github.com/arthur-debert/dotup/pkg/steps"
	"github.com/arthur-debert/dotup/pkg/style"
)

// Options tunes one run. The zero value is the production configuration.
type Options struct {
	// DotfilesRoot overrides the dotfiles root; empty means the
	// DOTFILES_PATH environment variable or <home>/dotfiles.
	DotfilesRoot string

	// Steps overrides the step list; nil means steps.All()
	Steps []steps.Step

	// Runner overrides the command runner; nil means the exec runner
	Runner command.Runner

	// Quiet suppresses the pterm progress output
	Quiet bool
}

// Run executes the full setup sequence
func Run(osKind platform.Kind, opts Options) error {
	runLogger := log.With().
		Str("run_id", uuid.NewString()).
		Str("os", osKind.String()).
		Logger()
	logger := runLogger.With().Str("component", "setup").Logger()

	env, err := paths.New(opts.DotfilesRoot, osKind)
	if err != nil {
		return err
	}

	logger.Info().
		Str("home", env.HomeDir).
		Str("dotfiles", env.DotfilesRoot).
		Msg("Starting development environment setup")

	if err := os.MkdirAll(env.DotfilesRoot, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create dotfiles root %s", env.DotfilesRoot)
	}

	if !opts.Quiet {
		pterm.Info.Printfln("Using dotfiles at %s", style.Path(env.DotfilesRoot))
	}

	lock, release, err := acquireLock(env, logger)
	if err != nil {
		return err
	}
	if lock != nil {
		defer release()
	}

	cfg, err := config.Load(env.DotfilesRoot)
	if err != nil {
		// A broken config file should not stop the bootstrap; fall back to
		// the built-in defaults.
		logger.Error().Err(err).Msg("Config load failed, using defaults")
		cfg, err = config.Default()
		if err != nil {
			return err
		}
	}

	runner := opts.Runner
	if runner == nil {
		runner = command.NewExecRunner(runLogger)
	}

	fsys := filesystem.NewOS()
	strategy := linker.SelectStrategy(fsys, platform.ProbeSymlinkSupport())
	ctx := &steps.Context{
		Paths:  env,
		Config: cfg,
		Linker: linker.New(fsys, strategy, runLogger),
		Runner: runner,
		FS:     fsys,
		Logger: runLogger,
	}

	stepList := opts.Steps
	if stepList == nil {
		stepList = steps.All()
	}

	for _, step := range stepList {
		if !cfg.StepEnabled(step.Name()) {
			logger.Debug().Str("step", step.Name()).Msg("Step disabled, skipping")
			continue
		}
		if !step.Applies(osKind) {
			logger.Debug().Str("step", step.Name()).Msg("Step not applicable on this OS, skipping")
			continue
		}

		if !opts.Quiet {
			pterm.Info.Printfln("Setting up %s", step.Name())
		}
		if err := step.Run(ctx); err != nil {
			logger.Error().Err(err).Str("step", step.Name()).Msg("Step failed")
			if !opts.Quiet {
				pterm.Warning.Printfln("Step %s failed, continuing", step.Name())
			}
		}
	}

	logger.Info().Msg("Setup complete")
	if !opts.Quiet {
		pterm.Success.Println(style.Success("Setup complete!"))
		if osKind.IsWindows() {
			pterm.Info.Println("Note: some features are not available on Windows. Consider WSL2 for a more Unix-like experience.")
		}
	}

	return nil
}

// acquireLock takes the single-instance run lock. A held lock aborts the
// run; an unusable state directory only disables locking.
func acquireLock(env *paths.Paths, logger zerolog.Logger) (*flock.Flock, func(), error) {
	if err := os.MkdirAll(env.StateDir(), 0755); err != nil {
		logger.Warn().Err(err).Str("dir", env.StateDir()).Msg("Cannot create state dir, running unlocked")
		return nil, nil, nil
	}

	lock := flock.New(env.LockFilePath())
	ok, err := lock.TryLock()
	if err != nil {
		logger.Warn().Err(err).Str("lock", env.LockFilePath()).Msg("Cannot acquire run lock, running unlocked")
		return nil, nil, nil
	}
	if !ok {
		return nil, nil, errors.Newf(errors.ErrLockHeld,
			"another dotup run is in progress (lock: %s)", env.LockFilePath())
	}

	return lock, func() { _ = lock.Unlock() }, nil
}
