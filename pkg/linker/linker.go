// Package linker places dotfiles at their target locations.
//
// The core operation backs up any pre-existing real file or directory at
// the target (renaming it to <target>.backup), discards a pre-existing
// link without backup, then creates a fresh link via the active strategy.
// Link failures are non-fatal to the overall run; callers log and continue.
package linker

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/filesystem"
)

// BackupSuffix is appended to a displaced pre-existing target
const BackupSuffix = ".backup"

// Linker ensures targets resolve to their dotfiles sources
type Linker struct {
	fs       filesystem.FS
	strategy Strategy
	logger   zerolog.Logger
}

// New creates a Linker using the given filesystem and link strategy. The
// logger is scoped to one run; tests pass a buffer-backed or no-op logger.
func New(fsys filesystem.FS, strategy Strategy, logger zerolog.Logger) *Linker {
	return &Linker{
		fs:       fsys,
		strategy: strategy,
		logger:   logger.With().Str("component", "linker").Logger(),
	}
}

// Link makes target resolve to source, backing up a pre-existing regular
// file or directory to target+".backup" first. A pre-existing link at the
// target is removed without backup; its old destination is discarded, not
// restored. Any previous backup at the backup path is silently replaced.
//
// The returned error is informational: link failures never abort the run.
func (l *Linker) Link(source, target string) error {
	if err := l.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory for %s", target)
	}

	if info, err := l.fs.Lstat(target); err == nil {
		if info.Mode()&os.ModeSymlink != 0 {
			if err := l.fs.Remove(target); err != nil {
				return errors.Wrapf(err, errors.ErrSymlinkRemove,
					"failed to remove existing link %s", target)
			}
		} else {
			if err := l.backup(target); err != nil {
				return err
			}
		}
	}

	if err := l.strategy.Link(source, target); err != nil {
		return err
	}

	l.logger.Info().
		Str("source", source).
		Str("target", target).
		Str("strategy", l.strategy.Name()).
		Msg("Linked")

	return nil
}

// backup moves target aside to target+BackupSuffix, replacing any previous
// backup at that path.
func (l *Linker) backup(target string) error {
	backupPath := target + BackupSuffix

	// A second run clobbers the previous backup without warning.
	if err := l.fs.RemoveAll(backupPath); err != nil {
		return errors.Wrapf(err, errors.ErrBackupMove,
			"failed to clear previous backup %s", backupPath)
	}

	if err := l.fs.Rename(target, backupPath); err != nil {
		return errors.Wrapf(err, errors.ErrBackupMove,
			"failed to back up %s", target)
	}

	l.logger.Info().Str("backup", backupPath).Msg("Backed up existing config")
	return nil
}
