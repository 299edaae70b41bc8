package linker

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/filesystem"
)

// Strategy creates the link entry at target pointing at source. Exactly one
// strategy is selected at startup based on whether the environment supports
// unprivileged symbolic links; the rest of the system is unaware which one
// is active.
type Strategy interface {
	// Name identifies the strategy in logs
	Name() string

	// Link makes target resolve to source's content
	Link(source, target string) error
}

// SelectStrategy returns the symlink strategy when canSymlink is true and
// the copy fallback otherwise.
func SelectStrategy(fsys filesystem.FS, canSymlink bool) Strategy {
	if canSymlink {
		return &symlinkStrategy{fs: fsys}
	}
	return &copyStrategy{fs: fsys}
}

// symlinkStrategy creates true symbolic links
type symlinkStrategy struct {
	fs filesystem.FS
}

func (s *symlinkStrategy) Name() string {
	return "symlink"
}

func (s *symlinkStrategy) Link(source, target string) error {
	if err := s.fs.Symlink(source, target); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to create symlink %s -> %s", target, source)
	}
	return nil
}

// copyStrategy is the best-effort fallback for environments without
// unprivileged symbolic links. It copies the source file or directory tree
// to the target location.
type copyStrategy struct {
	fs filesystem.FS
}

func (s *copyStrategy) Name() string {
	return "copy"
}

func (s *copyStrategy) Link(source, target string) error {
	info, err := s.fs.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat source %s", source)
	}

	if info.IsDir() {
		return s.copyDir(source, target)
	}
	return s.copyFile(source, target, info.Mode())
}

func (s *copyStrategy) copyFile(source, target string, perm fs.FileMode) error {
	data, err := s.fs.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to read %s", source)
	}
	if err := s.fs.WriteFile(target, data, perm.Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to write %s", target)
	}
	return nil
}

func (s *copyStrategy) copyDir(source, target string) error {
	if err := s.fs.MkdirAll(target, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", target)
	}

	entries, err := s.fs.ReadDir(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read directory %s", source)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(source, entry.Name())
		dstPath := filepath.Join(target, entry.Name())

		if entry.IsDir() {
			if err := s.copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		perm := fs.FileMode(0644)
		if info, err := entry.Info(); err == nil {
			perm = info.Mode()
		}
		if err := s.copyFile(srcPath, dstPath, perm); err != nil {
			return err
		}
	}

	return nil
}
