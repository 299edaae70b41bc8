package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrSymlinkCreate, "link failed")
	assert.Equal(t, "[SYMLINK_CREATE] link failed", err.Error())
	assert.Equal(t, ErrSymlinkCreate, err.Code)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrDirCreate, "failed to create %s", "/tmp/x")
	assert.Equal(t, "[DIR_CREATE] failed to create /tmp/x", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(cause, ErrBackupMove, "backup failed")

	assert.Equal(t, "[BACKUP_MOVE] backup failed: permission denied", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrBackupMove, "x"))
	assert.Nil(t, Wrapf(nil, ErrBackupMove, "x %d", 1))
}

func TestIs_MatchesOnCode(t *testing.T) {
	err := Newf(ErrLockHeld, "lock held at %s", "/x")
	assert.True(t, stderrors.Is(err, New(ErrLockHeld, "")))
	assert.False(t, stderrors.Is(err, New(ErrDirCreate, "")))
}

func TestIsErrorCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrHomeResolve, "no home"))
	assert.True(t, IsErrorCode(err, ErrHomeResolve))
	assert.False(t, IsErrorCode(err, ErrConfigLoad))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrHomeResolve))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCommandRun, GetErrorCode(New(ErrCommandRun, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSymlinkCreate, "x").
		WithDetail("source", "/a").
		WithDetail("target", "/b")

	assert.Equal(t, "/a", err.Details["source"])
	assert.Equal(t, "/b", err.Details["target"])
}
