package steps_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotup/pkg/platform"
	"github.com/arthur-debert/dotup/pkg/steps"
	"github.com/arthur-debert/dotup/pkg/testutil"
)

func TestZsh_LinksZshrc(t *testing.T) {
	ctx, runner := testutil.NewStepContext(t, platform.Darwin)
	testutil.WriteFile(t, ctx.Paths.Dotfile("zsh", ".zshrc"), "export EDITOR=vim")

	// Pre-existing Oh My Zsh means no installer invocation
	require.NoError(t, os.MkdirAll(ctx.Paths.OhMyZshDir(), 0755))

	require.NoError(t, (&steps.Zsh{}).Run(ctx))

	assert.Equal(t, "export EDITOR=vim", testutil.ReadFile(t, ctx.Paths.Home(".zshrc")))
	assert.Empty(t, runner.Calls)
}

func TestZsh_InstallsOhMyZshWhenMissing(t *testing.T) {
	ctx, runner := testutil.NewStepContext(t, platform.Linux)

	require.NoError(t, (&steps.Zsh{}).Run(ctx))

	calls := runner.CallsTo("sh")
	require.Len(t, calls, 1)
	assert.Equal(t, "-c", calls[0][1])

	// The -c script must do the fetch and pipe itself; a bare $(curl ...)
	// would be expanded by sh into a garbled single command line.
	script := calls[0][2]
	assert.True(t, strings.HasPrefix(script, "curl "), "script %q should start with curl", script)
	assert.Contains(t, script, "ohmyzsh")
	assert.Contains(t, script, "| sh")
	assert.NotContains(t, script, "$(")
}

func TestZsh_NotApplicableOnWindows(t *testing.T) {
	step := &steps.Zsh{}
	assert.False(t, step.Applies(platform.Windows))
	assert.True(t, step.Applies(platform.Darwin))
	assert.True(t, step.Applies(platform.Linux))
}
