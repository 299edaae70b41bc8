package steps_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotup/pkg/platform"
	"github.com/arthur-debert/dotup/pkg/steps"
	"github.com/arthur-debert/dotup/pkg/testutil"
)

func TestVSCode_LinksUserConfig(t *testing.T) {
	ctx, runner := testutil.NewStepContext(t, platform.Darwin)
	testutil.WriteFile(t, ctx.Paths.Dotfile("vscode", "settings.json"), `{"a":1}`)
	testutil.WriteFile(t, ctx.Paths.Dotfile("vscode", "keybindings.json"), `[]`)
	testutil.WriteFile(t, ctx.Paths.Dotfile("vscode", "snippets", "go.json"), `{}`)

	require.NoError(t, (&steps.VSCode{}).Run(ctx))

	userDir := ctx.Paths.VSCodeUserDir()
	assert.Equal(t, `{"a":1}`, testutil.ReadFile(t, filepath.Join(userDir, "settings.json")))
	assert.Equal(t, `[]`, testutil.ReadFile(t, filepath.Join(userDir, "keybindings.json")))
	assert.Equal(t, `{}`, testutil.ReadFile(t, filepath.Join(userDir, "snippets", "go.json")))
	assert.Empty(t, runner.Calls)
}

func TestVSCode_InstallsExtensions(t *testing.T) {
	ctx, runner := testutil.NewStepContext(t, platform.Linux)
	testutil.WriteFile(t, ctx.Paths.Dotfile("vscode", "extensions.txt"),
		"golang.go\n\n  \nms-python.python\n")

	require.NoError(t, (&steps.VSCode{}).Run(ctx))

	calls := runner.CallsTo("code")
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"code", "--install-extension", "golang.go"}, calls[0])
	assert.Equal(t, []string{"code", "--install-extension", "ms-python.python"}, calls[1])
}

func TestVSCode_NoExtensionsFileNoInstalls(t *testing.T) {
	ctx, runner := testutil.NewStepContext(t, platform.Linux)

	require.NoError(t, (&steps.VSCode{}).Run(ctx))

	assert.Empty(t, runner.Calls)

	// No sources present, so nothing was linked either
	_, err := os.Lstat(filepath.Join(ctx.Paths.VSCodeUserDir(), "settings.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestVSCode_ExtensionFailureContinues(t *testing.T) {
	ctx, runner := testutil.NewStepContext(t, platform.Linux)
	runner.Fail = map[string]bool{"code": true}
	testutil.WriteFile(t, ctx.Paths.Dotfile("vscode", "extensions.txt"), "a.one\nb.two\n")

	require.NoError(t, (&steps.VSCode{}).Run(ctx))

	// Both installs were still attempted
	assert.Len(t, runner.CallsTo("code"), 2)
}
