package launcher

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBootstrapArgs(t *testing.T) {
	cases := []struct {
		args     []string
		expected []string
	}{
		{nil, []string{"--skip-run", "--no-shortcut"}},
		{[]string{"--launch"}, []string{}},
		{[]string{"--launch", "--no-shortcut"}, []string{"--no-shortcut"}},
		{[]string{"--keep-shortcut"}, []string{"--skip-run"}},
		{[]string{"--launch", "--keep-shortcut"}, []string{}},
		{[]string{"--ci", "--fresh", "two words"}, []string{"--skip-run", "--no-shortcut", "--fresh", "two words"}},
	}

	for _, c := range cases {
		assert.Equalf(t, c.expected, ParseBootstrapArgs(c.args).ScriptArgs(), "args %q", c.args)
	}
}

func TestParseBootstrapArgsShortcutMode(t *testing.T) {
	assert.Equal(t, ShortcutAuto, ParseBootstrapArgs(nil).Shortcut)
	assert.Equal(t, ShortcutKeep, ParseBootstrapArgs([]string{"--keep-shortcut"}).Shortcut)
	// last one wins
	assert.Equal(t, ShortcutSkip, ParseBootstrapArgs([]string{"--keep-shortcut", "--no-shortcut"}).Shortcut)
}

func newTestBootstrap(supported bool, env Env) (*Bootstrap, *fakeRunner) {
	l, _, runner := newTestLauncher(supported, env)
	l.Tool = "bootstrap"
	return &Bootstrap{
		Launcher: l,
		Root:     filepath.FromSlash("/work/vibble"),
		Script:   "run.bat",
	}, runner
}

func TestBootstrapCommandLine(t *testing.T) {
	b, _ := newTestBootstrap(true, Env{})
	g := goldie.New(t)

	g.Assert(t, "bootstrap_default", []byte(b.CommandLine(nil)))
	g.Assert(t, "bootstrap_launch", []byte(b.CommandLine([]string{"--launch", "--ci", `--name=my "game"`})))
}

func TestBootstrapScriptPath(t *testing.T) {
	b, _ := newTestBootstrap(true, Env{})
	assert.Equal(t, filepath.Join(b.Root, "run.bat"), b.ScriptPath())

	abs := filepath.Join(t.TempDir(), "setup.bat")
	b.Script = abs
	assert.Equal(t, abs, b.ScriptPath())
}

func TestBootstrapRunsScriptFromRoot(t *testing.T) {
	b, runner := newTestBootstrap(true, Env{})
	runner.code = 3

	code, err := b.Run(context.Background(), []string{"--launch"})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, b.Root, runner.calls[0].dir)
	assert.Equal(t, b.ScriptPath(), runner.calls[0].name)
	assert.Empty(t, runner.calls[0].args)
	assert.Equal(t, `"/work/vibble/run.bat"`, runner.calls[0].cmdline)
}

func TestBootstrapForwardsArgumentsUnchanged(t *testing.T) {
	b, runner := newTestBootstrap(true, Env{})

	_, err := b.Run(context.Background(), []string{"--ci", `C:\games\vibble`, "$HOME", "a;b"})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"--skip-run", "--no-shortcut", `C:\games\vibble`, "$HOME", "a;b"}, runner.calls[0].args)
}

func TestBootstrapUnsupportedCI(t *testing.T) {
	b, runner := newTestBootstrap(false, Env{"GITHUB_ACTIONS": "true"})

	code, err := b.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, runner.calls)
	assert.Contains(t, b.Stdout.(interface{ String() string }).String(), "[bootstrap] Skipping Windows-only bootstrap helper on linux.")
}

func TestBootstrapUnsupportedInteractive(t *testing.T) {
	b, runner := newTestBootstrap(false, Env{})

	code, err := b.Run(context.Background(), []string{"--launch"})
	require.Error(t, err)
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, runner.calls)
	assert.Contains(t, err.Error(), "run it from Windows")
}
