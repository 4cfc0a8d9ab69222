package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/aidarkhanov/nanoid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cabbabbage/vibble/build-tools/pkg"
	"github.com/cabbabbage/vibble/build-tools/pkg/config"
	"github.com/cabbabbage/vibble/build-tools/pkg/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "tool",
	Short: "Build tools for VIBBLE",
	Long: `This command bundles the helpers used to set up and test the engine.
This includes the Windows bootstrap wrapper around run.bat, a CTest wrapper and
cross-platform file helpers for build scripts.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Seams for tests.
var (
	environ           = os.Environ
	supportedPlatform = launcher.PlatformCheck(launcher.IsWindows)
	projectRoot       = pkg.GetProjectRoot
	newRunner         = launcher.NewRunner
)

var (
	exitCode int
	noColor  bool
)

// toolError tags a launcher error with the helper that produced it.
type toolError struct {
	tool string
	err  error
}

func (e *toolError) Error() string {
	return e.err.Error()
}

func (e *toolError) Unwrap() error {
	return e.err
}

// session is what a launcher command needs after loading the configuration.
type session struct {
	ctx  context.Context
	cfg  *config.Config
	root string
}

func setup(cmd *cobra.Command, tool string) (*session, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	noColor = cfg.Log.NoColor

	logger := zerolog.New(NewConsoleWriter(cmd.ErrOrStderr(), cfg.Log.NoColor)).
		Level(cfg.LogLevel()).
		With().
		Str("tool", tool).
		Str("run", nanoid.New()).
		Logger()
	logger.Debug().Str("root", root).Msg("configuration loaded")

	return &session{
		ctx:  launcher.WithLogger(context.Background(), &logger),
		cfg:  cfg,
		root: root,
	}, nil
}

func newLauncher(cmd *cobra.Command, tool string) launcher.Launcher {
	return launcher.Launcher{
		Tool:      tool,
		Env:       launcher.EnvFromList(environ()),
		Supported: supportedPlatform,
		Stdout:    cmd.OutOrStdout(),
	}
}

// start applies the platform gate, then loads the project root and configuration.
// A nil session with a nil error means the run was skipped.
func start(cmd *cobra.Command, tool string, args []string, hint string) (*session, launcher.Launcher, error) {
	l := newLauncher(cmd, tool)
	skip, err := l.Gate(context.Background(), args, hint)
	if err != nil {
		return nil, l, &toolError{tool: tool, err: err}
	}
	if skip {
		return nil, l, nil
	}

	s, err := setup(cmd, tool)
	if err != nil {
		return nil, l, &toolError{tool: tool, err: err}
	}

	l.Runner = newRunner()
	return s, l, nil
}

// Run executes the tool with args and returns the exit code for the process.
func Run(args []string, stdout, stderr io.Writer) int {
	exitCode = launcher.ExitSuccess
	noColor = false

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		tool := ""
		var tagged *toolError
		if errors.As(err, &tagged) {
			tool = tagged.tool
		}

		pkg.Console{Out: stderr, NoColor: noColor}.PrintError(tool, err.Error())
		return launcher.ExitCode(err)
	}

	return exitCode
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
