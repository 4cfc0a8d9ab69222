package launcher

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// TestRunHint is appended to the error shown when ctest runs on an unsupported host.
const TestRunHint = "Run this command from Windows to exercise CTest."

// TestRun invokes the native test runner inside the build output directory.
type TestRun struct {
	Launcher
	Root        string
	BuildDir    string
	Binary      string
	BuildConfig string
}

// BuildPath returns the absolute build output directory.
func (t *TestRun) BuildPath() string {
	if filepath.IsAbs(t.BuildDir) {
		return filepath.Clean(t.BuildDir)
	}
	return filepath.Join(t.Root, t.BuildDir)
}

// Args returns the runner arguments: the fixed flags followed by the caller's extra arguments.
func (t *TestRun) Args(extra []string) []string {
	args := []string{"--build-config", t.BuildConfig, "--output-on-failure"}
	return append(args, StripCIFlag(extra)...)
}

// CommandLine renders the test runner invocation for the given arguments.
func (t *TestRun) CommandLine(extra []string) string {
	return BuildCommandLine(t.Binary, t.Args(extra))
}

// CheckBuildDir fails with a MissingBuildDirError unless the build directory exists.
func (t *TestRun) CheckBuildDir() error {
	path := t.BuildPath()
	info, err := os.Stat(path)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return MissingBuildDirError{Path: path}
		}
		return eris.Wrapf(err, "Failed to check %s", path)
	}

	if !info.IsDir() {
		return MissingBuildDirError{Path: path}
	}

	return nil
}

// Run gates, checks the build directory and runs the test runner. It returns the exit code the
// tool should exit with.
func (t *TestRun) Run(ctx context.Context, args []string) (int, error) {
	skip, err := t.Gate(ctx, args, TestRunHint)
	if err != nil {
		return ExitFailure, err
	}
	if skip {
		return ExitSuccess, nil
	}

	if err := t.CheckBuildDir(); err != nil {
		return ExitFailure, err
	}

	return t.runner().Run(ctx, t.BuildPath(), t.Binary, t.Args(args))
}
