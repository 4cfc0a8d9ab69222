package launcher

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Runner executes a single program with the parent's standard streams attached.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    []string
}

// NewRunner returns a Runner wired to os.Stdin, os.Stdout, os.Stderr and the process environment.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Env:    os.Environ(),
	}
}

func lookPath(dir, name string) (string, error) {
	if strings.ContainsAny(name, `/\`) && !filepath.IsAbs(name) && dir != "" {
		name = filepath.Join(dir, name)
	}

	return exec.LookPath(name)
}

// Run starts name with args in dir and waits for it. The arguments reach the program unchanged;
// no shell sees them except for batch files on Windows, which need cmd.exe. It returns the exit
// code of the program. Failing to start it yields a *SpawnError.
func (r *Runner) Run(ctx context.Context, dir, name string, args []string) (int, error) {
	env := r.Env
	if env == nil {
		env = os.Environ()
	}

	path, err := lookPath(dir, name)
	if err != nil {
		return ExitFailure, &SpawnError{Command: name, Err: err}
	}

	cmd := command(ctx, env, path, args)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	Log(ctx).Info().
		Bool("command", true).
		Str("dir", dir).
		Msg(BuildCommandLine(name, args))

	if err := cmd.Start(); err != nil {
		return ExitFailure, &SpawnError{Command: name, Err: err}
	}

	err = cmd.Wait()
	if err == nil {
		return ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == -1 {
			return ExitFailure, eris.Wrapf(err, "%s did not report an exit status", name)
		}

		Log(ctx).Debug().Msgf("command exited with %d", code)
		return code, nil
	}

	return ExitFailure, eris.Wrapf(err, "failed to wait for %s", name)
}
