package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
)

// CommandRunner runs one program in dir and reports its exit code.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args []string) (int, error)
}

// Launcher carries what both helpers need before they can spawn anything.
type Launcher struct {
	// Tool is the short name used in messages, i.e. "ctest".
	Tool      string
	Env       Env
	Supported PlatformCheck
	// OS is the host name shown in messages. Defaults to runtime.GOOS.
	OS string
	// Stdout receives the CI skip notice.
	Stdout io.Writer
	// Runner defaults to NewRunner().
	Runner CommandRunner
}

func (l *Launcher) hostOS() string {
	if l.OS != "" {
		return l.OS
	}
	return runtime.GOOS
}

func (l *Launcher) runner() CommandRunner {
	if l.Runner == nil {
		l.Runner = NewRunner()
	}
	return l.Runner
}

// Notice prints an informational line tagged with the tool name.
func (l *Launcher) Notice(msg string) {
	out := l.Stdout
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "[%s] %s\n", l.Tool, msg)
}

// Gate applies the platform rule. On an unsupported host a CI-like run is skipped (skip is
// true, err is nil) while an interactive run fails with an UnsupportedPlatformError.
func (l *Launcher) Gate(ctx context.Context, args []string, hint string) (bool, error) {
	supported := l.Supported
	if supported == nil {
		supported = IsWindows
	}

	if supported() {
		return false, nil
	}

	notice := UnsupportedPlatformError{Tool: l.Tool, OS: l.hostOS()}
	if IsCILike(args, l.Env) {
		Log(ctx).Debug().Str("tool", l.Tool).Msg("unsupported platform in a CI-like environment")
		l.Notice(notice.Error())
		return true, nil
	}

	notice.Hint = hint
	return false, notice
}
