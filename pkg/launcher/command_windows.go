package launcher

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// command runs batch files through cmd.exe with the quoted command line passed verbatim.
// Everything else is started directly.
func command(ctx context.Context, env []string, path string, args []string) *exec.Cmd {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".bat" && ext != ".cmd" {
		return exec.CommandContext(ctx, path, args...)
	}

	shell, ok := EnvFromList(env).Lookup("COMSPEC")
	if !ok || shell == "" {
		shell = "cmd.exe"
	}

	cmd := exec.CommandContext(ctx, shell)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: quote(shell) + ` /d /s /c "` + BuildCommandLine(path, args) + `"`,
	}
	return cmd
}
