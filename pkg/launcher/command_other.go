//go:build !windows

package launcher

import (
	"context"
	"os/exec"
)

func command(ctx context.Context, env []string, path string, args []string) *exec.Cmd {
	return exec.CommandContext(ctx, path, args...)
}
