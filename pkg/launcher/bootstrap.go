package launcher

import (
	"context"
	"path/filepath"
)

// BootstrapHint is appended to the error shown when bootstrap runs on an unsupported host.
const BootstrapHint = "The bootstrap helper relies on run.bat, run it from Windows."

type ShortcutMode string

const (
	// ShortcutAuto keeps the desktop shortcut only when the game is launched.
	ShortcutAuto ShortcutMode = "auto"
	ShortcutKeep ShortcutMode = "keep"
	ShortcutSkip ShortcutMode = "skip"
)

// BootstrapOptions is the parsed form of the bootstrap command line.
type BootstrapOptions struct {
	Launch      bool
	Shortcut    ShortcutMode
	PassThrough []string
}

// ParseBootstrapArgs splits the bootstrap flags from the arguments meant for the setup script.
// The CI flag is consumed here.
func ParseBootstrapArgs(args []string) BootstrapOptions {
	opts := BootstrapOptions{
		Shortcut:    ShortcutAuto,
		PassThrough: []string{},
	}

	for _, arg := range args {
		switch arg {
		case "--launch":
			opts.Launch = true
		case "--keep-shortcut":
			opts.Shortcut = ShortcutKeep
		case "--no-shortcut":
			opts.Shortcut = ShortcutSkip
		case CIFlag:
		default:
			opts.PassThrough = append(opts.PassThrough, arg)
		}
	}

	return opts
}

// ScriptArgs translates the options into the setup script's own flags.
func (o BootstrapOptions) ScriptArgs() []string {
	result := make([]string, 0, len(o.PassThrough)+2)
	if !o.Launch {
		result = append(result, "--skip-run")
	}

	if o.Shortcut == ShortcutSkip || (o.Shortcut == ShortcutAuto && !o.Launch) {
		result = append(result, "--no-shortcut")
	}

	return append(result, o.PassThrough...)
}

// Bootstrap runs the platform setup script from the project root.
type Bootstrap struct {
	Launcher
	Root string
	// Script is the setup script, relative to Root unless absolute.
	Script string
}

// ScriptPath returns the absolute location of the setup script.
func (b *Bootstrap) ScriptPath() string {
	if filepath.IsAbs(b.Script) {
		return filepath.Clean(b.Script)
	}
	return filepath.Join(b.Root, b.Script)
}

// CommandLine builds the command line passed to cmd.exe for the given bootstrap arguments.
func (b *Bootstrap) CommandLine(args []string) string {
	return BuildCommandLine(b.ScriptPath(), ParseBootstrapArgs(args).ScriptArgs())
}

// Run gates, builds the command line and runs the setup script. It returns the exit code the
// tool should exit with.
func (b *Bootstrap) Run(ctx context.Context, args []string) (int, error) {
	skip, err := b.Gate(ctx, args, BootstrapHint)
	if err != nil {
		return ExitFailure, err
	}
	if skip {
		return ExitSuccess, nil
	}

	return b.runner().Run(ctx, b.Root, b.ScriptPath(), ParseBootstrapArgs(args).ScriptArgs())
}
