package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cabbabbage/vibble/build-tools/pkg/launcher"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [--ci] [--launch] [--keep-shortcut] [--no-shortcut] [args...]",
	Short: "Runs run.bat to set up the project (Windows only)",
	Long: `Runs the setup script (run.bat by default) from the project root. Unless --launch is
passed the game is not started afterwards. The desktop shortcut is only kept when
launching unless --keep-shortcut or --no-shortcut say otherwise. Every other
argument is passed on to the script.

On other platforms the command fails, except in CI environments (or with --ci)
where it prints a notice and exits successfully.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, l, err := start(cmd, "bootstrap", args, launcher.BootstrapHint)
		if err != nil {
			return err
		}
		if s == nil {
			exitCode = launcher.ExitSuccess
			return nil
		}

		b := &launcher.Bootstrap{
			Launcher: l,
			Root:     s.root,
			Script:   s.cfg.Bootstrap.Script,
		}

		code, err := b.Run(s.ctx, args)
		if err != nil {
			return &toolError{tool: "bootstrap", err: err}
		}

		exitCode = code
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}
